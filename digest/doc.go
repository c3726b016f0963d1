// Package digest contains the hashing primitives the flat tree is built from:
// * Digest is a fixed-width, comparable hash value that can be turned into bytes
// * Hasher hashes byte buffers into Digests and rebuilds Digests from bytes
// * HashPair combines two sibling Digests into their parent.
package digest
