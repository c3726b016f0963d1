package digest

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedDigest = errors.New("malformed digest")
	ErrInvalidPairs    = errors.New("siblings do not fit into parents")
)

// Digest is the output of a Hasher. Implementations are fixed-size byte
// arrays: copied by value and compared with ==.
type Digest interface {
	comparable
	// Bytes returns the raw digest bytes.
	Bytes() []byte
}

// Hasher provides the functions needed to compute a tree over digests of
// type D.
type Hasher[D Digest] interface {
	// Hash returns the digest of data. The same input always yields the
	// same digest.
	Hash(data []byte) D
	// Size returns the byte width of D.
	Size() int
	// FromBytes is the inverse of D.Bytes(). It returns an error wrapping
	// ErrMalformedDigest if len(b) != Size().
	FromBytes(b []byte) (D, error)
}

// BatchHasher is a Hasher that can combine a whole level of siblings in one
// call. Trees use it instead of pairwise HashPair calls when available.
type BatchHasher[D Digest] interface {
	Hasher[D]
	// HashPairs sets dst[i] = Hash(src[2i] || src[2i+1]) for every pair in
	// src. len(src) must be even and dst must hold at least len(src)/2
	// digests.
	HashPairs(dst, src []D) error
}

// HashPair computes the parent of left and right as Hash(left || right).
// If right is nil the left node has no sibling and is returned unchanged,
// without re-hashing.
func HashPair[D Digest](h Hasher[D], left D, right *D) D {
	if right == nil {
		return left
	}
	l, r := left.Bytes(), (*right).Bytes()
	combined := make([]byte, 0, len(l)+len(r))
	combined = append(combined, l...)
	combined = append(combined, r...)
	return h.Hash(combined)
}

func fromBytes[D ~[32]byte](b []byte) (D, error) {
	var d D
	if len(b) != len(d) {
		return d, fmt.Errorf("%w: got: %v bytes, want: %v", ErrMalformedDigest, len(b), len(d))
	}
	copy(d[:], b)
	return d, nil
}
