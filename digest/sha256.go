package digest

import (
	"encoding/hex"
	"fmt"
	"unsafe"

	"github.com/minio/sha256-simd"
	"github.com/prysmaticlabs/gohashtree"
)

var _ BatchHasher[SHA256] = SHA256Hasher{}

// SHA256 is a SHA-256 digest.
type SHA256 [sha256.Size]byte

func (d SHA256) Bytes() []byte {
	return d[:]
}

// String returns the hexadecimal encoding of the digest.
func (d SHA256) String() string {
	return hex.EncodeToString(d[:])
}

// SHA256Hasher is the default Hasher. Leaves are hashed with the SIMD
// accelerated sha256 package, inner levels are hashed in batches with
// gohashtree.
type SHA256Hasher struct{}

func (SHA256Hasher) Hash(data []byte) SHA256 {
	return sha256.Sum256(data)
}

func (SHA256Hasher) Size() int {
	return sha256.Size
}

func (SHA256Hasher) FromBytes(b []byte) (SHA256, error) {
	return fromBytes[SHA256](b)
}

// HashPairs hashes every adjacent pair of src into dst using the vectorized
// 64-byte block hasher of gohashtree.
func (SHA256Hasher) HashPairs(dst, src []SHA256) error {
	if len(src)%2 == 1 || len(dst) < len(src)/2 {
		return fmt.Errorf("%w: got: %v siblings for %v parents", ErrInvalidPairs, len(src), len(dst))
	}
	if err := gohashtree.Hash(chunks(dst), chunks(src)); err != nil {
		return fmt.Errorf("hashing %v sibling digests into %v parents: %w", len(src), len(dst), err)
	}
	return nil
}

// chunks reinterprets ds as the [][32]byte gohashtree operates on. SHA256 has
// the same memory layout as [32]byte.
func chunks(ds []SHA256) [][32]byte {
	if len(ds) == 0 {
		return nil
	}
	return unsafe.Slice((*[32]byte)(unsafe.Pointer(unsafe.SliceData(ds))), len(ds))
}
