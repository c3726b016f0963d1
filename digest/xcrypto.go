package digest

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

var (
	_ Hasher[Keccak256]  = Keccak256Hasher{}
	_ Hasher[BLAKE2b256] = BLAKE2b256Hasher{}
)

// Keccak256 is a legacy (pre-NIST) Keccak-256 digest as used by Ethereum.
type Keccak256 [32]byte

func (d Keccak256) Bytes() []byte {
	return d[:]
}

func (d Keccak256) String() string {
	return hex.EncodeToString(d[:])
}

type Keccak256Hasher struct{}

//nolint:errcheck
func (Keccak256Hasher) Hash(data []byte) Keccak256 {
	var d Keccak256
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	h.Sum(d[:0])
	return d
}

func (Keccak256Hasher) Size() int {
	return len(Keccak256{})
}

func (Keccak256Hasher) FromBytes(b []byte) (Keccak256, error) {
	return fromBytes[Keccak256](b)
}

// BLAKE2b256 is a BLAKE2b digest truncated to 256 bits.
type BLAKE2b256 [blake2b.Size256]byte

func (d BLAKE2b256) Bytes() []byte {
	return d[:]
}

func (d BLAKE2b256) String() string {
	return hex.EncodeToString(d[:])
}

type BLAKE2b256Hasher struct{}

func (BLAKE2b256Hasher) Hash(data []byte) BLAKE2b256 {
	return blake2b.Sum256(data)
}

func (BLAKE2b256Hasher) Size() int {
	return blake2b.Size256
}

func (BLAKE2b256Hasher) FromBytes(b []byte) (BLAKE2b256, error) {
	return fromBytes[BLAKE2b256](b)
}
