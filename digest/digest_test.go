package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyInputKnownAnswers(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"sha256", SHA256Hasher{}.Hash(nil).String(), "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"keccak256", Keccak256Hasher{}.Hash(nil).String(), "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470"},
		{"blake2b256", BLAKE2b256Hasher{}.Hash(nil).String(), "0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestSHA256MatchesStdlib(t *testing.T) {
	for _, data := range [][]byte{nil, []byte("first"), make([]byte, 1000)} {
		want := sha256.Sum256(data)
		require.Equal(t, want[:], SHA256Hasher{}.Hash(data).Bytes())
	}
}

func TestHashPair(t *testing.T) {
	testHashPair[SHA256](t, SHA256Hasher{})
	testHashPair[Keccak256](t, Keccak256Hasher{})
	testHashPair[BLAKE2b256](t, BLAKE2b256Hasher{})
}

func testHashPair[D Digest](t *testing.T, h Hasher[D]) {
	t.Helper()
	left, right := h.Hash([]byte("left")), h.Hash([]byte("right"))

	// a missing sibling is promoted as is
	require.Equal(t, left, HashPair(h, left, nil))

	concat := append(append([]byte{}, left.Bytes()...), right.Bytes()...)
	require.Equal(t, h.Hash(concat), HashPair(h, left, &right))

	// order matters
	require.NotEqual(t, HashPair(h, left, &right), HashPair(h, right, &left))
}

func TestFromBytes(t *testing.T) {
	h := SHA256Hasher{}
	d := h.Hash([]byte("a blockchain is a chain of blocks"))

	got, err := h.FromBytes(d.Bytes())
	require.NoError(t, err)
	require.Equal(t, d, got)

	tests := []struct {
		name string
		in   []byte
	}{
		{"nil", nil},
		{"too short", d.Bytes()[:31]},
		{"too long", append(d.Bytes(), 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.FromBytes(tt.in)
			assert.True(t, errors.Is(err, ErrMalformedDigest))
			_, err = Keccak256Hasher{}.FromBytes(tt.in)
			assert.True(t, errors.Is(err, ErrMalformedDigest))
			_, err = BLAKE2b256Hasher{}.FromBytes(tt.in)
			assert.True(t, errors.Is(err, ErrMalformedDigest))
		})
	}
}

func TestFromBytesCopies(t *testing.T) {
	raw, err := hex.DecodeString("e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855")
	require.NoError(t, err)
	d, err := SHA256Hasher{}.FromBytes(raw)
	require.NoError(t, err)
	raw[0] = 0
	assert.Equal(t, byte(0xe3), d[0])
}

func TestSHA256HashPairs(t *testing.T) {
	h := SHA256Hasher{}
	src := make([]SHA256, 10)
	for i := range src {
		src[i] = h.Hash([]byte{byte(i)})
	}
	dst := make([]SHA256, len(src)/2)
	require.NoError(t, h.HashPairs(dst, src))
	for i := range dst {
		assert.Equal(t, HashPair[SHA256](h, src[2*i], &src[2*i+1]), dst[i], "pair %d", i)
	}

	require.True(t, errors.Is(h.HashPairs(dst, src[:3]), ErrInvalidPairs))
	require.True(t, errors.Is(h.HashPairs(dst[:1], src), ErrInvalidPairs))
}
