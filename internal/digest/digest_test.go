package digest

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewKnownSizes(t *testing.T) {
	sizes := map[string]int{
		"md4":         16,
		"md5":         16,
		"sha1":        20,
		"sha224":      28,
		"sha256":      32,
		"sha384":      48,
		"sha512":      64,
		"sha512-256":  32,
		"sha3-224":    28,
		"sha3-256":    32,
		"sha3-384":    48,
		"sha3-512":    64,
		"keccak-256":  32,
		"keccak-512":  64,
		"blake2b-256": 32,
		"blake2b-512": 64,
		"blake2s-256": 32,
		"xxh64":       8,
	}
	require.Len(t, Names(), len(sizes))
	for name, want := range sizes {
		t.Run(name, func(t *testing.T) {
			h, err := New(name)
			require.NoError(t, err)
			assert.Equal(t, want, h.Size())
		})
	}
}

func TestNewIsCaseInsensitiveAndDefaults(t *testing.T) {
	h, err := New(" SHA256 ")
	require.NoError(t, err)
	h.Write([]byte("abc"))
	want := sha256.Sum256([]byte("abc"))
	assert.Equal(t, hex.EncodeToString(want[:]), hex.EncodeToString(h.Sum(nil)))

	d, err := New("")
	require.NoError(t, err)
	assert.Equal(t, sha256.Size, d.Size())
}

func TestUnknownAlgorithm(t *testing.T) {
	_, err := New("crc32")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownAlgorithm))
	assert.Contains(t, err.Error(), `"crc32"`)
	assert.False(t, Supported("crc32"))
	assert.True(t, Supported("Blake2b-512"))
}

func TestNamesSorted(t *testing.T) {
	names := Names()
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}
