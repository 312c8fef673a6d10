// Package digest maps algorithm names to streaming hash constructors used to
// fingerprint scrubbed HTML.
package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"
	"sort"
	"strings"

	xxhash "github.com/cespare/xxhash/v2"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/md4"
	"golang.org/x/crypto/sha3"
)

// Default is the algorithm used when none is configured.
const Default = "sha256"

// ErrUnknownAlgorithm is returned for names not in the registry.
var ErrUnknownAlgorithm = errors.New("unknown digest algorithm")

var constructors = map[string]func() (hash.Hash, error){
	"md4":         plain(md4.New),
	"md5":         plain(md5.New),
	"sha1":        plain(sha1.New),
	"sha224":      plain(sha256.New224),
	"sha256":      plain(sha256.New),
	"sha384":      plain(sha512.New384),
	"sha512":      plain(sha512.New),
	"sha512-256":  plain(sha512.New512_256),
	"sha3-224":    plain(sha3.New224),
	"sha3-256":    plain(sha3.New256),
	"sha3-384":    plain(sha3.New384),
	"sha3-512":    plain(sha3.New512),
	"keccak-256":  plain(sha3.NewLegacyKeccak256),
	"keccak-512":  plain(sha3.NewLegacyKeccak512),
	"blake2b-256": func() (hash.Hash, error) { return blake2b.New256(nil) },
	"blake2b-512": func() (hash.Hash, error) { return blake2b.New512(nil) },
	"blake2s-256": func() (hash.Hash, error) { return blake2s.New256(nil) },
	"xxh64":       func() (hash.Hash, error) { return xxhash.New(), nil },
}

func plain(f func() hash.Hash) func() (hash.Hash, error) {
	return func() (hash.Hash, error) { return f(), nil }
}

// New returns a fresh hash for the named algorithm. Names are matched
// case-insensitively; an empty name selects Default.
func New(name string) (hash.Hash, error) {
	key := Normalize(name)
	ctor, ok := constructors[key]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownAlgorithm, name)
	}
	h, err := ctor()
	if err != nil {
		return nil, fmt.Errorf("init %s: %w", key, err)
	}
	return h, nil
}

// Normalize returns the registry key for name.
func Normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return Default
	}
	return name
}

// Supported reports whether name is a known algorithm.
func Supported(name string) bool {
	_, ok := constructors[Normalize(name)]
	return ok
}

// Names lists the supported algorithms in sorted order.
func Names() []string {
	out := make([]string, 0, len(constructors))
	for k := range constructors {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Size returns the digest length in bytes for name.
func Size(name string) (int, error) {
	h, err := New(name)
	if err != nil {
		return 0, err
	}
	return h.Size(), nil
}
