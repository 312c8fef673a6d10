package scrub

import (
	"hash"

	"github.com/htmlscrub/htmlscrub/internal/digest"
)

// Hasher feeds the visible bytes of a document straight into a hash without
// materializing them.
type Hasher struct {
	engine *Engine
	h      hash.Hash
}

// NewHasher prepares raw for hashing with h. raw is copied.
func NewHasher(raw []byte, h hash.Hash) *Hasher {
	hs := &Hasher{h: h}
	hs.engine = NewEngine(raw, hs)
	return hs
}

// NewHasherFor is NewHasher with the hash chosen by algorithm name.
func NewHasherFor(raw []byte, algorithm string) (*Hasher, error) {
	h, err := digest.New(algorithm)
	if err != nil {
		return nil, err
	}
	return NewHasher(raw, h), nil
}

// ScrubAndHash resets the hash, scans the document and returns the digest of
// its visible bytes.
func (hs *Hasher) ScrubAndHash() []byte {
	hs.h.Reset()
	hs.engine.Scrub()
	return hs.h.Sum(nil)
}

// Update forwards a visible run to the hash.
func (hs *Hasher) Update(p []byte) {
	// hash.Hash.Write never returns an error
	_, _ = hs.h.Write(p)
}

// Hash returns the digest of the visible bytes of raw under algorithm.
func Hash(raw []byte, algorithm string) ([]byte, error) {
	hs, err := NewHasherFor(raw, algorithm)
	if err != nil {
		return nil, err
	}
	return hs.ScrubAndHash(), nil
}
