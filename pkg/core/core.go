package core

import (
	"context"
	"io"

	"github.com/htmlscrub/htmlscrub/internal/digest"
	"github.com/htmlscrub/htmlscrub/internal/engine"
	"github.com/htmlscrub/htmlscrub/internal/scrub"
	"github.com/htmlscrub/htmlscrub/internal/types"
)

// Re-export selected internal types as a stable public API surface.
type (
	Config    = engine.Config
	Result    = engine.Result
	Document  = types.Document
	Change    = types.Change
	Status    = types.Status
	Attribute = scrub.Attribute
	Sink      = scrub.Sink
)

// Marker bytes that delimit captured attribute values in scrubbed output.
const (
	BeginSrcAttribute   = scrub.BeginSrcAttribute
	FinishSrcAttribute  = scrub.FinishSrcAttribute
	BeginHrefAttribute  = scrub.BeginHrefAttribute
	FinishHrefAttribute = scrub.FinishHrefAttribute
	BeginCiteAttribute  = scrub.BeginCiteAttribute
	FinishCiteAttribute = scrub.FinishCiteAttribute
)

// DefaultAlgorithm is used when an algorithm name is empty.
const DefaultAlgorithm = digest.Default

// ErrUnknownAlgorithm is returned for unsupported digest names.
var ErrUnknownAlgorithm = digest.ErrUnknownAlgorithm

// Scrub returns the visible bytes of an HTML document.
func Scrub(raw []byte) []byte { return scrub.Scrub(raw) }

// ScrubTo streams the visible bytes of raw to w and returns the byte count.
func ScrubTo(w io.Writer, raw []byte) (int64, error) { return scrub.ScrubTo(w, raw) }

// ScrubInto delivers the visible runs of raw to a custom sink.
func ScrubInto(raw []byte, sink Sink) { scrub.NewEngine(raw, sink).Scrub() }

// Hash returns the digest of the visible bytes of raw.
func Hash(raw []byte, algorithm string) ([]byte, error) { return scrub.Hash(raw, algorithm) }

// Attributes lists the captured src, href and cite values in scrubbed output.
func Attributes(scrubbed []byte) []Attribute { return scrub.Attributes(scrubbed) }

// Text drops captured attribute values from scrubbed output.
func Text(scrubbed []byte) []byte { return scrub.StripAttributes(scrubbed) }

// Algorithms lists the supported digest names.
func Algorithms() []string { return digest.Names() }

// Scan digests every document under cfg.Root.
func Scan(ctx context.Context, cfg Config) ([]Document, error) {
	return engine.Scan(ctx, cfg)
}

// ScanWithStats is Scan with timing and counts.
func ScanWithStats(ctx context.Context, cfg Config) (Result, error) {
	return engine.ScanWithStats(ctx, cfg)
}

// Compare classifies documents between the working tree and a git revision.
func Compare(ctx context.Context, cfg Config, rev string) ([]Change, error) {
	return engine.Compare(ctx, cfg, rev)
}
