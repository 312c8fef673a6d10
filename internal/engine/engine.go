package engine

import (
	"context"
	"encoding/hex"
	"fmt"
	"hash"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"

	doublestar "github.com/bmatcuk/doublestar/v4"
	xxhash "github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"

	"github.com/htmlscrub/htmlscrub/internal/cache"
	"github.com/htmlscrub/htmlscrub/internal/digest"
	"github.com/htmlscrub/htmlscrub/internal/git"
	"github.com/htmlscrub/htmlscrub/internal/ignore"
	"github.com/htmlscrub/htmlscrub/internal/scrub"
	"github.com/htmlscrub/htmlscrub/internal/types"
)

// Config controls batch scanning: scope, filters, digest and performance.
type Config struct {
	Root            string
	IncludeGlobs    string
	ExcludeGlobs    string
	Extensions      []string
	MaxBytes        int64
	Threads         int
	Algorithm       string
	DefaultExcludes bool
	NoCache         bool
	DryRun          bool
	// Progress is called once per document handled. Calls are serialized.
	Progress func()
}

// Result contains the documents and basic scan statistics.
type Result struct {
	Documents    []types.Document
	FilesScanned int
	CacheHits    int
	Duration     time.Duration
}

func (cfg Config) threads() int {
	if cfg.Threads <= 0 {
		return runtime.GOMAXPROCS(0)
	}
	return cfg.Threads
}

// Scan runs a scan and returns only the documents.
func Scan(ctx context.Context, cfg Config) ([]types.Document, error) {
	res, err := ScanWithStats(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return res.Documents, nil
}

// ScanWithStats digests every selected document under cfg.Root and returns
// them sorted by path along with timing and counts.
func ScanWithStats(ctx context.Context, cfg Config) (Result, error) {
	var result Result
	if ctx == nil {
		ctx = context.Background()
	}
	algo := digest.Normalize(cfg.Algorithm)
	if !digest.Supported(algo) {
		return result, fmt.Errorf("scan: %w %q", digest.ErrUnknownAlgorithm, cfg.Algorithm)
	}
	cfg.Algorithm = algo

	var db cache.DB
	if !cfg.NoCache {
		db, _ = cache.Load(cfg.Root)
	} else {
		db.Entries = map[string]cache.Entry{}
	}
	ign, _ := ignore.Load(filepath.Join(cfg.Root, ignore.FileName))

	started := time.Now()
	var (
		mu      sync.Mutex
		updated = map[string]cache.Entry{}
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.threads())

	record := func(doc types.Document) {
		mu.Lock()
		defer mu.Unlock()
		result.Documents = append(result.Documents, doc)
		result.FilesScanned++
		if doc.Cached {
			result.CacheHits++
		} else if !cfg.NoCache && !cfg.DryRun {
			updated[doc.Path] = entryOf(doc)
		}
		if cfg.Progress != nil {
			cfg.Progress()
		}
	}

	walkErr := Walk(gctx, cfg, ign, func(rel string, data []byte) {
		raw := fastHash(data)
		if cfg.DryRun {
			record(types.Document{Path: rel, Raw: raw, RawBytes: len(data)})
			return
		}
		if !cfg.NoCache {
			if e, ok := db.Lookup(rel, raw, algo); ok {
				record(documentOf(rel, len(data), e))
				return
			}
		}
		g.Go(func() error {
			doc, err := Digest(rel, data, algo)
			if err != nil {
				return err
			}
			record(doc)
			return nil
		})
	})
	if err := g.Wait(); err != nil {
		return result, err
	}
	if walkErr != nil {
		return result, walkErr
	}

	sortDocuments(result.Documents)
	result.Duration = time.Since(started)
	if !cfg.NoCache && len(updated) > 0 {
		if db.Entries == nil {
			db.Entries = map[string]cache.Entry{}
		}
		for k, v := range updated {
			db.Entries[k] = v
		}
		_ = cache.Save(cfg.Root, db)
	}
	return result, nil
}

// tally is the sink used for batch digests: it hashes the visible bytes and
// counts them together with the captured attributes.
type tally struct {
	h     hash.Hash
	n     int
	attrs int
}

func (t *tally) Update(p []byte) {
	_, _ = t.h.Write(p)
	t.n += len(p)
	for _, c := range p {
		if _, begin, ok := scrub.KindOf(c); ok && begin {
			t.attrs++
		}
	}
}

// Digest scrubs a single document and describes it.
func Digest(rel string, data []byte, algorithm string) (types.Document, error) {
	algorithm = digest.Normalize(algorithm)
	h, err := digest.New(algorithm)
	if err != nil {
		return types.Document{}, err
	}
	t := &tally{h: h}
	scrub.NewEngine(data, t).Scrub()
	return types.Document{
		Path:         rel,
		Raw:          fastHash(data),
		Algorithm:    algorithm,
		Digest:       hex.EncodeToString(h.Sum(nil)),
		RawBytes:     len(data),
		VisibleBytes: t.n,
		Attributes:   t.attrs,
	}, nil
}

func entryOf(doc types.Document) cache.Entry {
	return cache.Entry{
		Raw:          doc.Raw,
		Algorithm:    doc.Algorithm,
		Digest:       doc.Digest,
		VisibleBytes: doc.VisibleBytes,
		Attributes:   doc.Attributes,
	}
}

func documentOf(rel string, size int, e cache.Entry) types.Document {
	return types.Document{
		Path:         rel,
		Raw:          e.Raw,
		Algorithm:    e.Algorithm,
		Digest:       e.Digest,
		RawBytes:     size,
		VisibleBytes: e.VisibleBytes,
		Attributes:   e.Attributes,
		Cached:       true,
	}
}

func sortDocuments(docs []types.Document) {
	sort.Slice(docs, func(i, j int) bool { return docs[i].Path < docs[j].Path })
}

// Compare classifies every selected document present in the working tree or
// at rev.
func Compare(ctx context.Context, cfg Config, rev string) ([]types.Change, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg.DryRun = false
	res, err := ScanWithStats(ctx, cfg)
	if err != nil {
		return nil, err
	}
	cfg.Algorithm = digest.Normalize(cfg.Algorithm)

	repo, err := git.Open(cfg.Root)
	if err != nil {
		return nil, err
	}
	ign, _ := ignore.Load(filepath.Join(cfg.Root, ignore.FileName))
	blobs, err := repo.Files(rev, func(rel string) bool { return selected(rel, cfg, ign) })
	if err != nil {
		return nil, err
	}

	base, err := digestAll(ctx, cfg, blobs)
	if err != nil {
		return nil, err
	}

	var changes []types.Change
	seen := map[string]bool{}
	for _, doc := range res.Documents {
		seen[doc.Path] = true
		before, ok := base[doc.Path]
		if !ok {
			changes = append(changes, types.Change{Path: doc.Path, Status: types.StatusAdded, After: doc.Digest})
			continue
		}
		changes = append(changes, types.Change{
			Path:   doc.Path,
			Status: types.Classify(before, doc),
			Before: before.Digest,
			After:  doc.Digest,
		})
	}
	for rel, before := range base {
		if !seen[rel] {
			changes = append(changes, types.Change{Path: rel, Status: types.StatusRemoved, Before: before.Digest})
		}
	}
	sort.Slice(changes, func(i, j int) bool { return changes[i].Path < changes[j].Path })
	return changes, nil
}

// digestAll digests in-memory documents with the same worker limit and
// content filters as a working tree scan.
func digestAll(ctx context.Context, cfg Config, blobs map[string][]byte) (map[string]types.Document, error) {
	var mu sync.Mutex
	out := make(map[string]types.Document, len(blobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.threads())
	for rel, data := range blobs {
		if tooLarge(int64(len(data)), cfg) || skipContent(rel, data) {
			continue
		}
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			doc, err := Digest(rel, data, cfg.Algorithm)
			if err != nil {
				return err
			}
			mu.Lock()
			out[rel] = doc
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// fastHash returns a stable non-cryptographic digest used as a cache key.
func fastHash(b []byte) string {
	sum := xxhash.Sum64(b)
	var buf [16]byte
	const digits = "0123456789abcdef"
	for i := 15; i >= 0; i-- {
		buf[i] = digits[sum&0xF]
		sum >>= 4
	}
	return string(buf[:])
}

// allowedByGlobs returns true if the given path is allowed by the include/exclude
// glob configuration. Include globs are comma-separated and, if provided, act as
// a positive filter. Exclude globs are subtracted last.
func allowedByGlobs(relPath string, cfg Config) bool {
	rp := strings.ReplaceAll(relPath, "\\", "/")
	includes := parseGlobsList(cfg.IncludeGlobs)
	excludes := parseGlobsList(cfg.ExcludeGlobs)
	if len(includes) > 0 && !matchAnyGlob(rp, includes) {
		return false
	}
	if len(excludes) > 0 && matchAnyGlob(rp, excludes) {
		return false
	}
	return true
}

func parseGlobsList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	var out []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
			out = append(out, trimGlobPrefix(p))
		}
	}
	return out
}

func matchAnyGlob(pathToMatch string, globs []string) bool {
	for _, g := range globs {
		if ok, _ := doublestar.Match(g, pathToMatch); ok {
			return true
		}
		if ok, _ := doublestar.Match(g, filepath.Base(pathToMatch)); ok {
			return true
		}
	}
	return false
}

func trimGlobPrefix(g string) string {
	s := strings.TrimPrefix(g, "./")
	for strings.HasPrefix(s, "**/") {
		s = strings.TrimPrefix(s, "**/")
	}
	return s
}
