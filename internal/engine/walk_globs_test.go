package engine

import (
	"path/filepath"
	"testing"

	"github.com/htmlscrub/htmlscrub/internal/ignore"
)

func TestWalk_WithIncludeExcludeGlobs(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"index.html":       "hello",
		"docs/guide.html":  "guide",
		"docs/legacy.html": "old",
	})

	ign, _ := ignore.Load(filepath.Join(dir, ignore.FileName))

	// Include only docs
	cfg := Config{Root: dir, IncludeGlobs: "docs/**", MaxBytes: 1 << 20}
	var got []string
	err := Walk(nil, cfg, ign, func(path string, _ []byte) { got = append(got, path) })
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("include globs failed, got %v", got)
	}

	// Exclude legacy by basename
	got = nil
	cfg = Config{Root: dir, ExcludeGlobs: "**/legacy.html", MaxBytes: 1 << 20}
	if err := Walk(nil, cfg, ign, func(path string, _ []byte) { got = append(got, path) }); err != nil {
		t.Fatal(err)
	}
	for _, p := range got {
		if p == "docs/legacy.html" {
			t.Fatalf("exclude globs failed, saw %s", p)
		}
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 paths, got %v", got)
	}
}

func TestCountTargets_RespectsGlobs(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"keep/a.html": "a",
		"skip/b.html": "b",
	})
	n, err := CountTargets(Config{Root: dir, IncludeGlobs: "keep/*.html"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("expected 1 target, got %d", n)
	}
}
