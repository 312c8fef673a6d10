package engine

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/htmlscrub/htmlscrub/internal/ignore"
)

func writeTree(t testing.TB, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func walkPaths(t *testing.T, cfg Config) []string {
	t.Helper()
	ign, _ := ignore.Load(filepath.Join(cfg.Root, ignore.FileName))
	var got []string
	if err := Walk(context.Background(), cfg, ign, func(p string, _ []byte) { got = append(got, p) }); err != nil {
		t.Fatal(err)
	}
	sort.Strings(got)
	return got
}

func TestCountTargets_IgnoreFileAndMaxBytes(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"a.html":        "<p>ok</p>",
		"notes.txt":     "not a document",
		"ignored.html":  "<p>skip</p>",
		ignore.FileName: "ignored.html\n",
		"big/page.html": string(make([]byte, 2048)),
		"nested/b.HTM":  "<p>b</p>",
	})

	cfg := Config{Root: dir, MaxBytes: 1024}
	n, err := CountTargets(cfg)
	if err != nil {
		t.Fatal(err)
	}
	// a.html and nested/b.HTM; the big page is over the limit
	if n != 2 {
		t.Fatalf("expected 2 targets, got %d", n)
	}
}

func TestWalk_SkipsDirectiveBinaryAndDefaults(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"index.html":                   "<p>x</p>",
		"draft.html":                   "<!-- htmlscrub:ignore-file --><p>x</p>",
		"blob.html":                    "\x00\x01\x02",
		"png.html":                     "\x89PNG\r\n\x1a\nrest",
		"node_modules/pkg/readme.html": "<p>dep</p>",
		"app.min.html":                 "<p>min</p>",
	})

	got := walkPaths(t, Config{Root: dir, DefaultExcludes: true})
	if len(got) != 1 || got[0] != "index.html" {
		t.Fatalf("unexpected walk result %v", got)
	}

	got = walkPaths(t, Config{Root: dir})
	want := []string{"app.min.html", "index.html", "node_modules/pkg/readme.html"}
	if len(got) != len(want) {
		t.Fatalf("without default excludes got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("without default excludes got %v want %v", got, want)
		}
	}
}

func TestWalk_DirectiveOnlyInHead(t *testing.T) {
	dir := t.TempDir()
	body := strings.Repeat("<p>filler</p>\n", 400) // well past the directive window
	writeTree(t, dir, map[string]string{
		"head.html": "<!-- " + IgnoreFileDirective + " -->" + body,
		"body.html": body + "<p>add " + IgnoreFileDirective + " to skip a page</p>",
	})
	got := walkPaths(t, Config{Root: dir})
	if len(got) != 1 || got[0] != "body.html" {
		t.Fatalf("unexpected walk result %v", got)
	}
}

func TestWalk_Extensions(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{
		"a.html":  "a",
		"b.tmpl":  "b",
		"c.xhtml": "c",
	})
	got := walkPaths(t, Config{Root: dir, Extensions: ParseExtensions("tmpl, .HTML")})
	if len(got) != 2 || got[0] != "a.html" || got[1] != "b.tmpl" {
		t.Fatalf("unexpected walk result %v", got)
	}
}

func TestWalk_CancelledContext(t *testing.T) {
	dir := t.TempDir()
	writeTree(t, dir, map[string]string{"a.html": "a"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Walk(ctx, Config{Root: dir}, ignore.Matcher{}, func(string, []byte) {
		t.Fatal("handle called after cancel")
	})
	if err == nil {
		t.Fatal("expected context error")
	}
}

func TestParseExtensions(t *testing.T) {
	got := ParseExtensions(" html,.HTM,, tmpl ")
	want := []string{".html", ".htm", ".tmpl"}
	if len(got) != len(want) {
		t.Fatalf("got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v want %v", got, want)
		}
	}
}
