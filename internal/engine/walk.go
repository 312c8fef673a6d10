package engine

import (
	"bytes"
	"context"
	"io/fs"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/htmlscrub/htmlscrub/internal/ignore"
)

// IgnoreFileDirective excludes a document that contains it within its first
// 4 KiB, usually inside an HTML comment.
const IgnoreFileDirective = "htmlscrub:ignore-file"

// Walk traverses the working tree and invokes handle for each selected
// document with its slash-separated path relative to cfg.Root. A cancelled
// context stops the walk between documents.
func Walk(ctx context.Context, cfg Config, ign ignore.Matcher, handle func(path string, data []byte)) error {
	return filepath.WalkDir(cfg.Root, func(p string, d fs.DirEntry, err error) error {
		if ctx != nil {
			if cerr := ctx.Err(); cerr != nil {
				return cerr
			}
		}
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if p != cfg.Root && cfg.DefaultExcludes && isDefaultDirExcluded(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		rel, _ := filepath.Rel(cfg.Root, p)
		rel = filepath.ToSlash(rel)
		if !selected(rel, cfg, ign) {
			return nil
		}
		info, _ := d.Info()
		if info != nil && tooLarge(info.Size(), cfg) {
			return nil
		}
		b, err := os.ReadFile(p)
		if err != nil {
			return nil
		}
		if skipContent(rel, b) {
			return nil
		}
		handle(rel, b)
		return nil
	})
}

// selected applies the path-only filters shared by the working tree walk,
// CountTargets and revision reads.
func selected(rel string, cfg Config, ign ignore.Matcher) bool {
	lower := strings.ToLower(rel)
	if !hasExtension(lower, cfg.Extensions) {
		return false
	}
	if !allowedByGlobs(rel, cfg) {
		return false
	}
	if ign.Match(rel) {
		return false
	}
	if cfg.DefaultExcludes {
		if isDefaultFileExcluded(lower) {
			return false
		}
		for _, dir := range strings.Split(rel, "/")[:strings.Count(rel, "/")] {
			if isDefaultDirExcluded(dir) {
				return false
			}
		}
	}
	return true
}

func tooLarge(size int64, cfg Config) bool {
	return cfg.MaxBytes > 0 && size > cfg.MaxBytes
}

func skipContent(rel string, b []byte) bool {
	return hasIgnoreDirective(b) || looksBinary(b) || looksNonTextMIME(rel, b)
}

// directiveWindow bounds the search for IgnoreFileDirective to the head of a
// document; body text that merely mentions it does not exclude the page.
const directiveWindow = 4 << 10

func hasIgnoreDirective(b []byte) bool {
	if len(b) > directiveWindow {
		b = b[:directiveWindow]
	}
	return bytes.Contains(b, []byte(IgnoreFileDirective))
}

func looksBinary(b []byte) bool {
	const sniff = 800
	n := sniff
	if len(b) < n {
		n = len(b)
	}
	return bytes.IndexByte(b[:n], 0) >= 0
}

// looksNonTextMIME uses the file extension and a tiny content sniff to skip
// clearly non-text content that was given an HTML-like extension.
func looksNonTextMIME(path string, b []byte) bool {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		if strings.HasPrefix(ct, "image/") || strings.HasPrefix(ct, "video/") || strings.HasPrefix(ct, "audio/") {
			return true
		}
		if strings.Contains(ct, "zip") || strings.Contains(ct, "tar") || strings.Contains(ct, "gzip") {
			return true
		}
	}
	// basic header sniff for common binaries
	if len(b) >= 8 && string(b[:8]) == "\x89PNG\r\n\x1a\n" {
		return true
	}
	if len(b) >= 4 && b[0] == 'P' && b[1] == 'K' && b[2] == 3 && b[3] == 4 {
		return true
	}
	if len(b) >= 2 && b[0] == 0x1f && b[1] == 0x8b {
		return true
	}
	return false
}

// CountTargets estimates the number of documents a scan of cfg would visit.
// It applies the path and size filters without reading file contents.
func CountTargets(cfg Config) (int, error) {
	ign, _ := ignore.Load(filepath.Join(cfg.Root, ignore.FileName))
	count := 0
	err := filepath.WalkDir(cfg.Root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if p != cfg.Root && cfg.DefaultExcludes && isDefaultDirExcluded(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		rel, _ := filepath.Rel(cfg.Root, p)
		rel = filepath.ToSlash(rel)
		if !selected(rel, cfg, ign) {
			return nil
		}
		info, _ := d.Info()
		if info != nil && tooLarge(info.Size(), cfg) {
			return nil
		}
		count++
		return nil
	})
	return count, err
}
