package engine

import "strings"

// DefaultExtensions are the document suffixes selected when Config.Extensions
// is empty.
var DefaultExtensions = []string{".html", ".htm", ".xhtml", ".shtml"}

var defaultExcludeDirs = map[string]bool{
	".git":             true,
	"node_modules":     true,
	"bower_components": true,
	"vendor":           true,
	".venv":            true,
	"venv":             true,
	"__pycache__":      true,
	"coverage":         true,
	".cache":           true,
	".sass-cache":      true,
}

// suffixes of generated or bundled documents skipped when default excludes
// are enabled
var defaultExcludeFileSuffixes = []string{
	".min.html", ".min.htm",
	".gen.html",
}

// exact filenames commonly safe to exclude when default excludes enabled
var defaultExcludeFileNames = map[string]bool{
	// coverage and test report output
	"lcov-report.html": true,
	"coverage.html":    true,
}

func isDefaultDirExcluded(name string) bool {
	return defaultExcludeDirs[name] || strings.HasPrefix(name, ".git")
}

func isDefaultFileExcluded(lowerRel string) bool {
	for _, s := range defaultExcludeFileSuffixes {
		if strings.HasSuffix(lowerRel, s) {
			return true
		}
	}
	base := lowerRel
	if i := strings.LastIndex(base, "/"); i >= 0 {
		base = base[i+1:]
	}
	return defaultExcludeFileNames[base]
}

// ParseExtensions splits a comma-separated extension list, adding the
// leading dot where missing.
func ParseExtensions(s string) []string {
	var out []string
	for _, e := range strings.Split(s, ",") {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		out = append(out, e)
	}
	return out
}

func hasExtension(lowerRel string, exts []string) bool {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	for _, e := range exts {
		if strings.HasSuffix(lowerRel, strings.ToLower(e)) {
			return true
		}
	}
	return false
}
