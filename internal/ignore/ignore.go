// Package ignore reads .htmlscrubignore files. Patterns follow a small subset
// of gitignore: one doublestar glob per line, '#' comments, a trailing '/'
// for directories, a leading '!' to re-include, and patterns without a slash
// match at any depth while a leading or inner slash anchors to the root.
package ignore

import (
	"bufio"
	"os"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// FileName is the ignore file looked up at the scan root.
const FileName = ".htmlscrubignore"

type rule struct {
	glob   string
	negate bool
	// dir rules only match paths below the named directory
	dir bool
}

// Matcher reports whether a slash-separated path relative to the root is
// ignored. The zero Matcher ignores nothing.
type Matcher struct {
	rules []rule
}

// Load parses the ignore file at p. A missing file yields an empty matcher
// together with the open error.
func Load(p string) (Matcher, error) {
	f, err := os.Open(p)
	if err != nil {
		return Matcher{}, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return Matcher{}, err
	}
	return Parse(lines), nil
}

// Parse builds a matcher from pattern lines.
func Parse(lines []string) Matcher {
	var m Matcher
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		r := rule{}
		if strings.HasPrefix(line, "!") {
			r.negate = true
			line = line[1:]
		}
		r.dir = strings.HasSuffix(line, "/")
		anchored := strings.Contains(strings.TrimSuffix(line, "/"), "/")
		line = strings.Trim(line, "/")
		if line == "" || !doublestar.ValidatePattern(line) {
			continue
		}
		if !anchored {
			line = "**/" + line
		}
		r.glob = line
		m.rules = append(m.rules, r)
	}
	return m
}

// Match reports whether rel is ignored. Later rules override earlier ones.
func (m Matcher) Match(rel string) bool {
	rel = strings.TrimPrefix(path.Clean(strings.ReplaceAll(rel, "\\", "/")), "./")
	ignored := false
	for _, r := range m.rules {
		if r.matches(rel) {
			ignored = !r.negate
		}
	}
	return ignored
}

// Empty reports whether the matcher has no rules.
func (m Matcher) Empty() bool { return len(m.rules) == 0 }

func (r rule) matches(rel string) bool {
	if !r.dir {
		if ok, _ := doublestar.Match(r.glob, rel); ok {
			return true
		}
	}
	// a matched directory ignores everything below it
	ok, _ := doublestar.Match(r.glob+"/**", rel)
	return ok
}
