package files

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// AppendIgnore ensures the given pattern is present in .gitignore at repoRoot.
// It creates the file if missing and appends a newline if needed. Idempotent.
func AppendIgnore(repoRoot, pattern string) error {
	had, err := hasIgnore(repoRoot, pattern)
	if err != nil || had {
		return err
	}
	f, err := os.OpenFile(filepath.Join(repoRoot, ".gitignore"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.WriteString(pattern + "\n"); err != nil {
		return err
	}
	return nil
}

// GeneratedFiles returns the files htmlscrub writes at a repository root
// when no .git directory is available. They never belong in version control.
func GeneratedFiles() []string {
	return []string{
		".htmlscrubcache.json",
		".htmlscrub_last_scan.json",
		".htmlscrub_history.jsonl",
	}
}

// IgnoreGenerated records every GeneratedFiles pattern in .gitignore and
// reports which ones were newly added.
func IgnoreGenerated(repoRoot string) ([]string, error) {
	var added []string
	for _, p := range GeneratedFiles() {
		had, err := hasIgnore(repoRoot, p)
		if err != nil {
			return added, err
		}
		if had {
			continue
		}
		if err := AppendIgnore(repoRoot, p); err != nil {
			return added, err
		}
		added = append(added, p)
	}
	return added, nil
}

func hasIgnore(repoRoot, pattern string) (bool, error) {
	f, err := os.Open(filepath.Join(repoRoot, ".gitignore"))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		if strings.TrimSpace(sc.Text()) == pattern {
			return true, nil
		}
	}
	return false, sc.Err()
}
