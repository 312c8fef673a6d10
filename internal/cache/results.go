package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/htmlscrub/htmlscrub/internal/types"
)

const resultsName = "htmlscrub_last_scan.json"

// ScanResults is the previous batch scan, replayed by `scan --last`.
type ScanResults struct {
	Documents []types.Document `json:"documents"`
	Timestamp time.Time        `json:"timestamp"`
	Root      string           `json:"root"`
	Algorithm string           `json:"algorithm"`
	Count     int              `json:"count"`
}

// StateFile places name inside root's .git directory, or at root with a
// leading dot when root is not a repository.
func StateFile(root, name string) string {
	gitDir := filepath.Join(root, ".git")
	if st, err := os.Stat(gitDir); err == nil && st.IsDir() {
		return filepath.Join(gitDir, name)
	}
	return filepath.Join(root, "."+name)
}

// writeFile replaces p through a temporary sibling; concurrent readers see
// either the old or the new content.
func writeFile(p string, b []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(p), filepath.Base(p)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), p)
}

func SaveResults(root, algorithm string, docs []types.Document) error {
	b, err := json.MarshalIndent(ScanResults{
		Documents: docs,
		Timestamp: time.Now(),
		Root:      root,
		Algorithm: algorithm,
		Count:     len(docs),
	}, "", "  ")
	if err != nil {
		return err
	}
	return writeFile(StateFile(root, resultsName), b)
}

func LoadResults(root string) (ScanResults, error) {
	var res ScanResults
	b, err := os.ReadFile(StateFile(root, resultsName))
	if err != nil {
		return res, err
	}
	err = json.Unmarshal(b, &res)
	return res, err
}
