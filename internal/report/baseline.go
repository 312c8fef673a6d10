package report

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/htmlscrub/htmlscrub/internal/types"
)

// Baseline is a saved snapshot of document digests that later scans are
// compared against without needing git.
type Baseline struct {
	Algorithm string                    `json:"algorithm"`
	Items     map[string]types.Document `json:"items"`
}

func LoadBaseline(path string) (Baseline, error) {
	b := Baseline{Items: map[string]types.Document{}}
	f, err := os.ReadFile(path)
	if err != nil {
		return b, err
	}
	if err := json.Unmarshal(f, &b); err != nil {
		return b, err
	}
	if b.Items == nil {
		b.Items = map[string]types.Document{}
	}
	return b, nil
}

func SaveBaseline(path, algorithm string, docs []types.Document) error {
	b := Baseline{Algorithm: algorithm, Items: map[string]types.Document{}}
	for _, d := range docs {
		d.Cached = false
		b.Items[d.Path] = d
	}
	buf, err := json.MarshalIndent(b, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, buf, 0644)
}

// DiffBaseline classifies docs against the baseline, sorted by path.
func DiffBaseline(docs []types.Document, base Baseline) []types.Change {
	var out []types.Change
	seen := map[string]bool{}
	for _, d := range docs {
		seen[d.Path] = true
		prev, ok := base.Items[d.Path]
		if !ok {
			out = append(out, types.Change{Path: d.Path, Status: types.StatusAdded, After: d.Digest})
			continue
		}
		out = append(out, types.Change{Path: d.Path, Status: types.Classify(prev, d), Before: prev.Digest, After: d.Digest})
	}
	for p, prev := range base.Items {
		if !seen[p] {
			out = append(out, types.Change{Path: p, Status: types.StatusRemoved, Before: prev.Digest})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// ShouldFail decides the exit status for a comparison. failOn is "content"
// (default: any visible change), "any" (markup-only changes too) or "none".
func ShouldFail(changes []types.Change, failOn string) bool {
	for _, c := range changes {
		switch failOn {
		case "none":
			return false
		case "any":
			if c.Status != types.StatusUnchanged {
				return true
			}
		default:
			if c.Status.Visible() {
				return true
			}
		}
	}
	return false
}
