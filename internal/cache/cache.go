package cache

import (
	"encoding/json"
	"errors"
	"os"
)

// FileName is the cache file name inside .git; outside a repository the file
// is stored at the root with a leading dot.
const FileName = "htmlscrubcache.json"

// Entry remembers the scrub result for one document. Raw is the xxhash of the
// raw bytes; the entry is reused only when both Raw and Algorithm match.
type Entry struct {
	Raw          string `json:"raw"`
	Algorithm    string `json:"algorithm"`
	Digest       string `json:"digest"`
	VisibleBytes int    `json:"visible_bytes"`
	Attributes   int    `json:"attributes"`
}

type DB struct {
	// Path relative to root -> last scrub result
	Entries map[string]Entry `json:"entries"`
}

// Lookup returns the entry for rel when it was produced from the same raw
// content under the same algorithm.
func (db DB) Lookup(rel, raw, algorithm string) (Entry, bool) {
	e, ok := db.Entries[rel]
	if !ok || e.Raw != raw || e.Algorithm != algorithm {
		return Entry{}, false
	}
	return e, true
}

// Path returns where the cache for root lives. The .git directory is
// preferred so the file is never committed by accident.
func Path(root string) string { return StateFile(root, FileName) }

func Load(root string) (DB, error) {
	var db DB
	f, err := os.ReadFile(Path(root))
	if err != nil {
		return DB{Entries: map[string]Entry{}}, err
	}
	if err := json.Unmarshal(f, &db); err != nil {
		return DB{Entries: map[string]Entry{}}, err
	}
	if db.Entries == nil {
		db.Entries = map[string]Entry{}
	}
	return db, nil
}

func Save(root string, db DB) error {
	if db.Entries == nil {
		return errors.New("empty cache")
	}
	b, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return err
	}
	return writeFile(Path(root), b)
}
