// Package audit keeps an append-only JSONL history of batch scans.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/htmlscrub/htmlscrub/internal/cache"
	"github.com/htmlscrub/htmlscrub/internal/engine"
	"github.com/htmlscrub/htmlscrub/internal/types"
)

const historyName = "htmlscrub_history.jsonl"

// FileName is the history file written outside a git repository.
const FileName = "." + historyName

type ScanRecord struct {
	Timestamp    time.Time      `json:"timestamp"`
	ScanID       string         `json:"scan_id"`
	Root         string         `json:"root"`
	Algorithm    string         `json:"algorithm"`
	Documents    int            `json:"documents"`
	FilesScanned int            `json:"files_scanned"`
	CacheHits    int            `json:"cache_hits"`
	Duration     string         `json:"duration"`
	BaselineFile string         `json:"baseline_file,omitempty"`
	StatusCounts map[string]int `json:"status_counts,omitempty"`
	Changed      []string       `json:"changed,omitempty"`
}

type Log struct {
	path string
}

// New returns the history log for root, inside .git when root is a repository.
func New(root string) *Log {
	return &Log{path: cache.StateFile(root, historyName)}
}

func (l *Log) Path() string { return l.path }

// History returns the recorded scans, newest first. Undecodable lines are skipped.
func (l *Log) History() ([]ScanRecord, error) {
	f, err := os.Open(l.path)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	defer f.Close()

	var records []ScanRecord
	dec := json.NewDecoder(f)
	for dec.More() {
		var r ScanRecord
		if err := dec.Decode(&r); err != nil {
			break
		}
		records = append(records, r)
	}
	reverse(records)
	return records, nil
}

func (l *Log) Append(r ScanRecord) error {
	if r.ScanID == "" {
		r.ScanID = fmt.Sprintf("scan_%d", r.Timestamp.UnixNano())
	}
	f, err := os.OpenFile(l.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open history: %w", err)
	}
	defer f.Close()
	if err := json.NewEncoder(f).Encode(r); err != nil {
		return fmt.Errorf("write history record: %w", err)
	}
	return nil
}

// Delete removes the record at index, counted newest first as in History.
func (l *Log) Delete(index int) error {
	records, err := l.History()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(records) {
		return fmt.Errorf("invalid index: %d", index)
	}
	records = append(records[:index], records[index+1:]...)
	reverse(records)

	f, err := os.Create(l.path)
	if err != nil {
		return fmt.Errorf("rewrite history: %w", err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	for _, r := range records {
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("write history record: %w", err)
		}
	}
	return nil
}

// NewRecord summarises one scan. changes is nil unless the scan was compared
// against a baseline; only visible changes are listed by path.
func NewRecord(root, algorithm string, res engine.Result, changes []types.Change, baselineFile string) ScanRecord {
	r := ScanRecord{
		Timestamp:    time.Now(),
		Root:         root,
		Algorithm:    algorithm,
		Documents:    len(res.Documents),
		FilesScanned: res.FilesScanned,
		CacheHits:    res.CacheHits,
		Duration:     res.Duration.String(),
		BaselineFile: baselineFile,
	}
	if changes != nil {
		r.StatusCounts = map[string]int{}
		for _, c := range changes {
			r.StatusCounts[string(c.Status)]++
			if c.Status.Visible() {
				r.Changed = append(r.Changed, c.Path)
			}
		}
	}
	return r
}

func reverse(records []ScanRecord) {
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
}
