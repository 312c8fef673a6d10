package types

// Status classifies how a document differs between two versions.
type Status string

const (
	StatusUnchanged Status = "unchanged"
	// StatusMarkup means the raw bytes differ but the visible content does not.
	StatusMarkup  Status = "markup"
	StatusContent Status = "content"
	StatusAdded   Status = "added"
	StatusRemoved Status = "removed"
)

// Visible reports whether a reader of the rendered page would notice the
// change.
func (s Status) Visible() bool {
	switch s {
	case StatusContent, StatusAdded, StatusRemoved:
		return true
	}
	return false
}

// Document is the scrub result for one HTML file: the digest of its visible
// bytes plus a few counts.
type Document struct {
	Path         string `json:"path"`
	Raw          string `json:"raw"` // xxhash of the raw bytes
	Algorithm    string `json:"algorithm"`
	Digest       string `json:"digest"`
	RawBytes     int    `json:"raw_bytes"`
	VisibleBytes int    `json:"visible_bytes"`
	Attributes   int    `json:"attributes"`
	Cached       bool   `json:"cached,omitempty"`
}

// Change is one row of a comparison between the working tree and a revision.
type Change struct {
	Path   string `json:"path"`
	Status Status `json:"status"`
	Before string `json:"before,omitempty"` // digest at the base revision
	After  string `json:"after,omitempty"`  // digest in the working tree
}

// Link is a captured attribute value located in a document.
type Link struct {
	Path   string `json:"path,omitempty"`
	Kind   string `json:"kind"`
	Value  string `json:"value"`
	Offset int    `json:"offset"`
}

// Classify compares two versions of the same document. Raw-identical
// documents are unchanged; documents whose raw bytes differ but whose visible
// digest matches changed only in markup.
func Classify(before, after Document) Status {
	switch {
	case before.Raw == after.Raw:
		return StatusUnchanged
	case before.Digest == after.Digest:
		return StatusMarkup
	}
	return StatusContent
}
