package core

import (
	"encoding/json"
	"io"
)

// MarshalDocuments pretty-prints documents as JSON for humans or pipelines.
func MarshalDocuments(w io.Writer, docs []Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(docs)
}

// UnmarshalDocuments decodes documents JSON, useful for ingestion tests.
func UnmarshalDocuments(r io.Reader) ([]Document, error) {
	var docs []Document
	if err := json.NewDecoder(r).Decode(&docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// MarshalChanges pretty-prints comparison rows as JSON.
func MarshalChanges(w io.Writer, changes []Change) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(changes)
}
