package report

import (
	"encoding/json"
	"io"
)

// WriteJSON pretty-prints v for pipelines.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
