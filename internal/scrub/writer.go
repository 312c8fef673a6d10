package scrub

import "io"

// Writer streams visible runs to an io.Writer. After the first write error
// further runs are dropped and the error is kept for Err.
type Writer struct {
	w   io.Writer
	n   int64
	err error
}

// NewWriter returns a sink writing to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Update writes a visible run.
func (sw *Writer) Update(p []byte) {
	if sw.err != nil {
		return
	}
	n, err := sw.w.Write(p)
	sw.n += int64(n)
	sw.err = err
}

// Written reports how many bytes reached the underlying writer.
func (sw *Writer) Written() int64 { return sw.n }

// Err returns the first write error, if any.
func (sw *Writer) Err() error { return sw.err }

// ScrubTo writes the visible bytes of raw to w and reports how many bytes
// were written.
func ScrubTo(w io.Writer, raw []byte) (int64, error) {
	sw := NewWriter(w)
	NewEngine(raw, sw).Scrub()
	return sw.Written(), sw.Err()
}
