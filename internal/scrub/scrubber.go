package scrub

// Scrubber materializes the visible bytes of a document.
type Scrubber struct {
	engine *Engine
	out    []byte
}

// NewScrubber prepares raw for scrubbing. raw is copied.
func NewScrubber(raw []byte) *Scrubber {
	s := &Scrubber{out: make([]byte, 0, len(raw))}
	s.engine = NewEngine(raw, s)
	return s
}

// Scrub clears any previous output and scans the document.
func (s *Scrubber) Scrub() {
	s.out = s.out[:0]
	s.engine.Scrub()
}

// Output returns the bytes accumulated by the last Scrub.
func (s *Scrubber) Output() []byte {
	return s.out
}

// Update appends a visible run to the output.
func (s *Scrubber) Update(p []byte) {
	s.out = append(s.out, p...)
}

// Scrub returns the visible bytes of raw.
func Scrub(raw []byte) []byte {
	s := NewScrubber(raw)
	s.Scrub()
	return s.out
}
