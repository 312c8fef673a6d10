package tokenizer

// Tokenizer is a Mealy machine over HTML bytes. The same state and the same
// input byte always produce the same next state and the same Transition.
type Tokenizer struct {
	state State
}

// New returns a tokenizer positioned outside any tag.
func New() *Tokenizer {
	return &Tokenizer{state: Text}
}

// Reset returns the tokenizer to its initial state.
func (t *Tokenizer) Reset() {
	t.state = Text
}

// State reports the current state.
func (t *Tokenizer) State() State {
	return t.state
}

// Parse advances over one byte and returns the transition fired on the edge
// taken. Every state has an edge for every byte value.
func (t *Tokenizer) Parse(c byte) Transition {
	e := table[t.state][classes[c]]
	t.state = e.next
	return e.fire
}

// Skip passes over an opaque multi-byte sequence. The sequence is invisible
// to the machine, so keyword ladders and tag states are left where they were.
// The only exception is a pending whitespace run: a character after it is
// text, so the machine resumes Text as it would for any other byte.
func (t *Tokenizer) Skip() Transition {
	switch t.state {
	case TextSpace, TextMultipleSpace:
		e := table[t.state][classOther]
		t.state = e.next
		return e.fire
	}
	return None
}
