// Package scrub reduces HTML to the bytes a reader would see. Tag markup and
// script and style bodies are dropped, whitespace runs collapse to a single
// space, and the values of src, href and cite attributes are kept between
// out-of-band marker bytes. The same scan feeds either a materialized buffer
// (Scrubber) or a streaming hash (Hasher).
package scrub

import (
	"unicode/utf8"

	"github.com/htmlscrub/htmlscrub/internal/tokenizer"
)

// padding is appended to the owned copy of the input so that a multi-byte
// lead near the end never indexes past the buffer.
const padding = 4

// CaptureMode decides whether the byte being scanned belongs to the output.
type CaptureMode uint8

const (
	Ignore CaptureMode = iota
	Text
	Script
	Style
	URL
)

// Visible reports whether bytes scanned in this mode reach the sink.
func (m CaptureMode) Visible() bool {
	return m == Text || m == URL
}

func (m CaptureMode) String() string {
	switch m {
	case Ignore:
		return "ignore"
	case Text:
		return "text"
	case Script:
		return "script"
	case Style:
		return "style"
	case URL:
		return "url"
	}
	return "unknown"
}

// Sink receives runs of visible bytes in input order. Each call appends; a
// sink never sees the same byte twice. The slice is only valid for the
// duration of the call.
type Sink interface {
	Update(p []byte)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(p []byte)

func (f SinkFunc) Update(p []byte) { f(p) }

// Engine scans one document and delivers its visible runs to a sink. An
// Engine is built per document and is not safe for concurrent use.
type Engine struct {
	buf  []byte
	size int
	sink Sink
	tok  *tokenizer.Tokenizer

	mode CaptureMode
	base int
	n    int
	// space is set when a whitespace run followed text and has not yet been
	// emitted; the run is emitted as one space only if more text follows.
	space bool

	// undo records in-place rewrites so a later Scrub rescans the original
	// bytes.
	undo []rewrite
}

type rewrite struct {
	at  int
	was byte
}

// NewEngine copies raw into an owned, padded buffer. The copy is rewritten in
// place while scrubbing; raw itself is never modified.
func NewEngine(raw []byte, sink Sink) *Engine {
	buf := make([]byte, len(raw)+padding)
	copy(buf, raw)
	return &Engine{
		buf:  buf,
		size: len(raw),
		sink: sink,
		tok:  tokenizer.New(),
	}
}

// Input returns the logical input as rewritten by the last Scrub.
func (e *Engine) Input() []byte {
	return e.buf[:e.size]
}

// Scrub scans the whole input and delivers every visible run to the sink,
// one Update per contiguous run.
func (e *Engine) Scrub() {
	e.restore()
	e.tok.Reset()
	e.mode = Text
	e.base, e.n, e.space = 0, 0, false

	for i := 0; i < e.size; {
		c := e.buf[i]
		width := 1
		var tr tokenizer.Transition
		if c < utf8.RuneSelf {
			if IsMarker(c) {
				// literal marker bytes would forge captures
				e.set(i, ' ')
				c = ' '
			}
			tr = e.tok.Parse(c)
		} else {
			width = sequenceWidth(c)
			if i+width > e.size {
				width = e.size - i
			}
			tr = e.tok.Skip()
		}

		prior := e.mode
		e.apply(tr, i)
		e.account(prior, tr, i, width)
		i += width
	}

	switch e.mode {
	case Text:
		e.flush()
	case URL:
		// the tag holding this attribute never closed; drop the open capture
		// so markers stay balanced
		e.n = 0
	}
	if e.space {
		// trailing whitespace after text; the last byte scanned belongs to it
		e.set(e.size-1, ' ')
		e.sink.Update(e.buf[e.size-1 : e.size])
		e.space = false
	}
}

// apply runs the effect of a fired transition: capture-mode changes and the
// in-place rewrite of the byte at i.
func (e *Engine) apply(tr tokenizer.Transition, i int) {
	switch tr {
	case tokenizer.StartTag:
		e.mode = Ignore
		e.space = false
	case tokenizer.Whitespace:
		e.set(i, ' ')
		e.mode = Ignore
		e.space = true
	case tokenizer.MultipleWhitespace:
		e.mode = Ignore
	case tokenizer.ResumeText:
		e.mode = Text
	case tokenizer.EndTag:
	case tokenizer.StartSrcAttribute, tokenizer.StartScriptSrcAttribute:
		e.set(i, BeginSrcAttribute)
		e.mode = URL
	case tokenizer.EndSrcAttribute, tokenizer.EndScriptSrcAttribute:
		e.set(i, FinishSrcAttribute)
		e.mode = Ignore
	case tokenizer.StartHrefAttribute:
		e.set(i, BeginHrefAttribute)
		e.mode = URL
	case tokenizer.EndHrefAttribute:
		e.set(i, FinishHrefAttribute)
		e.mode = Ignore
	case tokenizer.StartCiteAttribute:
		e.set(i, BeginCiteAttribute)
		e.mode = URL
	case tokenizer.EndCiteAttribute:
		e.set(i, FinishCiteAttribute)
		e.mode = Ignore
	case tokenizer.StartScript:
		e.mode = Script
	case tokenizer.EndScript:
		e.mode = Ignore
	case tokenizer.StartStyle:
		e.mode = Style
	case tokenizer.EndStyle:
		e.mode = Ignore
	}
}

// account extends, flushes or restarts the pending run for width bytes at i.
func (e *Engine) account(prior CaptureMode, tr tokenizer.Transition, i, width int) {
	was, now := prior.Visible(), e.mode.Visible()
	switch {
	case was && !now:
		if closesCapture(tr) {
			e.n += width
		}
		e.flush()
	case !was && now:
		e.base, e.n = i, width
		if e.space {
			// the byte before a resumed run is the last of the whitespace
			// run; it carries the collapsed space. This is the one place a run
			// starts on a byte scanned in Ignore: the space is only known to be
			// visible once text follows, and the run stays contiguous so the
			// sink still gets one Update per stretch.
			e.base--
			e.n++
			e.set(e.base, ' ')
			e.space = false
		}
	case now:
		e.n += width
	}
}

func (e *Engine) set(i int, c byte) {
	if e.buf[i] != c {
		e.undo = append(e.undo, rewrite{at: i, was: e.buf[i]})
		e.buf[i] = c
	}
}

func (e *Engine) restore() {
	for i := len(e.undo) - 1; i >= 0; i-- {
		e.buf[e.undo[i].at] = e.undo[i].was
	}
	e.undo = e.undo[:0]
}

func (e *Engine) flush() {
	if e.n > 0 {
		e.sink.Update(e.buf[e.base : e.base+e.n])
	}
	e.n = 0
}

func closesCapture(tr tokenizer.Transition) bool {
	switch tr {
	case tokenizer.EndSrcAttribute, tokenizer.EndScriptSrcAttribute,
		tokenizer.EndHrefAttribute, tokenizer.EndCiteAttribute:
		return true
	}
	return false
}

// sequenceWidth returns how many bytes a UTF-8 lead byte claims. Stray
// continuation bytes and invalid leads count as one opaque byte.
func sequenceWidth(c byte) int {
	switch {
	case c&0xE0 == 0xC0:
		return 2
	case c&0xF0 == 0xE0:
		return 3
	case c&0xF8 == 0xF0:
		return 4
	}
	return 1
}
