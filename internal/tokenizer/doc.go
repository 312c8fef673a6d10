// Package tokenizer implements the byte-at-a-time state machine that drives
// HTML scrubbing. It recognises the literal keywords script, style, src, href
// and cite one character at a time and reports, for every byte, which
// transition fired. It holds no state beyond the current State: the caller
// owns the buffer, the capture mode and any byte rewriting.
package tokenizer
