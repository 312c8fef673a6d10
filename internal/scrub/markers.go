package scrub

import "bytes"

// Marker bytes delimit captured attribute values in scrubbed output. They sit
// in the ASCII control range; input bytes with these values are blanked
// before tokenizing, so a marker in the output always comes from a real
// attribute.
const (
	BeginSrcAttribute   byte = 0x18
	FinishSrcAttribute  byte = 0x19
	BeginHrefAttribute  byte = 0x1A
	FinishHrefAttribute byte = 0x1B
	BeginCiteAttribute  byte = 0x1C
	FinishCiteAttribute byte = 0x1D
)

// IsMarker reports whether c is one of the six marker bytes.
func IsMarker(c byte) bool {
	return c >= BeginSrcAttribute && c <= FinishCiteAttribute
}

// AttributeKind names the attribute a capture came from.
type AttributeKind uint8

const (
	Src AttributeKind = iota
	Href
	Cite
)

func (k AttributeKind) String() string {
	switch k {
	case Src:
		return "src"
	case Href:
		return "href"
	case Cite:
		return "cite"
	}
	return "unknown"
}

// Begin returns the marker that opens a capture of this kind.
func (k AttributeKind) Begin() byte { return BeginSrcAttribute + 2*byte(k) }

// Finish returns the marker that closes a capture of this kind.
func (k AttributeKind) Finish() byte { return FinishSrcAttribute + 2*byte(k) }

// KindOf maps a marker byte to its attribute kind and whether it opens a
// capture. ok is false for non-marker bytes.
func KindOf(c byte) (kind AttributeKind, begin bool, ok bool) {
	if !IsMarker(c) {
		return 0, false, false
	}
	d := c - BeginSrcAttribute
	return AttributeKind(d / 2), d%2 == 0, true
}

// Attribute is one captured attribute value in scrubbed output.
type Attribute struct {
	Kind  AttributeKind `json:"kind"`
	Value string        `json:"value"`
	// Offset of the begin marker in the scrubbed bytes.
	Offset int `json:"offset"`
}

// Attributes returns every captured attribute in scrubbed, in order. A begin
// marker without its matching finish marker is not reported.
func Attributes(scrubbed []byte) []Attribute {
	var out []Attribute
	forEachCapture(scrubbed, func(start, end int, kind AttributeKind) {
		out = append(out, Attribute{
			Kind:   kind,
			Value:  string(scrubbed[start+1 : end]),
			Offset: start,
		})
	}, nil)
	return out
}

// StripAttributes returns the visible text of scrubbed with every captured
// attribute run, markers included, removed.
func StripAttributes(scrubbed []byte) []byte {
	return Render(scrubbed, func(Attribute) string { return "" })
}

// Render replaces each captured attribute run with the text returned by
// format. Bytes outside captures are copied unchanged.
func Render(scrubbed []byte, format func(Attribute) string) []byte {
	var out bytes.Buffer
	out.Grow(len(scrubbed))
	forEachCapture(scrubbed, func(start, end int, kind AttributeKind) {
		out.WriteString(format(Attribute{
			Kind:   kind,
			Value:  string(scrubbed[start+1 : end]),
			Offset: start,
		}))
	}, func(text []byte) {
		out.Write(text)
	})
	return out.Bytes()
}

// forEachCapture walks scrubbed, calling capture with the offsets of the
// begin and finish markers of every complete capture and text with the bytes
// between captures.
func forEachCapture(scrubbed []byte, capture func(start, end int, kind AttributeKind), text func([]byte)) {
	last := 0
	for i := 0; i < len(scrubbed); i++ {
		kind, begin, ok := KindOf(scrubbed[i])
		if !ok || !begin {
			continue
		}
		end := bytes.IndexByte(scrubbed[i+1:], kind.Finish())
		if end < 0 {
			break
		}
		end += i + 1
		if text != nil && i > last {
			text(scrubbed[last:i])
		}
		capture(i, end, kind)
		last = end + 1
		i = end
	}
	if text != nil && last < len(scrubbed) {
		text(scrubbed[last:])
	}
}
