package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fired(input string) ([]Transition, State) {
	t := New()
	var out []Transition
	for i := 0; i < len(input); i++ {
		if tr := t.Parse(input[i]); tr != None {
			out = append(out, tr)
		}
	}
	return out, t.State()
}

func TestParseTransitions(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Transition
		final State
	}{
		{
			name:  "plain tag",
			input: "<p>hello</p>",
			want:  []Transition{StartTag, EndTag, ResumeText, StartTag, EndTag},
			final: TextSpace,
		},
		{
			name:  "whitespace run",
			input: "a  b",
			want:  []Transition{Whitespace, MultipleWhitespace, ResumeText},
			final: Text,
		},
		{
			name:  "href attribute",
			input: `<a href="x">`,
			want:  []Transition{StartTag, StartHrefAttribute, EndHrefAttribute, EndTag},
			final: TextSpace,
		},
		{
			name:  "cite attribute",
			input: `<q cite="x">`,
			want:  []Transition{StartTag, StartCiteAttribute, EndCiteAttribute, EndTag},
			final: TextSpace,
		},
		{
			name:  "script with src",
			input: `<script src="a.js"></script>`,
			want:  []Transition{StartTag, StartScriptSrcAttribute, EndScriptSrcAttribute, StartScript, EndScript},
			final: TextSpace,
		},
		{
			name:  "style body",
			input: "<style>.c{}</style>",
			want:  []Transition{StartTag, StartStyle, EndStyle, EndTag},
			final: TextSpace,
		},
		{
			name:  "empty style body",
			input: "<style></style>",
			want:  []Transition{StartTag, StartStyle, EndStyle, EndTag},
			final: TextSpace,
		},
		{
			name:  "empty script body",
			input: "<script></script>",
			want:  []Transition{StartTag, StartScript, EndScript},
			final: TextSpace,
		},
		{
			name:  "script body ignores other closing tags",
			input: `<script>a="</div>";</script>`,
			want:  []Transition{StartTag, StartScript, EndScript},
			final: TextSpace,
		},
		{
			name:  "keywords are case sensitive",
			input: "<SCRIPT>x</SCRIPT>",
			want:  []Transition{StartTag, EndTag, ResumeText, StartTag, EndTag},
			final: TextSpace,
		},
		{
			name:  "longer tag name is not script",
			input: "<scripts>",
			want:  []Transition{StartTag, EndTag},
			final: TextSpace,
		},
		{
			name:  "self-closed script",
			input: "<script/>x",
			want:  []Transition{StartTag, EndTag, ResumeText},
			final: Text,
		},
		{
			name:  "self-closed style",
			input: "<style/>",
			want:  []Transition{StartTag, EndTag},
			final: TextSpace,
		},
		{
			name:  "quoted value may contain >",
			input: `<img alt="a > b" src="x">`,
			want:  []Transition{StartTag, StartSrcAttribute, EndSrcAttribute, EndTag},
			final: TextSpace,
		},
		{
			name:  "prefixed attribute is not captured",
			input: `<a data-href="x">`,
			want:  []Transition{StartTag, EndTag},
			final: TextSpace,
		},
		{
			name:  "broken ladder falls back to TagSpace on whitespace",
			input: `<a hre src="u">`,
			want:  []Transition{StartTag, StartSrcAttribute, EndSrcAttribute, EndTag},
			final: TextSpace,
		},
		{
			name:  "unquoted value is not captured",
			input: `<a href=x>`,
			want:  []Transition{StartTag, EndTag},
			final: TextSpace,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, final := fired(tt.input)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.final, final, "final state")
		})
	}
}

func TestLadderStates(t *testing.T) {
	cases := map[string]State{
		"<":            TagStart,
		"<s":           TagS,
		"<scrip":       TagScrip,
		"<sty":         TagSty,
		"<sx":          TagSearch,
		"<a h":         TagSpaceH,
		"<a hr":        TagSpaceHr,
		"<a hx":        TagSearch,
		"<a href ":     TagSpace,
		"<a cite=":     TagSpaceCiteEquals,
		`<a src="`:     TagSpaceSrcEqualsQuote,
		`<a src="x y>`: TagSpaceSrcEqualsQuote,
		"<script s":    ScriptSpaceS,
		"<script>x<":   ScriptLt,
		"<script>x</s": ScriptEndS,
		"<style>x":     Style,
		"<style>":      StyleStart,
		`<p class="`:   TagQuote,
	}
	for in, want := range cases {
		_, got := fired(in)
		if got != want {
			t.Fatalf("state after %q = %s, want %s", in, got, want)
		}
	}
}

func TestEveryEdgeIsDefined(t *testing.T) {
	for s := State(0); s < numStates; s++ {
		for b := 0; b < 256; b++ {
			tok := &Tokenizer{state: s}
			tr := tok.Parse(byte(b))
			require.Less(t, tok.State(), numStates, "state %s byte %#x", s, b)
			require.Less(t, tr, numTransitions, "state %s byte %#x", s, b)
		}
	}
}

func TestSkipLeavesStateAlone(t *testing.T) {
	for s := State(0); s < numStates; s++ {
		if s == TextSpace || s == TextMultipleSpace {
			continue
		}
		tok := &Tokenizer{state: s}
		assert.Equal(t, None, tok.Skip(), "Skip from %s", s)
		assert.Equal(t, s, tok.State(), "Skip moved %s", s)
	}
}

func TestSkipKeepsKeywordLadder(t *testing.T) {
	tok := New()
	for _, c := range []byte("<s") {
		tok.Parse(c)
	}
	ladder := tok.State()
	tok.Skip()
	require.Equal(t, ladder, tok.State())
	var last Transition
	for _, c := range []byte("cript>") {
		last = tok.Parse(c)
	}
	assert.Equal(t, StartScript, last)
}

func TestSkipResumesText(t *testing.T) {
	tok := New()
	tok.Parse(' ')
	tok.Parse(' ')
	require.Equal(t, TextMultipleSpace, tok.State())
	assert.Equal(t, ResumeText, tok.Skip())
	assert.Equal(t, Text, tok.State())
}

func TestReset(t *testing.T) {
	tok := New()
	tok.Parse('<')
	tok.Reset()
	assert.Equal(t, Text, tok.State())
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "TagSpaceHrefEqualsQuote", TagSpaceHrefEqualsQuote.String())
	assert.Equal(t, "State(250)", State(250).String())
	assert.Equal(t, "EndScriptSrcAttribute", EndScriptSrcAttribute.String())
	for tr := Transition(0); tr < numTransitions; tr++ {
		assert.NotEmpty(t, transitionNames[tr])
	}
	for s := State(0); s < numStates; s++ {
		assert.NotEmpty(t, stateNames[s], "state %d has no name", s)
	}
}
