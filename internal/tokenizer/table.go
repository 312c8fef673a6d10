package tokenizer

// class groups the byte values the table distinguishes. Every byte that is
// not structural and not a keyword letter is classOther.
type class uint8

const (
	classOther class = iota
	classSpace
	classLess
	classGreater
	classQuote
	classEquals
	classSlash
	classS
	classC
	classR
	classI
	classP
	classT
	classY
	classL
	classE
	classH
	classF

	numClasses
)

var classes [256]class

type edge struct {
	next State
	fire Transition
}

var table [numStates][numClasses]edge

func init() {
	// C isspace
	for _, c := range []byte{'\t', '\n', '\v', '\f', '\r', ' '} {
		classes[c] = classSpace
	}
	classes['<'] = classLess
	classes['>'] = classGreater
	classes['"'] = classQuote
	classes['='] = classEquals
	classes['/'] = classSlash
	for c, cl := range map[byte]class{
		's': classS, 'c': classC, 'r': classR, 'i': classI, 'p': classP, 't': classT,
		'y': classY, 'l': classL, 'e': classE, 'h': classH, 'f': classF,
	} {
		classes[c] = cl
	}

	for s := range table {
		otherwise(State(s), State(s), None)
	}
	buildText()
	buildTags()
	buildScript()
	buildStyle()
}

func buildText() {
	on(Text, TextSpace, Whitespace, classSpace)
	on(Text, TagStart, StartTag, classLess)
	for _, s := range []State{TextSpace, TextMultipleSpace} {
		otherwise(s, Text, ResumeText)
		on(s, TagStart, StartTag, classLess)
	}
	on(TextSpace, TextMultipleSpace, MultipleWhitespace, classSpace)
	on(TextMultipleSpace, TextMultipleSpace, None, classSpace)
}

func buildTags() {
	for _, s := range []State{TagStart, TagSearch, TagSpace} {
		inTag(s)
	}
	on(TagStart, TagS, None, classS)
	on(TagSpace, TagSpaceS, None, classS)
	on(TagSpace, TagSpaceH, None, classH)
	on(TagSpace, TagSpaceC, None, classC)
	on(TagQuote, TagSearch, None, classQuote)

	ladder([]State{TagS, TagSc, TagScr, TagScri, TagScrip, TagScript}, "script", inTag)
	on(TagS, TagSt, None, classT)
	ladder([]State{TagSt, TagSty, TagStyl, TagStyle}, "tyle", inTag)

	on(TagScript, ScriptSpace, None, classSpace)
	on(TagScript, ScriptStart, StartScript, classGreater)
	on(TagScript, ScriptSlash, None, classSlash)
	on(TagStyle, StyleSearch, None, classSpace)
	on(TagStyle, StyleStart, StartStyle, classGreater)
	on(TagStyle, StyleSlash, None, classSlash)

	attribute(
		[]State{TagSpaceS, TagSpaceSr, TagSpaceSrc}, TagSpaceSrcEquals, TagSpaceSrcEqualsQuote,
		"src", StartSrcAttribute, EndSrcAttribute, inTag, TagSearch,
	)
	attribute(
		[]State{TagSpaceH, TagSpaceHr, TagSpaceHre, TagSpaceHref}, TagSpaceHrefEquals, TagSpaceHrefEqualsQuote,
		"href", StartHrefAttribute, EndHrefAttribute, inTag, TagSearch,
	)
	attribute(
		[]State{TagSpaceC, TagSpaceCi, TagSpaceCit, TagSpaceCite}, TagSpaceCiteEquals, TagSpaceCiteEqualsQuote,
		"cite", StartCiteAttribute, EndCiteAttribute, inTag, TagSearch,
	)
}

func buildScript() {
	for _, s := range []State{ScriptSearch, ScriptSpace, ScriptSlash} {
		inScriptTag(s)
	}
	on(ScriptSpace, ScriptSpaceS, None, classS)
	// <script/> is self-closed and opens no body.
	on(ScriptSlash, TextSpace, EndTag, classGreater)
	on(ScriptQuote, ScriptSearch, None, classQuote)
	attribute(
		[]State{ScriptSpaceS, ScriptSpaceSr, ScriptSpaceSrc}, ScriptSpaceSrcEquals, ScriptSpaceSrcEqualsQuote,
		"src", StartScriptSrcAttribute, EndScriptSrcAttribute, inScriptTag, ScriptSearch,
	)

	for _, s := range []State{ScriptStart, Script} {
		inScriptBody(s)
	}
	inScriptBody(ScriptLt)
	on(ScriptLt, ScriptLtSlash, None, classSlash)
	inScriptBody(ScriptLtSlash)
	on(ScriptLtSlash, ScriptEndS, None, classS)
	ladder([]State{ScriptEndS, ScriptEndSc, ScriptEndScr, ScriptEndScri, ScriptEndScrip, ScriptEndScript}, "script", inScriptBody)
	on(ScriptEndScript, TextSpace, EndScript, classGreater)
	on(ScriptEndScript, TagSpace, EndScript, classSpace)
	on(ScriptEndScript, TagSearch, EndScript, classSlash)
}

func buildStyle() {
	for _, s := range []State{StyleSearch, StyleSlash} {
		otherwise(s, StyleSearch, None)
		on(s, StyleStart, StartStyle, classGreater)
		on(s, StyleQuote, None, classQuote)
		on(s, StyleSlash, None, classSlash)
	}
	on(StyleSlash, TextSpace, EndTag, classGreater)
	on(StyleQuote, StyleSearch, None, classQuote)

	otherwise(StyleStart, Style, None)
	on(StyleStart, TagStart, EndStyle, classLess)
	on(Style, TagStart, EndStyle, classLess)
}

// inTag wires the exits shared by every state inside a generic tag: a
// mismatch falls back to TagSearch, whitespace to TagSpace.
func inTag(s State) {
	otherwise(s, TagSearch, None)
	on(s, TagSpace, None, classSpace)
	on(s, TextSpace, EndTag, classGreater)
	on(s, TagQuote, None, classQuote)
}

func inScriptTag(s State) {
	otherwise(s, ScriptSearch, None)
	on(s, ScriptSpace, None, classSpace)
	on(s, ScriptStart, StartScript, classGreater)
	on(s, ScriptQuote, None, classQuote)
	on(s, ScriptSlash, None, classSlash)
}

func inScriptBody(s State) {
	otherwise(s, Script, None)
	on(s, ScriptLt, None, classLess)
}

// ladder chains states so that states[i] advances to states[i+1] on word[i+1].
// The edge into states[0] is wired by the caller.
func ladder(states []State, word string, exits func(State)) {
	for i, s := range states {
		exits(s)
		if i+1 < len(states) {
			on(s, states[i+1], None, classes[word[i+1]])
		}
	}
}

// attribute wires an attribute-name ladder followed by =" and a quoted value
// that fires start on its opening quote and end on its closing one.
func attribute(name []State, equals, quote State, word string, start, end Transition, exits func(State), resume State) {
	ladder(name, word, exits)
	on(name[len(name)-1], equals, None, classEquals)
	exits(equals)
	on(equals, quote, start, classQuote)
	otherwise(quote, quote, None)
	on(quote, resume, end, classQuote)
}

func on(from, to State, fire Transition, cs ...class) {
	for _, c := range cs {
		table[from][c] = edge{next: to, fire: fire}
	}
}

func otherwise(from, to State, fire Transition) {
	for c := range table[from] {
		table[from][c] = edge{next: to, fire: fire}
	}
}
