package tokenizer

import "fmt"

// State is a tokenizer state.
type State uint8

const (
	// Outside any tag.
	Text State = iota
	TextSpace
	TextMultipleSpace

	// Inside a tag, not matching any keyword.
	TagStart
	TagSearch
	TagSpace
	TagQuote

	// Tag names.
	TagS
	TagSc
	TagScr
	TagScri
	TagScrip
	TagScript
	TagSt
	TagSty
	TagStyl
	TagStyle

	// Attribute names after whitespace inside any tag.
	TagSpaceS
	TagSpaceSr
	TagSpaceSrc
	TagSpaceSrcEquals
	TagSpaceSrcEqualsQuote
	TagSpaceH
	TagSpaceHr
	TagSpaceHre
	TagSpaceHref
	TagSpaceHrefEquals
	TagSpaceHrefEqualsQuote
	TagSpaceC
	TagSpaceCi
	TagSpaceCit
	TagSpaceCite
	TagSpaceCiteEquals
	TagSpaceCiteEqualsQuote

	// Inside a <script ...> tag after its name.
	ScriptSearch
	ScriptSpace
	ScriptQuote
	ScriptSlash
	ScriptSpaceS
	ScriptSpaceSr
	ScriptSpaceSrc
	ScriptSpaceSrcEquals
	ScriptSpaceSrcEqualsQuote

	// Inside a <style ...> tag after its name.
	StyleSearch
	StyleQuote
	StyleSlash

	// Script body, closed only by </script.
	ScriptStart
	Script
	ScriptLt
	ScriptLtSlash
	ScriptEndS
	ScriptEndSc
	ScriptEndScr
	ScriptEndScri
	ScriptEndScrip
	ScriptEndScript

	// Style body, closed by the next <.
	StyleStart
	Style

	numStates
)

var stateNames = [numStates]string{
	Text:                      "Text",
	TextSpace:                 "TextSpace",
	TextMultipleSpace:         "TextMultipleSpace",
	TagStart:                  "TagStart",
	TagSearch:                 "TagSearch",
	TagSpace:                  "TagSpace",
	TagQuote:                  "TagQuote",
	TagS:                      "TagS",
	TagSc:                     "TagSc",
	TagScr:                    "TagScr",
	TagScri:                   "TagScri",
	TagScrip:                  "TagScrip",
	TagScript:                 "TagScript",
	TagSt:                     "TagSt",
	TagSty:                    "TagSty",
	TagStyl:                   "TagStyl",
	TagStyle:                  "TagStyle",
	TagSpaceS:                 "TagSpaceS",
	TagSpaceSr:                "TagSpaceSr",
	TagSpaceSrc:               "TagSpaceSrc",
	TagSpaceSrcEquals:         "TagSpaceSrcEquals",
	TagSpaceSrcEqualsQuote:    "TagSpaceSrcEqualsQuote",
	TagSpaceH:                 "TagSpaceH",
	TagSpaceHr:                "TagSpaceHr",
	TagSpaceHre:               "TagSpaceHre",
	TagSpaceHref:              "TagSpaceHref",
	TagSpaceHrefEquals:        "TagSpaceHrefEquals",
	TagSpaceHrefEqualsQuote:   "TagSpaceHrefEqualsQuote",
	TagSpaceC:                 "TagSpaceC",
	TagSpaceCi:                "TagSpaceCi",
	TagSpaceCit:               "TagSpaceCit",
	TagSpaceCite:              "TagSpaceCite",
	TagSpaceCiteEquals:        "TagSpaceCiteEquals",
	TagSpaceCiteEqualsQuote:   "TagSpaceCiteEqualsQuote",
	ScriptSearch:              "ScriptSearch",
	ScriptSpace:               "ScriptSpace",
	ScriptQuote:               "ScriptQuote",
	ScriptSlash:               "ScriptSlash",
	ScriptSpaceS:              "ScriptSpaceS",
	ScriptSpaceSr:             "ScriptSpaceSr",
	ScriptSpaceSrc:            "ScriptSpaceSrc",
	ScriptSpaceSrcEquals:      "ScriptSpaceSrcEquals",
	ScriptSpaceSrcEqualsQuote: "ScriptSpaceSrcEqualsQuote",
	StyleSearch:               "StyleSearch",
	StyleQuote:                "StyleQuote",
	StyleSlash:                "StyleSlash",
	ScriptStart:               "ScriptStart",
	Script:                    "Script",
	ScriptLt:                  "ScriptLt",
	ScriptLtSlash:             "ScriptLtSlash",
	ScriptEndS:                "ScriptEndS",
	ScriptEndSc:               "ScriptEndSc",
	ScriptEndScr:              "ScriptEndScr",
	ScriptEndScri:             "ScriptEndScri",
	ScriptEndScrip:            "ScriptEndScrip",
	ScriptEndScript:           "ScriptEndScript",
	StyleStart:                "StyleStart",
	Style:                     "Style",
}

func (s State) String() string {
	if s < numStates {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Transition identifies the callback fired on a table edge. Most edges fire
// None; the rest form a closed set handled by the scrub engine.
type Transition uint8

const (
	None Transition = iota
	StartTag
	Whitespace
	MultipleWhitespace
	ResumeText
	EndTag
	StartSrcAttribute
	EndSrcAttribute
	StartHrefAttribute
	EndHrefAttribute
	StartCiteAttribute
	EndCiteAttribute
	StartScriptSrcAttribute
	EndScriptSrcAttribute
	StartScript
	EndScript
	StartStyle
	EndStyle

	numTransitions
)

var transitionNames = [numTransitions]string{
	None:                    "None",
	StartTag:                "StartTag",
	Whitespace:              "Whitespace",
	MultipleWhitespace:      "MultipleWhitespace",
	ResumeText:              "ResumeText",
	EndTag:                  "EndTag",
	StartSrcAttribute:       "StartSrcAttribute",
	EndSrcAttribute:         "EndSrcAttribute",
	StartHrefAttribute:      "StartHrefAttribute",
	EndHrefAttribute:        "EndHrefAttribute",
	StartCiteAttribute:      "StartCiteAttribute",
	EndCiteAttribute:        "EndCiteAttribute",
	StartScriptSrcAttribute: "StartScriptSrcAttribute",
	EndScriptSrcAttribute:   "EndScriptSrcAttribute",
	StartScript:             "StartScript",
	EndScript:               "EndScript",
	StartStyle:              "StartStyle",
	EndStyle:                "EndStyle",
}

func (t Transition) String() string {
	if t < numTransitions {
		return transitionNames[t]
	}
	return fmt.Sprintf("Transition(%d)", uint8(t))
}
