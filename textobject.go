package keymode

import "fmt"

// TextObjectKind identifies a region of text addressed as a unit.
type TextObjectKind int

const (
	TextObjectNone TextObjectKind = iota
	TextObjectAngleBrackets
	TextObjectBlock
	TextObjectCurlyBrackets
	TextObjectDoubleQuotes
	TextObjectParagraph
	TextObjectParentheses
	TextObjectSentence
	TextObjectSingleQuotes
	TextObjectSquareBrackets
	TextObjectTag
	TextObjectTicks
	TextObjectWord
)

// TextObject is the target of an "around" or "inside" motion, as in
// the "w" of "diw" or the "(" of "da(". Word carries the granularity
// when Kind is TextObjectWord.
type TextObject struct {
	Kind TextObjectKind
	Word Word
}

func (t TextObject) String() string {
	switch t.Kind {
	case TextObjectAngleBrackets:
		return "AngleBrackets"
	case TextObjectBlock:
		return "Block"
	case TextObjectCurlyBrackets:
		return "CurlyBrackets"
	case TextObjectDoubleQuotes:
		return "DoubleQuotes"
	case TextObjectParagraph:
		return "Paragraph"
	case TextObjectParentheses:
		return "Parentheses"
	case TextObjectSentence:
		return "Sentence"
	case TextObjectSingleQuotes:
		return "SingleQuotes"
	case TextObjectSquareBrackets:
		return "SquareBrackets"
	case TextObjectTag:
		return "Tag"
	case TextObjectTicks:
		return "Ticks"
	case TextObjectWord:
		return fmt.Sprintf("Word(%s)", t.Word)
	}
	return "None"
}
