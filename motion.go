package keymode

import "fmt"

// MotionKind identifies a cursor motion.
type MotionKind int

const (
	MotionNone MotionKind = iota
	MotionAround
	MotionDown
	MotionEnd
	MotionGotoEOF
	MotionGotoLine
	MotionHome
	MotionInside
	MotionLeft
	MotionLeftInLine
	MotionLine
	MotionNextChar
	MotionNextCharTill
	MotionNextSearch
	MotionNextWordEnd
	MotionNextWordStart
	MotionPageDown
	MotionPageUp
	MotionPreviousChar
	MotionPreviousCharTill
	MotionPreviousSearch
	MotionPreviousWordEnd
	MotionPreviousWordStart
	MotionRight
	MotionRightInLine
	MotionScreenHigh
	MotionScreenLow
	MotionScreenMiddle
	MotionSelection
	MotionSoftHome
	MotionUp
)

// Motion is a cursor movement request. Kind says which movement; the
// remaining fields carry the payload for the kinds that need one. The
// zero value means "no motion".
//
// MotionAround and MotionInside are placeholders that wait for a text
// object, MotionLine stands for a whole-line operation such as "dd",
// and MotionSelection applies a pending operator to the host's current
// selection without moving at all.
type Motion struct {
	Kind MotionKind

	// Rune is the target character for the find motions NextChar,
	// NextCharTill, PreviousChar and PreviousCharTill.
	Rune rune

	// Line is the 1-based target line for GotoLine.
	Line int

	// Word selects the word granularity for the word motions.
	Word Word
}

// NextChar moves onto the next occurrence of r in the line.
func NextChar(r rune) Motion {
	return Motion{Kind: MotionNextChar, Rune: r}
}

// NextCharTill moves just before the next occurrence of r.
func NextCharTill(r rune) Motion {
	return Motion{Kind: MotionNextCharTill, Rune: r}
}

// PreviousChar moves onto the previous occurrence of r in the line.
func PreviousChar(r rune) Motion {
	return Motion{Kind: MotionPreviousChar, Rune: r}
}

// PreviousCharTill moves just after the previous occurrence of r.
func PreviousCharTill(r rune) Motion {
	return Motion{Kind: MotionPreviousCharTill, Rune: r}
}

// GotoLine moves to the 1-based line n.
func GotoLine(n int) Motion {
	return Motion{Kind: MotionGotoLine, Line: n}
}

// NextWordStart moves to the start of the next word.
func NextWordStart(w Word) Motion {
	return Motion{Kind: MotionNextWordStart, Word: w}
}

// NextWordEnd moves to the end of the next word.
func NextWordEnd(w Word) Motion {
	return Motion{Kind: MotionNextWordEnd, Word: w}
}

// PreviousWordStart moves to the start of the previous word.
func PreviousWordStart(w Word) Motion {
	return Motion{Kind: MotionPreviousWordStart, Word: w}
}

// PreviousWordEnd moves to the end of the previous word.
func PreviousWordEnd(w Word) Motion {
	return Motion{Kind: MotionPreviousWordEnd, Word: w}
}

// NeedsTextObject reports whether the motion is incomplete until a
// text object arrives, as in the "i" of "diw".
func (m Motion) NeedsTextObject() bool {
	return m.Kind == MotionAround || m.Kind == MotionInside
}

// Reverse returns the motion going the opposite way, used to repeat a
// find motion backwards. The second return is false for motions that
// have no opposite.
func (m Motion) Reverse() (Motion, bool) {
	switch m.Kind {
	case MotionDown:
		return Motion{Kind: MotionUp}, true
	case MotionUp:
		return Motion{Kind: MotionDown}, true
	case MotionEnd:
		return Motion{Kind: MotionHome}, true
	case MotionHome:
		return Motion{Kind: MotionEnd}, true
	case MotionLeft:
		return Motion{Kind: MotionRight}, true
	case MotionRight:
		return Motion{Kind: MotionLeft}, true
	case MotionLeftInLine:
		return Motion{Kind: MotionRightInLine}, true
	case MotionRightInLine:
		return Motion{Kind: MotionLeftInLine}, true
	case MotionNextChar:
		return Motion{Kind: MotionPreviousChar, Rune: m.Rune}, true
	case MotionPreviousChar:
		return Motion{Kind: MotionNextChar, Rune: m.Rune}, true
	case MotionNextCharTill:
		return Motion{Kind: MotionPreviousCharTill, Rune: m.Rune}, true
	case MotionPreviousCharTill:
		return Motion{Kind: MotionNextCharTill, Rune: m.Rune}, true
	case MotionNextSearch:
		return Motion{Kind: MotionPreviousSearch}, true
	case MotionPreviousSearch:
		return Motion{Kind: MotionNextSearch}, true
	case MotionNextWordEnd:
		return Motion{Kind: MotionPreviousWordEnd, Word: m.Word}, true
	case MotionPreviousWordEnd:
		return Motion{Kind: MotionNextWordEnd, Word: m.Word}, true
	case MotionNextWordStart:
		return Motion{Kind: MotionPreviousWordStart, Word: m.Word}, true
	case MotionPreviousWordStart:
		return Motion{Kind: MotionNextWordStart, Word: m.Word}, true
	case MotionPageDown:
		return Motion{Kind: MotionPageUp}, true
	case MotionPageUp:
		return Motion{Kind: MotionPageDown}, true
	case MotionScreenHigh:
		return Motion{Kind: MotionScreenLow}, true
	case MotionScreenLow:
		return Motion{Kind: MotionScreenHigh}, true
	}
	return Motion{}, false
}

func (m Motion) String() string {
	switch m.Kind {
	case MotionAround:
		return "Around"
	case MotionDown:
		return "Down"
	case MotionEnd:
		return "End"
	case MotionGotoEOF:
		return "GotoEOF"
	case MotionGotoLine:
		return fmt.Sprintf("GotoLine(%d)", m.Line)
	case MotionHome:
		return "Home"
	case MotionInside:
		return "Inside"
	case MotionLeft:
		return "Left"
	case MotionLeftInLine:
		return "LeftInLine"
	case MotionLine:
		return "Line"
	case MotionNextChar:
		return fmt.Sprintf("NextChar(%q)", m.Rune)
	case MotionNextCharTill:
		return fmt.Sprintf("NextCharTill(%q)", m.Rune)
	case MotionNextSearch:
		return "NextSearch"
	case MotionNextWordEnd:
		return fmt.Sprintf("NextWordEnd(%s)", m.Word)
	case MotionNextWordStart:
		return fmt.Sprintf("NextWordStart(%s)", m.Word)
	case MotionPageDown:
		return "PageDown"
	case MotionPageUp:
		return "PageUp"
	case MotionPreviousChar:
		return fmt.Sprintf("PreviousChar(%q)", m.Rune)
	case MotionPreviousCharTill:
		return fmt.Sprintf("PreviousCharTill(%q)", m.Rune)
	case MotionPreviousSearch:
		return "PreviousSearch"
	case MotionPreviousWordEnd:
		return fmt.Sprintf("PreviousWordEnd(%s)", m.Word)
	case MotionPreviousWordStart:
		return fmt.Sprintf("PreviousWordStart(%s)", m.Word)
	case MotionRight:
		return "Right"
	case MotionRightInLine:
		return "RightInLine"
	case MotionScreenHigh:
		return "ScreenHigh"
	case MotionScreenLow:
		return "ScreenLow"
	case MotionScreenMiddle:
		return "ScreenMiddle"
	case MotionSelection:
		return "Selection"
	case MotionSoftHome:
		return "SoftHome"
	case MotionUp:
		return "Up"
	}
	return "None"
}
