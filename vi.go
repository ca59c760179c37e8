package keymode

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/thruflo/keymode/internal/logging"
)

// ViCmd accumulates one vi command: an optional count, an optional
// operator, and the motion or text object the operator applies to.
// The zero value is an empty command.
type ViCmd struct {
	count       int
	operator    Operator
	motion      Motion
	textObject  TextObject
	selection   bool
	enterInsert bool
}

// String renders the pending command the way a status line shows it
// while the user is still typing, for example "2Delete".
func (c ViCmd) String() string {
	var b strings.Builder
	if c.count != 0 {
		fmt.Fprintf(&b, "%d", c.count)
	}
	if c.operator != OperatorNone {
		b.WriteString(c.operator.String())
	}
	if c.motion.Kind != MotionNone {
		b.WriteString(c.motion.String())
	}
	if c.textObject.Kind != TextObjectNone {
		b.WriteString(c.textObject.String())
	}
	return b.String()
}

// Repeat calls fn count times and resets the count.
func (c *ViCmd) Repeat(fn func(int)) {
	count := c.takeCount()
	for i := 0; i < count; i++ {
		fn(i)
	}
}

// Motion sets the motion and runs the command.
func (c *ViCmd) Motion(m Motion, emit func(Event)) {
	c.motion = m
	c.Run(emit)
}

// Operator sets the operator and runs the command. A doubled operator,
// as in "dd", turns into a whole-line operation.
func (c *ViCmd) Operator(op Operator, emit func(Event)) {
	if c.operator == op {
		c.motion = Motion{Kind: MotionLine}
	} else {
		c.operator = op
	}
	c.Run(emit)
}

// TextObject supplies the text object an "around" or "inside" motion
// is waiting for. It reports false when no such motion is pending, in
// which case the command is left untouched and the key should be
// interpreted some other way.
func (c *ViCmd) TextObject(obj TextObject, emit func(Event)) bool {
	if !c.motion.NeedsTextObject() {
		return false
	}
	c.textObject = obj
	c.Run(emit)
	return true
}

// Run emits the events for the command if it is complete, resetting
// the consumed parts. It reports false while more input is needed.
func (c *ViCmd) Run(emit func(Event)) bool {
	if c.motion.Kind != MotionNone {
		if c.motion.NeedsTextObject() && c.textObject.Kind == TextObjectNone {
			// Around and inside wait for their text object.
			return false
		}
	} else if !c.selection {
		// Without a motion there must be a selection to act on.
		return false
	}

	count := c.takeCount()
	motion := c.motion
	c.motion = Motion{}
	if motion.Kind == MotionNone {
		motion = Motion{Kind: MotionSelection}
	}
	obj := c.textObject
	c.textObject = TextObject{}
	op := c.operator
	c.operator = OperatorNone

	if op == OperatorNone {
		switch motion.Kind {
		case MotionAround:
			emit(SelectTextObjectEvent(obj, true))
		case MotionInside:
			emit(SelectTextObjectEvent(obj, false))
		default:
			for i := 0; i < count; i++ {
				emit(MotionEvent(motion))
			}
		}
		return true
	}

	// Select the region the operator applies to.
	switch motion.Kind {
	case MotionAround:
		emit(SelectTextObjectEvent(obj, true))
	case MotionInside:
		emit(SelectTextObjectEvent(obj, false))
	case MotionLine:
		emit(MotionEvent(Motion{Kind: MotionSoftHome}))
		emit(Event{Kind: EventSelectStart})
		emit(MotionEvent(Motion{Kind: MotionEnd}))
	case MotionSelection:
		// The host's selection is already the region.
	default:
		emit(Event{Kind: EventSelectStart})
		for i := 0; i < count; i++ {
			emit(MotionEvent(motion))
		}
	}

	switch op {
	case OperatorAutoIndent:
		emit(Event{Kind: EventAutoIndent})
	case OperatorChange:
		emit(Event{Kind: EventDelete})
		c.enterInsert = true
	case OperatorDelete:
		emit(Event{Kind: EventDelete})
	case OperatorShiftLeft:
		emit(Event{Kind: EventShiftLeft})
	case OperatorShiftRight:
		emit(Event{Kind: EventShiftRight})
	case OperatorSwapCase:
		emit(Event{Kind: EventSwapCase})
	case OperatorYank:
		emit(Event{Kind: EventCopy})
	}
	return true
}

func (c *ViCmd) takeCount() int {
	count := c.count
	c.count = 0
	if count == 0 {
		count = 1
	}
	return count
}

// ViModeKind identifies a vi editing mode.
type ViModeKind int

const (
	ModeNormal ViModeKind = iota
	ModeExtra
	ModeInsert
	ModeReplace
	ModeVisual
	ModeVisualLine
	ModeCommand
	ModeSearch
)

// ViMode is the parser's current mode plus the state that mode keeps:
// the pending command character for ModeExtra, the typed line for
// ModeCommand and ModeSearch, and the search direction for ModeSearch.
// The zero value is normal mode.
type ViMode struct {
	Kind     ViModeKind
	Extra    rune
	Value    string
	Forwards bool
}

// ViParser is a modal parser with vi bindings. The zero value is ready
// to use and starts in normal mode.
//
// Mode and Cmd are exported so hosts can render a status line; they
// should not be written to directly.
type ViParser struct {
	Mode ViMode
	Cmd  ViCmd

	// last f/F/t/T motion, repeated by ";" and reversed by ","
	semicolonMotion Motion
}

// NewViParser returns a parser in normal mode.
func NewViParser() *ViParser {
	return &ViParser{}
}

// Reset implements Parser.
func (p *ViParser) Reset() {
	p.Mode = ViMode{}
	p.Cmd = ViCmd{}
}

// Parse implements Parser.
func (p *ViParser) Parse(key Key, selection bool, emit func(Event)) {
	// Fold control characters into named keys up front.
	key = key.Normalize()
	p.Cmd.selection = selection

	switch p.Mode.Kind {
	case ModeNormal, ModeVisual, ModeVisualLine:
		p.parseNormal(key, emit)
	case ModeExtra:
		p.parseExtra(key, emit)
	case ModeInsert:
		p.parseInsert(key, emit, false)
	case ModeReplace:
		p.parseInsert(key, emit, true)
	case ModeCommand:
		p.parseCommand(key, emit)
	case ModeSearch:
		p.parseSearch(key, emit)
	}

	// Operators like change finish by entering insert mode.
	if p.Cmd.enterInsert {
		p.Cmd.enterInsert = false
		p.Mode = ViMode{Kind: ModeInsert}
	}

	emit(Event{Kind: EventRedraw})
}

func (p *ViParser) parseNormal(key Key, emit func(Event)) {
	cmd := &p.Cmd
	switch key.Code {
	case KeyBackspace:
		cmd.Motion(Motion{Kind: MotionLeft}, emit)
	case KeyDelete:
		cmd.Repeat(func(int) { emit(Event{Kind: EventDelete}) })
	case KeyDown:
		cmd.Motion(Motion{Kind: MotionDown}, emit)
	case KeyEnd:
		cmd.Motion(Motion{Kind: MotionEnd}, emit)
	case KeyEnter:
		cmd.Motion(Motion{Kind: MotionDown}, emit)
		cmd.Motion(Motion{Kind: MotionSoftHome}, emit)
	case KeyEscape:
		p.Reset()
		emit(Event{Kind: EventEscape})
	case KeyHome:
		cmd.Motion(Motion{Kind: MotionHome}, emit)
	case KeyLeft:
		cmd.Motion(Motion{Kind: MotionLeft}, emit)
	case KeyPageDown:
		cmd.Motion(Motion{Kind: MotionPageDown}, emit)
	case KeyPageUp:
		cmd.Motion(Motion{Kind: MotionPageUp}, emit)
	case KeyRight:
		cmd.Motion(Motion{Kind: MotionRight}, emit)
	case KeyUp:
		cmd.Motion(Motion{Kind: MotionUp}, emit)
	case KeyChar:
		p.parseNormalChar(key.Rune, emit)
	}
}

func (p *ViParser) parseNormalChar(c rune, emit func(Event)) {
	cmd := &p.Cmd
	switch c {
	// insert after cursor, or the "around" half of a text object
	case 'a':
		if cmd.operator != OperatorNone || p.Mode.Kind != ModeNormal {
			cmd.Motion(Motion{Kind: MotionAround}, emit)
		} else {
			(&ViCmd{}).Motion(Motion{Kind: MotionRight}, emit)
			p.Mode = ViMode{Kind: ModeInsert}
		}
	// insert at end of line
	case 'A':
		(&ViCmd{}).Motion(Motion{Kind: MotionEnd}, emit)
		p.Mode = ViMode{Kind: ModeInsert}
	// previous word, or block text object
	case 'b':
		if !cmd.TextObject(TextObject{Kind: TextObjectBlock}, emit) {
			cmd.Motion(PreviousWordStart(WordLower), emit)
		}
	case 'B':
		if !cmd.TextObject(TextObject{Kind: TextObjectBlock}, emit) {
			cmd.Motion(PreviousWordStart(WordUpper), emit)
		}
	// change operator
	case 'c':
		cmd.Operator(OperatorChange, emit)
	// change to end of line
	case 'C':
		cmd.Operator(OperatorChange, emit)
		cmd.Motion(Motion{Kind: MotionEnd}, emit)
	// delete operator
	case 'd':
		cmd.Operator(OperatorDelete, emit)
	// change to end of line
	case 'D':
		cmd.Operator(OperatorChange, emit)
		cmd.Motion(Motion{Kind: MotionEnd}, emit)
	// end of word
	case 'e':
		cmd.Motion(NextWordEnd(WordLower), emit)
	case 'E':
		cmd.Motion(NextWordEnd(WordUpper), emit)
	// find char forwards / backwards, g commands
	case 'f', 'F', 'g':
		p.Mode = ViMode{Kind: ModeExtra, Extra: c}
	// goto line, or end of file without a count
	case 'G':
		if count := cmd.count; count != 0 {
			cmd.count = 0
			cmd.Motion(GotoLine(count), emit)
		} else {
			cmd.Motion(Motion{Kind: MotionGotoEOF}, emit)
		}
	case 'h':
		cmd.Motion(Motion{Kind: MotionLeft}, emit)
	// top of screen
	case 'H':
		cmd.Motion(Motion{Kind: MotionScreenHigh}, emit)
	// insert at cursor, or the "inside" half of a text object
	case 'i':
		if cmd.operator != OperatorNone || p.Mode.Kind != ModeNormal {
			cmd.Motion(Motion{Kind: MotionInside}, emit)
		} else {
			p.Mode = ViMode{Kind: ModeInsert}
		}
	// insert at start of line
	case 'I':
		(&ViCmd{}).Motion(Motion{Kind: MotionSoftHome}, emit)
		p.Mode = ViMode{Kind: ModeInsert}
	case 'j':
		cmd.Motion(Motion{Kind: MotionDown}, emit)
	case 'k':
		cmd.Motion(Motion{Kind: MotionUp}, emit)
	case 'l', ' ':
		cmd.Motion(Motion{Kind: MotionRight}, emit)
	// bottom of screen
	case 'L':
		cmd.Motion(Motion{Kind: MotionScreenLow}, emit)
	// middle of screen
	case 'M':
		cmd.Motion(Motion{Kind: MotionScreenMiddle}, emit)
	// next and previous search hit
	case 'n':
		cmd.Motion(Motion{Kind: MotionNextSearch}, emit)
	case 'N':
		cmd.Motion(Motion{Kind: MotionPreviousSearch}, emit)
	// open line below and enter insert mode
	case 'o':
		(&ViCmd{}).Motion(Motion{Kind: MotionEnd}, emit)
		emit(Event{Kind: EventNewLine})
		p.Mode = ViMode{Kind: ModeInsert}
	// open line above and enter insert mode
	case 'O':
		(&ViCmd{}).Motion(Motion{Kind: MotionHome}, emit)
		emit(Event{Kind: EventNewLine})
		(&ViCmd{}).Motion(Motion{Kind: MotionUp}, emit)
		p.Mode = ViMode{Kind: ModeInsert}
	// paste after cursor, or paragraph text object
	case 'p':
		if !cmd.TextObject(TextObject{Kind: TextObjectParagraph}, emit) {
			(&ViCmd{}).Motion(Motion{Kind: MotionRight}, emit)
			emit(Event{Kind: EventPaste})
		}
	// paste before cursor
	case 'P':
		emit(Event{Kind: EventPaste})
	// replace a single char
	case 'r':
		p.Mode = ViMode{Kind: ModeExtra, Extra: c}
	// replace mode
	case 'R':
		p.Mode = ViMode{Kind: ModeReplace}
	// substitute chars, or sentence text object
	case 's':
		if !cmd.TextObject(TextObject{Kind: TextObjectSentence}, emit) {
			cmd.Repeat(func(int) { emit(Event{Kind: EventDelete}) })
			p.Mode = ViMode{Kind: ModeInsert}
		}
	// substitute whole line
	case 'S':
		cmd.Operator(OperatorChange, emit)
		cmd.Motion(Motion{Kind: MotionLine}, emit)
	// move till char forwards, or tag text object
	case 't':
		if !cmd.TextObject(TextObject{Kind: TextObjectTag}, emit) {
			p.Mode = ViMode{Kind: ModeExtra, Extra: c}
		}
	// move till char backwards
	case 'T':
		p.Mode = ViMode{Kind: ModeExtra, Extra: c}
	case 'u':
		emit(Event{Kind: EventUndo})
	// toggle visual mode
	case 'v':
		if p.Mode.Kind == ModeVisual {
			emit(Event{Kind: EventSelectClear})
			p.Mode = ViMode{Kind: ModeNormal}
		} else {
			emit(Event{Kind: EventSelectStart})
			p.Mode = ViMode{Kind: ModeVisual}
		}
	// toggle visual line mode
	case 'V':
		if p.Mode.Kind == ModeVisualLine {
			emit(Event{Kind: EventSelectClear})
			p.Mode = ViMode{Kind: ModeNormal}
		} else {
			emit(Event{Kind: EventSelectStart})
			p.Mode = ViMode{Kind: ModeVisualLine}
		}
	// next word, or word text object
	case 'w':
		if !cmd.TextObject(TextObject{Kind: TextObjectWord, Word: WordLower}, emit) {
			cmd.Motion(NextWordStart(WordLower), emit)
		}
	case 'W':
		if !cmd.TextObject(TextObject{Kind: TextObjectWord, Word: WordUpper}, emit) {
			cmd.Motion(NextWordStart(WordUpper), emit)
		}
	// delete char at cursor
	case 'x':
		cmd.Repeat(func(int) { emit(Event{Kind: EventDelete}) })
	// delete char before cursor
	case 'X':
		cmd.Repeat(func(int) { emit(Event{Kind: EventBackspace}) })
	// yank operator
	case 'y':
		cmd.Operator(OperatorYank, emit)
	// yank whole line
	case 'Y':
		cmd.Operator(OperatorYank, emit)
		cmd.Motion(Motion{Kind: MotionLine}, emit)
	// z and Z commands
	case 'z', 'Z':
		p.Mode = ViMode{Kind: ModeExtra, Extra: c}
	// start of line, or another zero on a pending count
	case '0':
		if cmd.count != 0 {
			cmd.count *= 10
		} else {
			cmd.Motion(Motion{Kind: MotionHome}, emit)
		}
	// count of the next action
	case '1', '2', '3', '4', '5', '6', '7', '8', '9':
		cmd.count = cmd.count*10 + int(c-'0')
	case '`':
		cmd.TextObject(TextObject{Kind: TextObjectTicks}, emit)
	// swap case operator
	case '~':
		cmd.Operator(OperatorSwapCase, emit)
	// end of line
	case '$':
		cmd.Motion(Motion{Kind: MotionEnd}, emit)
	// first non-whitespace of line
	case '^':
		cmd.Motion(Motion{Kind: MotionSoftHome}, emit)
	case '(', ')':
		cmd.TextObject(TextObject{Kind: TextObjectParentheses}, emit)
	// up then soft home
	case '-':
		cmd.Motion(Motion{Kind: MotionUp}, emit)
		cmd.Motion(Motion{Kind: MotionSoftHome}, emit)
	// down then soft home
	case '+':
		cmd.Motion(Motion{Kind: MotionDown}, emit)
		cmd.Motion(Motion{Kind: MotionSoftHome}, emit)
	// auto indent operator
	case '=':
		cmd.Operator(OperatorAutoIndent, emit)
	case '[', ']':
		cmd.TextObject(TextObject{Kind: TextObjectSquareBrackets}, emit)
	case '{', '}':
		cmd.TextObject(TextObject{Kind: TextObjectCurlyBrackets}, emit)
	// repeat the last find motion
	case ';':
		if p.semicolonMotion.Kind != MotionNone {
			cmd.Motion(p.semicolonMotion, emit)
		}
	// command mode
	case ':':
		p.Mode = ViMode{Kind: ModeCommand}
	case '\'':
		cmd.TextObject(TextObject{Kind: TextObjectSingleQuotes}, emit)
	case '"':
		cmd.TextObject(TextObject{Kind: TextObjectDoubleQuotes}, emit)
	// repeat the last find motion, reversed
	case ',':
		if p.semicolonMotion.Kind != MotionNone {
			if reversed, ok := p.semicolonMotion.Reverse(); ok {
				cmd.Motion(reversed, emit)
			}
		}
	// unindent operator, or angle bracket text object
	case '<':
		if !cmd.TextObject(TextObject{Kind: TextObjectAngleBrackets}, emit) {
			cmd.Operator(OperatorShiftLeft, emit)
		}
	// indent operator, or angle bracket text object
	case '>':
		if !cmd.TextObject(TextObject{Kind: TextObjectAngleBrackets}, emit) {
			cmd.Operator(OperatorShiftRight, emit)
		}
	// search forwards
	case '/':
		p.Mode = ViMode{Kind: ModeSearch, Forwards: true}
	// search backwards
	case '?':
		p.Mode = ViMode{Kind: ModeSearch, Forwards: false}
	}
}

func (p *ViParser) parseExtra(key Key, emit func(Event)) {
	cmd := &p.Cmd
	switch p.Mode.Extra {
	case 'f', 'F', 't', 'T':
		if key.Code == KeyChar {
			var motion Motion
			switch p.Mode.Extra {
			case 'f':
				motion = NextChar(key.Rune)
			case 'F':
				motion = PreviousChar(key.Rune)
			case 't':
				motion = NextCharTill(key.Rune)
			case 'T':
				motion = PreviousCharTill(key.Rune)
			}
			cmd.Motion(motion, emit)
			p.semicolonMotion = motion
		}
		p.Reset()
	case 'g':
		if key.Code == KeyChar {
			switch key.Rune {
			// previous word end
			case 'e':
				cmd.Motion(PreviousWordEnd(WordLower), emit)
			case 'E':
				cmd.Motion(PreviousWordEnd(WordUpper), emit)
			// goto line, defaulting to the first
			case 'g':
				if count := cmd.count; count != 0 {
					cmd.count = 0
					cmd.Motion(GotoLine(count), emit)
				} else {
					cmd.Motion(GotoLine(1), emit)
				}
			}
		}
		p.Reset()
	default:
		logging.Debug("unhandled extra command",
			"extra", string(p.Mode.Extra),
			"key", key.String(),
		)
		p.Reset()
	}
}

func (p *ViParser) parseInsert(key Key, emit func(Event), replace bool) {
	switch key.Code {
	case KeyBackspace:
		emit(Event{Kind: EventBackspace})
	case KeyDelete:
		emit(Event{Kind: EventDelete})
	case KeyDown:
		emit(MotionEvent(Motion{Kind: MotionDown}))
	case KeyEnd:
		emit(MotionEvent(Motion{Kind: MotionEnd}))
	case KeyEnter:
		emit(Event{Kind: EventNewLine})
	case KeyEscape:
		(&ViCmd{}).Motion(Motion{Kind: MotionLeft}, emit)
		p.Reset()
	case KeyHome:
		emit(MotionEvent(Motion{Kind: MotionHome}))
	case KeyLeft:
		emit(MotionEvent(Motion{Kind: MotionLeft}))
	case KeyRight:
		emit(MotionEvent(Motion{Kind: MotionRight}))
	case KeyTab:
		if replace {
			emit(Event{Kind: EventDelete})
		}
		emit(InsertEvent('\t'))
	case KeyUp:
		emit(MotionEvent(Motion{Kind: MotionUp}))
	case KeyChar:
		if replace {
			emit(Event{Kind: EventDelete})
		}
		emit(InsertEvent(key.Rune))
	}
}

func (p *ViParser) parseCommand(key Key, emit func(Event)) {
	switch key.Code {
	case KeyEscape:
		p.Reset()
	case KeyEnter:
		// Commands are not interpreted yet; the typed line is dropped.
		p.Reset()
	case KeyBackspace:
		if p.Mode.Value == "" {
			p.Reset()
		} else {
			p.Mode.Value = trimLastRune(p.Mode.Value)
		}
	case KeyChar:
		p.Mode.Value += string(key.Rune)
	}
}

func (p *ViParser) parseSearch(key Key, emit func(Event)) {
	switch key.Code {
	case KeyEscape:
		p.Reset()
	case KeyEnter:
		value := p.Mode.Value
		forwards := p.Mode.Forwards
		emit(SetSearchEvent(value, forwards))
		p.Reset()
		(&ViCmd{}).Motion(Motion{Kind: MotionNextSearch}, emit)
	case KeyBackspace:
		if p.Mode.Value == "" {
			p.Reset()
		} else {
			p.Mode.Value = trimLastRune(p.Mode.Value)
		}
	case KeyChar:
		p.Mode.Value += string(key.Rune)
	}
}

func trimLastRune(s string) string {
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}
