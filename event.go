package keymode

import "fmt"

// EventKind identifies an editing event.
type EventKind int

const (
	// EventAutoIndent re-indents the selected region.
	EventAutoIndent EventKind = iota + 1
	// EventBackspace deletes the character before the cursor, joining
	// lines when the cursor sits at the start of one.
	EventBackspace
	// EventCopy copies the selected region.
	EventCopy
	// EventDelete deletes the selected region, or the character under
	// the cursor when nothing is selected. At the end of a line it
	// joins the next line on.
	EventDelete
	// EventDeleteInLine is EventDelete restricted to the current line.
	EventDeleteInLine
	// EventEscape cancels whatever the host is doing.
	EventEscape
	// EventInsert inserts the rune payload at the cursor.
	EventInsert
	// EventMotion moves the cursor by the motion payload.
	EventMotion
	// EventNewLine inserts a line break at the cursor.
	EventNewLine
	// EventPaste inserts the most recently copied region.
	EventPaste
	// EventRedraw tells the host the display may be stale.
	EventRedraw
	// EventSelectClear drops the current selection.
	EventSelectClear
	// EventSelectStart starts a selection at the cursor.
	EventSelectStart
	// EventSelectTextObject selects the text object payload around the
	// cursor.
	EventSelectTextObject
	// EventSetSearch installs the search term payload.
	EventSetSearch
	// EventShiftLeft removes one indent level from the selected lines.
	EventShiftLeft
	// EventShiftRight adds one indent level to the selected lines.
	EventShiftRight
	// EventSwapCase swaps the case of the selected region.
	EventSwapCase
	// EventUndo reverts the most recent change.
	EventUndo
)

// Event is one editing instruction for the host. Kind says which
// instruction; the remaining fields carry payloads for the kinds that
// need them.
type Event struct {
	Kind EventKind

	// Rune is the character to insert for EventInsert.
	Rune rune

	// Motion is the movement for EventMotion.
	Motion Motion

	// Object and Around belong to EventSelectTextObject. Around asks
	// for the surrounding delimiters or whitespace as well.
	Object TextObject
	Around bool

	// Value and Forwards belong to EventSetSearch.
	Value    string
	Forwards bool
}

// InsertEvent returns an event inserting r at the cursor.
func InsertEvent(r rune) Event {
	return Event{Kind: EventInsert, Rune: r}
}

// MotionEvent returns an event moving the cursor by m.
func MotionEvent(m Motion) Event {
	return Event{Kind: EventMotion, Motion: m}
}

// SelectTextObjectEvent returns an event selecting obj at the cursor.
func SelectTextObjectEvent(obj TextObject, around bool) Event {
	return Event{Kind: EventSelectTextObject, Object: obj, Around: around}
}

// SetSearchEvent returns an event installing value as the search term.
func SetSearchEvent(value string, forwards bool) Event {
	return Event{Kind: EventSetSearch, Value: value, Forwards: forwards}
}

func (e Event) String() string {
	switch e.Kind {
	case EventAutoIndent:
		return "AutoIndent"
	case EventBackspace:
		return "Backspace"
	case EventCopy:
		return "Copy"
	case EventDelete:
		return "Delete"
	case EventDeleteInLine:
		return "DeleteInLine"
	case EventEscape:
		return "Escape"
	case EventInsert:
		return fmt.Sprintf("Insert(%q)", e.Rune)
	case EventMotion:
		return fmt.Sprintf("Motion(%s)", e.Motion)
	case EventNewLine:
		return "NewLine"
	case EventPaste:
		return "Paste"
	case EventRedraw:
		return "Redraw"
	case EventSelectClear:
		return "SelectClear"
	case EventSelectStart:
		return "SelectStart"
	case EventSelectTextObject:
		return fmt.Sprintf("SelectTextObject(%s, around=%t)", e.Object, e.Around)
	case EventSetSearch:
		return fmt.Sprintf("SetSearch(%q, forwards=%t)", e.Value, e.Forwards)
	case EventShiftLeft:
		return "ShiftLeft"
	case EventShiftRight:
		return "ShiftRight"
	case EventSwapCase:
		return "SwapCase"
	case EventUndo:
		return "Undo"
	}
	return "Unknown"
}
