package keymode

import "fmt"

// KeyCode identifies a key independent of any character payload.
type KeyCode int

// Key codes understood by the parsers. KeyChar and KeyCtrl carry the
// character they were pressed with; the rest stand alone.
const (
	KeyUnknown KeyCode = iota
	KeyBackspace
	KeyBacktab
	KeyChar
	KeyCtrl
	KeyDelete
	KeyDown
	KeyEnd
	KeyEnter
	KeyEscape
	KeyHome
	KeyLeft
	KeyPageDown
	KeyPageUp
	KeyRight
	KeyTab
	KeyUp
)

// Key is a single keyboard input as seen by a parser. Code says which
// key it is; Rune carries the character for KeyChar and KeyCtrl and is
// zero otherwise.
type Key struct {
	Code KeyCode
	Rune rune
}

// Char returns the key for a printable character.
func Char(r rune) Key {
	return Key{Code: KeyChar, Rune: r}
}

// Ctrl returns the key for a control chord, such as Ctrl('c').
func Ctrl(r rune) Key {
	return Key{Code: KeyCtrl, Rune: r}
}

// Normalize folds character keys that are really control characters
// into their named equivalents, so parsers never have to match on raw
// bytes. Terminals commonly deliver Enter as '\r' or '\n', Backspace
// as 0x08, and Escape as 0x1b.
func (k Key) Normalize() Key {
	if k.Code != KeyChar {
		return k
	}
	switch k.Rune {
	case '\x08':
		return Key{Code: KeyBackspace}
	case '\x7f':
		return Key{Code: KeyDelete}
	case '\x1b':
		return Key{Code: KeyEscape}
	case '\n', '\r':
		return Key{Code: KeyEnter}
	case '\t':
		return Key{Code: KeyTab}
	}
	return k
}

func (k Key) String() string {
	switch k.Code {
	case KeyBackspace:
		return "Backspace"
	case KeyBacktab:
		return "Backtab"
	case KeyChar:
		return fmt.Sprintf("Char(%q)", k.Rune)
	case KeyCtrl:
		return fmt.Sprintf("Ctrl(%q)", k.Rune)
	case KeyDelete:
		return "Delete"
	case KeyDown:
		return "Down"
	case KeyEnd:
		return "End"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Escape"
	case KeyHome:
		return "Home"
	case KeyLeft:
		return "Left"
	case KeyPageDown:
		return "PageDown"
	case KeyPageUp:
		return "PageUp"
	case KeyRight:
		return "Right"
	case KeyTab:
		return "Tab"
	case KeyUp:
		return "Up"
	}
	return "Unknown"
}
