package tty

import (
	"bufio"
	"io"
	"unicode/utf8"
)

// Key represents a keyboard input.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyEnter
	KeyBackspace
	KeyTab
	KeyBacktab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete
	KeyFunction // F1-F12, number in Rune
	KeyCtrl     // Ctrl chord, letter in Rune
	KeyAlt      // Alt chord, character in Rune
	KeyRune     // Regular character
)

// KeyEvent represents a key press event.
type KeyEvent struct {
	Key  Key
	Rune rune // Character for KeyRune, KeyCtrl and KeyAlt, or the F-key number
}

// KeyReader reads keyboard input from a raw terminal.
type KeyReader struct {
	reader *bufio.Reader
}

// NewKeyReader creates a KeyReader from the given io.Reader.
// The reader should be a raw terminal input (e.g., os.Stdin after term.MakeRaw).
func NewKeyReader(r io.Reader) *KeyReader {
	return &KeyReader{
		reader: bufio.NewReaderSize(r, 64),
	}
}

// ReadKey reads a single key event from the input.
// This method blocks until a key is pressed.
func (k *KeyReader) ReadKey() (KeyEvent, error) {
	b, err := k.reader.ReadByte()
	if err != nil {
		return KeyEvent{}, err
	}

	switch b {
	case 0x09: // Tab
		return KeyEvent{Key: KeyTab}, nil
	case 0x0D, 0x0A: // Enter (carriage return or newline)
		return KeyEvent{Key: KeyEnter}, nil
	case 0x7F, 0x08: // Backspace (DEL or BS)
		return KeyEvent{Key: KeyBackspace}, nil
	case 0x1B: // Escape or escape sequence start
		return k.readEscapeSequence()
	default:
		// Remaining control bytes are Ctrl chords
		if b < 0x20 {
			if b >= 0x01 && b <= 0x1A {
				return KeyEvent{Key: KeyCtrl, Rune: rune('a' + b - 0x01)}, nil
			}
			return KeyEvent{Key: KeyUnknown}, nil
		}
		// Printable ASCII
		if b < 0x7F {
			return KeyEvent{Key: KeyRune, Rune: rune(b)}, nil
		}
		// Handle UTF-8 multi-byte characters
		if b >= 0xC0 {
			return k.readUTF8(b)
		}
		return KeyEvent{Key: KeyUnknown}, nil
	}
}

// readEscapeSequence handles escape sequences (arrow keys, etc).
//
// Terminals deliver a full escape sequence in one burst, so when no
// further bytes are buffered the escape key was pressed on its own. A
// printable byte straight after escape is an Alt chord.
func (k *KeyReader) readEscapeSequence() (KeyEvent, error) {
	if k.reader.Buffered() == 0 {
		return KeyEvent{Key: KeyEscape}, nil
	}

	b, err := k.reader.ReadByte()
	if err != nil {
		return KeyEvent{Key: KeyEscape}, nil
	}

	switch {
	case b == '[':
		return k.parseCSI()
	case b == 'O':
		return k.parseSS3()
	case b >= 0x20 && b < 0x7F:
		return KeyEvent{Key: KeyAlt, Rune: rune(b)}, nil
	default:
		k.reader.UnreadByte()
		return KeyEvent{Key: KeyEscape}, nil
	}
}

// parseCSI parses a CSI (Control Sequence Introducer) sequence.
func (k *KeyReader) parseCSI() (KeyEvent, error) {
	// Accumulate parameter bytes until the final byte (0x40-0x7E).
	var params []byte
	var final byte
	for {
		b, err := k.reader.ReadByte()
		if err != nil {
			return KeyEvent{Key: KeyEscape}, nil
		}
		if b >= 0x40 && b <= 0x7E {
			final = b
			break
		}
		params = append(params, b)
	}

	switch final {
	case 'A':
		return KeyEvent{Key: KeyUp}, nil
	case 'B':
		return KeyEvent{Key: KeyDown}, nil
	case 'C':
		return KeyEvent{Key: KeyRight}, nil
	case 'D':
		return KeyEvent{Key: KeyLeft}, nil
	case 'H':
		return KeyEvent{Key: KeyHome}, nil
	case 'F':
		return KeyEvent{Key: KeyEnd}, nil
	case 'Z':
		return KeyEvent{Key: KeyBacktab}, nil
	case '~':
		return tildeKey(string(leadingNumber(params))), nil
	default:
		return KeyEvent{Key: KeyUnknown}, nil
	}
}

// leadingNumber strips any modifier parameters after the first ';'.
func leadingNumber(params []byte) []byte {
	for i, b := range params {
		if b == ';' {
			return params[:i]
		}
	}
	return params
}

// xterm function key codes for "CSI n ~" sequences
var functionKeyCodes = map[string]rune{
	"11": 1, "12": 2, "13": 3, "14": 4, "15": 5,
	"17": 6, "18": 7, "19": 8, "20": 9, "21": 10,
	"23": 11, "24": 12,
}

// tildeKey maps the numeric code of a "CSI n ~" sequence to a key.
func tildeKey(code string) KeyEvent {
	switch code {
	case "1", "7":
		return KeyEvent{Key: KeyHome}
	case "2":
		return KeyEvent{Key: KeyInsert}
	case "3":
		return KeyEvent{Key: KeyDelete}
	case "4", "8":
		return KeyEvent{Key: KeyEnd}
	case "5":
		return KeyEvent{Key: KeyPageUp}
	case "6":
		return KeyEvent{Key: KeyPageDown}
	}
	if n, ok := functionKeyCodes[code]; ok {
		return KeyEvent{Key: KeyFunction, Rune: n}
	}
	return KeyEvent{Key: KeyUnknown}
}

// parseSS3 parses an SS3 (single shift three) sequence.
func (k *KeyReader) parseSS3() (KeyEvent, error) {
	b, err := k.reader.ReadByte()
	if err != nil {
		return KeyEvent{Key: KeyEscape}, nil
	}

	switch b {
	case 'A':
		return KeyEvent{Key: KeyUp}, nil
	case 'B':
		return KeyEvent{Key: KeyDown}, nil
	case 'C':
		return KeyEvent{Key: KeyRight}, nil
	case 'D':
		return KeyEvent{Key: KeyLeft}, nil
	case 'H':
		return KeyEvent{Key: KeyHome}, nil
	case 'F':
		return KeyEvent{Key: KeyEnd}, nil
	case 'P', 'Q', 'R', 'S':
		return KeyEvent{Key: KeyFunction, Rune: rune(1 + b - 'P')}, nil
	default:
		return KeyEvent{Key: KeyUnknown}, nil
	}
}

// readUTF8 reads a multi-byte UTF-8 character.
func (k *KeyReader) readUTF8(first byte) (KeyEvent, error) {
	var buf [4]byte
	buf[0] = first

	// Determine how many bytes we need
	var n int
	switch {
	case first&0xE0 == 0xC0:
		n = 2
	case first&0xF0 == 0xE0:
		n = 3
	case first&0xF8 == 0xF0:
		n = 4
	default:
		return KeyEvent{Key: KeyUnknown}, nil
	}

	// Read remaining bytes
	for i := 1; i < n; i++ {
		b, err := k.reader.ReadByte()
		if err != nil {
			return KeyEvent{Key: KeyUnknown}, err
		}
		buf[i] = b
	}

	r, _ := utf8.DecodeRune(buf[:n])
	if r == utf8.RuneError {
		return KeyEvent{Key: KeyUnknown}, nil
	}

	return KeyEvent{Key: KeyRune, Rune: r}, nil
}
