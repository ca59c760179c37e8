package tty

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyReader_ReadKey_SingleChar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []byte
		want  KeyEvent
	}{
		{"letter a", []byte{'a'}, KeyEvent{Key: KeyRune, Rune: 'a'}},
		{"letter Z", []byte{'Z'}, KeyEvent{Key: KeyRune, Rune: 'Z'}},
		{"digit 5", []byte{'5'}, KeyEvent{Key: KeyRune, Rune: '5'}},
		{"space", []byte{' '}, KeyEvent{Key: KeyRune, Rune: ' '}},
		{"punctuation", []byte{'!'}, KeyEvent{Key: KeyRune, Rune: '!'}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			reader := NewKeyReader(bytes.NewReader(tt.input))
			got, err := reader.ReadKey()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeyReader_ReadKey_ControlChars(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []byte
		want  KeyEvent
	}{
		{"tab", []byte{0x09}, KeyEvent{Key: KeyTab}},
		{"enter CR", []byte{0x0D}, KeyEvent{Key: KeyEnter}},
		{"enter LF", []byte{0x0A}, KeyEvent{Key: KeyEnter}},
		{"backspace DEL", []byte{0x7F}, KeyEvent{Key: KeyBackspace}},
		{"backspace BS", []byte{0x08}, KeyEvent{Key: KeyBackspace}},
		{"ctrl+a", []byte{0x01}, KeyEvent{Key: KeyCtrl, Rune: 'a'}},
		{"ctrl+c", []byte{0x03}, KeyEvent{Key: KeyCtrl, Rune: 'c'}},
		{"ctrl+z", []byte{0x1A}, KeyEvent{Key: KeyCtrl, Rune: 'z'}},
		{"null byte", []byte{0x00}, KeyEvent{Key: KeyUnknown}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			reader := NewKeyReader(bytes.NewReader(tt.input))
			got, err := reader.ReadKey()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeyReader_ReadKey_ArrowKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []byte
		want  KeyEvent
	}{
		{"up arrow", []byte{0x1B, '[', 'A'}, KeyEvent{Key: KeyUp}},
		{"down arrow", []byte{0x1B, '[', 'B'}, KeyEvent{Key: KeyDown}},
		{"right arrow", []byte{0x1B, '[', 'C'}, KeyEvent{Key: KeyRight}},
		{"left arrow", []byte{0x1B, '[', 'D'}, KeyEvent{Key: KeyLeft}},
		{"up arrow SS3", []byte{0x1B, 'O', 'A'}, KeyEvent{Key: KeyUp}},
		{"down arrow SS3", []byte{0x1B, 'O', 'B'}, KeyEvent{Key: KeyDown}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			reader := NewKeyReader(bytes.NewReader(tt.input))
			got, err := reader.ReadKey()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeyReader_ReadKey_NavigationKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  KeyEvent
	}{
		{"home CSI H", "\x1b[H", KeyEvent{Key: KeyHome}},
		{"end CSI F", "\x1b[F", KeyEvent{Key: KeyEnd}},
		{"home SS3", "\x1bOH", KeyEvent{Key: KeyHome}},
		{"end SS3", "\x1bOF", KeyEvent{Key: KeyEnd}},
		{"home tilde 1", "\x1b[1~", KeyEvent{Key: KeyHome}},
		{"home tilde 7", "\x1b[7~", KeyEvent{Key: KeyHome}},
		{"insert", "\x1b[2~", KeyEvent{Key: KeyInsert}},
		{"delete", "\x1b[3~", KeyEvent{Key: KeyDelete}},
		{"end tilde 4", "\x1b[4~", KeyEvent{Key: KeyEnd}},
		{"end tilde 8", "\x1b[8~", KeyEvent{Key: KeyEnd}},
		{"page up", "\x1b[5~", KeyEvent{Key: KeyPageUp}},
		{"page down", "\x1b[6~", KeyEvent{Key: KeyPageDown}},
		{"backtab", "\x1b[Z", KeyEvent{Key: KeyBacktab}},
		{"home with modifier", "\x1b[1;5H", KeyEvent{Key: KeyHome}},
		{"delete with modifier", "\x1b[3;2~", KeyEvent{Key: KeyDelete}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			reader := NewKeyReader(bytes.NewReader([]byte(tt.input)))
			got, err := reader.ReadKey()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeyReader_ReadKey_FunctionKeys(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  KeyEvent
	}{
		{"F1 SS3", "\x1bOP", KeyEvent{Key: KeyFunction, Rune: 1}},
		{"F4 SS3", "\x1bOS", KeyEvent{Key: KeyFunction, Rune: 4}},
		{"F1 tilde", "\x1b[11~", KeyEvent{Key: KeyFunction, Rune: 1}},
		{"F5 tilde", "\x1b[15~", KeyEvent{Key: KeyFunction, Rune: 5}},
		{"F6 tilde", "\x1b[17~", KeyEvent{Key: KeyFunction, Rune: 6}},
		{"F12 tilde", "\x1b[24~", KeyEvent{Key: KeyFunction, Rune: 12}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			reader := NewKeyReader(bytes.NewReader([]byte(tt.input)))
			got, err := reader.ReadKey()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeyReader_ReadKey_EscapeAlone(t *testing.T) {
	t.Parallel()

	reader := NewKeyReader(bytes.NewReader([]byte{0x1B}))
	got, err := reader.ReadKey()
	require.NoError(t, err)
	assert.Equal(t, KeyEvent{Key: KeyEscape}, got)

	_, err = reader.ReadKey()
	assert.ErrorIs(t, err, io.EOF)
}

func TestKeyReader_ReadKey_AltChord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  KeyEvent
	}{
		{"alt+a", "\x1ba", KeyEvent{Key: KeyAlt, Rune: 'a'}},
		{"alt+x", "\x1bx", KeyEvent{Key: KeyAlt, Rune: 'x'}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			reader := NewKeyReader(bytes.NewReader([]byte(tt.input)))
			got, err := reader.ReadKey()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeyReader_ReadKey_UTF8(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []byte
		want  KeyEvent
	}{
		{"euro sign", []byte{0xE2, 0x82, 0xAC}, KeyEvent{Key: KeyRune, Rune: '€'}},
		{"chinese char", []byte{0xE4, 0xB8, 0xAD}, KeyEvent{Key: KeyRune, Rune: '中'}},
		{"emoji", []byte{0xF0, 0x9F, 0x98, 0x80}, KeyEvent{Key: KeyRune, Rune: '\U0001f600'}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			reader := NewKeyReader(bytes.NewReader(tt.input))
			got, err := reader.ReadKey()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKeyReader_ReadKey_UnknownCSI(t *testing.T) {
	t.Parallel()

	reader := NewKeyReader(bytes.NewReader([]byte("\x1b[99q")))
	got, err := reader.ReadKey()
	require.NoError(t, err)
	assert.Equal(t, KeyEvent{Key: KeyUnknown}, got)
}

func TestKeyReader_ReadKey_Sequential(t *testing.T) {
	t.Parallel()

	reader := NewKeyReader(bytes.NewReader([]byte("dw\x1b[A!")))

	want := []KeyEvent{
		{Key: KeyRune, Rune: 'd'},
		{Key: KeyRune, Rune: 'w'},
		{Key: KeyUp},
		{Key: KeyRune, Rune: '!'},
	}
	for _, expected := range want {
		got, err := reader.ReadKey()
		require.NoError(t, err)
		assert.Equal(t, expected, got)
	}

	_, err := reader.ReadKey()
	assert.ErrorIs(t, err, io.EOF)
}
