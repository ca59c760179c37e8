package keymode

import "unicode"

// Word selects between the two word granularities of modal editors:
// WordLower is the "w" kind, where punctuation runs count as words of
// their own, and WordUpper is the "W" kind, where only whitespace
// separates words.
type Word int

const (
	WordLower Word = iota
	WordUpper
)

func (w Word) String() string {
	if w == WordUpper {
		return "Upper"
	}
	return "Lower"
}

// wordChar classifies a rune for word boundary detection.
type wordChar int

const (
	wordCharBlank wordChar = iota
	wordCharKeyword
	wordCharNonBlank
)

func classifyWordChar(r rune, word Word) wordChar {
	switch {
	case unicode.IsSpace(r):
		return wordCharBlank
	case word == WordUpper:
		return wordCharNonBlank
	case unicode.IsLetter(r), unicode.IsDigit(r), r == '_':
		return wordCharKeyword
	default:
		return wordCharNonBlank
	}
}

// WordIter walks the words of a single line. Each call to Next returns
// the byte offset of the next word and its text. With WordLower a word
// is a run of keyword characters (letters, digits, underscore) or a run
// of other non-blank characters; with WordUpper any run of non-blank
// characters is one word.
type WordIter struct {
	line  string
	word  Word
	index int
}

// NewWordIter returns an iterator over the words of line.
func NewWordIter(line string, word Word) *WordIter {
	return &WordIter{line: line, word: word}
}

// Next returns the start offset and text of the next word. The third
// return is false once the line is exhausted.
func (it *WordIter) Next() (int, string, bool) {
	start := -1
	end := -1
	last := wordCharBlank
	for sub, r := range it.line[it.index:] {
		index := it.index + sub
		kind := classifyWordChar(r, it.word)
		if kind == last {
			continue
		}
		if kind == wordCharBlank || start >= 0 {
			end = index
			break
		}
		start = index
		last = kind
	}
	if start < 0 {
		it.index = len(it.line)
		return 0, "", false
	}
	if end < 0 {
		end = len(it.line)
	}
	it.index = end
	return start, it.line[start:end], true
}
