package keymode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wordSpan struct {
	start int
	text  string
}

func collectWords(line string, word Word) []wordSpan {
	var spans []wordSpan
	it := NewWordIter(line, word)
	for {
		start, text, ok := it.Next()
		if !ok {
			return spans
		}
		spans = append(spans, wordSpan{start, text})
	}
}

func TestWordIter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		line string
		word Word
		want []wordSpan
	}{
		{
			name: "punctuation splits words",
			line: ".test.some....words    ",
			word: WordLower,
			want: []wordSpan{
				{0, "."},
				{1, "test"},
				{5, "."},
				{6, "some"},
				{10, "...."},
				{14, "words"},
			},
		},
		{
			name: "only whitespace splits WORDs",
			line: ".test.some    words    ",
			word: WordUpper,
			want: []wordSpan{
				{0, ".test.some"},
				{14, "words"},
			},
		},
		{
			name: "underscore and digits are word chars",
			line: "foo_bar2 baz",
			word: WordLower,
			want: []wordSpan{
				{0, "foo_bar2"},
				{9, "baz"},
			},
		},
		{
			name: "multibyte runes keep byte offsets",
			line: "héllo wörld",
			word: WordLower,
			want: []wordSpan{
				{0, "héllo"},
				{7, "wörld"},
			},
		},
		{
			name: "tabs separate words",
			line: "a\tb",
			word: WordLower,
			want: []wordSpan{
				{0, "a"},
				{2, "b"},
			},
		},
		{
			name: "leading and trailing blanks",
			line: "   one   ",
			word: WordLower,
			want: []wordSpan{
				{3, "one"},
			},
		},
		{
			name: "empty line",
			line: "",
			word: WordLower,
			want: nil,
		},
		{
			name: "only blanks",
			line: "    ",
			word: WordUpper,
			want: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, collectWords(tt.line, tt.word))
		})
	}
}

func TestWordIter_ExhaustedStaysDone(t *testing.T) {
	t.Parallel()

	it := NewWordIter("one", WordLower)
	_, _, ok := it.Next()
	require.True(t, ok)

	for i := 0; i < 3; i++ {
		_, _, ok = it.Next()
		assert.False(t, ok)
	}
}

func TestWordString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Lower", WordLower.String())
	assert.Equal(t, "Upper", WordUpper.String())
}
