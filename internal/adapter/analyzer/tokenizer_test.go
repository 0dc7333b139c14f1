package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textlab/internal/domain"
)

func TestTokenizer_CharMode(t *testing.T) {
	tok := NewTokenizer()

	tokens := tok.Tokenize("Hi, é!", ModeChar)
	assert.Equal(t, []string{"H", "i", ",", " ", "é", "!"}, Values(tokens))
	// é is two bytes wide, so the following token starts two bytes later.
	assert.Equal(t, 4, tokens[4].Offset)
	assert.Equal(t, 6, tokens[5].Offset)
}

func TestTokenizer_WordMode(t *testing.T) {
	tok := NewTokenizer()

	tokens := tok.Tokenize("Hello! This is a test. 10.5", ModeWord)
	assert.Equal(t, []string{"Hello", "This", "is", "a", "test", "10", "5"}, Values(tokens))
	assert.Equal(t, domain.Token{Value: "This", Offset: 7}, tokens[1])
}

func TestTokenizer_Words(t *testing.T) {
	tok := NewTokenizer()

	words := tok.Words("The quick brown fox jumps over the lazy dog.")
	assert.Equal(t, []string{"the", "quick", "brown", "fox", "jumps", "over", "the", "lazy", "dog"}, words)
}

func TestTokenizer_EmptyInput(t *testing.T) {
	tok := NewTokenizer()

	assert.Empty(t, tok.Tokenize("", ModeChar))
	assert.Empty(t, tok.Tokenize("", ModeWord))
	assert.Empty(t, tok.Words("  ...  "))
}

func TestSplitWords(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"hello world", 2},
		{"hello_world", 2},
		{"hello-world", 2},
		{"func(x, y)", 3},
		{"CamelCase", 1},
		{"123numbers456", 1},
		{"don't", 2},
	}

	for _, tt := range tests {
		words := splitWords(tt.input)
		if len(words) != tt.expected {
			t.Errorf("splitWords(%q) = %d words, want %d: %v", tt.input, len(words), tt.expected, words)
		}
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeChar, m)

	m, err = ParseMode("word")
	require.NoError(t, err)
	assert.Equal(t, ModeWord, m)

	_, err = ParseMode("sentence")
	assert.ErrorIs(t, err, domain.ErrValidation)
}
