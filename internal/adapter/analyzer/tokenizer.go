package analyzer

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"textlab/internal/domain"
)

// Mode selects the token granularity.
type Mode int

const (
	ModeChar Mode = iota
	ModeWord
)

// ParseMode maps "char" or "word" to a Mode. An empty name selects ModeChar.
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "char", "character":
		return ModeChar, nil
	case "word":
		return ModeWord, nil
	}
	return 0, fmt.Errorf("%w: unknown tokenize mode %q", domain.ErrValidation, name)
}

func (m Mode) String() string {
	if m == ModeWord {
		return "word"
	}
	return "char"
}

// Tokenizer splits text into characters or word-like spans.
type Tokenizer struct{}

// NewTokenizer creates a new Tokenizer.
func NewTokenizer() *Tokenizer {
	return &Tokenizer{}
}

// Tokenize splits text according to mode. Offsets are byte offsets into text.
func (t *Tokenizer) Tokenize(text string, mode Mode) []domain.Token {
	if mode == ModeWord {
		return splitWords(text)
	}
	return splitChars(text)
}

// Words returns the lowercased word tokens of text.
func (t *Tokenizer) Words(text string) []string {
	spans := splitWords(text)
	words := make([]string, len(spans))
	for i, s := range spans {
		words[i] = strings.ToLower(s.Value)
	}
	return words
}

// Values strips offsets from tokens.
func Values(tokens []domain.Token) []string {
	out := make([]string, len(tokens))
	for i, tok := range tokens {
		out[i] = tok.Value
	}
	return out
}

func splitChars(text string) []domain.Token {
	tokens := make([]domain.Token, 0, utf8.RuneCountInString(text))
	for i, r := range text {
		tokens = append(tokens, domain.Token{Value: string(r), Offset: i})
	}
	return tokens
}

// splitWords extracts maximal runs of letters and digits.
func splitWords(text string) []domain.Token {
	var words []domain.Token
	start := -1

	for i, r := range text {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			words = append(words, domain.Token{Value: text[start:i], Offset: start})
			start = -1
		}
	}
	if start >= 0 {
		words = append(words, domain.Token{Value: text[start:], Offset: start})
	}

	return words
}
