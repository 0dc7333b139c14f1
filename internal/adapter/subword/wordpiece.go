package subword

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"textlab/internal/port"
)

// WordPiece implements BERT-style greedy longest-match-first segmentation.
type WordPiece struct {
	vocab *Vocab
}

var _ port.Segmenter = (*WordPiece)(nil)

// NewWordPiece creates a segmenter over vocab.
func NewWordPiece(vocab *Vocab) *WordPiece {
	return &WordPiece{vocab: vocab}
}

func (w *WordPiece) ContinuationPrefix() string {
	return w.vocab.continuingPrefix
}

// Segment normalizes word the way the uncased BERT tokenizer does, splits off
// punctuation, and segments each resulting span against the vocabulary.
func (w *WordPiece) Segment(word string) []string {
	text := stripAccents(strings.ToLower(cleanText(word)))

	var pieces []string
	for _, span := range bertPreTokenize(text) {
		pieces = append(pieces, w.segmentSpan(span)...)
	}
	return pieces
}

func (w *WordPiece) segmentSpan(span string) []string {
	if len([]rune(span)) > w.vocab.maxInputChars {
		return []string{w.vocab.unkToken}
	}

	prefix := w.vocab.continuingPrefix
	var pieces []string
	start := 0

	for start < len(span) {
		end := len(span)
		found := ""

		for start < end {
			substr := span[start:end]
			if start > 0 {
				substr = prefix + substr
			}
			if _, ok := w.vocab.ids[substr]; ok {
				found = substr
				break
			}
			end = prevRuneBoundary(span, end)
		}

		if found == "" {
			return []string{w.vocab.unkToken}
		}
		pieces = append(pieces, found)
		start = end
	}

	return pieces
}

// prevRuneBoundary steps end back by one rune so substrings never split a UTF-8 sequence.
func prevRuneBoundary(s string, end int) int {
	end--
	for end > 0 && !isRuneStart(s[end]) {
		end--
	}
	return end
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}

func cleanText(text string) string {
	var result strings.Builder
	for _, r := range text {
		if r == 0 || r == 0xFFFD || isControl(r) {
			continue
		}
		if isWhitespace(r) {
			result.WriteRune(' ')
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

func stripAccents(text string) string {
	var result strings.Builder
	for _, r := range norm.NFD.String(text) {
		if !unicode.Is(unicode.Mn, r) {
			result.WriteRune(r)
		}
	}
	return result.String()
}

func isWhitespace(r rune) bool {
	if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
		return true
	}
	return unicode.Is(unicode.Zs, r)
}

func isControl(r rune) bool {
	if r == '\t' || r == '\n' || r == '\r' {
		return false
	}
	return unicode.IsControl(r)
}

func isPunctuation(r rune) bool {
	if (r >= 33 && r <= 47) || (r >= 58 && r <= 64) ||
		(r >= 91 && r <= 96) || (r >= 123 && r <= 126) {
		return true
	}
	return unicode.IsPunct(r)
}

func bertPreTokenize(text string) []string {
	var tokens []string
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	for _, r := range text {
		switch {
		case isWhitespace(r):
			flush()
		case isPunctuation(r):
			flush()
			tokens = append(tokens, string(r))
		default:
			current.WriteRune(r)
		}
	}
	flush()

	return tokens
}
