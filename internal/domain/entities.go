package domain

import (
	"fmt"
	"strings"
)

type Token struct {
	Value  string
	Offset int
}

// NGramOrder is the window width of an n-gram. Only the three named orders exist.
type NGramOrder int

const (
	Unigram NGramOrder = 1
	Bigram  NGramOrder = 2
	Trigram NGramOrder = 3
)

// NGramOrders lists every valid order, lowest first.
var NGramOrders = []NGramOrder{Unigram, Bigram, Trigram}

// ParseNGramOrder maps a wire name (unigram, bigram, trigram) to its order.
func ParseNGramOrder(name string) (NGramOrder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "unigram":
		return Unigram, nil
	case "bigram":
		return Bigram, nil
	case "trigram":
		return Trigram, nil
	}
	return 0, fmt.Errorf("%w: unknown n-gram type %q", ErrValidation, name)
}

// OrderFromInt validates a numeric order.
func OrderFromInt(n int) (NGramOrder, error) {
	o := NGramOrder(n)
	if !o.Valid() {
		return 0, fmt.Errorf("%w: n-gram order must be 1, 2 or 3, got %d", ErrValidation, n)
	}
	return o, nil
}

func (o NGramOrder) Valid() bool {
	return o >= Unigram && o <= Trigram
}

func (o NGramOrder) String() string {
	switch o {
	case Unigram:
		return "unigram"
	case Bigram:
		return "bigram"
	case Trigram:
		return "trigram"
	}
	return fmt.Sprintf("NGramOrder(%d)", int(o))
}

func (o NGramOrder) MarshalText() ([]byte, error) {
	if !o.Valid() {
		return nil, fmt.Errorf("%w: invalid n-gram order %d", ErrValidation, int(o))
	}
	return []byte(o.String()), nil
}

func (o *NGramOrder) UnmarshalText(text []byte) error {
	parsed, err := ParseNGramOrder(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}

// NGram is an ordered tuple of consecutive tokens.
type NGram struct {
	Tokens []string
}

// Key identifies the n-gram in count maps. Tokens are joined with a single space.
func (g NGram) Key() string {
	return strings.Join(g.Tokens, " ")
}

// Surface is the display form of the n-gram.
func (g NGram) Surface() string {
	return g.Key()
}

type PerplexityResult struct {
	Perplexity float64
	Details    string
	Order      NGramOrder
	Smoothing  string
	Evaluated  int
}

type MorphAnalysis struct {
	Original string   `json:"original"`
	Root     string   `json:"root"`
	Suffix   string   `json:"suffix"`
	Pieces   []string `json:"tokens"`
	Stem     string   `json:"stem"`
	Lemma    string   `json:"lemma"`
}

// PartOfSpeech is a lexical category understood by the lemma dictionary.
type PartOfSpeech string

const (
	Noun      PartOfSpeech = "n"
	Verb      PartOfSpeech = "v"
	Adjective PartOfSpeech = "a"
	Adverb    PartOfSpeech = "r"
)

var PartsOfSpeech = []PartOfSpeech{Noun, Verb, Adjective, Adverb}

// ParsePartOfSpeech accepts the single-letter tags and their long names.
func ParsePartOfSpeech(s string) (PartOfSpeech, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "noun":
		return Noun, nil
	case "v", "verb":
		return Verb, nil
	case "a", "s", "adj", "adjective":
		return Adjective, nil
	case "r", "adv", "adverb":
		return Adverb, nil
	}
	return "", fmt.Errorf("%w: unknown part of speech %q", ErrValidation, s)
}

// FileName is the WordNet file suffix for the part of speech (index.noun, noun.exc).
func (p PartOfSpeech) FileName() string {
	switch p {
	case Noun:
		return "noun"
	case Verb:
		return "verb"
	case Adjective:
		return "adj"
	case Adverb:
		return "adv"
	}
	return ""
}
