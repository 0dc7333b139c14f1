package port

import "textlab/internal/domain"

// LemmaIndex is a read-only lexical dictionary.
type LemmaIndex interface {
	// HasLemma reports whether lemma is a base form for pos.
	HasLemma(pos domain.PartOfSpeech, lemma string) (bool, error)

	// Exceptions returns the irregular base forms listed for form, if any.
	Exceptions(pos domain.PartOfSpeech, form string) ([]string, error)
}

// Lemmatizer maps a word form to its dictionary base form.
type Lemmatizer interface {
	// Lemma returns the base form of word, or domain.ErrLookupMiss.
	Lemma(word string, pos domain.PartOfSpeech) (string, error)
}
