package analyzer

import (
	"fmt"
	"strings"

	"github.com/kljensen/snowball/english"

	"textlab/internal/port"
)

// Porter2Stemmer is the revised English Snowball stemmer.
type Porter2Stemmer struct{}

func NewPorter2Stemmer() *Porter2Stemmer {
	return &Porter2Stemmer{}
}

func (p *Porter2Stemmer) Name() string {
	return "porter2"
}

func (p *Porter2Stemmer) Stem(word string) string {
	return english.Stem(strings.ToLower(word), true)
}

// NewStemmer returns the stemmer registered under name. An empty name selects porter.
func NewStemmer(name string) (port.Stemmer, error) {
	switch strings.ToLower(name) {
	case "", "porter":
		return NewPorterStemmer(), nil
	case "porter2", "snowball":
		return NewPorter2Stemmer(), nil
	}
	return nil, fmt.Errorf("unsupported stemmer: %s", name)
}
