package lexicon

import (
	"fmt"
	"strings"

	"textlab/internal/domain"
	"textlab/internal/port"
)

type substitution struct {
	suffix      string
	replacement string
}

// Detachment rules tried on regular inflections, per part of speech.
var substitutions = map[domain.PartOfSpeech][]substitution{
	domain.Noun: {
		{"s", ""}, {"ses", "s"}, {"xes", "x"}, {"zes", "z"},
		{"ches", "ch"}, {"shes", "sh"}, {"men", "man"}, {"ies", "y"},
	},
	domain.Verb: {
		{"s", ""}, {"ies", "y"}, {"es", "e"}, {"es", ""},
		{"ed", "e"}, {"ed", ""}, {"ing", "e"}, {"ing", ""},
	},
	domain.Adjective: {
		{"er", ""}, {"est", ""}, {"er", "e"}, {"est", "e"},
	},
}

// Lemmatizer resolves word forms to base forms against a LemmaIndex.
type Lemmatizer struct {
	index port.LemmaIndex
}

var _ port.Lemmatizer = (*Lemmatizer)(nil)

func NewLemmatizer(index port.LemmaIndex) *Lemmatizer {
	return &Lemmatizer{index: index}
}

// Candidates lists the base forms of word known to the dictionary, in
// discovery order without duplicates. Irregular forms listed in the exception
// file are resolved only through that list.
func (l *Lemmatizer) Candidates(word string, pos domain.PartOfSpeech) ([]string, error) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word == "" {
		return nil, nil
	}

	exc, err := l.index.Exceptions(pos, word)
	if err != nil {
		return nil, fmt.Errorf("exception lookup for %q: %w", word, err)
	}

	forms := []string{word}
	if len(exc) > 0 {
		forms = append(forms, exc...)
	} else {
		for _, s := range substitutions[pos] {
			if strings.HasSuffix(word, s.suffix) {
				forms = append(forms, word[:len(word)-len(s.suffix)]+s.replacement)
			}
		}
	}

	var result []string
	seen := make(map[string]struct{}, len(forms))
	for _, f := range forms {
		if _, dup := seen[f]; dup || f == "" {
			continue
		}
		seen[f] = struct{}{}
		ok, err := l.index.HasLemma(pos, f)
		if err != nil {
			return nil, fmt.Errorf("lemma lookup for %q: %w", f, err)
		}
		if ok {
			result = append(result, f)
		}
	}
	return result, nil
}

// Lemma returns the shortest candidate base form, or domain.ErrLookupMiss.
func (l *Lemmatizer) Lemma(word string, pos domain.PartOfSpeech) (string, error) {
	candidates, err := l.Candidates(word, pos)
	if err != nil {
		return "", err
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("%w: %q (%s)", domain.ErrLookupMiss, word, pos)
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if len(c) < len(best) {
			best = c
		}
	}
	return best, nil
}
