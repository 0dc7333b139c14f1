package lexicon

import (
	"io/fs"

	"textlab/internal/domain"
	"textlab/internal/port"
)

// MemoryIndex keeps a parsed dictionary in maps. It is never mutated after
// construction and can be shared between goroutines.
type MemoryIndex struct {
	lemmas     map[domain.PartOfSpeech]map[string]struct{}
	exceptions map[domain.PartOfSpeech]map[string][]string
}

var _ port.LemmaIndex = (*MemoryIndex)(nil)

// NewMemoryIndex indexes entries.
func NewMemoryIndex(e *Entries) *MemoryIndex {
	idx := &MemoryIndex{
		lemmas:     make(map[domain.PartOfSpeech]map[string]struct{}, len(e.Lemmas)),
		exceptions: e.Exceptions,
	}
	for pos, lemmas := range e.Lemmas {
		set := make(map[string]struct{}, len(lemmas))
		for _, l := range lemmas {
			set[l] = struct{}{}
		}
		idx.lemmas[pos] = set
	}
	return idx
}

// LoadMemoryIndex parses a dictionary directory into a MemoryIndex.
func LoadMemoryIndex(fsys fs.FS) (*MemoryIndex, error) {
	e, err := ReadDir(fsys)
	if err != nil {
		return nil, err
	}
	return NewMemoryIndex(e), nil
}

func (m *MemoryIndex) HasLemma(pos domain.PartOfSpeech, lemma string) (bool, error) {
	_, ok := m.lemmas[pos][lemma]
	return ok, nil
}

func (m *MemoryIndex) Exceptions(pos domain.PartOfSpeech, form string) ([]string, error) {
	return m.exceptions[pos][form], nil
}
