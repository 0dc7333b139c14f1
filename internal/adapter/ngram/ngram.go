package ngram

import (
	"textlab/internal/domain"
)

// Model holds the n-grams of one token sequence: the ordered sequence with
// duplicates and the occurrence count of each distinct n-gram.
type Model struct {
	Order    domain.NGramOrder
	Sequence []domain.NGram
	Counts   map[string]int
	Total    int
}

// Extract slides a window of width order over tokens and builds the model in one pass.
// Fewer tokens than order yields an empty model.
func Extract(tokens []string, order domain.NGramOrder) *Model {
	n := int(order)
	size := len(tokens) - n + 1
	if size < 0 || n <= 0 {
		size = 0
	}

	m := &Model{
		Order:    order,
		Sequence: make([]domain.NGram, 0, size),
		Counts:   make(map[string]int, size),
		Total:    len(tokens),
	}

	for i := 0; i < size; i++ {
		g := domain.NGram{Tokens: tokens[i : i+n : i+n]}
		m.Sequence = append(m.Sequence, g)
		m.Counts[g.Key()]++
	}

	return m
}

// Count returns how often g occurred.
func (m *Model) Count(g domain.NGram) int {
	return m.Counts[g.Key()]
}

// CountKey returns the count for an already joined key.
func (m *Model) CountKey(key string) int {
	return m.Counts[key]
}

// Distinct is the number of distinct n-grams. For a unigram model this is the vocabulary size.
func (m *Model) Distinct() int {
	return len(m.Counts)
}

// Len is the number of n-grams in the sequence.
func (m *Model) Len() int {
	return len(m.Sequence)
}

// Surfaces returns the display strings of the sequence, in order.
func (m *Model) Surfaces() []string {
	out := make([]string, len(m.Sequence))
	for i, g := range m.Sequence {
		out[i] = g.Surface()
	}
	return out
}
