package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"textlab/internal/domain"
	"textlab/internal/port"
)

// MorphUseCase decomposes a word into subword pieces, a rule-based stem and a
// dictionary lemma.
type MorphUseCase struct {
	segmenter  port.Segmenter
	stemmer    port.Stemmer
	lemmatizer port.Lemmatizer
	pos        domain.PartOfSpeech
}

// NewMorphUseCase creates a morphological analyzer. Lemmas are looked up under pos.
func NewMorphUseCase(
	segmenter port.Segmenter,
	stemmer port.Stemmer,
	lemmatizer port.Lemmatizer,
	pos domain.PartOfSpeech,
) *MorphUseCase {
	return &MorphUseCase{
		segmenter:  segmenter,
		stemmer:    stemmer,
		lemmatizer: lemmatizer,
		pos:        pos,
	}
}

// Analyze normalizes word and runs the three analyses concurrently.
func (u *MorphUseCase) Analyze(ctx context.Context, word string) (*domain.MorphAnalysis, error) {
	normalized := strings.ToLower(strings.TrimSpace(word))
	if normalized == "" {
		return nil, fmt.Errorf("%w: word is required", domain.ErrValidation)
	}

	var (
		pieces []string
		stem   string
		lemma  string
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		pieces = u.segmenter.Segment(normalized)
		return nil
	})

	g.Go(func() error {
		stem = u.stemmer.Stem(normalized)
		return nil
	})

	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		l, err := u.lemmatizer.Lemma(normalized, u.pos)
		if errors.Is(err, domain.ErrLookupMiss) {
			lemma = normalized
			return nil
		}
		if err != nil {
			return fmt.Errorf("lemma lookup for %q: %w", normalized, err)
		}
		lemma = l
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if pieces == nil {
		pieces = []string{}
	}
	root, suffix := u.split(normalized, pieces)
	return &domain.MorphAnalysis{
		Original: normalized,
		Root:     root,
		Suffix:   suffix,
		Pieces:   pieces,
		Stem:     stem,
		Lemma:    lemma,
	}, nil
}

// split returns the first piece and the remaining pieces joined without their
// continuation marker.
func (u *MorphUseCase) split(word string, pieces []string) (string, string) {
	if len(pieces) == 0 {
		return word, ""
	}
	prefix := u.segmenter.ContinuationPrefix()
	var sb strings.Builder
	for _, p := range pieces[1:] {
		if prefix != "" {
			p = strings.TrimPrefix(p, prefix)
		}
		sb.WriteString(p)
	}
	return pieces[0], sb.String()
}
