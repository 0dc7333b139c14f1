package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textlab/internal/adapter/analyzer"
	"textlab/internal/adapter/lexicon"
	"textlab/internal/adapter/subword"
	"textlab/internal/domain"
)

func newSeedMorph(t *testing.T, pos domain.PartOfSpeech) *MorphUseCase {
	t.Helper()
	idx, err := lexicon.LoadMemoryIndex(lexicon.SeedFS())
	require.NoError(t, err)
	return NewMorphUseCase(
		subword.NewWordPiece(subword.SeedVocab()),
		analyzer.NewPorterStemmer(),
		lexicon.NewLemmatizer(idx),
		pos,
	)
}

type failingLemmatizer struct{}

func (failingLemmatizer) Lemma(string, domain.PartOfSpeech) (string, error) {
	return "", errors.New("disk read failed")
}

func TestMorphUseCase_Analyze(t *testing.T) {
	ctx := context.Background()

	t.Run("Should analyze a word found whole in the vocabulary", func(t *testing.T) {
		uc := newSeedMorph(t, domain.Noun)
		res, err := uc.Analyze(ctx, "  Running ")
		require.NoError(t, err)
		assert.Equal(t, "running", res.Original)
		assert.Equal(t, "running", res.Root)
		assert.Equal(t, "", res.Suffix)
		assert.Equal(t, []string{"running"}, res.Pieces)
		assert.Equal(t, "run", res.Stem)
		assert.Equal(t, "running", res.Lemma)
	})

	t.Run("Should look lemmas up under the configured part of speech", func(t *testing.T) {
		uc := newSeedMorph(t, domain.Verb)
		res, err := uc.Analyze(ctx, "running")
		require.NoError(t, err)
		assert.Equal(t, "run", res.Lemma)
	})

	t.Run("Should join continuation pieces into the suffix", func(t *testing.T) {
		uc := newSeedMorph(t, domain.Noun)
		res, err := uc.Analyze(ctx, "unfriendly")
		require.NoError(t, err)
		assert.Equal(t, "un", res.Root)
		assert.Equal(t, "friendly", res.Suffix)
		assert.Equal(t, []string{"un", "##friend", "##ly"}, res.Pieces)
		assert.Equal(t, "unfriendli", res.Stem)
	})

	t.Run("Should fall back to the word when the dictionary has no entry", func(t *testing.T) {
		uc := newSeedMorph(t, domain.Noun)
		res, err := uc.Analyze(ctx, "qwzxv")
		require.NoError(t, err)
		assert.Equal(t, "qwzxv", res.Lemma)
		assert.NotEmpty(t, res.Stem)
	})

	t.Run("Should reject an empty word", func(t *testing.T) {
		uc := newSeedMorph(t, domain.Noun)
		_, err := uc.Analyze(ctx, "   ")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Should surface dictionary failures other than a miss", func(t *testing.T) {
		uc := NewMorphUseCase(
			subword.NewWordPiece(subword.SeedVocab()),
			analyzer.NewPorterStemmer(),
			failingLemmatizer{},
			domain.Noun,
		)
		_, err := uc.Analyze(ctx, "cats")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk read failed")
	})
}

func TestUseCases_ConcurrentCallsDoNotShareState(t *testing.T) {
	ctx := context.Background()
	morph := newSeedMorph(t, domain.Noun)
	pp := NewPerplexityUseCase(analyzer.NewTokenizer(), domain.Bigram, 4)
	ed := NewEditDistanceUseCase(1000, true)

	words := []string{"cats", "running", "unfriendly", "mice", "boxes", "tokenization", "qwzxv", "churches"}
	want := make([]*domain.MorphAnalysis, len(words))
	for i, w := range words {
		res, err := morph.Analyze(ctx, w)
		require.NoError(t, err)
		want[i] = res
	}

	const rounds = 20
	var wg sync.WaitGroup
	errs := make(chan error, rounds*len(words))
	for r := 0; r < rounds; r++ {
		for i, w := range words {
			wg.Add(1)
			go func(i int, w string) {
				defer wg.Done()

				got, err := morph.Analyze(ctx, w)
				if err != nil {
					errs <- err
					return
				}
				if got.Stem != want[i].Stem || got.Lemma != want[i].Lemma || got.Root != want[i].Root {
					errs <- fmt.Errorf("morph %q: got %+v, want %+v", w, got, want[i])
					return
				}

				dist, err := ed.Distance(ctx, w, w+"s")
				if err != nil {
					errs <- err
					return
				}
				if dist.Distance != 1 || dist.Source != w {
					errs <- fmt.Errorf("distance %q: got %+v", w, dist)
					return
				}

				res, err := pp.Evaluate(ctx, w+" "+w+" end", w+" "+w)
				if err != nil {
					errs <- err
					return
				}
				// P(w|w) = 2/(2+2)
				if res.Perplexity != 2 {
					errs <- fmt.Errorf("perplexity %q: got %v", w, res.Perplexity)
				}
			}(i, w)
		}
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}
