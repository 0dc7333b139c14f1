package cli

import (
	"fmt"
	"io"
	"os"

	"textlab/config"
	"textlab/internal/adapter/analyzer"
	"textlab/internal/adapter/lexicon"
	"textlab/internal/adapter/subword"
	"textlab/internal/domain"
	"textlab/internal/logger"
	"textlab/internal/port"
	"textlab/internal/server"
	"textlab/internal/usecase"
)

// buildServices loads the vocabulary and dictionary assets once and wires the
// use cases over them. The closer releases the lexicon database, if any.
func buildServices(cfg *config.Config, dir string) (*server.Services, io.Closer, error) {
	order, err := domain.OrderFromInt(cfg.Perplexity.Order)
	if err != nil {
		return nil, nil, err
	}

	tokenizer := analyzer.NewTokenizer()
	morph, closer, err := buildMorph(cfg, dir)
	if err != nil {
		return nil, nil, err
	}

	perplexity := usecase.NewPerplexityUseCase(tokenizer, order, cfg.Perplexity.RoundDigits)
	logger.Debug("Perplexity model configured",
		"order", perplexity.Order().String(),
		"round_digits", cfg.Perplexity.RoundDigits,
	)

	return &server.Services{
		Text:         usecase.NewTextUseCase(tokenizer),
		Perplexity:   perplexity,
		EditDistance: usecase.NewEditDistanceUseCase(cfg.EditDistance.MaxInputRunes, cfg.EditDistance.TrimSpace),
		Morph:        morph,
	}, closer, nil
}

func buildMorph(cfg *config.Config, dir string) (*usecase.MorphUseCase, io.Closer, error) {
	stemmer, err := analyzer.NewStemmer(cfg.Morph.Stemmer)
	if err != nil {
		return nil, nil, err
	}

	segmenter, err := subword.New(subword.Options{
		Type:      cfg.Morph.Segmenter.Type,
		VocabPath: cfg.Morph.Segmenter.VocabPath,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load subword vocabulary: %w", err)
	}

	pos, err := domain.ParsePartOfSpeech(cfg.Morph.LemmaPOS)
	if err != nil {
		return nil, nil, err
	}

	index, closer, err := openLexicon(cfg, dir)
	if err != nil {
		return nil, nil, err
	}

	logger.Debug("Morphology assets loaded",
		"stemmer", stemmer.Name(),
		"segmenter", cfg.Morph.Segmenter.Type,
		"lemma_pos", string(pos),
	)

	return usecase.NewMorphUseCase(segmenter, stemmer, lexicon.NewLemmatizer(index), pos), closer, nil
}

// openLexicon resolves the configured dictionary, then an imported database
// under dir, then the embedded seed.
func openLexicon(cfg *config.Config, dir string) (port.LemmaIndex, io.Closer, error) {
	path := cfg.Morph.Lexicon
	if path == "" && dir != "" {
		if _, err := os.Stat(config.LexiconDBPath(dir)); err == nil {
			path = config.LexiconDBPath(dir)
		}
	}

	index, closer, err := lexicon.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open lexicon: %w", err)
	}
	if path == "" {
		logger.Debug("Using embedded seed lexicon")
	} else {
		logger.Debug("Using lexicon", "path", path)
	}
	return index, closer, nil
}
