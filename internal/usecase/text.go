package usecase

import (
	"context"
	"fmt"

	"textlab/internal/adapter/analyzer"
	"textlab/internal/adapter/ngram"
	"textlab/internal/domain"
)

// TextUseCase serves the tokenize and n-gram listing operations.
type TextUseCase struct {
	tokenizer *analyzer.Tokenizer
}

// NewTextUseCase creates a new text use case.
func NewTextUseCase(tokenizer *analyzer.Tokenizer) *TextUseCase {
	return &TextUseCase{tokenizer: tokenizer}
}

// Tokenize splits text in the named mode ("char" when empty) and returns the token values.
func (u *TextUseCase) Tokenize(ctx context.Context, text, mode string) ([]string, error) {
	m, err := analyzer.ParseMode(mode)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return analyzer.Values(u.tokenizer.Tokenize(text, m)), nil
}

// NGrams lists the n-grams of text's lowercased words, duplicates kept, in order.
// An empty type name selects unigrams.
func (u *TextUseCase) NGrams(ctx context.Context, text, typeName string) ([]string, error) {
	order := domain.Unigram
	if typeName != "" {
		parsed, err := domain.ParseNGramOrder(typeName)
		if err != nil {
			return nil, err
		}
		order = parsed
	}
	model, err := u.Model(ctx, text, order)
	if err != nil {
		return nil, err
	}
	return model.Surfaces(), nil
}

// Model extracts the n-gram model of text at order.
func (u *TextUseCase) Model(ctx context.Context, text string, order domain.NGramOrder) (*ngram.Model, error) {
	if !order.Valid() {
		return nil, fmt.Errorf("%w: invalid n-gram order %d", domain.ErrValidation, int(order))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ngram.Extract(u.tokenizer.Words(text), order), nil
}
