package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"

	"textlab/internal/adapter/ngram"
	"textlab/internal/domain"
	"textlab/internal/port"
)

const smoothingLaplace = "Laplace add-one smoothing"

// PerplexityUseCase trains an n-gram model on one text and scores another against it.
type PerplexityUseCase struct {
	words       port.WordTokenizer
	order       domain.NGramOrder
	roundDigits int
}

// NewPerplexityUseCase creates a perplexity evaluator at a fixed order.
// A negative roundDigits disables rounding.
func NewPerplexityUseCase(words port.WordTokenizer, order domain.NGramOrder, roundDigits int) *PerplexityUseCase {
	return &PerplexityUseCase{
		words:       words,
		order:       order,
		roundDigits: roundDigits,
	}
}

// Order returns the n-gram order the evaluator uses.
func (u *PerplexityUseCase) Order() domain.NGramOrder {
	return u.order
}

// Evaluate scores testText under a Laplace-smoothed model of trainingText.
func (u *PerplexityUseCase) Evaluate(ctx context.Context, trainingText, testText string) (*domain.PerplexityResult, error) {
	training := u.words.Words(trainingText)
	test := u.words.Words(testText)
	return u.EvaluateTokens(ctx, training, test)
}

// EvaluateTokens is Evaluate over already normalized word tokens.
func (u *PerplexityUseCase) EvaluateTokens(ctx context.Context, training, test []string) (*domain.PerplexityResult, error) {
	if !u.order.Valid() {
		return nil, fmt.Errorf("%w: invalid n-gram order %d", domain.ErrValidation, int(u.order))
	}
	if len(training) == 0 {
		return nil, fmt.Errorf("%w: training text has no words", domain.ErrInsufficientData)
	}
	n := int(u.order)
	if len(test) < n {
		return nil, fmt.Errorf("%w: test text needs at least %d words for a %s model, got %d",
			domain.ErrInsufficientData, n, u.order, len(test))
	}

	model := ngram.Extract(training, u.order)
	vocab := float64(ngram.Extract(training, domain.Unigram).Distinct())

	var contexts *ngram.Model
	if n > 1 {
		contexts = ngram.Extract(training, u.order-1)
	}

	probes := ngram.Extract(test, u.order)
	var logSum float64
	for i, g := range probes.Sequence {
		if i%1024 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		var contextCount int
		if contexts == nil {
			contextCount = model.Total
		} else {
			contextCount = contexts.CountKey(strings.Join(g.Tokens[:n-1], " "))
		}

		p := float64(model.Count(g)+1) / (float64(contextCount) + vocab)
		logSum += math.Log(p)
	}

	evaluated := probes.Len()
	pp := math.Exp(-logSum / float64(evaluated))

	return &domain.PerplexityResult{
		Perplexity: u.round(pp),
		Details: fmt.Sprintf("%s model (order %d), %s, %d n-grams evaluated",
			u.order, n, smoothingLaplace, evaluated),
		Order:     u.order,
		Smoothing: smoothingLaplace,
		Evaluated: evaluated,
	}, nil
}

func (u *PerplexityUseCase) round(v float64) float64 {
	if u.roundDigits < 0 {
		return v
	}
	scale := math.Pow(10, float64(u.roundDigits))
	return math.Round(v*scale) / scale
}
