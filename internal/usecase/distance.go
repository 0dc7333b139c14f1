package usecase

import (
	"context"
	"fmt"
	"strings"

	"textlab/internal/adapter/distance"
	"textlab/internal/domain"
)

// EditDistanceResult echoes the compared strings after normalization.
type EditDistanceResult struct {
	Distance int    `json:"distance"`
	Source   string `json:"source"`
	Target   string `json:"target"`
}

// EditDistanceUseCase computes bounded Levenshtein distances over runes.
type EditDistanceUseCase struct {
	maxRunes  int
	trimSpace bool
}

// NewEditDistanceUseCase creates an edit distance use case. maxRunes <= 0 disables the bound.
func NewEditDistanceUseCase(maxRunes int, trimSpace bool) *EditDistanceUseCase {
	return &EditDistanceUseCase{
		maxRunes:  maxRunes,
		trimSpace: trimSpace,
	}
}

// Distance returns the minimum number of rune insertions, deletions and
// substitutions turning source into target.
func (u *EditDistanceUseCase) Distance(ctx context.Context, source, target string) (*EditDistanceResult, error) {
	s, t, err := u.prepare(ctx, source, target)
	if err != nil {
		return nil, err
	}
	return &EditDistanceResult{
		Distance: distance.Levenshtein(s, t),
		Source:   string(s),
		Target:   string(t),
	}, nil
}

// Matrix returns the full dynamic programming grid, cell [i][j] holding the
// distance between the first i source runes and the first j target runes.
func (u *EditDistanceUseCase) Matrix(ctx context.Context, source, target string) ([][]int, error) {
	s, t, err := u.prepare(ctx, source, target)
	if err != nil {
		return nil, err
	}
	return distance.Matrix(s, t), nil
}

func (u *EditDistanceUseCase) prepare(ctx context.Context, source, target string) ([]rune, []rune, error) {
	if u.trimSpace {
		source = strings.TrimSpace(source)
		target = strings.TrimSpace(target)
	}
	s, t := []rune(source), []rune(target)

	if u.maxRunes > 0 {
		if len(s) > u.maxRunes {
			return nil, nil, fmt.Errorf("%w: source has %d characters, limit is %d", domain.ErrInputTooLarge, len(s), u.maxRunes)
		}
		if len(t) > u.maxRunes {
			return nil, nil, fmt.Errorf("%w: target has %d characters, limit is %d", domain.ErrInputTooLarge, len(t), u.maxRunes)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	return s, t, nil
}
