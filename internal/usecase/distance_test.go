package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"textlab/internal/domain"
)

func TestEditDistanceUseCase_Distance(t *testing.T) {
	ctx := context.Background()
	uc := NewEditDistanceUseCase(10, true)

	t.Run("Should compute the classic example", func(t *testing.T) {
		res, err := uc.Distance(ctx, "kitten", "sitting")
		require.NoError(t, err)
		assert.Equal(t, 3, res.Distance)
		assert.Equal(t, "kitten", res.Source)
		assert.Equal(t, "sitting", res.Target)
	})

	t.Run("Should trim surrounding whitespace", func(t *testing.T) {
		res, err := uc.Distance(ctx, "  flaw\n", "lawn ")
		require.NoError(t, err)
		assert.Equal(t, 2, res.Distance)
		assert.Equal(t, "flaw", res.Source)
		assert.Equal(t, "lawn", res.Target)
	})

	t.Run("Should count runes not bytes", func(t *testing.T) {
		res, err := uc.Distance(ctx, "café", "cafe")
		require.NoError(t, err)
		assert.Equal(t, 1, res.Distance)
	})

	t.Run("Should handle empty inputs", func(t *testing.T) {
		res, err := uc.Distance(ctx, "", "")
		require.NoError(t, err)
		assert.Equal(t, 0, res.Distance)

		res, err = uc.Distance(ctx, "abc", "")
		require.NoError(t, err)
		assert.Equal(t, 3, res.Distance)
	})

	t.Run("Should reject inputs over the limit", func(t *testing.T) {
		_, err := uc.Distance(ctx, strings.Repeat("a", 11), "a")
		assert.ErrorIs(t, err, domain.ErrInputTooLarge)

		_, err = uc.Distance(ctx, "a", strings.Repeat("ü", 11))
		assert.ErrorIs(t, err, domain.ErrInputTooLarge)

		res, err := uc.Distance(ctx, strings.Repeat("ü", 10), "")
		require.NoError(t, err)
		assert.Equal(t, 10, res.Distance)
	})

	t.Run("Should keep whitespace when trimming is off", func(t *testing.T) {
		raw := NewEditDistanceUseCase(0, false)
		res, err := raw.Distance(ctx, " a", "a")
		require.NoError(t, err)
		assert.Equal(t, 1, res.Distance)

		res, err = raw.Distance(ctx, strings.Repeat("a", 2000), "")
		require.NoError(t, err)
		assert.Equal(t, 2000, res.Distance)
	})
}

func TestEditDistanceUseCase_Matrix(t *testing.T) {
	uc := NewEditDistanceUseCase(10, true)

	m, err := uc.Matrix(context.Background(), "ab", "b")
	require.NoError(t, err)
	assert.Equal(t, [][]int{
		{0, 1},
		{1, 1},
		{2, 1},
	}, m)

	_, err = uc.Matrix(context.Background(), strings.Repeat("x", 11), "")
	assert.ErrorIs(t, err, domain.ErrInputTooLarge)
}
