package levenshtein_test

import (
	"testing"

	"github.com/fwojciec/carads/levenshtein"
	"github.com/stretchr/testify/assert"
)

func TestRatio(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"identical", "odyssey", "odyssey", 100},
		{"one deletion", "odysey", "odyssey", 92},
		{"unrelated", "odysey", "accord", 33},
		{"one substitution", "abc", "abd", 67},
		{"empty first", "", "civic", 0},
		{"empty second", "civic", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, levenshtein.Ratio(tt.a, tt.b))
		})
	}
}

func TestPartialRatio(t *testing.T) {
	t.Parallel()

	t.Run("substring scores 100", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 100, levenshtein.PartialRatio("civic", "honda civic"))
		assert.Equal(t, 100, levenshtein.PartialRatio("honda civic", "civic"))
	})

	t.Run("scores best window", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 83, levenshtein.PartialRatio("odysey", "odyssey"))
	})

	t.Run("empty scores 0", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 0, levenshtein.PartialRatio("", "civic"))
	})
}

func TestTokenSortRatio(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 100, levenshtein.TokenSortRatio("civic honda", "honda civic"))
	assert.Equal(t, 0, levenshtein.TokenSortRatio("", "honda civic"))
}

func TestTokenSetRatio(t *testing.T) {
	t.Parallel()

	t.Run("subset scores 100", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 100, levenshtein.TokenSetRatio("honda civic", "2014 honda civic lx"))
	})

	t.Run("repeated words are ignored", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 100, levenshtein.TokenSetRatio("civic civic", "civic"))
	})

	t.Run("disjoint words", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, 33, levenshtein.TokenSetRatio("odysey", "accord"))
	})
}

func TestProcess(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "honda civic lx", levenshtein.Process("  Honda-Civic, LX!! "))
	assert.Equal(t, "", levenshtein.Process("--"))
}
