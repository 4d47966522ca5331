package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIsDeterministic(t *testing.T) {
	a := Generate(42, 25, 1007)
	b := Generate(42, 25, 1007)
	assert.Equal(t, a, b)

	c := Generate(43, 25, 1007)
	assert.NotEqual(t, a, c)
}

func TestGenerateProducesValidProducts(t *testing.T) {
	products := Generate(9, 50, 1007)
	require.Len(t, products, 50)

	seen := map[string]bool{}
	for i, p := range products {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true

		n, ok := idNumber(p.ID)
		require.True(t, ok)
		assert.Equal(t, 1007+i, n)

		assert.True(t, p.Category.Valid())
		assert.True(t, p.Price.IsPositive())
		assert.GreaterOrEqual(t, p.Stock, 0)
		assert.GreaterOrEqual(t, p.Rating, 3.0)
		assert.LessOrEqual(t, p.Rating, 5.0)
		assert.NotEmpty(t, p.Specifications["color"].String())
		assert.Contains(t, p.Name, p.Brand)
	}
}

func TestGenerateZero(t *testing.T) {
	assert.Empty(t, Generate(1, 0, 1007))
}
