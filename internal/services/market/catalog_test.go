package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_SearchBySymbol(t *testing.T) {
	c := NewCatalog()

	results := c.Search("nvda")
	require.Len(t, results, 1)
	assert.Equal(t, "NVDA", results[0].Symbol)
	assert.Equal(t, "NVIDIA Corporation", results[0].Name)
}

func TestCatalog_SearchByName(t *testing.T) {
	c := NewCatalog()

	results := c.Search("alphabet")
	require.Len(t, results, 2)
	assert.Equal(t, "GOOG", results[0].Symbol)
	assert.Equal(t, "GOOGL", results[1].Symbol)
}

func TestCatalog_SearchEmptyTermCapped(t *testing.T) {
	c := NewCatalog()

	results := c.Search("")
	assert.Len(t, results, maxSearchResults)
}

func TestCatalog_SearchNoMatch(t *testing.T) {
	c := NewCatalog()
	assert.Empty(t, c.Search("zzzzzz"))
}

func TestCatalog_Lookup(t *testing.T) {
	c := NewCatalog()

	entry, ok := c.Lookup("  meli ")
	require.True(t, ok)
	assert.Equal(t, "MercadoLibre Inc.", entry.Name)

	_, ok = c.Lookup("ZZZZ")
	assert.False(t, ok)
}

func TestDefaultHoldings(t *testing.T) {
	holdings := DefaultHoldings()
	require.Len(t, holdings, 11)

	assert.Equal(t, "ASML", holdings[0].Symbol)
	assert.Equal(t, "ASML Holding N.V.", holdings[0].DisplayName)
	assert.Equal(t, "AMZN", holdings[10].Symbol)

	for _, h := range holdings {
		assert.NotEmpty(t, h.DisplayName)
		assert.Zero(t, h.Shares, "seed positions start watched, not held")
		assert.Zero(t, h.AverageCost)
	}
}
