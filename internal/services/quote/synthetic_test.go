package quote

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyntheticSource_Deterministic(t *testing.T) {
	a := NewSyntheticSource(42)
	b := NewSyntheticSource(42)

	qa := a.Generate("AAPL")
	qb := b.Generate("AAPL")

	assert.Equal(t, qa.Price, qb.Price)
	assert.Equal(t, qa.ChangePercent, qb.ChangePercent)
}

func TestSyntheticSource_SeedChangesOutput(t *testing.T) {
	a := NewSyntheticSource(42)
	b := NewSyntheticSource(43)

	assert.NotEqual(t, a.Generate("AAPL").Price, b.Generate("AAPL").Price)
}

func TestSyntheticSource_SymbolsDiffer(t *testing.T) {
	s := NewSyntheticSource(42)
	assert.NotEqual(t, s.Generate("AAPL").Price, s.Generate("TSLA").Price)
}

func TestSyntheticSource_FetchQuotes(t *testing.T) {
	s := NewSyntheticSource(42)

	snapshot, err := s.FetchQuotes(context.Background(), []string{"aapl", "TSLA", "", "  "})
	require.NoError(t, err)
	require.Len(t, snapshot, 2)

	q, ok := snapshot["AAPL"]
	require.True(t, ok, "symbols are normalized to uppercase")
	assert.True(t, q.Synthetic)
	assert.GreaterOrEqual(t, q.Price, 50.0)
	assert.LessOrEqual(t, q.Price, 1050.0)
	assert.GreaterOrEqual(t, q.ChangePercent, -5.0)
	assert.LessOrEqual(t, q.ChangePercent, 5.0)
	assert.False(t, q.FetchedAt.IsZero())
}
