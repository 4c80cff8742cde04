package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KalideEndale/portfolio-viewer01/internal/models"
)

func newTestStore(t *testing.T) *HoldingsStore {
	t.Helper()
	s := NewHoldingsStore()
	for _, h := range []models.Holding{
		{Symbol: "AAPL", DisplayName: "Apple Inc.", Shares: 10, AverageCost: 150},
		{Symbol: "TSLA", DisplayName: "Tesla Inc.", Shares: 5, AverageCost: 200},
		{Symbol: "NVDA", DisplayName: "NVIDIA Corporation", Shares: 2, AverageCost: 600},
	} {
		_, err := s.Add(h)
		require.NoError(t, err)
	}
	return s
}

func TestHoldingsStore_AddNormalizes(t *testing.T) {
	s := NewHoldingsStore()

	holdings, err := s.Add(models.Holding{Symbol: "  aapl ", Shares: -5, AverageCost: -10})
	require.NoError(t, err)
	require.Len(t, holdings, 1)

	assert.Equal(t, "AAPL", holdings[0].Symbol)
	assert.Zero(t, holdings[0].Shares)
	assert.Zero(t, holdings[0].AverageCost)
}

func TestHoldingsStore_AddDuplicateRejected(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Add(models.Holding{Symbol: "aapl"})
	assert.ErrorIs(t, err, ErrDuplicateSymbol)
	assert.Len(t, s.List(), 3)
}

func TestHoldingsStore_AddEmptySymbolRejected(t *testing.T) {
	s := NewHoldingsStore()

	_, err := s.Add(models.Holding{Symbol: "   "})
	assert.ErrorIs(t, err, ErrEmptySymbol)
}

func TestHoldingsStore_RemovePreservesOrder(t *testing.T) {
	s := newTestStore(t)

	holdings, err := s.Remove("TSLA")
	require.NoError(t, err)
	require.Len(t, holdings, 2)
	assert.Equal(t, "AAPL", holdings[0].Symbol)
	assert.Equal(t, "NVDA", holdings[1].Symbol)

	// Index stays consistent after the shift.
	h, ok := s.Get("NVDA")
	require.True(t, ok)
	assert.Equal(t, "NVDA", h.Symbol)
}

func TestHoldingsStore_RemoveUnknown(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Remove("ZZZZ")
	assert.ErrorIs(t, err, ErrSymbolNotFound)
}

func TestHoldingsStore_UpdatePartial(t *testing.T) {
	s := newTestStore(t)

	shares := 25.0
	holdings, err := s.Update("aapl", models.HoldingPatch{Shares: &shares})
	require.NoError(t, err)

	assert.InDelta(t, 25.0, holdings[0].Shares, 1e-9)
	assert.Equal(t, "Apple Inc.", holdings[0].DisplayName, "unpatched fields stay put")
	assert.InDelta(t, 150.0, holdings[0].AverageCost, 1e-9)
}

func TestHoldingsStore_UpdateClampsNegatives(t *testing.T) {
	s := newTestStore(t)

	cost := -99.0
	holdings, err := s.Update("TSLA", models.HoldingPatch{AverageCost: &cost})
	require.NoError(t, err)
	assert.Zero(t, holdings[1].AverageCost)
}

func TestHoldingsStore_UpdateUnknown(t *testing.T) {
	s := newTestStore(t)

	name := "Nope"
	_, err := s.Update("ZZZZ", models.HoldingPatch{DisplayName: &name})
	assert.ErrorIs(t, err, ErrSymbolNotFound)
}

func TestHoldingsStore_Reorder(t *testing.T) {
	s := newTestStore(t)

	holdings, err := s.Reorder([]string{"NVDA", "AAPL", "TSLA"})
	require.NoError(t, err)
	assert.Equal(t, []string{"NVDA", "AAPL", "TSLA"}, s.Symbols())
	assert.Equal(t, "NVDA", holdings[0].Symbol)
}

func TestHoldingsStore_ReorderRejectsBadPermutations(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Reorder([]string{"AAPL", "TSLA"})
	assert.ErrorIs(t, err, ErrInvalidOrder)

	_, err = s.Reorder([]string{"AAPL", "AAPL", "NVDA"})
	assert.ErrorIs(t, err, ErrInvalidOrder)

	_, err = s.Reorder([]string{"AAPL", "TSLA", "ZZZZ"})
	assert.ErrorIs(t, err, ErrInvalidOrder)

	// Failed reorders leave the original order untouched.
	assert.Equal(t, []string{"AAPL", "TSLA", "NVDA"}, s.Symbols())
}

func TestHoldingsStore_ListReturnsCopy(t *testing.T) {
	s := newTestStore(t)

	list := s.List()
	list[0].Shares = 9999

	fresh := s.List()
	assert.InDelta(t, 10.0, fresh[0].Shares, 1e-9)
}

func TestNewSeededStore_SkipsDuplicates(t *testing.T) {
	s := NewSeededStore([]models.Holding{
		{Symbol: "AAPL"},
		{Symbol: "aapl"},
		{Symbol: ""},
		{Symbol: "TSLA"},
	})

	assert.Equal(t, []string{"AAPL", "TSLA"}, s.Symbols())
}
