package valuation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KalideEndale/portfolio-viewer01/internal/models"
)

func TestValuate_SingleHolding(t *testing.T) {
	holdings := []models.Holding{
		{Symbol: "NVDA", DisplayName: "NVIDIA Corporation", Shares: 50, AverageCost: 690.25},
	}
	quotes := models.QuoteSnapshot{
		"NVDA": {Symbol: "NVDA", Price: 750, ChangePercent: 1.5},
	}

	results, totals := Valuate(holdings, quotes, models.TimeFrameDay)
	require.Len(t, results, 1)

	assert.InDelta(t, 37500.0, results[0].PositionValue, 1e-9)
	assert.InDelta(t, 34512.50, results[0].CostBasisValue, 1e-9)
	assert.InDelta(t, 2987.50, results[0].ProfitAndLoss, 1e-9)
	assert.InDelta(t, 100.0, results[0].PortfolioWeightPercent, 1e-9)

	assert.InDelta(t, 37500.0, totals.TotalPositionValue, 1e-9)
	assert.InDelta(t, 34512.50, totals.TotalCostBasis, 1e-9)
	assert.InDelta(t, 2987.50, totals.TotalProfitAndLoss, 1e-9)
	assert.Equal(t, 1, totals.HoldingCount)
}

func TestValuate_EmptyPortfolio(t *testing.T) {
	results, totals := Valuate(nil, models.QuoteSnapshot{}, models.TimeFrameDay)

	assert.Empty(t, results)
	assert.Zero(t, totals.TotalPositionValue)
	assert.Zero(t, totals.TotalCostBasis)
	assert.Zero(t, totals.TotalProfitAndLoss)
	assert.Equal(t, 0, totals.HoldingCount)
}

func TestValuate_ZeroTotalProducesZeroWeights(t *testing.T) {
	// Watched positions: zero shares everywhere, so the total is zero.
	holdings := []models.Holding{
		{Symbol: "AAPL"},
		{Symbol: "TSLA"},
	}
	quotes := models.QuoteSnapshot{
		"AAPL": {Symbol: "AAPL", Price: 180},
		"TSLA": {Symbol: "TSLA", Price: 250},
	}

	results, totals := Valuate(holdings, quotes, models.TimeFrameDay)
	require.Len(t, results, 2)

	assert.Zero(t, totals.TotalPositionValue)
	for _, r := range results {
		assert.Zero(t, r.PortfolioWeightPercent)
		assert.False(t, r.PortfolioWeightPercent != r.PortfolioWeightPercent, "weight must not be NaN")
	}
}

func TestValuate_MissingQuoteKeepsRow(t *testing.T) {
	holdings := []models.Holding{
		{Symbol: "AAPL", Shares: 10, AverageCost: 150},
		{Symbol: "ZZZZ", Shares: 5, AverageCost: 20},
	}
	quotes := models.QuoteSnapshot{
		"AAPL": {Symbol: "AAPL", Price: 180, ChangePercent: 1.0},
	}

	results, totals := Valuate(holdings, quotes, models.TimeFrameDay)
	require.Len(t, results, 2)

	assert.Equal(t, "ZZZZ", results[1].Symbol)
	assert.Zero(t, results[1].Price)
	assert.Zero(t, results[1].PositionValue)
	// Missing quote still contributes its cost basis to the totals.
	assert.InDelta(t, -100.0, results[1].ProfitAndLoss, 1e-9)
	assert.InDelta(t, 1800.0, totals.TotalPositionValue, 1e-9)
}

func TestValuate_WeightsSumToHundred(t *testing.T) {
	holdings := []models.Holding{
		{Symbol: "AAPL", Shares: 10, AverageCost: 100},
		{Symbol: "MSFT", Shares: 3, AverageCost: 200},
		{Symbol: "NVDA", Shares: 7, AverageCost: 300},
	}
	quotes := models.QuoteSnapshot{
		"AAPL": {Symbol: "AAPL", Price: 180},
		"MSFT": {Symbol: "MSFT", Price: 410},
		"NVDA": {Symbol: "NVDA", Price: 890},
	}

	results, _ := Valuate(holdings, quotes, models.TimeFrameDay)

	sum := 0.0
	for _, r := range results {
		sum += r.PortfolioWeightPercent
	}
	assert.InDelta(t, 100.0, sum, 1e-9)
}

func TestValuate_PreservesHoldingOrder(t *testing.T) {
	holdings := []models.Holding{
		{Symbol: "TSLA", Shares: 1, AverageCost: 100},
		{Symbol: "AAPL", Shares: 100, AverageCost: 100},
		{Symbol: "MSFT", Shares: 10, AverageCost: 100},
	}
	quotes := models.QuoteSnapshot{
		"TSLA": {Symbol: "TSLA", Price: 250},
		"AAPL": {Symbol: "AAPL", Price: 180},
		"MSFT": {Symbol: "MSFT", Price: 410},
	}

	results, _ := Valuate(holdings, quotes, models.TimeFrameDay)
	require.Len(t, results, 3)
	assert.Equal(t, "TSLA", results[0].Symbol)
	assert.Equal(t, "AAPL", results[1].Symbol)
	assert.Equal(t, "MSFT", results[2].Symbol)
}

func TestValuate_ScalesChangePercent(t *testing.T) {
	holdings := []models.Holding{{Symbol: "NVDA", Shares: 1, AverageCost: 100}}
	quotes := models.QuoteSnapshot{
		"NVDA": {Symbol: "NVDA", Price: 890, ChangePercent: 3.2},
	}

	results, _ := Valuate(holdings, quotes, models.TimeFrameYear)
	require.Len(t, results, 1)
	assert.InDelta(t, 27.2, results[0].ScaledChangePercent, 1e-9)
	assert.InDelta(t, 3.2, results[0].ChangePercent, 1e-9)
}

func TestValuate_PropagatesSyntheticFlag(t *testing.T) {
	holdings := []models.Holding{{Symbol: "GRAB", Shares: 2, AverageCost: 3}}
	quotes := models.QuoteSnapshot{
		"GRAB": {Symbol: "GRAB", Price: 4, Synthetic: true},
	}

	results, _ := Valuate(holdings, quotes, models.TimeFrameDay)
	require.Len(t, results, 1)
	assert.True(t, results[0].SyntheticQuote)
}
