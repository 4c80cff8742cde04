package valuation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KalideEndale/portfolio-viewer01/internal/models"
)

func sortFixture() []models.ValuationResult {
	return []models.ValuationResult{
		{Symbol: "AAPL", PositionValue: 1800, ProfitAndLoss: 300, PortfolioWeightPercent: 30},
		{Symbol: "MSFT", PositionValue: 1230, ProfitAndLoss: -50, PortfolioWeightPercent: 20.5},
		{Symbol: "NVDA", PositionValue: 2970, ProfitAndLoss: 870, PortfolioWeightPercent: 49.5},
	}
}

func TestSort_ByPositionValueDescending(t *testing.T) {
	sorted := Sort(sortFixture(), models.SortByPositionValue, models.SortDescending)
	require.Len(t, sorted, 3)
	assert.Equal(t, "NVDA", sorted[0].Symbol)
	assert.Equal(t, "AAPL", sorted[1].Symbol)
	assert.Equal(t, "MSFT", sorted[2].Symbol)
}

func TestSort_ByProfitAndLossAscending(t *testing.T) {
	sorted := Sort(sortFixture(), models.SortByProfitAndLoss, models.SortAscending)
	assert.Equal(t, "MSFT", sorted[0].Symbol)
	assert.Equal(t, "AAPL", sorted[1].Symbol)
	assert.Equal(t, "NVDA", sorted[2].Symbol)
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	input := sortFixture()
	Sort(input, models.SortByPositionValue, models.SortAscending)

	assert.Equal(t, "AAPL", input[0].Symbol)
	assert.Equal(t, "MSFT", input[1].Symbol)
	assert.Equal(t, "NVDA", input[2].Symbol)
}

func TestSort_TiesKeepInputOrder(t *testing.T) {
	input := []models.ValuationResult{
		{Symbol: "A", PositionValue: 100},
		{Symbol: "B", PositionValue: 100},
		{Symbol: "C", PositionValue: 100},
	}

	sorted := Sort(input, models.SortByPositionValue, models.SortDescending)
	assert.Equal(t, "A", sorted[0].Symbol)
	assert.Equal(t, "B", sorted[1].Symbol)
	assert.Equal(t, "C", sorted[2].Symbol)
}
