package valuation

import (
	"sort"

	"github.com/KalideEndale/portfolio-viewer01/internal/models"
)

// Sort returns a new slice ordered by the chosen metric. The sort is stable —
// ties keep their input order so repeated direction toggles are deterministic
// — and the input slice is never mutated, since view sorting must not disturb
// the store's drag-and-drop sequence.
func Sort(results []models.ValuationResult, key models.SortKey, direction models.SortDirection) []models.ValuationResult {
	sorted := make([]models.ValuationResult, len(results))
	copy(sorted, results)

	value := func(r models.ValuationResult) float64 {
		switch key {
		case models.SortByProfitAndLoss:
			return r.ProfitAndLoss
		case models.SortByPortfolioWeight:
			return r.PortfolioWeightPercent
		default:
			return r.PositionValue
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		if direction == models.SortAscending {
			return value(sorted[i]) < value(sorted[j])
		}
		return value(sorted[i]) > value(sorted[j])
	})

	return sorted
}
