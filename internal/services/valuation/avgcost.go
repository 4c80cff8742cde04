package valuation

import "github.com/KalideEndale/portfolio-viewer01/internal/models"

// AverageCost computes the blended per-share cost across purchase lots.
// Negative shares or prices are coerced to zero before aggregation, and an
// empty (or all-zero) lot list yields a zero result rather than dividing by
// zero. Pure function — the calculator dialog simply re-invokes it on every
// row edit.
func AverageCost(lots []models.Lot) models.AverageCostResult {
	var result models.AverageCostResult

	for _, lot := range lots {
		shares := lot.Shares.Value()
		price := lot.Price.Value()
		if shares < 0 {
			shares = 0
		}
		if price < 0 {
			price = 0
		}

		result.TotalShares += shares
		result.TotalCost += shares * price
	}

	if result.TotalShares > 0 {
		result.WeightedAveragePrice = result.TotalCost / result.TotalShares
	}

	return result
}
