// Package valuation implements the portfolio valuation engine: pure
// functions combining the holdings snapshot with the latest quote snapshot
// into per-holding and aggregate metrics.
package valuation

import "github.com/KalideEndale/portfolio-viewer01/internal/models"

// Valuate computes a ValuationResult per holding plus the portfolio
// aggregate. Results preserve holding order — manual reordering in the view
// depends on it. A holding without a quote is valued at price 0 / change 0
// rather than skipped, so the row count always matches the holding count.
// When the portfolio total is zero every weight is zero, never NaN or Inf.
func Valuate(holdings []models.Holding, quotes models.QuoteSnapshot, timeFrame models.TimeFrame) ([]models.ValuationResult, models.PortfolioAggregate) {
	results := make([]models.ValuationResult, 0, len(holdings))
	aggregate := models.PortfolioAggregate{HoldingCount: len(holdings)}

	for _, h := range holdings {
		quote, ok := quotes[h.Symbol]
		if !ok {
			quote = models.Quote{Symbol: h.Symbol}
		}

		positionValue := h.Shares * quote.Price
		costBasis := h.Shares * h.AverageCost

		results = append(results, models.ValuationResult{
			Symbol:              h.Symbol,
			DisplayName:         h.DisplayName,
			Shares:              h.Shares,
			AverageCost:         h.AverageCost,
			Price:               quote.Price,
			PositionValue:       positionValue,
			CostBasisValue:      costBasis,
			ProfitAndLoss:       positionValue - costBasis,
			ChangePercent:       quote.ChangePercent,
			ScaledChangePercent: ScaleChangePercent(quote.ChangePercent, timeFrame),
			SyntheticQuote:      quote.Synthetic,
		})

		aggregate.TotalPositionValue += positionValue
		aggregate.TotalCostBasis += costBasis
	}

	aggregate.TotalProfitAndLoss = aggregate.TotalPositionValue - aggregate.TotalCostBasis

	if aggregate.TotalPositionValue > 0 {
		for i := range results {
			results[i].PortfolioWeightPercent = results[i].PositionValue / aggregate.TotalPositionValue * 100
		}
	}

	return results, aggregate
}
