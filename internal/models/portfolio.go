// Package models defines data structures for Portfolio Viewer
package models

import "strings"

// Holding represents a tracked portfolio position. Symbol is unique within
// the store and immutable once created; insertion order is significant and
// drives display order. Shares of zero means "watched, not held"; an
// AverageCost of zero means no recorded cost basis.
type Holding struct {
	Symbol      string  `json:"symbol"`
	DisplayName string  `json:"display_name"`
	Shares      float64 `json:"shares"`
	AverageCost float64 `json:"average_cost"`
}

// Normalize canonicalizes the symbol and clamps negative numeric fields to
// zero. Unparsable or negative input never propagates into valuation.
func (h *Holding) Normalize() {
	h.Symbol = NormalizeSymbol(h.Symbol)
	h.DisplayName = strings.TrimSpace(h.DisplayName)
	if h.Shares < 0 {
		h.Shares = 0
	}
	if h.AverageCost < 0 {
		h.AverageCost = 0
	}
}

// NormalizeSymbol returns the canonical uppercase form of a ticker symbol.
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}

// HoldingPatch carries partial updates for a holding. Nil fields are left
// unchanged; the symbol itself cannot be patched.
type HoldingPatch struct {
	DisplayName *string  `json:"display_name,omitempty"`
	Shares      *float64 `json:"shares,omitempty"`
	AverageCost *float64 `json:"average_cost,omitempty"`
}

// ValuationResult holds the derived metrics for a single holding combined
// with its most recent quote.
type ValuationResult struct {
	Symbol                 string  `json:"symbol"`
	DisplayName            string  `json:"display_name"`
	Shares                 float64 `json:"shares"`
	AverageCost            float64 `json:"average_cost"`
	Price                  float64 `json:"price"`
	PositionValue          float64 `json:"position_value"`
	CostBasisValue         float64 `json:"cost_basis_value"`
	ProfitAndLoss          float64 `json:"profit_and_loss"`
	PortfolioWeightPercent float64 `json:"portfolio_weight_pct"`
	ChangePercent          float64 `json:"change_pct"`
	ScaledChangePercent    float64 `json:"scaled_change_pct"`
	SyntheticQuote         bool    `json:"synthetic_quote,omitempty"`
}

// PortfolioAggregate holds the whole-portfolio totals for one valuation pass.
type PortfolioAggregate struct {
	TotalPositionValue float64 `json:"total_position_value"`
	TotalCostBasis     float64 `json:"total_cost_basis"`
	TotalProfitAndLoss float64 `json:"total_profit_and_loss"`
	HoldingCount       int     `json:"holding_count"`
}

// Lot is a single purchase entry fed to the average cost calculator.
type Lot struct {
	Shares FlexFloat `json:"shares"`
	Price  FlexFloat `json:"price"`
}

// AverageCostResult is the output of the weighted average cost calculator.
type AverageCostResult struct {
	WeightedAveragePrice float64 `json:"weighted_average_price"`
	TotalShares          float64 `json:"total_shares"`
	TotalCost            float64 `json:"total_cost"`
}

// TimeFrame selects the display horizon used to scale a daily return.
type TimeFrame string

const (
	TimeFrameDay   TimeFrame = "day"
	TimeFrameWeek  TimeFrame = "week"
	TimeFrameMonth TimeFrame = "month"
	TimeFrameYear  TimeFrame = "year"
	TimeFrameAll   TimeFrame = "all"
)

// ParseTimeFrame maps a request value (long or single-letter form) to a
// TimeFrame, defaulting to day for anything unrecognized.
func ParseTimeFrame(s string) TimeFrame {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "d", "day":
		return TimeFrameDay
	case "w", "week":
		return TimeFrameWeek
	case "m", "month":
		return TimeFrameMonth
	case "y", "year":
		return TimeFrameYear
	case "all", "alltime", "all_time":
		return TimeFrameAll
	default:
		return TimeFrameDay
	}
}

// Label returns the human display label for the time frame, e.g. "Daily P&L".
func (t TimeFrame) Label() string {
	switch t {
	case TimeFrameWeek:
		return "Weekly P&L"
	case TimeFrameMonth:
		return "Monthly P&L"
	case TimeFrameYear:
		return "Yearly P&L"
	case TimeFrameAll:
		return "All-Time P&L"
	default:
		return "Daily P&L"
	}
}

// SortKey selects the derived metric used to order a valuation view.
type SortKey string

const (
	SortByPositionValue   SortKey = "position_value"
	SortByProfitAndLoss   SortKey = "profit_and_loss"
	SortByPortfolioWeight SortKey = "portfolio_weight_pct"
)

// ParseSortKey maps a request value to a SortKey; empty string means no sort.
func ParseSortKey(s string) (SortKey, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "position_value", "positionvalue", "value":
		return SortByPositionValue, true
	case "profit_and_loss", "profitandloss", "pnl":
		return SortByProfitAndLoss, true
	case "portfolio_weight_pct", "portfolioweight", "weight":
		return SortByPortfolioWeight, true
	default:
		return "", false
	}
}

// SortDirection orders a sorted valuation view.
type SortDirection string

const (
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// ParseSortDirection maps a request value to a direction, defaulting to descending.
func ParseSortDirection(s string) SortDirection {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return SortAscending
	default:
		return SortDescending
	}
}
