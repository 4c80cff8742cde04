package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/KalideEndale/portfolio-viewer01/internal/common"
	"github.com/KalideEndale/portfolio-viewer01/internal/models"
	"github.com/KalideEndale/portfolio-viewer01/internal/services/valuation"
	"github.com/KalideEndale/portfolio-viewer01/internal/storage"
)

// portfolioResponse is the full valuation view returned by GET /api/portfolio.
type portfolioResponse struct {
	TimeFrame models.TimeFrame          `json:"time_frame"`
	Label     string                    `json:"label"`
	Holdings  []models.ValuationResult  `json:"holdings"`
	Totals    models.PortfolioAggregate `json:"totals"`
	Display   displayTotals             `json:"display"`
	Masked    bool                      `json:"masked"`
}

// displayTotals carries the preformatted header strings, honoring privacy
// masking so clients never need the raw figures to render a masked view.
type displayTotals struct {
	TotalPositionValue string `json:"total_position_value"`
	TotalProfitAndLoss string `json:"total_profit_and_loss"`
	TotalReturnPercent string `json:"total_return_pct"`
}

// handlePortfolio handles GET /api/portfolio.
// Query parameters: timeframe, sort, direction, masked.
func (s *Server) handlePortfolio(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	q := r.URL.Query()
	timeFrame := models.ParseTimeFrame(q.Get("timeframe"))
	masked := q.Get("masked") == "true" || q.Get("masked") == "1"

	holdings := s.app.Holdings.List()
	snapshot := s.ensureQuotes(r.Context())

	results, totals := valuation.Valuate(holdings, snapshot, timeFrame)
	if key, ok := models.ParseSortKey(q.Get("sort")); ok {
		results = valuation.Sort(results, key, models.ParseSortDirection(q.Get("direction")))
	}

	returnPct := 0.0
	if totals.TotalCostBasis > 0 {
		returnPct = totals.TotalProfitAndLoss / totals.TotalCostBasis * 100
	}

	WriteJSON(w, http.StatusOK, portfolioResponse{
		TimeFrame: timeFrame,
		Label:     timeFrame.Label(),
		Holdings:  results,
		Totals:    totals,
		Display: displayTotals{
			TotalPositionValue: common.MaskMoney(totals.TotalPositionValue, masked),
			TotalProfitAndLoss: common.MaskSignedMoney(totals.TotalProfitAndLoss, masked),
			TotalReturnPercent: common.MaskSignedPct(returnPct, masked),
		},
		Masked: masked,
	})
}

// handleHoldings handles GET (list) and POST (add) on /api/portfolio/holdings.
func (s *Server) handleHoldings(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodPost) {
		return
	}

	if r.Method == http.MethodGet {
		WriteJSON(w, http.StatusOK, map[string]interface{}{"holdings": s.app.Holdings.List()})
		return
	}

	var req struct {
		Symbol      string           `json:"symbol"`
		DisplayName string           `json:"display_name"`
		Shares      models.FlexFloat `json:"shares"`
		AverageCost models.FlexFloat `json:"average_cost"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	holding := models.Holding{
		Symbol:      req.Symbol,
		DisplayName: req.DisplayName,
		Shares:      req.Shares.Value(),
		AverageCost: req.AverageCost.Value(),
	}
	holding.Normalize()

	if holding.DisplayName == "" {
		if entry, ok := s.app.CatalogService.Lookup(holding.Symbol); ok {
			holding.DisplayName = entry.Name
		} else {
			holding.DisplayName = holding.Symbol
		}
	}

	holdings, err := s.app.Holdings.Add(holding)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrDuplicateSymbol):
			WriteErrorWithCode(w, http.StatusConflict, err.Error(), "duplicate_symbol")
		case errors.Is(err, storage.ErrEmptySymbol):
			WriteError(w, http.StatusBadRequest, err.Error())
		default:
			WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Add holding: %v", err))
		}
		return
	}

	s.refreshQuotesAsync()
	WriteJSON(w, http.StatusCreated, map[string]interface{}{"holdings": holdings})
}

// handleHoldingUpdate handles PATCH /api/portfolio/holdings/{symbol}.
func (s *Server) handleHoldingUpdate(w http.ResponseWriter, r *http.Request, symbol string) {
	var patch models.HoldingPatch
	if !DecodeJSON(w, r, &patch) {
		return
	}

	holdings, err := s.app.Holdings.Update(symbol, patch)
	if err != nil {
		if errors.Is(err, storage.ErrSymbolNotFound) {
			WriteError(w, http.StatusNotFound, err.Error())
			return
		}
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Update holding: %v", err))
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{"holdings": holdings})
}

// handleHoldingRemove handles DELETE /api/portfolio/holdings/{symbol}.
func (s *Server) handleHoldingRemove(w http.ResponseWriter, r *http.Request, symbol string) {
	holdings, err := s.app.Holdings.Remove(symbol)
	if err != nil {
		if errors.Is(err, storage.ErrSymbolNotFound) {
			WriteError(w, http.StatusNotFound, err.Error())
			return
		}
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Remove holding: %v", err))
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{"holdings": holdings})
}

// handleHoldingsOrder handles PUT /api/portfolio/holdings/order.
func (s *Server) handleHoldingsOrder(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPut) {
		return
	}

	var req struct {
		Order []string `json:"order"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	holdings, err := s.app.Holdings.Reorder(req.Order)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidOrder) {
			WriteError(w, http.StatusBadRequest, err.Error())
			return
		}
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Reorder holdings: %v", err))
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{"holdings": holdings})
}

// handleAverageCost handles POST /api/calculator/average-cost.
func (s *Server) handleAverageCost(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req struct {
		Lots []models.Lot `json:"lots"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	WriteJSON(w, http.StatusOK, valuation.AverageCost(req.Lots))
}

// ensureQuotes returns the cached snapshot, refreshing synchronously when the
// cache has never been populated so the first request is never empty.
func (s *Server) ensureQuotes(ctx context.Context) models.QuoteSnapshot {
	snapshot := s.app.QuoteService.Snapshot()
	if len(snapshot) > 0 {
		return snapshot
	}
	return s.app.QuoteService.Refresh(ctx, s.app.Holdings.Symbols())
}

// refreshQuotesAsync triggers a background snapshot refresh after a holdings
// mutation so the new symbol gets a quote before the next scheduler tick.
func (s *Server) refreshQuotesAsync() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		s.app.QuoteService.Refresh(ctx, s.app.Holdings.Symbols())
	}()
}
