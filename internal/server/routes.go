package server

import (
	"net/http"
	"strings"
	"time"

	"github.com/KalideEndale/portfolio-viewer01/internal/common"
)

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)
	mux.HandleFunc("/api/config", s.handleConfig)
	mux.HandleFunc("/api/shutdown", s.handleShutdown)

	// Portfolio
	mux.HandleFunc("/api/portfolio", s.handlePortfolio)
	mux.HandleFunc("/api/portfolio/holdings/order", s.handleHoldingsOrder)
	mux.HandleFunc("/api/portfolio/holdings/", s.routeHoldings)
	mux.HandleFunc("/api/portfolio/holdings", s.handleHoldings)

	// Market data
	mux.HandleFunc("/api/market/quotes", s.handleMarketQuotes)
	mux.HandleFunc("/api/market/refresh", s.handleMarketRefresh)
	mux.HandleFunc("/api/market/catalog", s.handleMarketCatalog)

	// News
	mux.HandleFunc("/api/news/tags", s.handleNewsTags)
	mux.HandleFunc("/api/news", s.handleNews)

	// Performance
	mux.HandleFunc("/api/performance/chart.png", s.handlePerformanceChart)
	mux.HandleFunc("/api/performance/compare", s.handlePerformanceCompare)
	mux.HandleFunc("/api/performance/benchmarks", s.handleBenchmarkSearch)
	mux.HandleFunc("/api/performance", s.handlePerformance)

	// Calculator
	mux.HandleFunc("/api/calculator/average-cost", s.handleAverageCost)
}

// routeHoldings dispatches /api/portfolio/holdings/{symbol} to the method handlers.
func (s *Server) routeHoldings(w http.ResponseWriter, r *http.Request) {
	symbol := strings.TrimPrefix(r.URL.Path, "/api/portfolio/holdings/")
	if symbol == "" || strings.Contains(symbol, "/") {
		WriteError(w, http.StatusNotFound, "Not found")
		return
	}

	switch r.Method {
	case http.MethodPatch, http.MethodPut:
		s.handleHoldingUpdate(w, r, symbol)
	case http.MethodDelete:
		s.handleHoldingRemove(w, r, symbol)
	default:
		RequireMethod(w, r, http.MethodPatch, http.MethodPut, http.MethodDelete)
	}
}

// --- System handlers ---

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}

func (s *Server) handleConfig(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	cfg := s.app.Config
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"environment":            cfg.Environment,
		"quote_provider":         s.app.QuoteSource.Name(),
		"quote_refresh":          cfg.Quotes.GetRefresh().String(),
		"performance_refresh":    cfg.Performance.GetRefresh().String(),
		"performance_base_value": cfg.Performance.BaseValue,
		"performance_days":       cfg.Performance.Days,
		"logging_level":          cfg.Logging.Level,
		"holding_count":          len(s.app.Holdings.List()),
		"uptime":                 time.Since(s.app.StartupTime).Round(time.Second).String(),
	})
}

// handleShutdown handles POST /api/shutdown (dev mode only).
func (s *Server) handleShutdown(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	if s.app.Config.IsProduction() {
		WriteError(w, http.StatusForbidden, "Shutdown endpoint disabled in production")
		return
	}

	s.logger.Info().Msg("Shutdown requested via HTTP endpoint")

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Shutting down gracefully...\n"))

	if flusher, ok := w.(http.Flusher); ok {
		flusher.Flush()
	}

	if s.shutdownChan != nil {
		go func() {
			time.Sleep(100 * time.Millisecond)
			s.shutdownChan <- struct{}{}
		}()
	}
}
