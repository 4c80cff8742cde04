package server

import (
	"fmt"
	"net/http"

	"github.com/KalideEndale/portfolio-viewer01/internal/models"
)

// handlePerformance handles GET /api/performance?timeframe=.
func (s *Server) handlePerformance(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	timeFrame := models.ParseTimeFrame(r.URL.Query().Get("timeframe"))

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"summary": s.app.PerformanceService.Summary(timeFrame),
		"series":  s.app.PerformanceService.Series(),
	})
}

// handlePerformanceChart handles GET /api/performance/chart.png.
func (s *Server) handlePerformanceChart(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	png, err := s.app.PerformanceService.RenderChart()
	if err != nil {
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Render chart: %v", err))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(png)))
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// handlePerformanceCompare handles GET /api/performance/compare?symbol=SPY&timeframe=.
// The portfolio side of the comparison is the performance summary's change
// percent for the same time frame.
func (s *Server) handlePerformanceCompare(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	q := r.URL.Query()
	symbol := q.Get("symbol")
	if symbol == "" {
		symbol = "SPY"
	}
	timeFrame := models.ParseTimeFrame(q.Get("timeframe"))

	summary := s.app.PerformanceService.Summary(timeFrame)
	comparison := s.app.BenchmarkService.Compare(symbol, timeFrame, summary.ChangePercent)

	WriteJSON(w, http.StatusOK, comparison)
}

// handleBenchmarkSearch handles GET /api/performance/benchmarks?q=term.
func (s *Server) handleBenchmarkSearch(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	results := s.app.BenchmarkService.Search(r.URL.Query().Get("q"))
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"count":   len(results),
		"results": results,
	})
}
