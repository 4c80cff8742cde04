// Package benchmark compares portfolio returns against reference symbols.
// Returns are placeholder figures: a fixed base daily return per benchmark,
// scaled by the same linear time-frame multipliers the valuation engine uses,
// so the comparison stays consistent with the rest of the dashboard.
package benchmark

import (
	"sort"
	"strings"

	"github.com/KalideEndale/portfolio-viewer01/internal/interfaces"
	"github.com/KalideEndale/portfolio-viewer01/internal/models"
	"github.com/KalideEndale/portfolio-viewer01/internal/services/valuation"
)

// defaultBaseReturn is used for symbols outside the benchmark table.
const defaultBaseReturn = 2.0

type entry struct {
	name       string
	baseReturn float64 // daily return percent
}

var benchmarks = map[string]entry{
	"SPY":   {"SPDR S&P 500 ETF", 2.1},
	"QQQ":   {"Invesco QQQ ETF", 2.8},
	"VTI":   {"Vanguard Total Stock Market ETF", 2.0},
	"TSLA":  {"Tesla Inc.", -1.2},
	"AAPL":  {"Apple Inc.", 1.8},
	"MSFT":  {"Microsoft Corporation", 2.4},
	"GOOGL": {"Alphabet Inc.", 1.5},
	"NVDA":  {"NVIDIA Corporation", 3.2},
}

// Service implements BenchmarkService.
type Service struct{}

// NewService creates a benchmark service.
func NewService() *Service {
	return &Service{}
}

// Compare builds the full comparison for one benchmark symbol: scaled
// returns, the outperformance delta, and an indexed series (start 100) for
// the comparison chart. Custom symbols outside the table get the default
// base return.
func (s *Service) Compare(symbol string, timeFrame models.TimeFrame, portfolioReturn float64) models.BenchmarkComparison {
	symbol = models.NormalizeSymbol(symbol)

	name := symbol
	baseReturn := defaultBaseReturn
	if e, ok := benchmarks[symbol]; ok {
		name = e.name
		baseReturn = e.baseReturn
	}

	benchmarkReturn := valuation.ScaleChangePercent(baseReturn, timeFrame)
	diff := portfolioReturn - benchmarkReturn

	return models.BenchmarkComparison{
		Symbol:          symbol,
		Name:            name,
		TimeFrame:       timeFrame,
		PortfolioReturn: portfolioReturn,
		BenchmarkReturn: benchmarkReturn,
		Difference:      diff,
		Outperforming:   diff >= 0,
		Series:          comparisonSeries(timeFrame, portfolioReturn, benchmarkReturn),
	}
}

// comparisonSeries interpolates both returns linearly across the time
// frame's period count, indexed to 100 at the start.
func comparisonSeries(timeFrame models.TimeFrame, portfolioReturn, benchmarkReturn float64) []models.ComparisonPoint {
	periods := periodsFor(timeFrame)
	series := make([]models.ComparisonPoint, 0, periods)

	for i := 0; i < periods; i++ {
		progress := float64(i) / float64(periods-1)
		series = append(series, models.ComparisonPoint{
			Period:    i + 1,
			Portfolio: 100 * (1 + portfolioReturn/100*progress),
			Benchmark: 100 * (1 + benchmarkReturn/100*progress),
		})
	}

	return series
}

func periodsFor(timeFrame models.TimeFrame) int {
	switch timeFrame {
	case models.TimeFrameDay:
		return 7
	case models.TimeFrameWeek:
		return 4
	case models.TimeFrameMonth:
		return 12
	default:
		return 24
	}
}

// Search filters the benchmark table by case-insensitive substring over
// symbol and name, sorted by symbol for stable output.
func (s *Service) Search(term string) []models.CatalogEntry {
	term = strings.ToLower(strings.TrimSpace(term))

	out := make([]models.CatalogEntry, 0, len(benchmarks))
	for symbol, e := range benchmarks {
		if term == "" ||
			strings.Contains(strings.ToLower(symbol), term) ||
			strings.Contains(strings.ToLower(e.name), term) {
			out = append(out, models.CatalogEntry{Symbol: symbol, Name: e.name})
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	return out
}

// Ensure Service implements BenchmarkService
var _ interfaces.BenchmarkService = (*Service)(nil)
