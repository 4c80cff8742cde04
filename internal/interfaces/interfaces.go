// Package interfaces defines the service contracts wired together in app.
package interfaces

import (
	"context"
	"time"

	"github.com/KalideEndale/portfolio-viewer01/internal/models"
)

// QuoteSource supplies current market data for a set of symbols. The engine
// treats it as an opaque provider; implementations include the deterministic
// synthetic generator and the Yahoo chart adapter.
type QuoteSource interface {
	// FetchQuotes returns a quote per requested symbol. Symbols the provider
	// cannot resolve are simply absent from the result; callers decide how to
	// degrade.
	FetchQuotes(ctx context.Context, symbols []string) (models.QuoteSnapshot, error)
	// Name identifies the provider in logs and /api/config output.
	Name() string
}

// HoldingsStore is the ordered, symbol-keyed collection of portfolio
// positions. Every mutation returns the new full ordered snapshot.
type HoldingsStore interface {
	List() []models.Holding
	Get(symbol string) (models.Holding, bool)
	Symbols() []string
	Add(h models.Holding) ([]models.Holding, error)
	Remove(symbol string) ([]models.Holding, error)
	Update(symbol string, patch models.HoldingPatch) ([]models.Holding, error)
	Reorder(order []string) ([]models.Holding, error)
}

// QuoteService owns the latest quote snapshot, refreshing it from the
// configured source with synthetic substitution on failure.
type QuoteService interface {
	// Refresh fetches quotes for the given symbols and replaces the cached
	// snapshot. It never fails: unfetchable symbols receive synthetic quotes.
	Refresh(ctx context.Context, symbols []string) models.QuoteSnapshot
	// Snapshot returns the most recently completed refresh result.
	Snapshot() models.QuoteSnapshot
	// UpdatedAt returns when the snapshot last changed; zero before the
	// first refresh completes.
	UpdatedAt() time.Time
}

// PerformanceService owns the synthesized portfolio value history.
type PerformanceService interface {
	Regenerate()
	Series() []models.PerformancePoint
	Summary(timeFrame models.TimeFrame) models.PerformanceSummary
	RenderChart() ([]byte, error)
}

// NewsService produces the generated market news feed.
type NewsService interface {
	Feed(symbols []string, filterSymbols []string, filterTags []string) []models.NewsArticle
	Tags(symbols []string) []string
}

// BenchmarkService compares portfolio returns against reference symbols.
type BenchmarkService interface {
	Compare(symbol string, timeFrame models.TimeFrame, portfolioReturn float64) models.BenchmarkComparison
	Search(term string) []models.CatalogEntry
}

// CatalogService exposes the static symbol catalog for add-holding search.
type CatalogService interface {
	Search(term string) []models.CatalogEntry
	Lookup(symbol string) (models.CatalogEntry, bool)
}
