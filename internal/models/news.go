package models

import "time"

// NewsArticle represents a single generated news item for a symbol.
type NewsArticle struct {
	ID          string    `json:"id"`
	Symbol      string    `json:"symbol"`
	Headline    string    `json:"headline"`
	Summary     string    `json:"summary"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"published_at"`
	URL         string    `json:"url"`
	Tags        []string  `json:"tags"`
}

// HasTag reports whether the article carries the given tag.
func (a *NewsArticle) HasTag(tag string) bool {
	for _, t := range a.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// PerformancePoint is a single point in the synthesized portfolio value series.
type PerformancePoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// PerformanceSummary is the derived view of the value series for a time frame.
type PerformanceSummary struct {
	TimeFrame      TimeFrame `json:"time_frame"`
	Label          string    `json:"label"`
	CurrentValue   float64   `json:"current_value"`
	ReferenceValue float64   `json:"reference_value"`
	Change         float64   `json:"change"`
	ChangePercent  float64   `json:"change_pct"`
}

// BenchmarkComparison is the result of comparing the portfolio return against
// a benchmark symbol over a time frame.
type BenchmarkComparison struct {
	Symbol           string            `json:"symbol"`
	Name             string            `json:"name"`
	TimeFrame        TimeFrame         `json:"time_frame"`
	PortfolioReturn  float64           `json:"portfolio_return_pct"`
	BenchmarkReturn  float64           `json:"benchmark_return_pct"`
	Difference       float64           `json:"difference_pct"`
	Outperforming    bool              `json:"outperforming"`
	Series           []ComparisonPoint `json:"series"`
}

// ComparisonPoint is one period of the indexed comparison series (start = 100).
type ComparisonPoint struct {
	Period    int     `json:"period"`
	Portfolio float64 `json:"portfolio"`
	Benchmark float64 `json:"benchmark"`
}

// CatalogEntry is one row of the static symbol catalog used for add-holding search.
type CatalogEntry struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}
