package app

import (
	"context"
	"time"

	"github.com/KalideEndale/portfolio-viewer01/internal/common"
	"github.com/KalideEndale/portfolio-viewer01/internal/interfaces"
)

// startQuoteScheduler refreshes the quote snapshot on a fixed interval.
// An immediate refresh runs before the first tick so the cache is primed.
func startQuoteScheduler(ctx context.Context, quotes interfaces.QuoteService, holdings interfaces.HoldingsStore, logger *common.Logger, interval time.Duration) {
	refreshQuotes(ctx, quotes, holdings, logger)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("Quote scheduler: stopped")
			return
		case <-ticker.C:
			refreshQuotes(ctx, quotes, holdings, logger)
		}
	}
}

func refreshQuotes(ctx context.Context, quotes interfaces.QuoteService, holdings interfaces.HoldingsStore, logger *common.Logger) {
	symbols := holdings.Symbols()
	if len(symbols) == 0 {
		return
	}

	start := time.Now()
	snapshot := quotes.Refresh(ctx, symbols)

	logger.Info().
		Int("symbols", len(snapshot)).
		Dur("elapsed", time.Since(start)).
		Msg("Quote refresh: complete")
}

// startPerformanceScheduler regenerates the synthetic value history on a
// fixed interval. The initial series is generated at construction, so the
// first regeneration waits a full interval.
func startPerformanceScheduler(ctx context.Context, perf interfaces.PerformanceService, logger *common.Logger, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("Performance scheduler: stopped")
			return
		case <-ticker.C:
			perf.Regenerate()
		}
	}
}
