// Package quote provides the quote service with automatic synthetic fallback
package quote

import (
	"context"
	"sync"
	"time"

	"github.com/KalideEndale/portfolio-viewer01/internal/common"
	"github.com/KalideEndale/portfolio-viewer01/internal/interfaces"
	"github.com/KalideEndale/portfolio-viewer01/internal/models"
)

// Service wraps the configured quote source and keeps the most recently
// completed snapshot. A failed or partial fetch substitutes synthetic quotes
// for the affected symbols — the dashboard stays populated in degraded mode
// rather than surfacing a blocking error.
type Service struct {
	source    interfaces.QuoteSource
	synthetic *SyntheticSource
	logger    *common.Logger

	mu       sync.RWMutex
	snapshot models.QuoteSnapshot
	updated  time.Time
}

// NewService creates a quote service over the given source. The synthetic
// source doubles as the fallback generator.
func NewService(source interfaces.QuoteSource, synthetic *SyntheticSource, logger *common.Logger) *Service {
	return &Service{
		source:    source,
		synthetic: synthetic,
		logger:    logger,
		snapshot:  models.QuoteSnapshot{},
	}
}

// Refresh fetches quotes for the given symbols and replaces the cached
// snapshot. Refresh never fails: a provider error swaps in synthetic quotes
// for every symbol, and per-symbol gaps are filled the same way. Concurrent
// refreshes are last-write-wins — the snapshot always reflects the most
// recently completed fetch.
func (s *Service) Refresh(ctx context.Context, symbols []string) models.QuoteSnapshot {
	fetched, err := s.source.FetchQuotes(ctx, symbols)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("source", s.source.Name()).
			Int("symbols", len(symbols)).
			Msg("Quote fetch failed — substituting synthetic quotes")
		fetched = models.QuoteSnapshot{}
	}

	snapshot := make(models.QuoteSnapshot, len(symbols))
	substituted := 0
	for _, raw := range symbols {
		symbol := models.NormalizeSymbol(raw)
		if symbol == "" {
			continue
		}
		if q, ok := fetched[symbol]; ok && q.Price > 0 {
			snapshot[symbol] = q
			continue
		}
		snapshot[symbol] = s.synthetic.Generate(symbol)
		substituted++
	}

	if substituted > 0 && err == nil {
		s.logger.Debug().
			Int("substituted", substituted).
			Str("source", s.source.Name()).
			Msg("Filled quote gaps with synthetic data")
	}

	s.mu.Lock()
	s.snapshot = snapshot
	s.updated = time.Now()
	s.mu.Unlock()

	return s.copySnapshot(snapshot)
}

// Snapshot returns a copy of the most recently completed refresh result.
func (s *Service) Snapshot() models.QuoteSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.copySnapshot(s.snapshot)
}

// UpdatedAt returns when the snapshot last changed.
func (s *Service) UpdatedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.updated
}

func (s *Service) copySnapshot(snapshot models.QuoteSnapshot) models.QuoteSnapshot {
	out := make(models.QuoteSnapshot, len(snapshot))
	for k, v := range snapshot {
		out[k] = v
	}
	return out
}

// Ensure Service implements QuoteService
var _ interfaces.QuoteService = (*Service)(nil)
