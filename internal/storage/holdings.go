// Package storage provides the in-memory holdings store. Persistence across
// sessions is out of scope; the store lives for the lifetime of the process.
package storage

import (
	"errors"
	"fmt"
	"sync"

	"github.com/KalideEndale/portfolio-viewer01/internal/interfaces"
	"github.com/KalideEndale/portfolio-viewer01/internal/models"
)

var (
	// ErrDuplicateSymbol is returned when adding a symbol that already exists.
	ErrDuplicateSymbol = errors.New("symbol already exists in portfolio")
	// ErrSymbolNotFound is returned for operations on an unknown symbol.
	ErrSymbolNotFound = errors.New("symbol not found in portfolio")
	// ErrInvalidOrder is returned when a reorder list is not a permutation of
	// the current symbols.
	ErrInvalidOrder = errors.New("reorder list must contain each current symbol exactly once")
	// ErrEmptySymbol is returned when adding a holding without a symbol.
	ErrEmptySymbol = errors.New("holding symbol is required")
)

// HoldingsStore is an ordered, mutex-guarded holdings collection. Order is
// insertion order, adjusted only by Reorder — it drives display sequence and
// must survive unrelated mutations.
type HoldingsStore struct {
	mu       sync.RWMutex
	holdings []models.Holding
	index    map[string]int
}

// NewHoldingsStore creates an empty store.
func NewHoldingsStore() *HoldingsStore {
	return &HoldingsStore{
		index: make(map[string]int),
	}
}

// NewSeededStore creates a store pre-populated with the given holdings.
// Duplicates and empty symbols in the seed are skipped.
func NewSeededStore(seed []models.Holding) *HoldingsStore {
	s := NewHoldingsStore()
	for _, h := range seed {
		s.Add(h) //nolint:errcheck // seed duplicates are silently skipped
	}
	return s
}

// List returns a copy of the current ordered holdings.
func (s *HoldingsStore) List() []models.Holding {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Get returns the holding for a symbol, if present.
func (s *HoldingsStore) Get(symbol string) (models.Holding, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	idx, ok := s.index[models.NormalizeSymbol(symbol)]
	if !ok {
		return models.Holding{}, false
	}
	return s.holdings[idx], true
}

// Symbols returns the current symbols in display order.
func (s *HoldingsStore) Symbols() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	symbols := make([]string, len(s.holdings))
	for i, h := range s.holdings {
		symbols[i] = h.Symbol
	}
	return symbols
}

// Add appends a new holding. A duplicate symbol is rejected with
// ErrDuplicateSymbol rather than silently ignored.
func (s *HoldingsStore) Add(h models.Holding) ([]models.Holding, error) {
	h.Normalize()
	if h.Symbol == "" {
		return nil, ErrEmptySymbol
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.index[h.Symbol]; exists {
		return nil, fmt.Errorf("add %q: %w", h.Symbol, ErrDuplicateSymbol)
	}

	s.index[h.Symbol] = len(s.holdings)
	s.holdings = append(s.holdings, h)
	return s.snapshotLocked(), nil
}

// Remove deletes a holding by symbol, preserving the order of the rest.
func (s *HoldingsStore) Remove(symbol string) ([]models.Holding, error) {
	symbol = models.NormalizeSymbol(symbol)

	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.index[symbol]
	if !ok {
		return nil, fmt.Errorf("remove %q: %w", symbol, ErrSymbolNotFound)
	}

	s.holdings = append(s.holdings[:idx], s.holdings[idx+1:]...)
	delete(s.index, symbol)
	for i := idx; i < len(s.holdings); i++ {
		s.index[s.holdings[i].Symbol] = i
	}
	return s.snapshotLocked(), nil
}

// Update applies a partial edit to a holding. Only fields present in the
// patch are written; the symbol itself is immutable. Negative numeric values
// are clamped to zero.
func (s *HoldingsStore) Update(symbol string, patch models.HoldingPatch) ([]models.Holding, error) {
	symbol = models.NormalizeSymbol(symbol)

	s.mu.Lock()
	defer s.mu.Unlock()

	idx, ok := s.index[symbol]
	if !ok {
		return nil, fmt.Errorf("update %q: %w", symbol, ErrSymbolNotFound)
	}

	h := &s.holdings[idx]
	if patch.DisplayName != nil {
		h.DisplayName = *patch.DisplayName
	}
	if patch.Shares != nil {
		h.Shares = *patch.Shares
	}
	if patch.AverageCost != nil {
		h.AverageCost = *patch.AverageCost
	}
	h.Normalize()

	return s.snapshotLocked(), nil
}

// Reorder replaces the display order. The new order must contain each current
// symbol exactly once.
func (s *HoldingsStore) Reorder(order []string) ([]models.Holding, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(order) != len(s.holdings) {
		return nil, fmt.Errorf("got %d symbols, have %d: %w", len(order), len(s.holdings), ErrInvalidOrder)
	}

	reordered := make([]models.Holding, 0, len(s.holdings))
	seen := make(map[string]bool, len(order))
	for _, raw := range order {
		symbol := models.NormalizeSymbol(raw)
		if seen[symbol] {
			return nil, fmt.Errorf("symbol %q repeated: %w", symbol, ErrInvalidOrder)
		}
		seen[symbol] = true

		idx, ok := s.index[symbol]
		if !ok {
			return nil, fmt.Errorf("symbol %q not in portfolio: %w", symbol, ErrInvalidOrder)
		}
		reordered = append(reordered, s.holdings[idx])
	}

	s.holdings = reordered
	for i, h := range s.holdings {
		s.index[h.Symbol] = i
	}
	return s.snapshotLocked(), nil
}

func (s *HoldingsStore) snapshotLocked() []models.Holding {
	out := make([]models.Holding, len(s.holdings))
	copy(out, s.holdings)
	return out
}

// Ensure HoldingsStore implements the store interface
var _ interfaces.HoldingsStore = (*HoldingsStore)(nil)
