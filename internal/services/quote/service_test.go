package quote

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KalideEndale/portfolio-viewer01/internal/common"
	"github.com/KalideEndale/portfolio-viewer01/internal/models"
)

// mockSource is a scriptable quote source for service tests.
type mockSource struct {
	snapshot models.QuoteSnapshot
	err      error
	calls    int
}

func (m *mockSource) FetchQuotes(_ context.Context, _ []string) (models.QuoteSnapshot, error) {
	m.calls++
	return m.snapshot, m.err
}

func (m *mockSource) Name() string { return "mock" }

func newTestService(source *mockSource) *Service {
	return NewService(source, NewSyntheticSource(42), common.NewSilentLogger())
}

func TestService_RefreshHappyPath(t *testing.T) {
	source := &mockSource{snapshot: models.QuoteSnapshot{
		"AAPL": {Symbol: "AAPL", Price: 180, ChangePercent: 1.2},
	}}
	svc := newTestService(source)

	snapshot := svc.Refresh(context.Background(), []string{"AAPL"})
	require.Len(t, snapshot, 1)
	assert.InDelta(t, 180.0, snapshot["AAPL"].Price, 1e-9)
	assert.False(t, snapshot["AAPL"].Synthetic)
}

func TestService_RefreshSubstitutesOnError(t *testing.T) {
	source := &mockSource{err: errors.New("connection refused")}
	svc := newTestService(source)

	snapshot := svc.Refresh(context.Background(), []string{"AAPL", "TSLA", "NVDA"})
	require.Len(t, snapshot, 3)

	for symbol, q := range snapshot {
		assert.True(t, q.Synthetic, "symbol %s must fall back to synthetic", symbol)
		assert.Greater(t, q.Price, 0.0)
	}
}

func TestService_RefreshFillsGaps(t *testing.T) {
	// Provider resolves AAPL but misses TSLA and returns a zero price for NVDA.
	source := &mockSource{snapshot: models.QuoteSnapshot{
		"AAPL": {Symbol: "AAPL", Price: 180},
		"NVDA": {Symbol: "NVDA", Price: 0},
	}}
	svc := newTestService(source)

	snapshot := svc.Refresh(context.Background(), []string{"AAPL", "TSLA", "NVDA"})
	require.Len(t, snapshot, 3)

	assert.False(t, snapshot["AAPL"].Synthetic)
	assert.True(t, snapshot["TSLA"].Synthetic)
	assert.True(t, snapshot["NVDA"].Synthetic, "zero price counts as a gap")
}

func TestService_SnapshotReflectsLastRefresh(t *testing.T) {
	source := &mockSource{snapshot: models.QuoteSnapshot{
		"AAPL": {Symbol: "AAPL", Price: 180},
	}}
	svc := newTestService(source)

	assert.Empty(t, svc.Snapshot())

	svc.Refresh(context.Background(), []string{"AAPL"})
	snapshot := svc.Snapshot()
	require.Len(t, snapshot, 1)
	assert.InDelta(t, 180.0, snapshot["AAPL"].Price, 1e-9)
	assert.False(t, svc.UpdatedAt().IsZero())
}

func TestService_SnapshotReturnsCopy(t *testing.T) {
	source := &mockSource{snapshot: models.QuoteSnapshot{
		"AAPL": {Symbol: "AAPL", Price: 180},
	}}
	svc := newTestService(source)
	svc.Refresh(context.Background(), []string{"AAPL"})

	first := svc.Snapshot()
	first["AAPL"] = models.Quote{Symbol: "AAPL", Price: 1}

	assert.InDelta(t, 180.0, svc.Snapshot()["AAPL"].Price, 1e-9)
}
