// Package performance synthesizes the portfolio value history widget data.
// There is no stored history, so the series is generated:
// a base value with slight upward trend and bounded daily noise, regenerated
// on a fixed interval — the server-side equivalent of the dashboard's mock
// chart data.
package performance

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/KalideEndale/portfolio-viewer01/internal/common"
	"github.com/KalideEndale/portfolio-viewer01/internal/interfaces"
	"github.com/KalideEndale/portfolio-viewer01/internal/models"
)

const (
	dailyNoise  = 0.02  // ±2% daily variation
	dailyTrend  = 0.001 // slight upward drift per day
	yearFactor  = 0.89  // mock yearly starting value relative to base
	allFactor   = 0.75  // mock all-time starting value relative to base
	minimumDays = 2
)

// Service owns the generated portfolio value series.
type Service struct {
	baseValue float64
	days      int
	logger    *common.Logger
	now       func() time.Time

	mu     sync.RWMutex
	rng    *rand.Rand
	series []models.PerformancePoint
}

// NewService creates a performance service. A zero seed picks a clock-based
// seed; a fixed seed makes the first generated series deterministic for
// tests. The initial series is generated immediately so the dashboard never
// sees an empty widget.
func NewService(baseValue float64, days int, seed int64, logger *common.Logger) *Service {
	if baseValue <= 0 {
		baseValue = 280000
	}
	if days < minimumDays {
		days = 30
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &Service{
		baseValue: baseValue,
		days:      days,
		logger:    logger,
		now:       time.Now,
		rng:       rand.New(rand.NewSource(seed)),
	}
	s.Regenerate()
	return s
}

// Regenerate replaces the series with a freshly synthesized one.
func (s *Service) Regenerate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := s.now().Truncate(24 * time.Hour)
	series := make([]models.PerformancePoint, 0, s.days)

	for i := s.days - 1; i >= 0; i-- {
		noise := (s.rng.Float64() - 0.5) * dailyNoise
		trend := float64(s.days-i) * dailyTrend
		value := s.baseValue * (1 + trend + noise)

		series = append(series, models.PerformancePoint{
			Date:  today.AddDate(0, 0, -i),
			Value: math.Round(value),
		})
	}

	s.series = series
	s.logger.Debug().Int("points", len(series)).Msg("Performance series regenerated")
}

// Series returns a copy of the current value series.
func (s *Service) Series() []models.PerformancePoint {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.PerformancePoint, len(s.series))
	copy(out, s.series)
	return out
}

// Summary derives current value, change and change percent against the
// reference point for the requested time frame. With no real history the
// year and all-time references are fixed mock baselines below the series.
func (s *Service) Summary(timeFrame models.TimeFrame) models.PerformanceSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.series)
	current := s.series[n-1].Value

	var reference float64
	switch timeFrame {
	case models.TimeFrameWeek:
		reference = s.series[max(0, n-7)].Value
	case models.TimeFrameMonth:
		reference = s.series[0].Value
	case models.TimeFrameYear:
		reference = s.baseValue * yearFactor
	case models.TimeFrameAll:
		reference = s.baseValue * allFactor
	default:
		reference = s.series[max(0, n-2)].Value
	}

	change := current - reference
	changePercent := 0.0
	if reference > 0 {
		changePercent = change / reference * 100
	}

	return models.PerformanceSummary{
		TimeFrame:      timeFrame,
		Label:          timeFrame.Label(),
		CurrentValue:   current,
		ReferenceValue: reference,
		Change:         change,
		ChangePercent:  changePercent,
	}
}

// Ensure Service implements PerformanceService
var _ interfaces.PerformanceService = (*Service)(nil)
