package valuation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KalideEndale/portfolio-viewer01/internal/models"
)

func TestMultiplier_Table(t *testing.T) {
	tests := []struct {
		timeFrame models.TimeFrame
		want      float64
	}{
		{models.TimeFrameDay, 1},
		{models.TimeFrameWeek, 1.2},
		{models.TimeFrameMonth, 2.1},
		{models.TimeFrameYear, 8.5},
		{models.TimeFrameAll, 15.2},
		{models.TimeFrame("bogus"), 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Multiplier(tt.timeFrame), "time frame %q", tt.timeFrame)
	}
}

func TestScaleChangePercent(t *testing.T) {
	assert.InDelta(t, 27.2, ScaleChangePercent(3.2, models.TimeFrameYear), 1e-9)
	assert.InDelta(t, 3.2, ScaleChangePercent(3.2, models.TimeFrameDay), 1e-9)
	assert.InDelta(t, -3.84, ScaleChangePercent(-3.2, models.TimeFrameWeek), 1e-9)
	assert.Zero(t, ScaleChangePercent(0, models.TimeFrameAll))
}
