package valuation

import "github.com/KalideEndale/portfolio-viewer01/internal/models"

// timeFrameMultipliers approximates longer-horizon returns by linearly
// scaling the daily change percent. This is a deliberate placeholder, not
// compounding: without stored history there is nothing to compound over.
// Replace with true time-series-derived returns when a real history source
// lands. The constants are fixed display contract values — keep them exact.
var timeFrameMultipliers = map[models.TimeFrame]float64{
	models.TimeFrameDay:   1,
	models.TimeFrameWeek:  1.2,
	models.TimeFrameMonth: 2.1,
	models.TimeFrameYear:  8.5,
	models.TimeFrameAll:   15.2,
}

// Multiplier returns the linear scaling factor for a time frame. Unknown
// frames scale by 1 (daily).
func Multiplier(timeFrame models.TimeFrame) float64 {
	if m, ok := timeFrameMultipliers[timeFrame]; ok {
		return m
	}
	return 1
}

// ScaleChangePercent converts a daily change percent into the approximate
// change over the given time frame.
func ScaleChangePercent(dailyChangePercent float64, timeFrame models.TimeFrame) float64 {
	return dailyChangePercent * Multiplier(timeFrame)
}
