package performance

import (
	"bytes"
	"fmt"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// RenderChart renders the value series as a PNG line chart: portfolio value
// solid blue, base value dashed gray. Returns raw PNG bytes.
func (s *Service) RenderChart() ([]byte, error) {
	points := s.Series()
	if len(points) < minimumDays {
		return nil, fmt.Errorf("need at least %d data points, got %d", minimumDays, len(points))
	}

	xValues := make([]time.Time, len(points))
	valueY := make([]float64, len(points))
	baseY := make([]float64, len(points))

	for i, p := range points {
		xValues[i] = p.Date
		valueY[i] = p.Value
		baseY[i] = s.baseValue
	}

	valueSeries := chart.TimeSeries{
		Name: "Portfolio Value",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("8989de"),
			StrokeWidth: 2.0,
		},
		XValues: xValues,
		YValues: valueY,
	}

	baseSeries := chart.TimeSeries{
		Name: "Base Value",
		Style: chart.Style{
			StrokeColor:     drawing.ColorFromHex("9ca3af"),
			StrokeWidth:     1.0,
			StrokeDashArray: []float64{5.0, 3.0},
		},
		XValues: xValues,
		YValues: baseY,
	}

	graph := chart.Chart{
		Title:  "Portfolio Performance",
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if t, ok := v.(float64); ok {
					return chart.TimeFromFloat64(t).Format("Jan 2")
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("$%.0fk", f/1000)
				}
				return ""
			},
		},
		Series: []chart.Series{
			valueSeries,
			baseSeries,
		},
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf.Bytes(), nil
}
