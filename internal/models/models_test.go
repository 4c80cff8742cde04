package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexFloat_Coercion(t *testing.T) {
	tests := []struct {
		name string
		json string
		want float64
	}{
		{"number", `123.45`, 123.45},
		{"numeric string", `"123.45"`, 123.45},
		{"garbage string", `"abc"`, 0},
		{"null", `null`, 0},
		{"object", `{"v":1}`, 0},
		{"negative", `-5`, -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f FlexFloat
			require.NoError(t, json.Unmarshal([]byte(tt.json), &f), "FlexFloat never errors")
			assert.InDelta(t, tt.want, f.Value(), 1e-9)
		})
	}
}

func TestHolding_Normalize(t *testing.T) {
	h := Holding{Symbol: " nvda ", DisplayName: " NVIDIA ", Shares: -1, AverageCost: -2}
	h.Normalize()

	assert.Equal(t, "NVDA", h.Symbol)
	assert.Equal(t, "NVIDIA", h.DisplayName)
	assert.Zero(t, h.Shares)
	assert.Zero(t, h.AverageCost)
}

func TestParseTimeFrame(t *testing.T) {
	tests := []struct {
		in   string
		want TimeFrame
	}{
		{"day", TimeFrameDay},
		{"D", TimeFrameDay},
		{"w", TimeFrameWeek},
		{"Month", TimeFrameMonth},
		{"y", TimeFrameYear},
		{"all", TimeFrameAll},
		{"all_time", TimeFrameAll},
		{"", TimeFrameDay},
		{"fortnight", TimeFrameDay},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseTimeFrame(tt.in), "input %q", tt.in)
	}
}

func TestParseSortKey(t *testing.T) {
	key, ok := ParseSortKey("pnl")
	assert.True(t, ok)
	assert.Equal(t, SortByProfitAndLoss, key)

	key, ok = ParseSortKey("weight")
	assert.True(t, ok)
	assert.Equal(t, SortByPortfolioWeight, key)

	_, ok = ParseSortKey("")
	assert.False(t, ok)

	_, ok = ParseSortKey("alphabetical")
	assert.False(t, ok)
}

func TestParseSortDirection(t *testing.T) {
	assert.Equal(t, SortAscending, ParseSortDirection("asc"))
	assert.Equal(t, SortDescending, ParseSortDirection("desc"))
	assert.Equal(t, SortDescending, ParseSortDirection(""))
}
