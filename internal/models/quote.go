package models

import (
	"encoding/json"
	"strconv"
	"time"
)

// Quote is point-in-time market data for a symbol. Quotes are produced fresh
// each refresh cycle and discarded after the next one; nothing here is
// persisted.
type Quote struct {
	Symbol        string    `json:"symbol"`
	Price         float64   `json:"price"`
	ChangePercent float64   `json:"change_pct"`
	Synthetic     bool      `json:"synthetic,omitempty"`
	FetchedAt     time.Time `json:"fetched_at"`
}

// QuoteSnapshot is one refresh cycle's worth of quotes keyed by symbol.
type QuoteSnapshot map[string]Quote

// FlexFloat handles JSON values that may be a number, a numeric string, or
// garbage. Anything unparsable decodes to 0 rather than erroring — form input
// must never surface as a user-facing failure or propagate NaN.
type FlexFloat float64

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*f = FlexFloat(num)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		num, err := strconv.ParseFloat(s, 64)
		if err != nil {
			*f = 0
			return nil
		}
		*f = FlexFloat(num)
		return nil
	}
	*f = 0
	return nil
}

// Value returns the float64 value, coercing NaN-ish states to plain zero.
func (f FlexFloat) Value() float64 {
	return float64(f)
}
