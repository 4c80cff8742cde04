// Package market holds the static symbol catalog backing add-holding search.
package market

import (
	"sort"
	"strings"

	"github.com/KalideEndale/portfolio-viewer01/internal/interfaces"
	"github.com/KalideEndale/portfolio-viewer01/internal/models"
)

// maxSearchResults caps catalog search output for the autocomplete dropdown.
const maxSearchResults = 20

// popularStocks is the static search database. No market-data integration
// backs this — it exists so the add-holding flow can autocomplete names.
var popularStocks = []models.CatalogEntry{
	// Tech
	{Symbol: "AAPL", Name: "Apple Inc."},
	{Symbol: "MSFT", Name: "Microsoft Corporation"},
	{Symbol: "GOOGL", Name: "Alphabet Inc. Class A"},
	{Symbol: "GOOG", Name: "Alphabet Inc. Class C"},
	{Symbol: "AMZN", Name: "Amazon.com Inc."},
	{Symbol: "META", Name: "Meta Platforms Inc."},
	{Symbol: "TSLA", Name: "Tesla Inc."},
	{Symbol: "NVDA", Name: "NVIDIA Corporation"},
	{Symbol: "NFLX", Name: "Netflix Inc."},
	{Symbol: "AMD", Name: "Advanced Micro Devices Inc."},
	{Symbol: "ORCL", Name: "Oracle Corporation"},
	{Symbol: "CRM", Name: "Salesforce Inc."},
	{Symbol: "ADBE", Name: "Adobe Inc."},
	{Symbol: "INTC", Name: "Intel Corporation"},
	{Symbol: "ASML", Name: "ASML Holding N.V."},
	{Symbol: "NBIS", Name: "Nebius Group N.V."},
	// Financials
	{Symbol: "JPM", Name: "JPMorgan Chase & Co."},
	{Symbol: "BAC", Name: "Bank of America Corporation"},
	{Symbol: "GS", Name: "Goldman Sachs Group Inc."},
	{Symbol: "V", Name: "Visa Inc."},
	{Symbol: "MA", Name: "Mastercard Incorporated"},
	{Symbol: "PYPL", Name: "PayPal Holdings Inc."},
	{Symbol: "COIN", Name: "Coinbase Global Inc."},
	{Symbol: "SPGI", Name: "S&P Global Inc."},
	{Symbol: "NU", Name: "Nu Holdings Ltd."},
	// Healthcare
	{Symbol: "JNJ", Name: "Johnson & Johnson"},
	{Symbol: "PFE", Name: "Pfizer Inc."},
	{Symbol: "UNH", Name: "UnitedHealth Group Incorporated"},
	{Symbol: "LLY", Name: "Eli Lilly and Company"},
	{Symbol: "MRK", Name: "Merck & Co. Inc."},
	// Consumer
	{Symbol: "KO", Name: "Coca-Cola Company"},
	{Symbol: "PEP", Name: "PepsiCo Inc."},
	{Symbol: "WMT", Name: "Walmart Inc."},
	{Symbol: "HD", Name: "Home Depot Inc."},
	{Symbol: "MCD", Name: "McDonald's Corporation"},
	{Symbol: "SBUX", Name: "Starbucks Corporation"},
	{Symbol: "NKE", Name: "Nike Inc."},
	{Symbol: "COST", Name: "Costco Wholesale Corporation"},
	// Media and growth
	{Symbol: "DIS", Name: "Walt Disney Company"},
	{Symbol: "UBER", Name: "Uber Technologies Inc."},
	{Symbol: "ABNB", Name: "Airbnb Inc."},
	{Symbol: "SPOT", Name: "Spotify Technology S.A."},
	{Symbol: "MELI", Name: "MercadoLibre Inc."},
	{Symbol: "GRAB", Name: "Grab Holdings Limited"},
	{Symbol: "NIO", Name: "NIO Inc."},
}

// DefaultHoldings is the portfolio the store is seeded with at startup:
// watched positions (zero shares, no cost basis) until the user edits them.
func DefaultHoldings() []models.Holding {
	defaults := []string{"ASML", "GOOG", "NU", "MELI", "NVDA", "NBIS", "GRAB", "TSLA", "NIO", "SPGI", "AMZN"}

	holdings := make([]models.Holding, 0, len(defaults))
	for _, symbol := range defaults {
		name := symbol
		if entry, ok := lookup(symbol); ok {
			name = entry.Name
		}
		holdings = append(holdings, models.Holding{Symbol: symbol, DisplayName: name})
	}
	return holdings
}

// Catalog implements CatalogService over the static table.
type Catalog struct {
	entries []models.CatalogEntry
	bySym   map[string]models.CatalogEntry
}

// NewCatalog creates the symbol catalog.
func NewCatalog() *Catalog {
	c := &Catalog{
		entries: popularStocks,
		bySym:   make(map[string]models.CatalogEntry, len(popularStocks)),
	}
	for _, e := range popularStocks {
		c.bySym[e.Symbol] = e
	}
	return c
}

// Search returns catalog entries whose symbol or name contains the term,
// case-insensitive, sorted by symbol and capped for autocomplete use. An
// empty term returns the leading entries.
func (c *Catalog) Search(term string) []models.CatalogEntry {
	term = strings.ToLower(strings.TrimSpace(term))

	out := make([]models.CatalogEntry, 0, maxSearchResults)
	for _, e := range c.entries {
		if term != "" &&
			!strings.Contains(strings.ToLower(e.Symbol), term) &&
			!strings.Contains(strings.ToLower(e.Name), term) {
			continue
		}
		out = append(out, e)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Symbol < out[j].Symbol })
	if len(out) > maxSearchResults {
		out = out[:maxSearchResults]
	}
	return out
}

// Lookup returns the catalog entry for a symbol, if present.
func (c *Catalog) Lookup(symbol string) (models.CatalogEntry, bool) {
	e, ok := c.bySym[models.NormalizeSymbol(symbol)]
	return e, ok
}

func lookup(symbol string) (models.CatalogEntry, bool) {
	for _, e := range popularStocks {
		if e.Symbol == symbol {
			return e, true
		}
	}
	return models.CatalogEntry{}, false
}

// Ensure Catalog implements CatalogService
var _ interfaces.CatalogService = (*Catalog)(nil)
