// Package yahoo provides a quote source backed by the Yahoo Finance chart API
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/KalideEndale/portfolio-viewer01/internal/common"
	"github.com/KalideEndale/portfolio-viewer01/internal/interfaces"
	"github.com/KalideEndale/portfolio-viewer01/internal/models"
)

const (
	DefaultBaseURL   = "https://query1.finance.yahoo.com"
	DefaultTimeout   = 10 * time.Second
	DefaultRateLimit = 5 // requests per second

	userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36"
)

// Client fetches quotes from the Yahoo Finance chart endpoint, one request
// per symbol. The endpoint needs no API key. Treat it as best-effort and let
// the quote service degrade to synthetic data when it misbehaves.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a Yahoo chart API client
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     common.NewDefaultLogger(),
		limiter:    rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// chartResponse mirrors the subset of the chart payload we read. Prices can
// arrive as numbers or strings depending on the symbol, hence FlexFloat.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol             string           `json:"symbol"`
				RegularMarketPrice models.FlexFloat `json:"regularMarketPrice"`
				ChartPreviousClose models.FlexFloat `json:"chartPreviousClose"`
			} `json:"meta"`
		} `json:"result"`
	} `json:"chart"`
}

// FetchQuotes retrieves a quote per symbol. Symbols that fail to resolve are
// absent from the result rather than failing the whole call; a total failure
// (every symbol errored) returns an error so the caller can fall back.
func (c *Client) FetchQuotes(ctx context.Context, symbols []string) (models.QuoteSnapshot, error) {
	snapshot := make(models.QuoteSnapshot, len(symbols))
	var lastErr error

	for _, raw := range symbols {
		symbol := models.NormalizeSymbol(raw)
		if symbol == "" {
			continue
		}

		quote, err := c.fetchQuote(ctx, symbol)
		if err != nil {
			lastErr = err
			c.logger.Debug().Err(err).Str("symbol", symbol).Msg("Yahoo quote fetch failed")
			continue
		}
		snapshot[symbol] = quote
	}

	if len(snapshot) == 0 && lastErr != nil {
		return nil, fmt.Errorf("all %d quote fetches failed: %w", len(symbols), lastErr)
	}
	return snapshot, nil
}

func (c *Client) fetchQuote(ctx context.Context, symbol string) (models.Quote, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return models.Quote{}, fmt.Errorf("rate limiter: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v8/finance/chart/%s?interval=1d&range=1d", c.baseURL, url.PathEscape(symbol))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return models.Quote{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.Quote{}, fmt.Errorf("fetch %s: %w", symbol, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Quote{}, fmt.Errorf("fetch %s: status %d", symbol, resp.StatusCode)
	}

	var payload chartResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return models.Quote{}, fmt.Errorf("decode %s: %w", symbol, err)
	}

	if len(payload.Chart.Result) == 0 {
		return models.Quote{}, fmt.Errorf("no chart result for %s", symbol)
	}

	meta := payload.Chart.Result[0].Meta
	price := meta.RegularMarketPrice.Value()
	prevClose := meta.ChartPreviousClose.Value()

	changePercent := 0.0
	if prevClose > 0 {
		changePercent = (price - prevClose) / prevClose * 100
	}

	return models.Quote{
		Symbol:        symbol,
		Price:         price,
		ChangePercent: changePercent,
		FetchedAt:     time.Now(),
	}, nil
}

// Name identifies the provider.
func (c *Client) Name() string {
	return "yahoo"
}

// Ensure Client implements QuoteSource
var _ interfaces.QuoteSource = (*Client)(nil)
