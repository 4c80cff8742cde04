// Package app wires configuration, the holdings store, and all services into
// a single initialized core shared by cmd/portfolio-server and the tests.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/KalideEndale/portfolio-viewer01/internal/clients/yahoo"
	"github.com/KalideEndale/portfolio-viewer01/internal/common"
	"github.com/KalideEndale/portfolio-viewer01/internal/interfaces"
	"github.com/KalideEndale/portfolio-viewer01/internal/services/benchmark"
	"github.com/KalideEndale/portfolio-viewer01/internal/services/market"
	"github.com/KalideEndale/portfolio-viewer01/internal/services/news"
	"github.com/KalideEndale/portfolio-viewer01/internal/services/performance"
	"github.com/KalideEndale/portfolio-viewer01/internal/services/quote"
	"github.com/KalideEndale/portfolio-viewer01/internal/storage"
)

// App holds all initialized services and the holdings store.
type App struct {
	Config             *common.Config
	Logger             *common.Logger
	Holdings           interfaces.HoldingsStore
	QuoteSource        interfaces.QuoteSource
	QuoteService       interfaces.QuoteService
	PerformanceService interfaces.PerformanceService
	NewsService        interfaces.NewsService
	BenchmarkService   interfaces.BenchmarkService
	CatalogService     interfaces.CatalogService
	StartupTime        time.Time

	quoteCancel context.CancelFunc
	perfCancel  context.CancelFunc
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes configuration, logging, the seeded holdings store, the
// quote source selected by config, and every service. configPath may be
// empty, in which case PORTFOLIO_CONFIG and then the binary directory are
// checked.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	binDir := getBinaryDir()

	if configPath == "" {
		configPath = os.Getenv("PORTFOLIO_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(binDir, "portfolio.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/portfolio.toml" // fallback for development
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLogger(config.Logging.Level)

	holdings := storage.NewSeededStore(market.DefaultHoldings())

	// The synthetic source is always constructed: it is either the primary
	// provider or the fallback behind the Yahoo client.
	synthetic := quote.NewSyntheticSource(config.Quotes.Seed)

	var source interfaces.QuoteSource = synthetic
	if config.Quotes.Provider == "yahoo" {
		source = yahoo.NewClient(
			yahoo.WithBaseURL(config.Quotes.BaseURL),
			yahoo.WithLogger(logger),
			yahoo.WithRateLimit(config.Quotes.RateLimit),
			yahoo.WithTimeout(config.Quotes.GetTimeout()),
		)
	}

	quoteService := quote.NewService(source, synthetic, logger)
	performanceService := performance.NewService(
		config.Performance.BaseValue,
		config.Performance.Days,
		config.Performance.Seed,
		logger,
	)

	a := &App{
		Config:             config,
		Logger:             logger,
		Holdings:           holdings,
		QuoteSource:        source,
		QuoteService:       quoteService,
		PerformanceService: performanceService,
		NewsService:        news.NewService(),
		BenchmarkService:   benchmark.NewService(),
		CatalogService:     market.NewCatalog(),
		StartupTime:        startupStart,
	}

	logger.Info().
		Str("provider", source.Name()).
		Int("holdings", len(holdings.List())).
		Dur("startup", time.Since(startupStart)).
		Msg("App initialized")

	return a, nil
}

// Close stops the background schedulers.
func (a *App) Close() {
	if a.quoteCancel != nil {
		a.quoteCancel()
		a.quoteCancel = nil
	}
	if a.perfCancel != nil {
		a.perfCancel()
		a.perfCancel = nil
	}
}

// StartSchedulers launches the quote refresh and performance regeneration
// goroutines. The quote scheduler primes the snapshot immediately so the
// first portfolio request never sees an empty cache.
func (a *App) StartSchedulers() {
	quoteCtx, quoteCancel := context.WithCancel(context.Background())
	a.quoteCancel = quoteCancel
	go startQuoteScheduler(quoteCtx, a.QuoteService, a.Holdings, a.Logger, a.Config.Quotes.GetRefresh())

	perfCtx, perfCancel := context.WithCancel(context.Background())
	a.perfCancel = perfCancel
	go startPerformanceScheduler(perfCtx, a.PerformanceService, a.Logger, a.Config.Performance.GetRefresh())
}
