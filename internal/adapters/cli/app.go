package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"gorm.io/gorm"

	"github.com/dstapl/osrs-gph/internal/adapters/api"
	"github.com/dstapl/osrs-gph/internal/adapters/catalogue"
	"github.com/dstapl/osrs-gph/internal/adapters/metrics"
	"github.com/dstapl/osrs-gph/internal/adapters/persistence"
	"github.com/dstapl/osrs-gph/internal/application/common"
	"github.com/dstapl/osrs-gph/internal/application/mediator"
	priceCommands "github.com/dstapl/osrs-gph/internal/application/prices/commands"
	priceQueries "github.com/dstapl/osrs-gph/internal/application/prices/queries"
	profitQueries "github.com/dstapl/osrs-gph/internal/application/profit/queries"
	"github.com/dstapl/osrs-gph/internal/application/profit/services"
	"github.com/dstapl/osrs-gph/internal/domain/market"
	"github.com/dstapl/osrs-gph/internal/domain/recipe"
	"github.com/dstapl/osrs-gph/internal/infrastructure/config"
	"github.com/dstapl/osrs-gph/internal/infrastructure/database"
	"github.com/dstapl/osrs-gph/internal/infrastructure/logging"
	"github.com/dstapl/osrs-gph/pkg/utils"
)

// app holds everything one CLI invocation needs
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	db       *gorm.DB
	mediator mediator.Mediator
	prices   *persistence.PriceRepositoryGORM
	recipes  recipe.Source

	logCloser io.Closer
}

// newApp loads configuration, then wires logging, metrics, storage and handlers.
// adjust may change the loaded config before anything is built from it.
// operation names the run in its run id.
func newApp(operation string, adjust func(*config.Config)) (*app, context.Context, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if adjust != nil {
		adjust(cfg)
		if err := config.ValidateConfig(cfg); err != nil {
			return nil, nil, fmt.Errorf("invalid flags: %w", err)
		}
	}

	logger, logCloser, err := logging.Setup(cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	ctx := common.WithLogger(context.Background(), logger)
	ctx = common.WithRunID(ctx, utils.GenerateRunID(operation))

	a := &app{
		cfg:       cfg,
		logger:    common.LoggerFromContext(ctx),
		recipes:   catalogue.NewRecipeFileLoader(cfg.Filepaths.Recipes),
		logCloser: logCloser,
	}

	var requestCollector *metrics.RequestMetricsCollector
	if cfg.Metrics.Enabled {
		requestCollector, err = metrics.Setup()
		if err != nil {
			a.Close()
			return nil, nil, fmt.Errorf("failed to set up metrics: %w", err)
		}
	}

	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		a.Close()
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	a.db = db
	a.prices = persistence.NewPriceRepository(db)

	client, err := api.NewWikiClient(api.ClientConfig{
		BaseURL:          cfg.API.BaseURL,
		UserAgent:        cfg.API.UserAgent,
		Timeout:          cfg.API.Timeout,
		RateLimit:        float64(cfg.API.RateLimit.Requests),
		Burst:            cfg.API.RateLimit.Burst,
		MaxRetries:       cfg.API.Retry.MaxAttempts,
		BackoffBase:      cfg.API.Retry.BackoffBase,
		BreakerThreshold: cfg.API.CircuitBreaker.MaxFailures,
		BreakerTimeout:   cfg.API.CircuitBreaker.Timeout,
	}, nil)
	if err != nil {
		a.Close()
		return nil, nil, err
	}

	m, err := newMediator(services.NewOverviewService(0), client, a.prices, requestCollector)
	if err != nil {
		a.Close()
		return nil, nil, err
	}
	a.mediator = m

	return a, ctx, nil
}

func newMediator(
	overviews *services.OverviewService,
	source market.PriceSource,
	repo market.SnapshotRepository,
	requestCollector *metrics.RequestMetricsCollector,
) (mediator.Mediator, error) {
	m := mediator.NewMediator()
	m.Use(common.RunIDMiddleware)
	m.Use(common.LoggingMiddleware)
	m.Use(metrics.PrometheusMiddleware(requestCollector))

	registrations := []error{
		mediator.RegisterHandler[*profitQueries.ComputeOverviewsQuery](m, profitQueries.NewComputeOverviewsHandler(overviews)),
		mediator.RegisterHandler[*profitQueries.ComputeBreakdownQuery](m, profitQueries.NewComputeBreakdownHandler(overviews)),
		mediator.RegisterHandler[*priceCommands.RefreshPricesCommand](m, priceCommands.NewRefreshPricesHandler(source, repo)),
		mediator.RegisterHandler[*priceQueries.GetItemPricesQuery](m, priceQueries.NewGetItemPricesHandler(repo)),
	}
	for _, err := range registrations {
		if err != nil {
			return nil, fmt.Errorf("failed to register handler: %w", err)
		}
	}
	return m, nil
}

// loadBook reads the recipe book and drops ignored recipes
func (a *app) loadBook(ctx context.Context) (*recipe.Book, error) {
	recipes, err := a.recipes.LoadRecipes(ctx)
	if err != nil {
		return nil, err
	}
	return recipe.NewBook(recipes, a.cfg.Profit.IgnoreRecipes)
}

// loadCatalogue reads the stored price snapshot and drops ignored items
func (a *app) loadCatalogue(ctx context.Context) (*market.Catalogue, error) {
	snapshot, err := a.prices.LoadSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("no stored prices (run 'osrs-gph prices refresh' first): %w", err)
	}
	a.logger.Debug("loaded price snapshot",
		"items", len(snapshot.Items()),
		"timespan", snapshot.Timespan(),
		"fetched_at", snapshot.FetchedAt(),
	)
	return snapshot.Catalogue(a.cfg.Profit.IgnoreItems)
}

// Close flushes metrics and releases the database and log file
func (a *app) Close() {
	if metrics.IsEnabled() {
		err := ensureParentDir(a.cfg.Metrics.Textfile)
		if err == nil {
			err = metrics.WriteTextfile(a.cfg.Metrics.Textfile)
		}
		if err != nil {
			a.logger.Warn("failed to write metrics textfile", "path", a.cfg.Metrics.Textfile, "error", err)
		}
		metrics.Reset()
	}
	if a.db != nil {
		if err := database.Close(a.db); err != nil {
			a.logger.Warn("failed to close database", "error", err)
		}
	}
	if a.logCloser != nil {
		_ = a.logCloser.Close()
	}
}
