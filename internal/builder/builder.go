package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/futig/contract-workbench/internal/api"
	comparisonapi "github.com/futig/contract-workbench/internal/api/comparison"
	modelapi "github.com/futig/contract-workbench/internal/api/model"
	queryapi "github.com/futig/contract-workbench/internal/api/query"
	renderapi "github.com/futig/contract-workbench/internal/api/render"
	savedresultapi "github.com/futig/contract-workbench/internal/api/savedresult"
	"github.com/futig/contract-workbench/internal/catalog"
	"github.com/futig/contract-workbench/internal/config"
	"github.com/futig/contract-workbench/internal/integration/querybuilder"
	"github.com/futig/contract-workbench/internal/pkg/formatter"
	pkglogger "github.com/futig/contract-workbench/internal/pkg/logger"
	"github.com/futig/contract-workbench/internal/pkg/markdown"
	"github.com/futig/contract-workbench/internal/repository"
	"github.com/futig/contract-workbench/internal/usecase/comparison"
	"github.com/futig/contract-workbench/internal/usecase/preview"
	"github.com/futig/contract-workbench/internal/usecase/savedresult"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const (
	serverIdleTimeout = 60 * time.Second
	requestTimeout    = 60 * time.Second
)

func Build() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := pkglogger.New(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	// Storage and external services (with mock support)
	var (
		db              *pgxpool.Pool
		savedResultRepo repository.SavedResultRepository
		describer       preview.QueryDescriber
	)

	if cfg.EnableMocks {
		logger.Info("Using in-memory storage and mock query builder")
		savedResultRepo = repository.NewSavedResultMemory()
		describer = querybuilder.NewMockConnector(logger)
	} else {
		db, err = setupDatabase(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("setup database: %w", err)
		}

		logger.Info("Running database migrations")
		if err := repository.RunMigrations(cfg.DatabaseURL); err != nil {
			db.Close()
			return nil, fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("Database migrations completed successfully")

		savedResultRepo = repository.NewSavedResultPostgres(db)
		describer = querybuilder.NewConnector(cfg.QueryBuilderCfg, logger)
	}

	modelCatalog := catalog.New()
	renderer := markdown.NewRenderer(markdown.Config{CacheTTL: cfg.MarkdownCfg.CacheTTL})

	// The server has no clipboard; copying happens in the browser or the CLI
	previewUC := preview.NewUsecase(describer, nil)
	savedResultUC := savedresult.NewUsecase(savedResultRepo, modelCatalog, formatter.NewFactory(), cfg.DefaultModel)
	comparisonManager := comparison.NewManager(comparison.Config{
		IdleTTL:         cfg.ComparisonCfg.IdleTTL,
		CleanupInterval: cfg.ComparisonCfg.CleanupInterval,
		LoadTimeout:     cfg.ComparisonCfg.LoadTimeout,
		DefaultModel:    cfg.DefaultModel,
	}, savedResultRepo, modelCatalog)
	logger.Info("Use cases initialized")

	router := api.SetupRouter(api.Handlers{
		Model:       modelapi.NewHandler(modelCatalog, cfg.DefaultModel),
		Query:       queryapi.NewHandler(previewUC),
		Render:      renderapi.NewHandler(renderer),
		SavedResult: savedresultapi.NewHandler(savedResultUC, renderer),
		Comparison:  comparisonapi.NewHandler(comparisonManager),
	}, api.RouterConfig{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		RequestTimeout: requestTimeout,
	}, logger)
	logger.Info("HTTP router configured")

	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  serverIdleTimeout,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
		zap.Bool("mocks", cfg.EnableMocks),
	)

	return &App{
		server:      server,
		db:          db,
		comparisons: comparisonManager,
		logger:      logger,
	}, nil
}
