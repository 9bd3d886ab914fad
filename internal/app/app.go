package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/statdraft/baseball-draft/external/savant"
	"github.com/statdraft/baseball-draft/internal/config"
	"github.com/statdraft/baseball-draft/internal/infrastructure/repository/postgres"
	"github.com/statdraft/baseball-draft/internal/interfaces/httpapi"
	idgen "github.com/statdraft/baseball-draft/internal/platform/id"
	"github.com/statdraft/baseball-draft/internal/platform/logging"
	"github.com/statdraft/baseball-draft/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

// OpenDatabase connects to Postgres with OpenTelemetry instrumentation and
// verifies the connection before anything depends on it.
func OpenDatabase(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}

func NewHTTPServer(ctx context.Context, cfg config.Config, db *sqlx.DB, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	if err := postgres.SeedStatPackages(ctx, db); err != nil {
		return nil, fmt.Errorf("seed stat packages: %w", err)
	}

	hittingRepo := postgres.NewHittingRepository(db)
	packageRepo := postgres.NewStatPackageRepository(db)
	roomRepo := postgres.NewDraftRoomRepository(db)

	leaderboardSvc := usecase.NewLeaderboardService(hittingRepo)
	statPackageSvc := usecase.NewStatPackageService(packageRepo)
	draftRoomSvc := usecase.NewDraftRoomService(roomRepo, packageRepo, idgen.NewTokenGenerator())

	handler := httpapi.NewHandler(httpapi.HandlerConfig{
		Leaderboards: leaderboardSvc,
		StatPackages: statPackageSvc,
		Rooms:        draftRoomSvc,
		Season:       cfg.ScrapeSeason,
		Logger:       logger,
	})
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

// NewScrapeOrchestrator wires the leaderboard scraper against the shared
// database. The api and scraper binaries share this wiring.
func NewScrapeOrchestrator(cfg config.Config, db *sqlx.DB, logger *logging.Logger) *usecase.ScrapeOrchestratorService {
	if logger == nil {
		logger = logging.Default()
	}

	playerRepo := postgres.NewPlayerRepository(db)
	hittingRepo := postgres.NewHittingRepository(db)

	source := savant.NewClient(savant.ClientConfig{
		BaseURL:   cfg.SavantBaseURL,
		Timeout:   cfg.SavantTimeout,
		UserAgent: cfg.SavantUserAgent,
		Logger:    logger,
	})
	ingestion := usecase.NewIngestionService(playerRepo, hittingRepo, logger)

	return usecase.NewScrapeOrchestratorService(source, ingestion, hittingRepo, usecase.ScrapeOrchestratorConfig{
		Season:    cfg.ScrapeSeason,
		MinAtBats: cfg.ScrapeMinAtBats,
		Cooldown:  cfg.ScrapeCooldown,
	}, logger)
}
