package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/statdraft/baseball-draft/internal/app"
	"github.com/statdraft/baseball-draft/internal/config"
	"github.com/statdraft/baseball-draft/internal/observability"
	"github.com/statdraft/baseball-draft/internal/platform/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	shutdownUptrace, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := app.OpenDatabase(ctx, cfg)
	if err != nil {
		logger.Error("open database", "error", err)
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	orchestrator := app.NewScrapeOrchestrator(cfg, db, logger)

	logger.Info("scrape starting",
		"season", cfg.ScrapeSeason,
		"min_at_bats", cfg.ScrapeMinAtBats,
		"cooldown", cfg.ScrapeCooldown.String(),
	)

	report, err := orchestrator.Run(ctx)
	if err != nil {
		logger.Error("scrape aborted", "error", err)
		os.Exit(1)
	}

	if raw, marshalErr := sonic.Marshal(report); marshalErr == nil {
		logger.Info("scrape finished", "report", string(raw))
	} else {
		logger.Info("scrape finished",
			"season", report.Season,
			"hitting_fetched", report.HittingFetched,
			"batted_ball_fetched", report.BattedBallFetched,
		)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := shutdownUptrace(shutdownCtx); err != nil {
		logger.Error("shutdown uptrace", "error", err)
	}
}
