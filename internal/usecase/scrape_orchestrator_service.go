package usecase

import (
	"context"
	"time"

	"github.com/statdraft/baseball-draft/internal/domain/hitting"
	"github.com/statdraft/baseball-draft/internal/platform/logging"
)

// StatSource fetches leaderboard data from the upstream site.
type StatSource interface {
	FetchHittingRecords(ctx context.Context, season, minAtBats int) ([]HittingRecord, error)
	FetchBattedBallPatches(ctx context.Context, season, minAtBats int) ([]hitting.BattedBallPatch, error)
}

// ScrapeState is the orchestrator's current control-loop stage.
type ScrapeState string

const (
	ScrapeStateIdle              ScrapeState = "idle"
	ScrapeStateFetchingPrimary   ScrapeState = "fetching_primary"
	ScrapeStateCooling           ScrapeState = "cooling"
	ScrapeStateFetchingSecondary ScrapeState = "fetching_secondary"
	ScrapeStateSummarizing       ScrapeState = "summarizing"
	ScrapeStateDone              ScrapeState = "done"
)

// ScrapeRunReport is the outcome of one full scrape run. Stage failures are
// recorded here rather than aborting the run.
type ScrapeRunReport struct {
	Season int `json:"season"`

	HittingFetched int          `json:"hitting_fetched"`
	Ingest         IngestReport `json:"ingest"`

	BattedBallFetched int         `json:"batted_ball_fetched"`
	Patch             PatchReport `json:"patch"`

	Summary hitting.Summary `json:"summary"`

	HittingErr    error `json:"-"`
	BattedBallErr error `json:"-"`
	SummaryErr    error `json:"-"`
}

type ScrapeOrchestratorConfig struct {
	Season    int
	MinAtBats int
	Cooldown  time.Duration
}

// ScrapeOrchestratorService drives the fixed scrape sequence: hitting
// leaderboard, cooldown, batted-ball leaderboard, season summary. Stages
// run strictly in order and a failed stage yields a zero count for that
// stage while the run continues.
type ScrapeOrchestratorService struct {
	source      StatSource
	ingestion   *IngestionService
	hittingRepo hitting.Repository
	cfg         ScrapeOrchestratorConfig
	logger      *logging.Logger
	state       ScrapeState
	sleep       func(ctx context.Context, d time.Duration) error
}

func NewScrapeOrchestratorService(
	source StatSource,
	ingestion *IngestionService,
	hittingRepo hitting.Repository,
	cfg ScrapeOrchestratorConfig,
	logger *logging.Logger,
) *ScrapeOrchestratorService {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Season <= 0 {
		cfg.Season = time.Now().UTC().Year()
	}
	if cfg.MinAtBats < 0 {
		cfg.MinAtBats = 0
	}
	if cfg.Cooldown <= 0 {
		cfg.Cooldown = 15 * time.Second
	}

	return &ScrapeOrchestratorService{
		source:      source,
		ingestion:   ingestion,
		hittingRepo: hittingRepo,
		cfg:         cfg,
		logger:      logger,
		state:       ScrapeStateIdle,
		sleep:       sleepContext,
	}
}

// State reports the current control-loop stage.
func (s *ScrapeOrchestratorService) State() ScrapeState {
	return s.state
}

// Run executes one full scrape sequence. Only a cancelled context aborts
// the run early; stage errors are collected into the report.
func (s *ScrapeOrchestratorService) Run(ctx context.Context) (ScrapeRunReport, error) {
	ctx, span := startUsecaseSpan(ctx, "ScrapeOrchestratorService.Run")
	defer span.End()

	report := ScrapeRunReport{Season: s.cfg.Season}

	s.state = ScrapeStateFetchingPrimary
	s.logger.InfoContext(ctx, "scrape hitting leaderboard", "season", s.cfg.Season, "min_at_bats", s.cfg.MinAtBats)
	records, err := s.source.FetchHittingRecords(ctx, s.cfg.Season, s.cfg.MinAtBats)
	if err != nil {
		if ctx.Err() != nil {
			s.state = ScrapeStateIdle
			return report, ctx.Err()
		}
		report.HittingErr = err
		s.logger.WarnContext(ctx, "hitting leaderboard fetch failed, continuing", "error", err)
	} else {
		report.HittingFetched = len(records)
		report.Ingest, _ = s.ingestion.IngestHitting(ctx, records)
	}

	// The upstream site is rate sensitive; the cooldown between the two
	// leaderboard fetches is mandatory, not best effort.
	s.state = ScrapeStateCooling
	s.logger.InfoContext(ctx, "cooling down before next fetch", "cooldown", s.cfg.Cooldown)
	if err := s.sleep(ctx, s.cfg.Cooldown); err != nil {
		s.state = ScrapeStateIdle
		return report, err
	}

	s.state = ScrapeStateFetchingSecondary
	s.logger.InfoContext(ctx, "scrape batted-ball leaderboard", "season", s.cfg.Season)
	patches, err := s.source.FetchBattedBallPatches(ctx, s.cfg.Season, s.cfg.MinAtBats)
	if err != nil {
		if ctx.Err() != nil {
			s.state = ScrapeStateIdle
			return report, ctx.Err()
		}
		report.BattedBallErr = err
		s.logger.WarnContext(ctx, "batted-ball leaderboard fetch failed, continuing", "error", err)
	} else {
		report.BattedBallFetched = len(patches)
		report.Patch, _ = s.ingestion.IngestBattedBall(ctx, patches)
	}

	s.state = ScrapeStateSummarizing
	summary, err := s.hittingRepo.Summarize(ctx, s.cfg.Season)
	if err != nil {
		report.SummaryErr = err
		s.logger.WarnContext(ctx, "season summary failed", "season", s.cfg.Season, "error", err)
	} else {
		report.Summary = summary
	}

	s.state = ScrapeStateDone
	return report, nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
