package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/statdraft/baseball-draft/internal/domain/hitting"
	"github.com/statdraft/baseball-draft/internal/domain/player"
	"github.com/statdraft/baseball-draft/internal/platform/logging"
)

// HittingRecord pairs a player identity with one season stat line, the unit
// the extractor hands over per leaderboard row.
type HittingRecord struct {
	Player player.Player
	Line   hitting.StatLine
}

// IngestReport counts the outcome of one hitting batch. A record that fails
// validation or storage is counted and skipped; it never aborts the batch.
type IngestReport struct {
	Attempted int `json:"attempted"`
	Written   int `json:"written"`
	Failed    int `json:"failed"`
}

// PatchReport counts the outcome of one batted-ball batch. Skipped means
// the patch matched no stored stat line.
type PatchReport struct {
	Attempted int `json:"attempted"`
	Patched   int `json:"patched"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

type IngestionService struct {
	playerRepo  player.Repository
	hittingRepo hitting.Repository
	logger      *logging.Logger
	now         func() time.Time
}

func NewIngestionService(
	playerRepo player.Repository,
	hittingRepo hitting.Repository,
	logger *logging.Logger,
) *IngestionService {
	if logger == nil {
		logger = logging.Default()
	}

	return &IngestionService{
		playerRepo:  playerRepo,
		hittingRepo: hittingRepo,
		logger:      logger,
		now:         time.Now,
	}
}

// IngestHitting upserts each record's player identity and stat line. The
// same batch applied twice converges to the same stored state.
func (s *IngestionService) IngestHitting(ctx context.Context, records []HittingRecord) (IngestReport, error) {
	ctx, span := startUsecaseSpan(ctx, "IngestionService.IngestHitting")
	defer span.End()

	report := IngestReport{Attempted: len(records)}
	now := s.now().UTC()

	for _, record := range records {
		if err := s.ingestOne(ctx, record, now); err != nil {
			report.Failed++
			s.logger.WarnContext(ctx, "ingest hitting record failed",
				"savant_id", record.Player.SavantID,
				"name", record.Player.Name,
				"error", err,
			)
			continue
		}
		report.Written++
	}

	return report, nil
}

func (s *IngestionService) ingestOne(ctx context.Context, record HittingRecord, now time.Time) error {
	p := record.Player
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}
	if err := p.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	line := record.Line
	if line.SavantID == "" {
		line.SavantID = p.SavantID
	}
	if line.SavantID != p.SavantID {
		return fmt.Errorf("%w: stat line savant id %q does not match player %q", ErrInvalidInput, line.SavantID, p.SavantID)
	}
	if line.Season <= 0 {
		return fmt.Errorf("%w: stat line season is required", ErrInvalidInput)
	}
	if line.UpdatedAt.IsZero() {
		line.UpdatedAt = now
	}

	if err := s.playerRepo.Upsert(ctx, p); err != nil {
		return fmt.Errorf("upsert player savant_id=%s: %w", p.SavantID, err)
	}
	if err := s.hittingRepo.UpsertStatLine(ctx, line); err != nil {
		return fmt.Errorf("upsert stat line savant_id=%s season=%d: %w", line.SavantID, line.Season, err)
	}

	return nil
}

// IngestBattedBall applies batted-ball rate patches to existing stat lines.
// Patches for players without a stored line are counted as skipped, not
// failed.
func (s *IngestionService) IngestBattedBall(ctx context.Context, patches []hitting.BattedBallPatch) (PatchReport, error) {
	ctx, span := startUsecaseSpan(ctx, "IngestionService.IngestBattedBall")
	defer span.End()

	report := PatchReport{Attempted: len(patches)}

	for _, patch := range patches {
		if patch.SavantID == "" || patch.Season <= 0 {
			report.Failed++
			s.logger.WarnContext(ctx, "skip invalid batted-ball patch", "savant_id", patch.SavantID, "season", patch.Season)
			continue
		}

		matched, err := s.hittingRepo.PatchBattedBall(ctx, patch)
		if err != nil {
			report.Failed++
			s.logger.WarnContext(ctx, "patch batted-ball failed", "savant_id", patch.SavantID, "error", err)
			continue
		}
		if !matched {
			report.Skipped++
			continue
		}
		report.Patched++
	}

	return report, nil
}
