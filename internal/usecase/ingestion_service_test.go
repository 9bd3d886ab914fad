package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/statdraft/baseball-draft/internal/domain/hitting"
	"github.com/statdraft/baseball-draft/internal/domain/player"
	"github.com/statdraft/baseball-draft/internal/infrastructure/repository/memory"
	"github.com/statdraft/baseball-draft/internal/platform/logging"
	"github.com/statdraft/baseball-draft/internal/usecase"
)

func floatPtr(v float64) *float64 { return &v }

func sampleRecord(savantID, name string, barrels int) usecase.HittingRecord {
	return usecase.HittingRecord{
		Player: player.Player{
			SavantID: savantID,
			Name:     name,
			Team:     "LAD",
			Position: player.PositionCenterField,
			Active:   true,
		},
		Line: hitting.StatLine{
			SavantID: savantID,
			Season:   2025,
			Games:    140,
			AtBats:   520,
			HomeRuns: 30,
			Barrels:  barrels,
			XWOBA:    floatPtr(0.390),
		},
	}
}

func TestIngestionService_IngestHitting(t *testing.T) {
	t.Parallel()

	players := memory.NewPlayerRepository()
	lines := memory.NewHittingRepository(players)
	svc := usecase.NewIngestionService(players, lines, logging.NewNop())

	report, err := svc.IngestHitting(context.Background(), []usecase.HittingRecord{
		sampleRecord("660271", "Shohei Ohtani", 70),
		sampleRecord("592450", "Aaron Judge", 80),
	})
	if err != nil {
		t.Fatalf("IngestHitting error: %v", err)
	}
	if report.Attempted != 2 || report.Written != 2 || report.Failed != 0 {
		t.Fatalf("unexpected report: %+v", report)
	}

	stored, exists, err := players.GetBySavantID(context.Background(), "660271")
	if err != nil || !exists {
		t.Fatalf("expected player stored, exists=%v err=%v", exists, err)
	}
	if stored.Name != "Shohei Ohtani" {
		t.Fatalf("unexpected player: %+v", stored)
	}

	rows, err := lines.ListLeaders(context.Background(), 2025, "", 10)
	if err != nil {
		t.Fatalf("ListLeaders error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 stat lines, got %d", len(rows))
	}
}

func TestIngestionService_IngestHitting_Idempotent(t *testing.T) {
	t.Parallel()

	players := memory.NewPlayerRepository()
	lines := memory.NewHittingRepository(players)
	svc := usecase.NewIngestionService(players, lines, logging.NewNop())

	batch := []usecase.HittingRecord{sampleRecord("660271", "Shohei Ohtani", 70)}
	for i := 0; i < 2; i++ {
		report, err := svc.IngestHitting(context.Background(), batch)
		if err != nil {
			t.Fatalf("IngestHitting run %d error: %v", i, err)
		}
		if report.Written != 1 {
			t.Fatalf("run %d: unexpected report %+v", i, report)
		}
	}

	rows, err := lines.ListLeaders(context.Background(), 2025, "", 10)
	if err != nil {
		t.Fatalf("ListLeaders error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected a single stat line after repeat ingest, got %d", len(rows))
	}
}

func TestIngestionService_IngestHitting_BadRecordDoesNotAbortBatch(t *testing.T) {
	t.Parallel()

	players := memory.NewPlayerRepository()
	lines := memory.NewHittingRepository(players)
	svc := usecase.NewIngestionService(players, lines, logging.NewNop())

	bad := sampleRecord("", "Nameless", 5)
	good := sampleRecord("605141", "Mookie Betts", 40)

	report, err := svc.IngestHitting(context.Background(), []usecase.HittingRecord{bad, good})
	if err != nil {
		t.Fatalf("IngestHitting error: %v", err)
	}
	if report.Attempted != 2 || report.Written != 1 || report.Failed != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}

	if _, exists, _ := players.GetBySavantID(context.Background(), "605141"); !exists {
		t.Fatal("expected the valid record to be written")
	}
}

func TestIngestionService_IngestBattedBall(t *testing.T) {
	t.Parallel()

	players := memory.NewPlayerRepository()
	lines := memory.NewHittingRepository(players)
	svc := usecase.NewIngestionService(players, lines, logging.NewNop())

	if _, err := svc.IngestHitting(context.Background(), []usecase.HittingRecord{
		sampleRecord("660271", "Shohei Ohtani", 70),
	}); err != nil {
		t.Fatalf("IngestHitting error: %v", err)
	}

	report, err := svc.IngestBattedBall(context.Background(), []hitting.BattedBallPatch{
		{SavantID: "660271", Season: 2025, PullRate: floatPtr(41.2), FlyBallRate: floatPtr(28.9)},
		{SavantID: "999999", Season: 2025, PullRate: floatPtr(33.0)},
		{SavantID: "", Season: 2025},
	})
	if err != nil {
		t.Fatalf("IngestBattedBall error: %v", err)
	}
	if report.Attempted != 3 || report.Patched != 1 || report.Skipped != 1 || report.Failed != 1 {
		t.Fatalf("unexpected report: %+v", report)
	}
}

func TestIngestionService_FillsTimestamps(t *testing.T) {
	t.Parallel()

	players := memory.NewPlayerRepository()
	lines := memory.NewHittingRepository(players)
	svc := usecase.NewIngestionService(players, lines, logging.NewNop())

	before := time.Now().UTC()
	if _, err := svc.IngestHitting(context.Background(), []usecase.HittingRecord{
		sampleRecord("660271", "Shohei Ohtani", 70),
	}); err != nil {
		t.Fatalf("IngestHitting error: %v", err)
	}

	stored, _, _ := players.GetBySavantID(context.Background(), "660271")
	if stored.UpdatedAt.Before(before.Add(-time.Second)) {
		t.Fatalf("expected UpdatedAt to be filled, got %v", stored.UpdatedAt)
	}
}
