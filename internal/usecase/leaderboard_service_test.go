package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/statdraft/baseball-draft/internal/domain/player"
	"github.com/statdraft/baseball-draft/internal/infrastructure/repository/memory"
	"github.com/statdraft/baseball-draft/internal/platform/logging"
	"github.com/statdraft/baseball-draft/internal/usecase"
)

func seededLeaderboard(t *testing.T) *usecase.LeaderboardService {
	t.Helper()

	players := memory.NewPlayerRepository()
	lines := memory.NewHittingRepository(players)
	ingestion := usecase.NewIngestionService(players, lines, logging.NewNop())

	judge := sampleRecord("592450", "Aaron Judge", 80)
	judge.Player.Position = player.PositionRightField
	ohtani := sampleRecord("660271", "Shohei Ohtani", 70)
	ohtani.Player.Position = player.PositionDH
	betts := sampleRecord("605141", "Mookie Betts", 40)
	betts.Player.Position = player.PositionShortstop

	if _, err := ingestion.IngestHitting(context.Background(), []usecase.HittingRecord{ohtani, judge, betts}); err != nil {
		t.Fatalf("seed leaderboard: %v", err)
	}

	return usecase.NewLeaderboardService(lines)
}

func TestLeaderboardService_List_OrderedByBarrels(t *testing.T) {
	t.Parallel()

	svc := seededLeaderboard(t)

	rows, err := svc.List(context.Background(), usecase.LeaderboardQuery{Season: 2025})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].Name != "Aaron Judge" || rows[1].Name != "Shohei Ohtani" || rows[2].Name != "Mookie Betts" {
		t.Fatalf("unexpected order: %s, %s, %s", rows[0].Name, rows[1].Name, rows[2].Name)
	}
}

func TestLeaderboardService_List_PositionFilter(t *testing.T) {
	t.Parallel()

	svc := seededLeaderboard(t)

	rows, err := svc.List(context.Background(), usecase.LeaderboardQuery{Season: 2025, Position: "SS"})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(rows) != 1 || rows[0].Name != "Mookie Betts" {
		t.Fatalf("unexpected rows: %+v", rows)
	}

	// "ALL" and lowercase both mean no filter.
	for _, filter := range []string{"ALL", "all", ""} {
		rows, err := svc.List(context.Background(), usecase.LeaderboardQuery{Season: 2025, Position: filter})
		if err != nil {
			t.Fatalf("List position=%q error: %v", filter, err)
		}
		if len(rows) != 3 {
			t.Fatalf("position=%q: expected 3 rows, got %d", filter, len(rows))
		}
	}
}

func TestLeaderboardService_List_UnknownPosition(t *testing.T) {
	t.Parallel()

	svc := seededLeaderboard(t)

	_, err := svc.List(context.Background(), usecase.LeaderboardQuery{Season: 2025, Position: "QB"})
	if !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLeaderboardService_List_LimitDefaults(t *testing.T) {
	t.Parallel()

	svc := seededLeaderboard(t)

	rows, err := svc.List(context.Background(), usecase.LeaderboardQuery{Season: 2025, Limit: 2})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected limit respected, got %d rows", len(rows))
	}

	// Zero and negative limits fall back to the default instead of failing.
	rows, err = svc.List(context.Background(), usecase.LeaderboardQuery{Season: 2025, Limit: -1})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected all rows under default limit, got %d", len(rows))
	}
}

func TestLeaderboardService_Summarize(t *testing.T) {
	t.Parallel()

	svc := seededLeaderboard(t)

	summary, err := svc.Summarize(context.Background(), 2025)
	if err != nil {
		t.Fatalf("Summarize error: %v", err)
	}
	if summary.TotalPlayers != 3 || summary.PlayersWithBarrels != 3 || summary.MaxBarrels != 80 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if summary.AvgXWOBA == nil {
		t.Fatal("expected average xwOBA to be set")
	}
}
