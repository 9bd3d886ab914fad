package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/statdraft/baseball-draft/internal/domain/hitting"
	"github.com/statdraft/baseball-draft/internal/domain/player"
)

const (
	defaultLeaderboardLimit = 50
	maxLeaderboardLimit     = 500

	// PositionFilterAll disables position filtering.
	PositionFilterAll = "ALL"
)

type LeaderboardQuery struct {
	Season   int
	Position string
	Limit    int
}

// LeaderboardService serves read-only draft boards. Every call re-queries
// the store so freshly scraped lines show up without any warm-up step.
type LeaderboardService struct {
	hittingRepo hitting.Repository
}

func NewLeaderboardService(hittingRepo hitting.Repository) *LeaderboardService {
	return &LeaderboardService{hittingRepo: hittingRepo}
}

// List returns stat lines joined to player identity, ordered by barrels
// descending. An empty or "ALL" position means no filter; a limit at or
// below zero falls back to the default.
func (s *LeaderboardService) List(ctx context.Context, query LeaderboardQuery) ([]hitting.LeaderRow, error) {
	ctx, span := startUsecaseSpan(ctx, "LeaderboardService.List")
	defer span.End()

	if query.Season <= 0 {
		return nil, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}

	limit := query.Limit
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}
	if limit > maxLeaderboardLimit {
		limit = maxLeaderboardLimit
	}

	position, err := normalizePositionFilter(query.Position)
	if err != nil {
		return nil, err
	}

	rows, err := s.hittingRepo.ListLeaders(ctx, query.Season, position, limit)
	if err != nil {
		return nil, fmt.Errorf("list leaders season=%d: %w", query.Season, err)
	}

	return rows, nil
}

// Summarize returns the season digest used after a scrape run.
func (s *LeaderboardService) Summarize(ctx context.Context, season int) (hitting.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "LeaderboardService.Summarize")
	defer span.End()

	if season <= 0 {
		return hitting.Summary{}, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}

	summary, err := s.hittingRepo.Summarize(ctx, season)
	if err != nil {
		return hitting.Summary{}, fmt.Errorf("summarize season=%d: %w", season, err)
	}

	return summary, nil
}

func normalizePositionFilter(raw string) (player.Position, error) {
	value := strings.ToUpper(strings.TrimSpace(raw))
	if value == "" || value == PositionFilterAll {
		return "", nil
	}

	position := player.Position(value)
	if _, ok := player.AllPositions[position]; !ok {
		return "", fmt.Errorf("%w: unknown position %q", ErrInvalidInput, raw)
	}

	return position, nil
}
