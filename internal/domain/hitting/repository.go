package hitting

import (
	"context"

	"github.com/statdraft/baseball-draft/internal/domain/player"
)

type Repository interface {
	// UpsertStatLine inserts or fully replaces the (player, season) row.
	// The player row for line.SavantID must already exist.
	UpsertStatLine(ctx context.Context, line StatLine) error

	// PatchBattedBall updates batted-ball rate columns on an existing
	// (player, season) row. It reports whether a row matched; an
	// unmatched patch is not an error.
	PatchBattedBall(ctx context.Context, patch BattedBallPatch) (bool, error)

	// ListLeaders returns stat lines joined to players for one season,
	// ordered by barrels descending. An empty position means no filter.
	ListLeaders(ctx context.Context, season int, position player.Position, limit int) ([]LeaderRow, error)

	Summarize(ctx context.Context, season int) (Summary, error)
}
