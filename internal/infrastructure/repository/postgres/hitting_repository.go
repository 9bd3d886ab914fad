package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/statdraft/baseball-draft/internal/domain/hitting"
	"github.com/statdraft/baseball-draft/internal/domain/player"
	qb "github.com/statdraft/baseball-draft/internal/platform/querybuilder"
)

type HittingRepository struct {
	db *sqlx.DB
}

func NewHittingRepository(db *sqlx.DB) *HittingRepository {
	return &HittingRepository{db: db}
}

// The player row is resolved by subselect at write time so the stat line
// never needs to know the surrogate key. The conflict target leaves the
// batted-ball columns untouched; those arrive through PatchBattedBall.
const upsertStatLineQuery = `
INSERT INTO hitting_stats (
	player_id, season, games_played, plate_appearances, at_bats, hits, runs, rbi,
	home_runs, doubles, triples, stolen_bases, walks, strikeouts,
	wrc_plus, xwoba, xba, xslg, barrels, hard_hit_percent,
	max_exit_velocity, avg_exit_velocity, max_distance, avg_launch_angle,
	sweet_spot_percent, last_updated
) VALUES (
	(SELECT id FROM players WHERE savant_id = :savant_id), :season, :games_played, :plate_appearances, :at_bats, :hits, :runs, :rbi,
	:home_runs, :doubles, :triples, :stolen_bases, :walks, :strikeouts,
	:wrc_plus, :xwoba, :xba, :xslg, :barrels, :hard_hit_percent,
	:max_exit_velocity, :avg_exit_velocity, :max_distance, :avg_launch_angle,
	:sweet_spot_percent, :last_updated
)
ON CONFLICT (player_id, season) DO UPDATE SET
	games_played = EXCLUDED.games_played,
	plate_appearances = EXCLUDED.plate_appearances,
	at_bats = EXCLUDED.at_bats,
	hits = EXCLUDED.hits,
	runs = EXCLUDED.runs,
	rbi = EXCLUDED.rbi,
	home_runs = EXCLUDED.home_runs,
	doubles = EXCLUDED.doubles,
	triples = EXCLUDED.triples,
	stolen_bases = EXCLUDED.stolen_bases,
	walks = EXCLUDED.walks,
	strikeouts = EXCLUDED.strikeouts,
	wrc_plus = EXCLUDED.wrc_plus,
	xwoba = EXCLUDED.xwoba,
	xba = EXCLUDED.xba,
	xslg = EXCLUDED.xslg,
	barrels = EXCLUDED.barrels,
	hard_hit_percent = EXCLUDED.hard_hit_percent,
	max_exit_velocity = EXCLUDED.max_exit_velocity,
	avg_exit_velocity = EXCLUDED.avg_exit_velocity,
	max_distance = EXCLUDED.max_distance,
	avg_launch_angle = EXCLUDED.avg_launch_angle,
	sweet_spot_percent = EXCLUDED.sweet_spot_percent,
	last_updated = EXCLUDED.last_updated`

func (r *HittingRepository) UpsertStatLine(ctx context.Context, line hitting.StatLine) error {
	updatedAt := line.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}

	query, args, err := sqlx.Named(upsertStatLineQuery, map[string]any{
		"savant_id":          line.SavantID,
		"season":             line.Season,
		"games_played":       line.Games,
		"plate_appearances":  line.PlateAppearances,
		"at_bats":            line.AtBats,
		"hits":               line.Hits,
		"runs":               line.Runs,
		"rbi":                line.RBI,
		"home_runs":          line.HomeRuns,
		"doubles":            line.Doubles,
		"triples":            line.Triples,
		"stolen_bases":       line.StolenBases,
		"walks":              line.Walks,
		"strikeouts":         line.Strikeouts,
		"wrc_plus":           line.WRCPlus,
		"xwoba":              line.XWOBA,
		"xba":                line.XBA,
		"xslg":               line.XSLG,
		"barrels":            line.Barrels,
		"hard_hit_percent":   line.HardHitPercent,
		"max_exit_velocity":  line.MaxExitVelocity,
		"avg_exit_velocity":  line.AvgExitVelocity,
		"max_distance":       line.MaxDistance,
		"avg_launch_angle":   line.AvgLaunchAngle,
		"sweet_spot_percent": line.SweetSpotPercent,
		"last_updated":       updatedAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("bind upsert stat line query: %w", err)
	}

	query = r.db.Rebind(query)
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert stat line savant_id=%s season=%d: %w", line.SavantID, line.Season, err)
	}

	return nil
}

func (r *HittingRepository) PatchBattedBall(ctx context.Context, patch hitting.BattedBallPatch) (bool, error) {
	query, args, err := qb.Update("hitting_stats").
		Set("ground_ball_rate", patch.GroundBallRate).
		Set("fly_ball_rate", patch.FlyBallRate).
		Set("line_drive_rate", patch.LineDriveRate).
		Set("pull_rate", patch.PullRate).
		Set("opposite_field_rate", patch.OppositeFieldRate).
		Set("last_updated", time.Now().UTC()).
		Where(
			qb.Expr("player_id = (SELECT id FROM players WHERE savant_id = ?)", patch.SavantID),
			qb.Eq("season", patch.Season),
		).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build batted-ball patch query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("patch batted-ball savant_id=%s season=%d: %w", patch.SavantID, patch.Season, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("read batted-ball patch result: %w", err)
	}

	return affected > 0, nil
}

var leaderSelectColumns = []string{
	"p.savant_id",
	"p.name",
	"p.team",
	"p.primary_position",
	"p.active",
	"h.season",
	"h.barrels",
	"h.xwoba",
	"h.max_exit_velocity",
	"h.hard_hit_percent",
	"h.last_updated",
}

func (r *HittingRepository) ListLeaders(ctx context.Context, season int, position player.Position, limit int) ([]hitting.LeaderRow, error) {
	builder := qb.Select(leaderSelectColumns...).
		From("players p JOIN hitting_stats h ON p.id = h.player_id").
		Where(qb.Eq("h.season", season))
	if position != "" {
		builder = builder.Where(qb.Eq("p.primary_position", string(position)))
	}
	query, args, err := builder.
		OrderBy("h.barrels DESC", "p.savant_id").
		Limit(limit).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select leaders query: %w", err)
	}

	var rows []hittingLeaderRowModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select leaders season=%d: %w", season, err)
	}

	out := make([]hitting.LeaderRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, hitting.LeaderRow{
			SavantID:        row.SavantID,
			Name:            row.Name,
			Team:            row.Team,
			Position:        player.Position(row.PrimaryPosition),
			Active:          row.Active,
			Season:          row.Season,
			Barrels:         row.Barrels,
			XWOBA:           row.XWOBA,
			MaxExitVelocity: row.MaxExitVelocity,
			HardHitPercent:  row.HardHitPercent,
		})
	}

	return out, nil
}

const summarizeQuery = `
SELECT
	COUNT(*) AS total_players,
	COUNT(*) FILTER (WHERE h.barrels > 0) AS players_with_barrels,
	AVG(h.xwoba) AS avg_xwoba,
	MAX(h.barrels) AS max_barrels,
	MAX(h.max_exit_velocity) AS max_exit_velocity
FROM hitting_stats h
WHERE h.season = $1`

func (r *HittingRepository) Summarize(ctx context.Context, season int) (hitting.Summary, error) {
	var row hittingSummaryRowModel
	if err := r.db.GetContext(ctx, &row, summarizeQuery, season); err != nil {
		return hitting.Summary{}, fmt.Errorf("summarize season=%d: %w", season, err)
	}

	summary := hitting.Summary{
		TotalPlayers:       row.TotalPlayers,
		PlayersWithBarrels: row.PlayersWithBarrels,
		AvgXWOBA:           row.AvgXWOBA,
		MaxExitVelocity:    row.MaxExitVelocity,
	}
	if row.MaxBarrels != nil {
		summary.MaxBarrels = *row.MaxBarrels
	}

	return summary, nil
}
