package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/statdraft/baseball-draft/internal/domain/player"
	qb "github.com/statdraft/baseball-draft/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

var playerSelectColumns = []string{
	"savant_id",
	"name",
	"team",
	"primary_position",
	"active",
	"last_updated",
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) Upsert(ctx context.Context, item player.Player) error {
	model := playerTableModel{
		SavantID:        item.SavantID,
		Name:            item.Name,
		Team:            item.Team,
		PrimaryPosition: string(item.Position),
		Active:          item.Active,
		LastUpdated:     item.UpdatedAt.UTC(),
	}

	query, args, err := qb.InsertModel("players", model, `
ON CONFLICT (savant_id) DO UPDATE SET
	name = EXCLUDED.name,
	team = EXCLUDED.team,
	primary_position = EXCLUDED.primary_position,
	active = EXCLUDED.active,
	last_updated = EXCLUDED.last_updated`)
	if err != nil {
		return fmt.Errorf("build upsert player query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert player savant_id=%s: %w", item.SavantID, err)
	}

	return nil
}

func (r *PlayerRepository) GetBySavantID(ctx context.Context, savantID string) (player.Player, bool, error) {
	query, args, err := qb.Select(playerSelectColumns...).From("players").
		Where(qb.Eq("savant_id", savantID)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build select player query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("select player savant_id=%s: %w", savantID, err)
	}

	return player.Player{
		SavantID:  row.SavantID,
		Name:      row.Name,
		Team:      row.Team,
		Position:  player.Position(row.PrimaryPosition),
		Active:    row.Active,
		UpdatedAt: row.LastUpdated,
	}, true, nil
}
