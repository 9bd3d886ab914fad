package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/statdraft/baseball-draft/internal/domain/draftroom"
	qb "github.com/statdraft/baseball-draft/internal/platform/querybuilder"
)

type DraftRoomRepository struct {
	db *sqlx.DB
}

var draftRoomSelectColumns = []string{
	"id",
	"name",
	"creator_name",
	"max_teams",
	"stat_package",
	"created_at",
}

func NewDraftRoomRepository(db *sqlx.DB) *DraftRoomRepository {
	return &DraftRoomRepository{db: db}
}

// Insert has no conflict clause on purpose. Room ids are random tokens;
// a duplicate is a collision and must surface as an error.
func (r *DraftRoomRepository) Insert(ctx context.Context, room draftroom.Room) error {
	model := draftRoomTableModel{
		ID:            room.ID,
		Name:          room.Name,
		CreatorName:   room.CreatorName,
		MaxTeams:      room.MaxTeams,
		StatPackageID: room.StatPackageID,
		CreatedAt:     room.CreatedAt.UTC(),
	}

	query, args, err := qb.InsertModel("draft_rooms", model, "")
	if err != nil {
		return fmt.Errorf("build insert draft room query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert draft room id=%s: %w", room.ID, err)
	}

	return nil
}

func (r *DraftRoomRepository) GetByID(ctx context.Context, id string) (draftroom.Room, bool, error) {
	query, args, err := qb.Select(draftRoomSelectColumns...).From("draft_rooms").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return draftroom.Room{}, false, fmt.Errorf("build select draft room query: %w", err)
	}

	var row draftRoomTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return draftroom.Room{}, false, nil
		}
		return draftroom.Room{}, false, fmt.Errorf("select draft room id=%s: %w", id, err)
	}

	return draftroom.Room{
		ID:            row.ID,
		Name:          row.Name,
		CreatorName:   row.CreatorName,
		MaxTeams:      row.MaxTeams,
		StatPackageID: row.StatPackageID,
		CreatedAt:     row.CreatedAt,
	}, true, nil
}
