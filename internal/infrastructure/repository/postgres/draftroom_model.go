package postgres

import "time"

type draftRoomTableModel struct {
	ID            string    `db:"id"`
	Name          string    `db:"name"`
	CreatorName   string    `db:"creator_name"`
	MaxTeams      int       `db:"max_teams"`
	StatPackageID string    `db:"stat_package"`
	CreatedAt     time.Time `db:"created_at"`
}
