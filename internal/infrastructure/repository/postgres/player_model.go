package postgres

import "time"

type playerTableModel struct {
	SavantID        string    `db:"savant_id"`
	Name            string    `db:"name"`
	Team            string    `db:"team"`
	PrimaryPosition string    `db:"primary_position"`
	Active          bool      `db:"active"`
	LastUpdated     time.Time `db:"last_updated"`
}
