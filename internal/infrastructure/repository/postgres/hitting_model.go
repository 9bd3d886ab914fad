package postgres

import "time"

type hittingLeaderRowModel struct {
	SavantID        string    `db:"savant_id"`
	Name            string    `db:"name"`
	Team            string    `db:"team"`
	PrimaryPosition string    `db:"primary_position"`
	Active          bool      `db:"active"`
	Season          int       `db:"season"`
	Barrels         int       `db:"barrels"`
	XWOBA           *float64  `db:"xwoba"`
	MaxExitVelocity *float64  `db:"max_exit_velocity"`
	HardHitPercent  *float64  `db:"hard_hit_percent"`
	LastUpdated     time.Time `db:"last_updated"`
}

type hittingSummaryRowModel struct {
	TotalPlayers       int      `db:"total_players"`
	PlayersWithBarrels int      `db:"players_with_barrels"`
	AvgXWOBA           *float64 `db:"avg_xwoba"`
	MaxBarrels         *int     `db:"max_barrels"`
	MaxExitVelocity    *float64 `db:"max_exit_velocity"`
}
