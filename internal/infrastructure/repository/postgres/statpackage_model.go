package postgres

import "time"

type statPackageTableModel struct {
	ID                 string    `db:"id"`
	Name               string    `db:"name"`
	Philosophy         string    `db:"philosophy"`
	HittingCategories  string    `db:"hitting_categories"`
	PitchingCategories string    `db:"pitching_categories"`
	CreatedAt          time.Time `db:"created_at"`
}
