package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/statdraft/baseball-draft/internal/infrastructure/repository/memory"
)

const insertStatPackageQuery = `
INSERT INTO stat_packages (id, name, philosophy, hitting_categories, pitching_categories, created_at)
VALUES (:id, :name, :philosophy, :hitting_categories, :pitching_categories, :created_at)
ON CONFLICT (id) DO NOTHING`

// SeedStatPackages loads the preset scoring bundles. Existing rows are kept
// as-is so operator edits survive restarts.
func SeedStatPackages(ctx context.Context, db *sqlx.DB) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin seed transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, preset := range memory.SeedPresets(time.Now().UTC()) {
		hittingCategories, err := encodeStringList(preset.HittingCategories)
		if err != nil {
			return fmt.Errorf("seed stat package id=%s: %w", preset.ID, err)
		}
		pitchingCategories, err := encodeStringList(preset.PitchingCategories)
		if err != nil {
			return fmt.Errorf("seed stat package id=%s: %w", preset.ID, err)
		}

		query, args, err := sqlx.Named(insertStatPackageQuery, map[string]any{
			"id":                  preset.ID,
			"name":                preset.Name,
			"philosophy":          preset.Philosophy,
			"hitting_categories":  hittingCategories,
			"pitching_categories": pitchingCategories,
			"created_at":          preset.CreatedAt,
		})
		if err != nil {
			return fmt.Errorf("bind seed stat package query: %w", err)
		}

		query = tx.Rebind(query)
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert stat package id=%s: %w", preset.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit seed transaction: %w", err)
	}

	return nil
}
