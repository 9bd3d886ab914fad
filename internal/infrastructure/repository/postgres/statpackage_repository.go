package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/statdraft/baseball-draft/internal/domain/statpackage"
	qb "github.com/statdraft/baseball-draft/internal/platform/querybuilder"
)

type StatPackageRepository struct {
	db *sqlx.DB
}

var statPackageSelectColumns = []string{
	"id",
	"name",
	"philosophy",
	"hitting_categories",
	"pitching_categories",
	"created_at",
}

func NewStatPackageRepository(db *sqlx.DB) *StatPackageRepository {
	return &StatPackageRepository{db: db}
}

func (r *StatPackageRepository) List(ctx context.Context) ([]statpackage.StatPackage, error) {
	query, args, err := qb.Select(statPackageSelectColumns...).From("stat_packages").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select stat packages query: %w", err)
	}

	var rows []statPackageTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select stat packages: %w", err)
	}

	out := make([]statpackage.StatPackage, 0, len(rows))
	for _, row := range rows {
		item, err := statPackageFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}

	return out, nil
}

func (r *StatPackageRepository) GetByID(ctx context.Context, id string) (statpackage.StatPackage, bool, error) {
	query, args, err := qb.Select(statPackageSelectColumns...).From("stat_packages").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return statpackage.StatPackage{}, false, fmt.Errorf("build select stat package query: %w", err)
	}

	var row statPackageTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return statpackage.StatPackage{}, false, nil
		}
		return statpackage.StatPackage{}, false, fmt.Errorf("select stat package id=%s: %w", id, err)
	}

	item, err := statPackageFromRow(row)
	if err != nil {
		return statpackage.StatPackage{}, false, err
	}

	return item, true, nil
}

func statPackageFromRow(row statPackageTableModel) (statpackage.StatPackage, error) {
	hittingCategories, err := decodeStringList(row.HittingCategories)
	if err != nil {
		return statpackage.StatPackage{}, fmt.Errorf("stat package id=%s hitting categories: %w", row.ID, err)
	}
	pitchingCategories, err := decodeStringList(row.PitchingCategories)
	if err != nil {
		return statpackage.StatPackage{}, fmt.Errorf("stat package id=%s pitching categories: %w", row.ID, err)
	}

	return statpackage.StatPackage{
		ID:                 row.ID,
		Name:               row.Name,
		Philosophy:         row.Philosophy,
		HittingCategories:  hittingCategories,
		PitchingCategories: pitchingCategories,
		CreatedAt:          row.CreatedAt,
	}, nil
}
