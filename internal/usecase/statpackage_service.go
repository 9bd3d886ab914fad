package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/statdraft/baseball-draft/internal/domain/statpackage"
)

// StatPackageService serves the scoring presets rooms are built on. The
// presets are seeded at startup, so an empty store is a deployment fault
// rather than a valid empty listing.
type StatPackageService struct {
	repo statpackage.Repository
}

func NewStatPackageService(repo statpackage.Repository) *StatPackageService {
	return &StatPackageService{repo: repo}
}

func (s *StatPackageService) List(ctx context.Context) ([]statpackage.StatPackage, error) {
	ctx, span := startUsecaseSpan(ctx, "StatPackageService.List")
	defer span.End()

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stat packages: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no stat packages available", ErrDependencyUnavailable)
	}

	return items, nil
}

func (s *StatPackageService) GetByID(ctx context.Context, id string) (statpackage.StatPackage, error) {
	ctx, span := startUsecaseSpan(ctx, "StatPackageService.GetByID")
	defer span.End()

	id = strings.TrimSpace(id)
	if id == "" {
		return statpackage.StatPackage{}, fmt.Errorf("%w: stat package id is required", ErrInvalidInput)
	}

	item, exists, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return statpackage.StatPackage{}, fmt.Errorf("get stat package id=%s: %w", id, err)
	}
	if !exists {
		return statpackage.StatPackage{}, fmt.Errorf("%w: stat package id=%s", ErrNotFound, id)
	}

	return item, nil
}
