package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/statdraft/baseball-draft/internal/domain/statpackage"
)

// StatPackageRepository is an in-memory statpackage.Repository.
type StatPackageRepository struct {
	mu    sync.RWMutex
	items map[string]statpackage.StatPackage
}

func NewStatPackageRepository() *StatPackageRepository {
	return &StatPackageRepository{items: make(map[string]statpackage.StatPackage)}
}

func (r *StatPackageRepository) List(_ context.Context) ([]statpackage.StatPackage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]statpackage.StatPackage, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *StatPackageRepository) GetByID(_ context.Context, id string) (statpackage.StatPackage, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	return item, ok, nil
}

func (r *StatPackageRepository) Put(_ context.Context, item statpackage.StatPackage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.ID] = item
	return nil
}

// SeedPresets are the scoring bundles every deployment starts with.
func SeedPresets(now time.Time) []statpackage.StatPackage {
	return []statpackage.StatPackage{
		{
			ID:                 "classic-5x5",
			Name:               "Classic 5x5",
			Philosophy:         "Traditional roto categories everyone knows from the box score.",
			HittingCategories:  []string{"R", "HR", "RBI", "SB", "AVG"},
			PitchingCategories: []string{"W", "SV", "K", "ERA", "WHIP"},
			CreatedAt:          now,
		},
		{
			ID:                 "statcast-era",
			Name:               "Statcast Era",
			Philosophy:         "Quality of contact over outcomes. Barrels and expected stats reward true skill.",
			HittingCategories:  []string{"Barrels", "xwOBA", "xSLG", "HardHit%", "MaxEV"},
			PitchingCategories: []string{"K%", "xERA", "Whiff%", "CSW%", "Barrel%"},
			CreatedAt:          now,
		},
		{
			ID:                 "moneyball",
			Name:               "Moneyball",
			Philosophy:         "On-base skills and run creation. Walks are wins.",
			HittingCategories:  []string{"OBP", "BB", "R", "xBA", "SweetSpot%"},
			PitchingCategories: []string{"QS", "K/BB", "FIP", "IP", "SV+HLD"},
			CreatedAt:          now,
		},
	}
}

// SeedStatPackages loads the preset bundles, overwriting same-id entries so
// repeated startups converge.
func SeedStatPackages(ctx context.Context, repo *StatPackageRepository, now time.Time) error {
	for _, preset := range SeedPresets(now) {
		if err := repo.Put(ctx, preset); err != nil {
			return err
		}
	}
	return nil
}
