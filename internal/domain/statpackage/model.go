package statpackage

import (
	"fmt"
	"time"
)

// StatPackage is a named preset bundle of scoring categories. Packages are
// read-only reference data seeded at initialization; category lists are
// stored JSON-encoded and must decode to identifier arrays on every read.
type StatPackage struct {
	ID                 string
	Name               string
	Philosophy         string
	HittingCategories  []string
	PitchingCategories []string
	CreatedAt          time.Time
}

func (p StatPackage) Validate() error {
	if p.ID == "" {
		return fmt.Errorf("stat package id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("stat package name is required")
	}
	if len(p.HittingCategories) == 0 {
		return fmt.Errorf("stat package hitting categories are required")
	}
	if len(p.PitchingCategories) == 0 {
		return fmt.Errorf("stat package pitching categories are required")
	}

	return nil
}
