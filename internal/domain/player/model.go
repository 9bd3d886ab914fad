package player

import (
	"fmt"
	"time"
)

// Position is a canonical primary fielding position.
type Position string

const (
	PositionPitcher     Position = "P"
	PositionCatcher     Position = "C"
	PositionFirstBase   Position = "1B"
	PositionSecondBase  Position = "2B"
	PositionThirdBase   Position = "3B"
	PositionShortstop   Position = "SS"
	PositionLeftField   Position = "LF"
	PositionCenterField Position = "CF"
	PositionRightField  Position = "RF"
	PositionDH          Position = "DH"

	// PositionOutfield is the fallback for unknown or missing position codes.
	PositionOutfield Position = "OF"
)

var AllPositions = map[Position]struct{}{
	PositionPitcher:     {},
	PositionCatcher:     {},
	PositionFirstBase:   {},
	PositionSecondBase:  {},
	PositionThirdBase:   {},
	PositionShortstop:   {},
	PositionLeftField:   {},
	PositionCenterField: {},
	PositionRightField:  {},
	PositionDH:          {},
	PositionOutfield:    {},
}

// Player is an identity record keyed by the upstream source identifier,
// never by the internal surrogate key.
type Player struct {
	SavantID  string
	Name      string
	Team      string
	Position  Position
	Active    bool
	UpdatedAt time.Time
}

func (p Player) Validate() error {
	if p.SavantID == "" {
		return fmt.Errorf("player savant id is required")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if _, ok := AllPositions[p.Position]; !ok {
		return fmt.Errorf("invalid player position: %s", p.Position)
	}

	return nil
}
