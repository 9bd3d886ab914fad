package hitting

import (
	"time"

	"github.com/statdraft/baseball-draft/internal/domain/player"
)

// StatLine is one season of hitting production for a player. Counting
// stats default to zero when the source omits them; rate and
// quality-of-contact stats stay nil so "not measured" is distinguishable
// from an actual zero.
type StatLine struct {
	SavantID string
	Season   int

	Games            int
	PlateAppearances int
	AtBats           int
	Hits             int
	Runs             int
	RBI              int
	HomeRuns         int
	Doubles          int
	Triples          int
	StolenBases      int
	Walks            int
	Strikeouts       int
	Barrels          int

	WRCPlus          *float64
	XWOBA            *float64
	XBA              *float64
	XSLG             *float64
	HardHitPercent   *float64
	MaxExitVelocity  *float64
	AvgExitVelocity  *float64
	MaxDistance      *float64
	AvgLaunchAngle   *float64
	SweetSpotPercent *float64

	GroundBallRate    *float64
	FlyBallRate       *float64
	LineDriveRate     *float64
	PullRate          *float64
	OppositeFieldRate *float64

	UpdatedAt time.Time
}

// BattedBallPatch carries only the batted-ball rate columns. It is applied
// as a partial update to an existing (player, season) stat line; when no
// matching line exists the patch is a no-op.
type BattedBallPatch struct {
	SavantID string
	Season   int

	GroundBallRate    *float64
	FlyBallRate       *float64
	LineDriveRate     *float64
	PullRate          *float64
	OppositeFieldRate *float64
}

// LeaderRow is a stat line joined to its player identity, as served by the
// draft leaderboard.
type LeaderRow struct {
	SavantID string
	Name     string
	Team     string
	Position player.Position
	Active   bool

	Season          int
	Barrels         int
	XWOBA           *float64
	MaxExitVelocity *float64
	HardHitPercent  *float64
}

// Summary is the materialized post-scrape digest for one season.
type Summary struct {
	TotalPlayers       int
	PlayersWithBarrels int
	AvgXWOBA           *float64
	MaxBarrels         int
	MaxExitVelocity    *float64
}
