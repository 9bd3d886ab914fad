package savant

import (
	"fmt"
	"time"

	"github.com/statdraft/baseball-draft/internal/domain/hitting"
	"github.com/statdraft/baseball-draft/internal/domain/player"
	"github.com/statdraft/baseball-draft/internal/usecase"
)

var positionByCode = map[string]player.Position{
	"1":  player.PositionPitcher,
	"2":  player.PositionCatcher,
	"3":  player.PositionFirstBase,
	"4":  player.PositionSecondBase,
	"5":  player.PositionThirdBase,
	"6":  player.PositionShortstop,
	"7":  player.PositionLeftField,
	"8":  player.PositionCenterField,
	"9":  player.PositionRightField,
	"10": player.PositionDH,
}

// PositionFromCode maps the numeric fielding code the leaderboard uses to a
// canonical position. Unknown or missing codes fall back to OF.
func PositionFromCode(code string) player.Position {
	if mapped, ok := positionByCode[code]; ok {
		return mapped
	}
	return player.PositionOutfield
}

// MapHittingRow converts one leaderboard row into a player identity plus a
// season stat line. Counting stats read missing values as zero; rate and
// quality-of-contact stats stay nil when the source omits them.
func MapHittingRow(row LeaderboardRow, season int, now time.Time) (usecase.HittingRecord, error) {
	savantID := row.EntityID.String()
	if savantID == "" {
		return usecase.HittingRecord{}, fmt.Errorf("leaderboard row is missing entity_id")
	}

	return usecase.HittingRecord{
		Player: player.Player{
			SavantID:  savantID,
			Name:      row.EntityName.String(),
			Team:      row.TeamName.String(),
			Position:  PositionFromCode(row.Position.String()),
			Active:    true,
			UpdatedAt: now,
		},
		Line: hitting.StatLine{
			SavantID: savantID,
			Season:   season,

			Games:            row.Games.Int(),
			PlateAppearances: row.PlateAppearances.Int(),
			AtBats:           row.AtBats.Int(),
			Hits:             row.Hits.Int(),
			Runs:             row.Runs.Int(),
			RBI:              row.RBI.Int(),
			HomeRuns:         row.HomeRuns.Int(),
			Doubles:          row.Doubles.Int(),
			Triples:          row.Triples.Int(),
			StolenBases:      row.StolenBases.Int(),
			Walks:            row.Walks.Int(),
			Strikeouts:       row.Strikeouts.Int(),
			Barrels:          row.Barrels.Int(),

			XWOBA:            floatPtr(row.ExpectedWOBA),
			XBA:              floatPtr(row.ExpectedBA),
			XSLG:             floatPtr(row.ExpectedSLG),
			HardHitPercent:   floatPtr(row.HardHitPercent),
			MaxExitVelocity:  floatPtr(row.MaxExitVelocity),
			AvgExitVelocity:  floatPtr(row.AvgExitVelocity),
			MaxDistance:      floatPtr(row.MaxDistance),
			AvgLaunchAngle:   floatPtr(row.AvgLaunchAngle),
			SweetSpotPercent: floatPtr(row.SweetSpotPercent),

			UpdatedAt: now,
		},
	}, nil
}

// MapBattedBallRow converts one batted-ball row into a partial stat-line
// patch.
func MapBattedBallRow(row BattedBallRow, season int) (hitting.BattedBallPatch, error) {
	savantID := row.BatterID.String()
	if savantID == "" {
		return hitting.BattedBallPatch{}, fmt.Errorf("batted-ball row is missing savant_batter_id")
	}

	return hitting.BattedBallPatch{
		SavantID: savantID,
		Season:   season,

		GroundBallRate:    floatPtr(row.GroundBallRate),
		FlyBallRate:       floatPtr(row.FlyBallRate),
		LineDriveRate:     floatPtr(row.LineDriveRate),
		PullRate:          floatPtr(row.PullRate),
		OppositeFieldRate: floatPtr(row.OppositeFieldRate),
	}, nil
}

func floatPtr(n Number) *float64 {
	value, ok := n.Float64()
	if !ok {
		return nil
	}
	return &value
}
