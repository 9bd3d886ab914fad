package savant

import (
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
)

// Number tolerates the leaderboard blob's mixed typing: the same field can
// arrive as a JSON number, a numeric string, or null depending on season
// and player.
type Number struct {
	value float64
	set   bool
}

func (n *Number) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		n.set = false
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var raw string
		if err := sonic.Unmarshal(data, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			n.set = false
			return nil
		}
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			n.set = false
			return nil
		}
		n.value = parsed
		n.set = true
		return nil
	}

	parsed, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return err
	}
	n.value = parsed
	n.set = true
	return nil
}

// Float64 reports the value and whether the source carried one at all.
func (n Number) Float64() (float64, bool) {
	return n.value, n.set
}

// Int truncates toward zero; missing values read as zero.
func (n Number) Int() int {
	if !n.set {
		return 0
	}
	return int(n.value)
}

// Text tolerates identifier fields that arrive as either a JSON string or a
// bare number.
type Text struct {
	value string
}

func (t *Text) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		t.value = ""
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var raw string
		if err := sonic.Unmarshal(data, &raw); err != nil {
			return err
		}
		t.value = strings.TrimSpace(raw)
		return nil
	}
	t.value = trimmed
	return nil
}

func (t Text) String() string {
	return t.value
}

// LeaderboardRow is one hitter on the statcast expected-stats leaderboard.
type LeaderboardRow struct {
	EntityID   Text `json:"entity_id"`
	EntityName Text `json:"entity_name"`
	TeamName   Text `json:"entity_team_name"`
	Position   Text `json:"pos"`

	Games            Number `json:"g"`
	PlateAppearances Number `json:"pa"`
	AtBats           Number `json:"ab"`
	Hits             Number `json:"h"`
	Runs             Number `json:"r"`
	RBI              Number `json:"rbi"`
	HomeRuns         Number `json:"hr"`
	Doubles          Number `json:"doubles"`
	Triples          Number `json:"triples"`
	StolenBases      Number `json:"sb"`
	Walks            Number `json:"bb"`
	Strikeouts       Number `json:"k"`

	ExpectedWOBA     Number `json:"est_woba"`
	ExpectedBA       Number `json:"est_ba"`
	ExpectedSLG      Number `json:"est_slg"`
	Barrels          Number `json:"barrel_ct"`
	HardHitPercent   Number `json:"hard_hit_percent"`
	MaxExitVelocity  Number `json:"exit_velocity_max"`
	AvgExitVelocity  Number `json:"exit_velocity_avg"`
	MaxDistance      Number `json:"distance_max"`
	AvgLaunchAngle   Number `json:"launch_angle_avg"`
	SweetSpotPercent Number `json:"sweet_spot_percent"`
}

// BattedBallRow is one hitter on the batted-ball profile leaderboard. Note
// the identifier key differs from the statcast leaderboard.
type BattedBallRow struct {
	BatterID Text `json:"savant_batter_id"`

	GroundBallRate    Number `json:"gb_rate"`
	FlyBallRate       Number `json:"fb_rate"`
	LineDriveRate     Number `json:"ld_rate"`
	PullRate          Number `json:"pull_rate"`
	OppositeFieldRate Number `json:"oppo_rate"`
}
