package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/statdraft/baseball-draft/internal/domain/hitting"
	"github.com/statdraft/baseball-draft/internal/domain/player"
)

type statLineKey struct {
	savantID string
	season   int
}

// HittingRepository is an in-memory hitting.Repository. It joins against a
// PlayerRepository the same way the SQL implementation joins the players
// table.
type HittingRepository struct {
	mu      sync.RWMutex
	lines   map[statLineKey]hitting.StatLine
	players *PlayerRepository
}

func NewHittingRepository(players *PlayerRepository) *HittingRepository {
	return &HittingRepository{
		lines:   make(map[statLineKey]hitting.StatLine),
		players: players,
	}
}

func (r *HittingRepository) UpsertStatLine(_ context.Context, line hitting.StatLine) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lines[statLineKey{savantID: line.SavantID, season: line.Season}] = line
	return nil
}

func (r *HittingRepository) PatchBattedBall(_ context.Context, patch hitting.BattedBallPatch) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := statLineKey{savantID: patch.SavantID, season: patch.Season}
	line, ok := r.lines[key]
	if !ok {
		return false, nil
	}

	line.GroundBallRate = patch.GroundBallRate
	line.FlyBallRate = patch.FlyBallRate
	line.LineDriveRate = patch.LineDriveRate
	line.PullRate = patch.PullRate
	line.OppositeFieldRate = patch.OppositeFieldRate
	r.lines[key] = line
	return true, nil
}

func (r *HittingRepository) ListLeaders(_ context.Context, season int, position player.Position, limit int) ([]hitting.LeaderRow, error) {
	if r.players == nil {
		return nil, fmt.Errorf("player repository is not attached")
	}
	players := r.players.snapshot()

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]hitting.LeaderRow, 0, limit)
	for key, line := range r.lines {
		if key.season != season {
			continue
		}
		p, ok := players[key.savantID]
		if !ok {
			continue
		}
		if position != "" && p.Position != position {
			continue
		}
		out = append(out, hitting.LeaderRow{
			SavantID:        p.SavantID,
			Name:            p.Name,
			Team:            p.Team,
			Position:        p.Position,
			Active:          p.Active,
			Season:          line.Season,
			Barrels:         line.Barrels,
			XWOBA:           line.XWOBA,
			MaxExitVelocity: line.MaxExitVelocity,
			HardHitPercent:  line.HardHitPercent,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Barrels != out[j].Barrels {
			return out[i].Barrels > out[j].Barrels
		}
		return out[i].SavantID < out[j].SavantID
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *HittingRepository) Summarize(_ context.Context, season int) (hitting.Summary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	summary := hitting.Summary{}
	var xwobaSum float64
	var xwobaCount int

	for key, line := range r.lines {
		if key.season != season {
			continue
		}
		summary.TotalPlayers++
		if line.Barrels > 0 {
			summary.PlayersWithBarrels++
		}
		if line.Barrels > summary.MaxBarrels {
			summary.MaxBarrels = line.Barrels
		}
		if line.XWOBA != nil {
			xwobaSum += *line.XWOBA
			xwobaCount++
		}
		if line.MaxExitVelocity != nil {
			if summary.MaxExitVelocity == nil || *line.MaxExitVelocity > *summary.MaxExitVelocity {
				value := *line.MaxExitVelocity
				summary.MaxExitVelocity = &value
			}
		}
	}

	if xwobaCount > 0 {
		avg := xwobaSum / float64(xwobaCount)
		summary.AvgXWOBA = &avg
	}

	return summary, nil
}
