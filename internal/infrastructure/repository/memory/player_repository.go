package memory

import (
	"context"
	"sync"

	"github.com/statdraft/baseball-draft/internal/domain/player"
)

// PlayerRepository is an in-memory player.Repository used by tests and
// local development.
type PlayerRepository struct {
	mu    sync.RWMutex
	items map[string]player.Player
}

func NewPlayerRepository() *PlayerRepository {
	return &PlayerRepository{items: make(map[string]player.Player)}
}

func (r *PlayerRepository) Upsert(_ context.Context, item player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[item.SavantID] = item
	return nil
}

func (r *PlayerRepository) GetBySavantID(_ context.Context, savantID string) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[savantID]
	return item, ok, nil
}

func (r *PlayerRepository) snapshot() map[string]player.Player {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]player.Player, len(r.items))
	for key, item := range r.items {
		out[key] = item
	}
	return out
}
