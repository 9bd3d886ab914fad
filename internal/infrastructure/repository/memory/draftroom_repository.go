package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/statdraft/baseball-draft/internal/domain/draftroom"
)

// DraftRoomRepository is an in-memory draftroom.Repository.
type DraftRoomRepository struct {
	mu    sync.RWMutex
	items map[string]draftroom.Room
}

func NewDraftRoomRepository() *DraftRoomRepository {
	return &DraftRoomRepository{items: make(map[string]draftroom.Room)}
}

func (r *DraftRoomRepository) Insert(_ context.Context, room draftroom.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[room.ID]; exists {
		return fmt.Errorf("room id=%s already exists", room.ID)
	}
	r.items[room.ID] = room
	return nil
}

func (r *DraftRoomRepository) GetByID(_ context.Context, id string) (draftroom.Room, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	room, ok := r.items[id]
	return room, ok, nil
}
