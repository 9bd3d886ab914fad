package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	// Upsert inserts the player or, when a row with the same savant id
	// already exists, overwrites its team, position, active flag and
	// timestamp in place. There is never more than one row per savant id.
	Upsert(ctx context.Context, p Player) error
	GetBySavantID(ctx context.Context, savantID string) (Player, bool, error)
}
