package draftroom

import "context"

type Repository interface {
	Insert(ctx context.Context, room Room) error
	GetByID(ctx context.Context, id string) (Room, bool, error)
}
