package statpackage

import "context"

type Repository interface {
	List(ctx context.Context) ([]StatPackage, error)
	GetByID(ctx context.Context, id string) (StatPackage, bool, error)
}
