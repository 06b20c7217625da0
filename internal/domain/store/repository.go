package store

import "context"

type Repository interface {
	List(ctx context.Context) ([]Store, error)
	GetByCode(ctx context.Context, code string) (Store, error)
	Create(ctx context.Context, st Store) (Store, error)
	Update(ctx context.Context, st Store) error
	Delete(ctx context.Context, code string) error
}
