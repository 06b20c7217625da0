package auth

import "context"

// AccountRepository persists the administrator account. There is exactly one
// account; Get returns it or ErrAccountNotFound.
type AccountRepository interface {
	Get(ctx context.Context) (Account, error)
	Create(ctx context.Context, account Account) (Account, error)
	UpdatePassword(ctx context.Context, id string, passwordHash string) error
}
