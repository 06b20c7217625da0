package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/storetrack/attendance-backend-go/internal/domain/auth"
)

type AdminAccountRepository struct {
	mu      sync.RWMutex
	account *auth.Account
}

func NewAdminAccountRepository() *AdminAccountRepository {
	return &AdminAccountRepository{}
}

func (r *AdminAccountRepository) Get(ctx context.Context) (auth.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.account == nil {
		return auth.Account{}, auth.ErrAccountNotFound
	}
	return *r.account, nil
}

func (r *AdminAccountRepository) Create(ctx context.Context, account auth.Account) (auth.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if account.ID == "" {
		account.ID = uuid.NewString()
	}
	now := time.Now()
	account.CreatedAt = now
	account.UpdatedAt = now
	r.account = &account
	return account, nil
}

func (r *AdminAccountRepository) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.account == nil || r.account.ID != id {
		return auth.ErrAccountNotFound
	}
	r.account.PasswordHash = passwordHash
	r.account.UpdatedAt = time.Now()
	return nil
}
