package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/storetrack/attendance-backend-go/internal/domain/auth"
	"github.com/storetrack/attendance-backend-go/internal/pkg/database"
)

type adminAccountRepository struct {
	db *database.DB
}

func NewAdminAccountRepository(db *database.DB) auth.AccountRepository {
	return &adminAccountRepository{db: db}
}

// Get implements auth.AccountRepository. There is a single administrator
// account; the oldest row wins if the table ever holds more than one.
func (a *adminAccountRepository) Get(ctx context.Context) (auth.Account, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, email, password_hash, created_at, updated_at
		FROM admin_accounts
		ORDER BY created_at ASC
		LIMIT 1
	`

	var account auth.Account
	err := q.QueryRow(ctx, query).Scan(
		&account.ID, &account.Email, &account.PasswordHash,
		&account.CreatedAt, &account.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.Account{}, auth.ErrAccountNotFound
		}
		return auth.Account{}, fmt.Errorf("failed to get admin account: %w", err)
	}

	return account, nil
}

// Create implements auth.AccountRepository.
func (a *adminAccountRepository) Create(ctx context.Context, account auth.Account) (auth.Account, error) {
	q := GetQuerier(ctx, a.db)

	if account.ID == "" {
		account.ID = uuid.New().String()
	}

	query := `
		INSERT INTO admin_accounts (id, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, account.ID, account.Email, account.PasswordHash).
		Scan(&account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		return auth.Account{}, fmt.Errorf("failed to create admin account: %w", err)
	}

	return account, nil
}

// UpdatePassword implements auth.AccountRepository.
func (a *adminAccountRepository) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE admin_accounts
		SET password_hash = $2, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id, passwordHash)
	if err != nil {
		return fmt.Errorf("failed to update admin password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return auth.ErrAccountNotFound
	}

	return nil
}
