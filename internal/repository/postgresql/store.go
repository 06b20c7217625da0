package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/storetrack/attendance-backend-go/internal/domain/store"
	"github.com/storetrack/attendance-backend-go/internal/pkg/database"
)

type storeRepository struct {
	db *database.DB
}

func NewStoreRepository(db *database.DB) store.Repository {
	return &storeRepository{db: db}
}

// List implements store.Repository.
func (s *storeRepository) List(ctx context.Context) ([]store.Store, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT code, name, location, created_at, updated_at
		FROM stores
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list stores: %w", err)
	}
	defer rows.Close()

	var stores []store.Store
	for rows.Next() {
		var st store.Store
		if err := rows.Scan(&st.Code, &st.Name, &st.Location, &st.CreatedAt, &st.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan store: %w", err)
		}
		stores = append(stores, st)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate stores: %w", err)
	}

	return stores, nil
}

// GetByCode implements store.Repository.
func (s *storeRepository) GetByCode(ctx context.Context, code string) (store.Store, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT code, name, location, created_at, updated_at
		FROM stores
		WHERE code = $1
	`

	var st store.Store
	err := q.QueryRow(ctx, query, code).Scan(&st.Code, &st.Name, &st.Location, &st.CreatedAt, &st.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return store.Store{}, store.ErrStoreNotFound
		}
		return store.Store{}, fmt.Errorf("failed to get store: %w", err)
	}

	return st, nil
}

// Create implements store.Repository.
func (s *storeRepository) Create(ctx context.Context, st store.Store) (store.Store, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO stores (code, name, location)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query, st.Code, st.Name, st.Location).Scan(&st.CreatedAt, &st.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return store.Store{}, store.ErrStoreCodeExists
		}
		return store.Store{}, fmt.Errorf("failed to create store: %w", err)
	}

	return st, nil
}

// Update implements store.Repository.
func (s *storeRepository) Update(ctx context.Context, st store.Store) error {
	q := GetQuerier(ctx, s.db)

	query := `
		UPDATE stores
		SET name = $2, location = $3, updated_at = NOW()
		WHERE code = $1
	`

	tag, err := q.Exec(ctx, query, st.Code, st.Name, st.Location)
	if err != nil {
		return fmt.Errorf("failed to update store: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrStoreNotFound
	}

	return nil
}

// Delete implements store.Repository. Employees assigned to the store are
// untouched; reports fall back to showing the raw code.
func (s *storeRepository) Delete(ctx context.Context, code string) error {
	q := GetQuerier(ctx, s.db)

	tag, err := q.Exec(ctx, `DELETE FROM stores WHERE code = $1`, code)
	if err != nil {
		return fmt.Errorf("failed to delete store: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrStoreNotFound
	}

	return nil
}
