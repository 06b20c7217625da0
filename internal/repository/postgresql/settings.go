package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/storetrack/attendance-backend-go/internal/domain/settings"
	"github.com/storetrack/attendance-backend-go/internal/pkg/database"
)

type settingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) settings.Repository {
	return &settingsRepository{db: db}
}

// Get implements settings.Repository. The table holds at most one row,
// keyed by a constant id.
func (s *settingsRepository) Get(ctx context.Context) (settings.Settings, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT login_time, late_threshold, work_days, logo_url, updated_at
		FROM settings
		WHERE id = 1
	`

	var cfg settings.Settings
	err := q.QueryRow(ctx, query).Scan(
		&cfg.LoginTime, &cfg.LateThreshold, &cfg.WorkDays, &cfg.LogoURL, &cfg.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return settings.Settings{}, settings.ErrSettingsNotFound
		}
		return settings.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}

	return cfg, nil
}

// Save implements settings.Repository.
func (s *settingsRepository) Save(ctx context.Context, cfg settings.Settings) error {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO settings (id, login_time, late_threshold, work_days, logo_url)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET login_time = EXCLUDED.login_time,
			late_threshold = EXCLUDED.late_threshold,
			work_days = EXCLUDED.work_days,
			logo_url = EXCLUDED.logo_url,
			updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, cfg.LoginTime, cfg.LateThreshold, cfg.WorkDays, cfg.LogoURL); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}
