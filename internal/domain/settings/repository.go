package settings

import "context"

// Repository persists the single process-wide settings row.
type Repository interface {
	// Get returns the stored settings, or ErrSettingsNotFound when nothing
	// has been saved yet (callers fall back to Default).
	Get(ctx context.Context) (Settings, error)

	// Save upserts the settings row.
	Save(ctx context.Context, s Settings) error
}
