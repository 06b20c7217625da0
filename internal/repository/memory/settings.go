package memory

import (
	"context"
	"sync"
	"time"

	"github.com/storetrack/attendance-backend-go/internal/domain/settings"
)

type SettingsRepository struct {
	mu      sync.RWMutex
	current *settings.Settings
}

func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{}
}

func (r *SettingsRepository) Get(ctx context.Context) (settings.Settings, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.current == nil {
		return settings.Settings{}, settings.ErrSettingsNotFound
	}
	return *r.current, nil
}

func (r *SettingsRepository) Save(ctx context.Context, s settings.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s.UpdatedAt = time.Now()
	r.current = &s
	return nil
}
