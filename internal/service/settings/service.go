package settings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/storetrack/attendance-backend-go/internal/domain/settings"
)

type SettingsService interface {
	Get(ctx context.Context) (settings.Response, error)
	Update(ctx context.Context, req settings.UpdateRequest) (settings.Response, error)
	SetLogo(ctx context.Context, logoURL *string) (settings.Response, error)
}

type settingsServiceImpl struct {
	repo settings.Repository
}

func NewSettingsService(repo settings.Repository) SettingsService {
	return &settingsServiceImpl{repo: repo}
}

func (s *settingsServiceImpl) current(ctx context.Context) (settings.Settings, error) {
	cfg, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, settings.ErrSettingsNotFound) {
			return settings.Default(), nil
		}
		return settings.Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}
	return cfg, nil
}

func (s *settingsServiceImpl) Get(ctx context.Context) (settings.Response, error) {
	cfg, err := s.current(ctx)
	if err != nil {
		return settings.Response{}, err
	}
	return settings.NewResponse(cfg), nil
}

// Update applies a partial update: only the fields present in the request
// change.
func (s *settingsServiceImpl) Update(ctx context.Context, req settings.UpdateRequest) (settings.Response, error) {
	if err := req.Validate(); err != nil {
		return settings.Response{}, err
	}

	cfg, err := s.current(ctx)
	if err != nil {
		return settings.Response{}, err
	}

	if req.LoginTime != nil {
		cfg.LoginTime = *req.LoginTime
	}
	if req.LateThreshold != nil {
		cfg.LateThreshold = *req.LateThreshold
	}
	if req.WorkDays != nil {
		cfg.WorkDays = *req.WorkDays
	}
	if req.LogoURL != nil {
		cfg.LogoURL = req.LogoURL
	}

	if err := s.repo.Save(ctx, cfg); err != nil {
		return settings.Response{}, fmt.Errorf("failed to save settings: %w", err)
	}

	slog.Info("Settings updated",
		"login_time", cfg.LoginTime,
		"late_threshold", cfg.LateThreshold,
		"work_days", cfg.WorkDays,
	)
	return settings.NewResponse(cfg), nil
}

// SetLogo stores or clears the company logo URL.
func (s *settingsServiceImpl) SetLogo(ctx context.Context, logoURL *string) (settings.Response, error) {
	cfg, err := s.current(ctx)
	if err != nil {
		return settings.Response{}, err
	}

	cfg.LogoURL = logoURL
	if err := s.repo.Save(ctx, cfg); err != nil {
		return settings.Response{}, fmt.Errorf("failed to save settings: %w", err)
	}
	return settings.NewResponse(cfg), nil
}
