package services

import (
	"context"
	"fmt"

	"athena/internal/envfile"
	"athena/internal/models"
	"athena/internal/repositories"
)

// SettingsService owns the single in-memory settings record and keeps both
// sinks consistent with it: the database row and the plaintext env mirror the
// python companion reads. Save order is fixed (storage first, mirror second)
// so the mirror always reflects the last successfully stored value.
type SettingsService interface {
	Startup(ctx context.Context) error
	Get() *models.PluginSettings
	SetOpenAIAPIKey(ctx context.Context, key string) error
	Save(ctx context.Context) error
}

type settingsService struct {
	repo     repositories.PluginSettingsRepository
	mirror   envfile.Writer
	settings *models.PluginSettings
}

func NewSettingsService(repo repositories.PluginSettingsRepository, mirror envfile.Writer) SettingsService {
	return &settingsService{repo: repo, mirror: mirror}
}

// Startup loads the persisted record and merges it over a copy of the
// defaults, persisted values winning per-field. A read failure is fatal to
// activation; no recovery is attempted here.
func (s *settingsService) Startup(ctx context.Context) error {
	stored, err := s.repo.Get(ctx)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	merged := models.DefaultPluginSettings()
	if stored != nil {
		merged.OpenAIAPIKey = stored.OpenAIAPIKey
		merged.UpdatedAt = stored.UpdatedAt
	}
	s.settings = merged
	return nil
}

// Get returns the live settings record. Callers mutate it through
// SetOpenAIAPIKey, never directly.
func (s *settingsService) Get() *models.PluginSettings {
	return s.settings
}

// SetOpenAIAPIKey is the settings-field change handler: mutate, then Save.
// Invoked once per change event; there is no debouncing.
func (s *settingsService) SetOpenAIAPIKey(ctx context.Context, key string) error {
	if s.settings == nil {
		return fmt.Errorf("settings not loaded")
	}
	s.settings.OpenAIAPIKey = key
	return s.Save(ctx)
}

// Save persists the full record, then rewrites the mirror file. The storage
// write must complete before the mirror write starts. Either failure
// propagates; there is no rollback of the other sink, so a mirror failure
// after a successful storage write leaves the sinks diverged until the next
// successful Save.
func (s *settingsService) Save(ctx context.Context) error {
	if s.settings == nil {
		return fmt.Errorf("settings not loaded")
	}
	if err := s.repo.Update(ctx, s.settings); err != nil {
		return fmt.Errorf("persist settings: %w", err)
	}
	if err := s.mirror.WriteKey(s.settings.OpenAIAPIKey); err != nil {
		return fmt.Errorf("mirror settings: %w", err)
	}
	return nil
}
