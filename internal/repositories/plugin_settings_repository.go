package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"athena/internal/models"
)

type PluginSettingsRepository interface {
	Get(ctx context.Context) (*models.PluginSettings, error)
	Update(ctx context.Context, settings *models.PluginSettings) error
}

type pluginSettingsRepository struct {
	db *gorm.DB
}

func NewPluginSettingsRepository(db *gorm.DB) PluginSettingsRepository {
	return &pluginSettingsRepository{db: db}
}

// Get returns the persisted settings row, or (nil, nil) when no row exists
// yet. The service layer owns the merge over defaults, so the repository does
// not substitute them here.
func (r *pluginSettingsRepository) Get(ctx context.Context) (*models.PluginSettings, error) {
	var settings models.PluginSettings
	if err := r.db.WithContext(ctx).First(&settings, 1).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

func (r *pluginSettingsRepository) Update(ctx context.Context, settings *models.PluginSettings) error {
	// Ensure ID is set to 1 for single-row table
	settings.ID = 1
	return r.db.WithContext(ctx).Save(settings).Error
}
