package mocks

import (
	"context"

	"athena/internal/models"
)

type PluginSettingsRepositoryMock struct {
	GetFunc    func(ctx context.Context) (*models.PluginSettings, error)
	UpdateFunc func(ctx context.Context, settings *models.PluginSettings) error
}

func (m *PluginSettingsRepositoryMock) Get(ctx context.Context) (*models.PluginSettings, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx)
	}
	return nil, nil
}

func (m *PluginSettingsRepositoryMock) Update(ctx context.Context, settings *models.PluginSettings) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, settings)
	}
	return nil
}
