package models

import "time"

// PluginSettings is the persisted plugin configuration.
type PluginSettings struct {
	ID           uint   `gorm:"primaryKey"` // single-row table (ID=1)
	OpenAIAPIKey string `gorm:"column:openai_api_key;not null;default:''"`
	UpdatedAt    time.Time
}

// DefaultPluginSettings returns the default record. Load merges the persisted
// row over a copy of this, so every known field is always present in memory.
func DefaultPluginSettings() *PluginSettings {
	return &PluginSettings{
		ID:           1,
		OpenAIAPIKey: "",
	}
}
