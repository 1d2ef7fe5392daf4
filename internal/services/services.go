package services

import (
	"gorm.io/gorm"

	"athena/internal/repositories"
)

// Services aggregates the plugin's backend services.
type Services struct {
	Settings  SettingsService
	Vault     *VaultService
	NoteStore *NoteStoreService
	Commands  *CommandService
	Keyring   *KeyringService
}

// NewServices constructs the service graph. The env mirror is derived from
// the vault base path; editor and view probing come from the frontend layer.
func NewServices(db *gorm.DB, vaultBase string, editor Editor, activeMarkdownView func() bool) *Services {
	settingsRepo := repositories.NewPluginSettingsRepository(db)
	vault := NewVaultService(vaultBase)

	return &Services{
		Settings:  NewSettingsService(settingsRepo, vault.Mirror()),
		Vault:     vault,
		NoteStore: NewNoteStoreService(vault),
		Commands:  NewCommandService(editor, activeMarkdownView),
		Keyring:   NewKeyringService(),
	}
}
