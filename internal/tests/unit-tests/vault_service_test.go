package unit_tests

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"athena/internal/services"
)

func TestVaultService_ListMarkdownNotes(t *testing.T) {
	vault := t.TempDir()
	writeNote(t, vault, "root.md", "root")
	writeNote(t, vault, "folder/nested.md", "nested")
	writeNote(t, vault, "python/helper.md", "companion doc")
	assert.NoError(t, os.WriteFile(filepath.Join(vault, "not-a-note.txt"), []byte("x"), 0644))

	service := services.NewVaultService(vault)
	notes, err := service.ListMarkdownNotes()
	assert.NoError(t, err)
	assert.Equal(t, []string{"folder/nested.md", "root.md"}, notes)
}

func TestVaultService_InfoPlainVault(t *testing.T) {
	vault := t.TempDir()
	writeNote(t, vault, "a.md", "note")

	service := services.NewVaultService(vault)
	info, err := service.Info()
	assert.NoError(t, err)

	assert.Equal(t, vault, info.BasePath)
	assert.Equal(t, 1, info.NoteCount)
	assert.False(t, info.GitBacked)
	assert.False(t, info.HasEnvFile)
	assert.Equal(t, filepath.Join(vault, "python"), info.PythonDir)
}

func TestVaultService_InfoDetectsEnvFile(t *testing.T) {
	vault := t.TempDir()
	assert.NoError(t, os.MkdirAll(filepath.Join(vault, "python"), 0755))
	assert.NoError(t, os.WriteFile(filepath.Join(vault, "python", ".env"), []byte("OPENAI_API_KEY=\n"), 0600))

	service := services.NewVaultService(vault)
	info, err := service.Info()
	assert.NoError(t, err)
	assert.True(t, info.HasEnvFile)
}
