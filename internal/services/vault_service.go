package services

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	filepathx "github.com/yargevad/filepathx"

	"athena/internal/envfile"
	"athena/internal/utils"
)

// VaultInfo summarizes the vault for the frontend.
type VaultInfo struct {
	BasePath   string `json:"basePath"`
	NoteCount  int    `json:"noteCount"`
	GitBacked  bool   `json:"gitBacked"`
	GitBranch  string `json:"gitBranch,omitempty"`
	GitDirty   bool   `json:"gitDirty"`
	PythonDir  string `json:"pythonDir"`
	HasEnvFile bool   `json:"hasEnvFile"`
}

// VaultService owns the vault base path. All vault-relative paths (the env
// mirror, the note store) are derived from it.
type VaultService struct {
	context  context.Context
	basePath string
}

func NewVaultService(basePath string) *VaultService {
	return &VaultService{basePath: basePath}
}

func (v *VaultService) Startup(ctx context.Context) {
	v.context = ctx
}

// BasePath returns the vault root.
func (v *VaultService) BasePath() string {
	return v.basePath
}

// PythonDir returns the companion script directory inside the vault.
func (v *VaultService) PythonDir() string {
	return filepath.Join(v.basePath, "python")
}

// Mirror returns the env mirror rooted at this vault.
func (v *VaultService) Mirror() *envfile.Mirror {
	return envfile.NewMirror(v.basePath)
}

// ListMarkdownNotes returns vault-relative paths of all markdown notes,
// sorted. The python directory is excluded; it holds companion code, not
// notes.
func (v *VaultService) ListMarkdownNotes() ([]string, error) {
	pattern := filepath.Join(v.basePath, "**", "*.md")
	matches, err := filepathx.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("glob notes: %w", err)
	}

	var notes []string
	for _, m := range matches {
		rel, err := filepath.Rel(v.basePath, m)
		if err != nil {
			continue
		}
		rel = filepath.ToSlash(rel)
		if strings.HasPrefix(rel, "python/") {
			continue
		}
		notes = append(notes, rel)
	}
	sort.Strings(notes)
	return notes, nil
}

// Info probes the vault, including git state for git-backed vaults.
func (v *VaultService) Info() (*VaultInfo, error) {
	info := &VaultInfo{
		BasePath:  v.basePath,
		PythonDir: v.PythonDir(),
	}

	notes, err := v.ListMarkdownNotes()
	if err != nil {
		return nil, err
	}
	info.NoteCount = len(notes)
	info.HasEnvFile = utils.FileExists(filepath.Join(v.PythonDir(), ".env"))

	if !utils.HasGitRepo(v.basePath) {
		return info, nil
	}

	repo, err := git.PlainOpen(v.basePath)
	if err != nil {
		// A broken .git dir should not make the vault unusable.
		return info, nil
	}
	info.GitBacked = true

	if head, err := repo.Head(); err == nil {
		info.GitBranch = head.Name().Short()
	}
	if wt, err := repo.Worktree(); err == nil {
		if status, err := wt.Status(); err == nil {
			info.GitDirty = !status.IsClean()
		}
	}
	return info, nil
}
