package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/wailsapp/wails/v2/pkg/runtime"

	"athena/internal/events"
	"athena/internal/llm/client"
	"athena/internal/models"
	"athena/internal/services"
)

// App struct
type App struct {
	ctx context.Context
	svc *services.Services

	dbClose func() error

	viewMu         sync.Mutex
	activeViewType string
}

// NewApp creates a new App application struct
func NewApp() *App {
	return &App{}
}

// startup is called when the app starts. The context is saved
// so we can call the runtime methods
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
	events.EnableRuntimeEmitter()

	a.svc.Vault.Startup(ctx)
	a.svc.NoteStore.Startup(ctx)
	a.svc.Commands.Startup(ctx)

	// A settings load failure is fatal to activation; without the merged
	// record every save would clobber the stored key.
	if err := a.svc.Settings.Startup(ctx); err != nil {
		runtime.LogError(ctx, fmt.Sprintf("failed to load settings: %v", err))
		runtime.Quit(ctx)
		return
	}

	runtime.EventsEmit(ctx, events.PluginStatusBar, a.svc.Commands.StatusBarText())
}

// shutdown is called when the app is closing. Clean up resources here.
func (a *App) shutdown(ctx context.Context) {
	if a.dbClose != nil {
		if err := a.dbClose(); err != nil {
			runtime.LogError(ctx, fmt.Sprintf("failed to close database: %v", err))
		} else {
			runtime.LogInfo(ctx, "database closed")
		}
		a.dbClose = nil
	}
}

// GetSettings returns the live settings record for the settings panel.
func (a *App) GetSettings() (*models.PluginSettings, error) {
	if a.svc == nil || a.svc.Settings == nil {
		return nil, fmt.Errorf("settings service not available")
	}
	settings := a.svc.Settings.Get()
	if settings == nil {
		return nil, fmt.Errorf("settings not loaded")
	}
	return settings, nil
}

// SetOpenAIAPIKey is bound to the settings text field; the frontend calls it
// on every change. Failures surface as an error notice but keep the
// storage-before-mirror ordering intact.
func (a *App) SetOpenAIAPIKey(key string) error {
	if err := a.svc.Settings.SetOpenAIAPIKey(a.ctx, key); err != nil {
		runtime.LogError(a.ctx, fmt.Sprintf("failed to save settings: %v", err))
		events.Emit(a.ctx, events.PluginNotice, events.NewError("Failed to save settings"))
		return err
	}
	return nil
}

// RibbonClicked handles the ribbon icon click.
func (a *App) RibbonClicked() {
	a.svc.Commands.RibbonClicked()
}

// StatusBarText returns the status-bar label content.
func (a *App) StatusBarText() string {
	return a.svc.Commands.StatusBarText()
}

// Commands lists the registered palette commands.
func (a *App) Commands() []services.Command {
	return a.svc.Commands.Commands()
}

// RunCommand dispatches a palette command by id. With checking true the
// command only reports availability, mirroring the host's two-phase
// callback; unconditional commands are always available.
func (a *App) RunCommand(id string, checking bool) (bool, error) {
	switch id {
	case services.CommandOpenModalSimple:
		if !checking {
			a.svc.Commands.OpenSampleModal()
		}
		return true, nil
	case services.CommandEditorReplace:
		if checking {
			return true, nil
		}
		return true, a.svc.Commands.ReplaceEditorSelection()
	case services.CommandOpenModalComplex:
		return a.svc.Commands.OpenComplexModal(checking), nil
	default:
		return false, fmt.Errorf("unknown command: %s", id)
	}
}

// SetActiveViewType is called by the frontend whenever the focused view
// changes; the complex modal command is gated on a markdown view.
func (a *App) SetActiveViewType(viewType string) {
	a.viewMu.Lock()
	a.activeViewType = viewType
	a.viewMu.Unlock()
}

func (a *App) hasActiveMarkdownView() bool {
	a.viewMu.Lock()
	defer a.viewMu.Unlock()
	return a.activeViewType == "markdown"
}

// GetVaultInfo returns vault diagnostics for the frontend.
func (a *App) GetVaultInfo() (*services.VaultInfo, error) {
	return a.svc.Vault.Info()
}

// IndexVault registers and chunks every markdown note in the vault.
func (a *App) IndexVault() (int, error) {
	return a.svc.NoteStore.IndexVault()
}

// ExtractNoteGraph runs knowledge-graph extraction over every chunk of the
// given note and returns one graph per chunk. The key comes from the live
// settings, falling back to the env mirror, the same source the python
// companion reads.
func (a *App) ExtractNoteGraph(fileName string) ([]*client.KnowledgeGraph, error) {
	key := ""
	if settings := a.svc.Settings.Get(); settings != nil {
		key = settings.OpenAIAPIKey
	}
	if key == "" {
		if mirrored, err := a.svc.Vault.Mirror().ReadKey(); err == nil {
			key = mirrored
		}
	}
	if key == "" {
		return nil, fmt.Errorf("no OpenAI API key configured")
	}

	c, err := client.NewOpenAIClient(a.ctx, key)
	if err != nil {
		return nil, err
	}

	chunks, err := a.svc.NoteStore.ChunkNote(fileName)
	if err != nil {
		return nil, err
	}

	graphs := make([]*client.KnowledgeGraph, 0, len(chunks))
	for _, chunk := range chunks {
		graph, err := c.ExtractKnowledgeGraph(a.ctx, chunk.Text, nil, nil)
		if err != nil {
			return nil, fmt.Errorf("extract %s: %w", fileName, err)
		}
		graphs = append(graphs, graph)
	}
	return graphs, nil
}

// CopyKeyToKeychain stores the current API key in the OS keychain. The env
// mirror is untouched; the python companion keeps reading the file.
func (a *App) CopyKeyToKeychain() error {
	settings := a.svc.Settings.Get()
	if settings == nil {
		return fmt.Errorf("settings not loaded")
	}
	return a.svc.Keyring.StoreAPIKey(settings.OpenAIAPIKey)
}

// eventEditor forwards selection replacements to the frontend editor.
type eventEditor struct {
	app *App
}

func (e *eventEditor) ReplaceSelection(text string) error {
	if e.app == nil || e.app.ctx == nil {
		return fmt.Errorf("editor not ready")
	}
	events.Emit(e.app.ctx, events.PluginEditorReplace, events.NewInfo(text))
	return nil
}
