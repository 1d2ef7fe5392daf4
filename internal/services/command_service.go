package services

import (
	"context"
	"errors"

	"athena/internal/events"
)

// Command ids mirror the palette entries registered with the host.
const (
	CommandOpenModalSimple  = "open-sample-modal-simple"
	CommandEditorReplace    = "sample-editor-command"
	CommandOpenModalComplex = "open-sample-modal-complex"
)

const (
	ribbonNoticeText   = "This is a notice!"
	statusBarText      = "Status Bar Text"
	editorReplaceText  = "Sample Editor Command"
	sampleModalMessage = "Woah!"
)

// Editor is the capability the editor command needs: replacing the current
// selection in the active editor. The frontend provides the concrete one.
type Editor interface {
	ReplaceSelection(text string) error
}

// Command describes one palette entry for the frontend.
type Command struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CommandService backs the ribbon icon, the status-bar label and the three
// palette commands. It holds no state beyond its collaborators; everything
// user-visible goes out as events.
type CommandService struct {
	context context.Context
	editor  Editor

	// activeMarkdownView reports whether a markdown view currently has
	// focus. The complex modal command is gated on it.
	activeMarkdownView func() bool
}

func NewCommandService(editor Editor, activeMarkdownView func() bool) *CommandService {
	if activeMarkdownView == nil {
		activeMarkdownView = func() bool { return false }
	}
	return &CommandService{editor: editor, activeMarkdownView: activeMarkdownView}
}

func (c *CommandService) Startup(ctx context.Context) {
	c.context = ctx
}

// Commands lists the palette entries in registration order.
func (c *CommandService) Commands() []Command {
	return []Command{
		{ID: CommandOpenModalSimple, Name: "Open sample modal (simple)"},
		{ID: CommandEditorReplace, Name: "Sample editor command"},
		{ID: CommandOpenModalComplex, Name: "Open sample modal (complex)"},
	}
}

// RibbonClicked shows the transient notice tied to the ribbon icon.
func (c *CommandService) RibbonClicked() {
	events.Emit(c.context, events.PluginNotice, events.NewInfo(ribbonNoticeText))
}

// StatusBarText returns the status-bar label content.
func (c *CommandService) StatusBarText() string {
	return statusBarText
}

// OpenSampleModal opens the modal unconditionally.
func (c *CommandService) OpenSampleModal() {
	events.Emit(c.context, events.PluginModalOpen, events.NewInfo(sampleModalMessage))
}

// ReplaceEditorSelection replaces the current editor selection with the
// sample literal.
func (c *CommandService) ReplaceEditorSelection() error {
	if c.editor == nil {
		return errors.New("no editor available")
	}
	return c.editor.ReplaceSelection(editorReplaceText)
}

// OpenComplexModal opens the modal only when a markdown view is active.
// With checking true it only reports availability without opening, matching
// the host's two-phase command callback.
func (c *CommandService) OpenComplexModal(checking bool) bool {
	if !c.activeMarkdownView() {
		return false
	}
	if !checking {
		events.Emit(c.context, events.PluginModalOpen, events.NewInfo(sampleModalMessage))
	}
	return true
}
