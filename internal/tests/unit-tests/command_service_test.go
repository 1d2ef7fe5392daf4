package unit_tests

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"athena/internal/events"
	"athena/internal/services"
)

type editorMock struct {
	ReplaceSelectionFunc func(text string) error
	Replaced             []string
}

func (m *editorMock) ReplaceSelection(text string) error {
	m.Replaced = append(m.Replaced, text)
	if m.ReplaceSelectionFunc != nil {
		return m.ReplaceSelectionFunc(text)
	}
	return nil
}

type capturedEvent struct {
	Name  string
	Event events.NoticeEvent
}

func captureEvents(t *testing.T) *[]capturedEvent {
	t.Helper()
	var captured []capturedEvent
	events.SetCustomEmitter(func(ctx context.Context, name string, evt events.NoticeEvent) {
		captured = append(captured, capturedEvent{Name: name, Event: evt})
	})
	t.Cleanup(func() { events.SetCustomEmitter(nil) })
	return &captured
}

func TestCommandService_RibbonClickEmitsNotice(t *testing.T) {
	captured := captureEvents(t)
	service := services.NewCommandService(&editorMock{}, nil)
	service.Startup(context.Background())

	service.RibbonClicked()

	assert.Len(t, *captured, 1)
	assert.Equal(t, events.PluginNotice, (*captured)[0].Name)
	assert.Equal(t, "This is a notice!", (*captured)[0].Event.Message)
	assert.Equal(t, events.EventInfo, (*captured)[0].Event.Type)
}

func TestCommandService_StatusBarText(t *testing.T) {
	service := services.NewCommandService(&editorMock{}, nil)
	assert.Equal(t, "Status Bar Text", service.StatusBarText())
}

func TestCommandService_CommandsRegisteredInOrder(t *testing.T) {
	service := services.NewCommandService(&editorMock{}, nil)
	commands := service.Commands()

	assert.Len(t, commands, 3)
	assert.Equal(t, services.CommandOpenModalSimple, commands[0].ID)
	assert.Equal(t, services.CommandEditorReplace, commands[1].ID)
	assert.Equal(t, services.CommandOpenModalComplex, commands[2].ID)
}

func TestCommandService_OpenSampleModal(t *testing.T) {
	captured := captureEvents(t)
	service := services.NewCommandService(&editorMock{}, nil)
	service.Startup(context.Background())

	service.OpenSampleModal()

	assert.Len(t, *captured, 1)
	assert.Equal(t, events.PluginModalOpen, (*captured)[0].Name)
}

func TestCommandService_ReplaceEditorSelection(t *testing.T) {
	editor := &editorMock{}
	service := services.NewCommandService(editor, nil)
	service.Startup(context.Background())

	assert.NoError(t, service.ReplaceEditorSelection())
	assert.Equal(t, []string{"Sample Editor Command"}, editor.Replaced)
}

func TestCommandService_ReplaceEditorSelectionError(t *testing.T) {
	editor := &editorMock{
		ReplaceSelectionFunc: func(text string) error {
			return errors.New("no selection")
		},
	}
	service := services.NewCommandService(editor, nil)
	service.Startup(context.Background())

	assert.Error(t, service.ReplaceEditorSelection())
}

func TestCommandService_ComplexModalGatedOnMarkdownView(t *testing.T) {
	captured := captureEvents(t)
	active := false
	service := services.NewCommandService(&editorMock{}, func() bool { return active })
	service.Startup(context.Background())

	// No markdown view: unavailable, nothing emitted.
	assert.False(t, service.OpenComplexModal(true))
	assert.False(t, service.OpenComplexModal(false))
	assert.Empty(t, *captured)

	active = true

	// Checking only reports availability.
	assert.True(t, service.OpenComplexModal(true))
	assert.Empty(t, *captured)

	// Executing opens the modal.
	assert.True(t, service.OpenComplexModal(false))
	assert.Len(t, *captured, 1)
	assert.Equal(t, events.PluginModalOpen, (*captured)[0].Name)
}
