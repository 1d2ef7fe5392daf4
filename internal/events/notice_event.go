package events

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventInfo    EventType = "info"
	EventWarn    EventType = "warn"
	EventSuccess EventType = "success"
	EventError   EventType = "error"
)

// Event names the frontend subscribes to.
const (
	PluginNotice        = "athena:notice"
	PluginModalOpen     = "athena:modal:open"
	PluginStatusBar     = "athena:statusbar"
	PluginEditorReplace = "athena:editor:replace"
)

// NoticeEvent is the payload for transient notices, modal opens and
// status-bar updates pushed to the frontend.
type NoticeEvent struct {
	ID        string            `json:"id"`
	Type      EventType         `json:"type"`
	Message   string            `json:"message"`
	Timestamp time.Time         `json:"timestamp"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

func CreateNoticeEvent(eventType EventType, message string) NoticeEvent {
	return NoticeEvent{
		ID:        uuid.NewString(),
		Type:      eventType,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// NewInfo creates an info NoticeEvent.
func NewInfo(message string) NoticeEvent {
	return CreateNoticeEvent(EventInfo, message)
}

// NewWarn creates a warn NoticeEvent.
func NewWarn(message string) NoticeEvent {
	return CreateNoticeEvent(EventWarn, message)
}

// NewError creates an error NoticeEvent.
func NewError(message string) NoticeEvent {
	return CreateNoticeEvent(EventError, message)
}
