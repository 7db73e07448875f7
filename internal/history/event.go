// Package history provides the append-only event log recording what the
// agent did: documents generated, files touched, sessions run.
package history

import (
	"encoding/json"
	"strings"
	"time"
)

// EventType categorizes events in the log.
type EventType string

const (
	// Session events
	EventTypeSessionStarted EventType = "session.started"
	EventTypeSessionEnded   EventType = "session.ended"

	// Document events
	EventTypeDocumentGenerated EventType = "document.generated"
	EventTypeDocumentCreated   EventType = "document.created"
	EventTypeDocumentAppended  EventType = "document.appended"

	// File and folder events
	EventTypeFileCopied    EventType = "file.copied"
	EventTypeFileMoved     EventType = "file.moved"
	EventTypeFileDeleted   EventType = "file.deleted"
	EventTypeFolderCreated EventType = "folder.created"
	EventTypeFolderDeleted EventType = "folder.deleted"

	// System events
	EventTypeError EventType = "error"
)

// Event is one append-only log entry.
type Event struct {
	// ID is the unique identifier for the event.
	ID string `json:"id"`

	// Timestamp is when the event occurred, UTC.
	Timestamp time.Time `json:"timestamp"`

	// Type categorizes the event.
	Type EventType `json:"type"`

	// Path is the file or folder the event relates to, if any.
	Path string `json:"path,omitempty"`

	// Detail is a short human-readable summary.
	Detail string `json:"detail,omitempty"`

	// Payload contains event-specific data.
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Validate checks required fields.
func (e *Event) Validate() error {
	if strings.TrimSpace(string(e.Type)) == "" {
		return ErrInvalidEvent
	}
	return nil
}

// GeneratedPayload is the payload for document.generated events.
type GeneratedPayload struct {
	Template  string   `json:"template"`
	Variables []string `json:"variables,omitempty"`
	Strict    bool     `json:"strict,omitempty"`
}
