package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Session event types, one per session operation.
const (
	TypeItemsLoaded    = "session.items_loaded"
	TypeAnswerSelected = "session.answer_selected"
	TypeCardFlipped    = "session.card_flipped"
	TypeAdvanced       = "session.advanced"
	TypeRetreated      = "session.retreated"
	TypeCompleted      = "session.completed"
	TypeReset          = "session.reset"
)

// SessionEvent records one successful operation on a study session.
type SessionEvent struct {
	// ID is a unique identifier for this event
	ID uuid.UUID `json:"id"`

	// SessionID identifies the session the operation ran on
	SessionID uuid.UUID `json:"session_id"`

	// Type is one of the Type* constants
	Type string `json:"type"`

	// Payload holds the session's progress after the operation, as JSON
	Payload json.RawMessage `json:"payload"`

	// CreatedAt is the timestamp when the event was created
	CreatedAt time.Time `json:"created_at"`
}

// UnmarshalPayload decodes the event payload into the provided structure.
func (e *SessionEvent) UnmarshalPayload(v interface{}) error {
	return json.Unmarshal(e.Payload, v)
}

// NewSessionEvent creates a SessionEvent with the given type and payload.
func NewSessionEvent(sessionID uuid.UUID, eventType string, payload interface{}) (*SessionEvent, error) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &SessionEvent{
		ID:        uuid.New(),
		SessionID: sessionID,
		Type:      eventType,
		Payload:   payloadBytes,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// EventHandler defines an interface for components that can handle events.
type EventHandler interface {
	// HandleEvent processes the given event.
	// Returns an error if the event cannot be handled successfully.
	HandleEvent(event *SessionEvent) error
}

// HandlerFunc adapts a plain function to EventHandler.
type HandlerFunc func(event *SessionEvent) error

// HandleEvent calls f(event).
func (f HandlerFunc) HandleEvent(event *SessionEvent) error {
	return f(event)
}

// EventEmitter defines an interface for components that can emit events.
type EventEmitter interface {
	// EmitEvent publishes the given event to all registered handlers.
	EmitEvent(event *SessionEvent) error
}
