package events

import (
	"time"

	"github.com/google/uuid"
)

// Event payload types shared between the gamesession and feed packages

// EventTypeSessionStarted and EventTypeSessionCompleted are the outbox
// event_type values and the JetStream subject suffixes.
const (
	EventTypeSessionStarted   = "session.started"
	EventTypeSessionCompleted = "session.completed"
)

// SessionStartedPayload is the payload for a session.started event
type SessionStartedPayload struct {
	SessionID uuid.UUID `json:"session_id"`
	UserID    uuid.UUID `json:"user_id"`
	StartedAt time.Time `json:"started_at"`
}

// SessionCompletedPayload is the payload for a session.completed event
type SessionCompletedPayload struct {
	SessionID       uuid.UUID `json:"session_id"`
	UserID          uuid.UUID `json:"user_id"`
	StoppedAt       time.Time `json:"stopped_at"`
	DurationSeconds float64   `json:"duration_seconds"`
	Deviation       float64   `json:"deviation"`
}
