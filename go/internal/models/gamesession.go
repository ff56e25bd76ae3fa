package models

import (
	"time"

	"github.com/google/uuid"
)

// TargetSeconds is the elapsed time every session aims for.
const TargetSeconds = 10.0

// GameSessionStatus defines the lifecycle state of a game session.
type GameSessionStatus string

const (
	GameSessionStatusActive    GameSessionStatus = "ACTIVE"
	GameSessionStatusCompleted GameSessionStatus = "COMPLETED"
)

// GameSession represents one timed play attempt. StoppedAt, DurationSeconds
// and Deviation are set together when the session completes and are nil while
// it is active.
type GameSession struct {
	ID              uuid.UUID         `json:"id"`
	UserID          uuid.UUID         `json:"user_id"`
	Status          GameSessionStatus `json:"status"`
	StartedAt       time.Time         `json:"started_at"`
	StoppedAt       *time.Time        `json:"stopped_at,omitempty"`
	DurationSeconds *float64          `json:"duration_seconds,omitempty"`
	Deviation       *float64          `json:"deviation,omitempty"`
}

// Completed reports whether the session has been stopped.
func (s *GameSession) Completed() bool {
	return s.Status == GameSessionStatusCompleted
}
