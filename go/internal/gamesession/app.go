package gamesession

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/chrono/go/internal/apperrors"
	"github.com/mcdev12/chrono/go/internal/models"
)

// SessionRepository defines what the app layer needs from the repository
type SessionRepository interface {
	GetGameSession(ctx context.Context, id uuid.UUID) (*models.GameSession, error)
	CreateSession(ctx context.Context, id, userID uuid.UUID, startedAt time.Time) (*models.GameSession, error)
	StopSession(ctx context.Context, id uuid.UUID, stoppedAt time.Time, durationSeconds, deviation float64) (*models.GameSession, error)
}

// UserGetter verifies that a user exists before a session is started
type UserGetter interface {
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// App handles game session business logic
type App struct {
	repo  SessionRepository
	users UserGetter
	clock clockwork.Clock
}

// NewApp creates a new game session App
func NewApp(repo SessionRepository, users UserGetter, clock clockwork.Clock) *App {
	return &App{
		repo:  repo,
		users: users,
		clock: clock,
	}
}

// Start creates a new active session for the user, timestamped with the
// server clock
func (a *App) Start(ctx context.Context, userID uuid.UUID) (*models.GameSession, error) {
	if _, err := a.users.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	session, err := a.repo.CreateSession(ctx, uuid.New(), userID, a.clock.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to start game session: %w", err)
	}

	log.Info().
		Str("session_id", session.ID.String()).
		Str("user_id", userID.String()).
		Time("started_at", session.StartedAt).
		Msg("game session started")

	return session, nil
}

// Stop completes an active session, recording elapsed time and how far it
// landed from the target. Stopping a completed session is rejected and
// leaves the stored result untouched.
func (a *App) Stop(ctx context.Context, sessionID uuid.UUID) (*models.GameSession, error) {
	session, err := a.repo.GetGameSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Completed() {
		return nil, fmt.Errorf("game session %s: %w", sessionID, apperrors.ErrSessionCompleted)
	}

	stoppedAt := a.clock.Now().UTC()
	elapsed := stoppedAt.Sub(session.StartedAt).Seconds()
	deviation := math.Abs(elapsed - models.TargetSeconds)

	updated, err := a.repo.StopSession(ctx, sessionID, stoppedAt, elapsed, deviation)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("session_id", updated.ID.String()).
		Float64("duration_seconds", elapsed).
		Float64("deviation", deviation).
		Msg("game session completed")

	return updated, nil
}

// GetSession retrieves a session by ID
func (a *App) GetSession(ctx context.Context, sessionID uuid.UUID) (*models.GameSession, error) {
	return a.repo.GetGameSession(ctx, sessionID)
}
