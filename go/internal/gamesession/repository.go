package gamesession

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sqlc-dev/pqtype"

	"github.com/mcdev12/chrono/go/internal/apperrors"
	"github.com/mcdev12/chrono/go/internal/gamesession/db"
	"github.com/mcdev12/chrono/go/internal/gamesession/events"
	"github.com/mcdev12/chrono/go/internal/models"
	"github.com/mcdev12/chrono/go/internal/sqlutil"
)

// Repository implements game session data access operations. Writes that
// change session state also write the matching outbox row in the same
// transaction, so the event stream can never disagree with the table.
type Repository struct {
	db      *sql.DB
	queries *db.Queries
}

// NewRepository creates a new game session repository
func NewRepository(database *sql.DB) *Repository {
	return &Repository{
		db:      database,
		queries: db.New(database),
	}
}

// GetGameSession retrieves a session by ID
func (r *Repository) GetGameSession(ctx context.Context, id uuid.UUID) (*models.GameSession, error) {
	session, err := r.queries.GetGameSession(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("game session %s: %w", id, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get game session: %w", err)
	}
	return r.dbSessionToModel(session), nil
}

// CreateSession creates a txn and does a dual write to game_sessions and the
// outbox. The outbox worker is then responsible for emitting the event.
func (r *Repository) CreateSession(ctx context.Context, id, userID uuid.UUID, startedAt time.Time) (*models.GameSession, error) {
	txn, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = txn.Rollback()
		}
	}()

	qtx := r.queries.WithTx(txn)

	session, err := qtx.CreateGameSession(ctx, db.CreateGameSessionParams{
		ID:        id,
		UserID:    userID,
		StartedAt: startedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("create game session: %w", err)
	}

	payload, err := json.Marshal(events.SessionStartedPayload{
		SessionID: session.ID,
		UserID:    session.UserID,
		StartedAt: session.StartedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal session started payload: %w", err)
	}

	err = qtx.InsertOutboxSessionStarted(ctx, db.InsertOutboxSessionStartedParams{
		ID:        uuid.New(),
		SessionID: session.ID,
		Payload:   pqtype.NullRawMessage{RawMessage: payload, Valid: true},
	})
	if err != nil {
		return nil, fmt.Errorf("insert outbox session started: %w", err)
	}

	if err = txn.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return r.dbSessionToModel(session), nil
}

// StopSession completes an active session. The UPDATE is conditioned on
// status = 'ACTIVE' so two concurrent stops cannot both win: the loser sees
// zero rows and gets ErrSessionCompleted.
func (r *Repository) StopSession(ctx context.Context, id uuid.UUID, stoppedAt time.Time, durationSeconds, deviation float64) (*models.GameSession, error) {
	txn, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = txn.Rollback()
		}
	}()

	qtx := r.queries.WithTx(txn)

	session, err := qtx.CompleteGameSession(ctx, db.CompleteGameSessionParams{
		ID:              id,
		StoppedAt:       sqlutil.ToSqlTime(&stoppedAt),
		DurationSeconds: sqlutil.ToSqlFloat64(&durationSeconds),
		Deviation:       sqlutil.ToSqlFloat64(&deviation),
	})
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("game session %s not active: %w", id, apperrors.ErrSessionCompleted)
		}
		return nil, fmt.Errorf("complete game session: %w", err)
	}

	payload, err := json.Marshal(events.SessionCompletedPayload{
		SessionID:       session.ID,
		UserID:          session.UserID,
		StoppedAt:       stoppedAt,
		DurationSeconds: durationSeconds,
		Deviation:       deviation,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal session completed payload: %w", err)
	}

	err = qtx.InsertOutboxSessionCompleted(ctx, db.InsertOutboxSessionCompletedParams{
		ID:        uuid.New(),
		SessionID: session.ID,
		Payload:   pqtype.NullRawMessage{RawMessage: payload, Valid: true},
	})
	if err != nil {
		return nil, fmt.Errorf("insert outbox session completed: %w", err)
	}

	if err = txn.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return r.dbSessionToModel(session), nil
}

// dbSessionToModel converts a database session to domain model
func (r *Repository) dbSessionToModel(dbSession db.GameSession) *models.GameSession {
	return &models.GameSession{
		ID:              dbSession.ID,
		UserID:          dbSession.UserID,
		Status:          models.GameSessionStatus(dbSession.Status),
		StartedAt:       dbSession.StartedAt,
		StoppedAt:       sqlutil.FromSqlTime(dbSession.StoppedAt),
		DurationSeconds: sqlutil.FromSqlFloat64(dbSession.DurationSeconds),
		Deviation:       sqlutil.FromSqlFloat64(dbSession.Deviation),
	}
}
