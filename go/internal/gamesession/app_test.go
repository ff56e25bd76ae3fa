package gamesession

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/chrono/go/internal/apperrors"
	"github.com/mcdev12/chrono/go/internal/models"
)

type fakeRepo struct {
	sessions map[uuid.UUID]*models.GameSession

	createErr error
	stopErr   error

	lastStoppedAt time.Time
	lastDuration  float64
	lastDeviation float64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{sessions: make(map[uuid.UUID]*models.GameSession)}
}

func (f *fakeRepo) GetGameSession(ctx context.Context, id uuid.UUID) (*models.GameSession, error) {
	session, ok := f.sessions[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return session, nil
}

func (f *fakeRepo) CreateSession(ctx context.Context, id, userID uuid.UUID, startedAt time.Time) (*models.GameSession, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	session := &models.GameSession{
		ID:        id,
		UserID:    userID,
		Status:    models.GameSessionStatusActive,
		StartedAt: startedAt,
	}
	f.sessions[id] = session
	return session, nil
}

func (f *fakeRepo) StopSession(ctx context.Context, id uuid.UUID, stoppedAt time.Time, durationSeconds, deviation float64) (*models.GameSession, error) {
	if f.stopErr != nil {
		return nil, f.stopErr
	}
	f.lastStoppedAt = stoppedAt
	f.lastDuration = durationSeconds
	f.lastDeviation = deviation

	session := f.sessions[id]
	session.Status = models.GameSessionStatusCompleted
	session.StoppedAt = &stoppedAt
	session.DurationSeconds = &durationSeconds
	session.Deviation = &deviation
	return session, nil
}

type fakeUsers struct {
	users map[uuid.UUID]*models.User
}

func (f *fakeUsers) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return user, nil
}

func newTestApp(t *testing.T, start time.Time) (*App, *fakeRepo, *fakeUsers, *clockwork.FakeClock) {
	t.Helper()
	repo := newFakeRepo()
	users := &fakeUsers{users: make(map[uuid.UUID]*models.User)}
	clock := clockwork.NewFakeClockAt(start)
	return NewApp(repo, users, clock), repo, users, clock
}

func TestStart_Success(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	app, _, users, _ := newTestApp(t, start)

	userID := uuid.New()
	users.users[userID] = &models.User{ID: userID, Username: "alice"}

	session, err := app.Start(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, userID, session.UserID)
	assert.Equal(t, models.GameSessionStatusActive, session.Status)
	assert.Equal(t, start, session.StartedAt)
	assert.Nil(t, session.StoppedAt)
}

func TestStart_UserNotFound(t *testing.T) {
	app, _, _, _ := newTestApp(t, time.Now())

	_, err := app.Start(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStop_ComputesDeviation(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	app, repo, users, clock := newTestApp(t, start)

	userID := uuid.New()
	users.users[userID] = &models.User{ID: userID, Username: "alice"}

	session, err := app.Start(context.Background(), userID)
	require.NoError(t, err)

	clock.Advance(10*time.Second + 350*time.Millisecond)

	stopped, err := app.Stop(context.Background(), session.ID)
	require.NoError(t, err)

	assert.Equal(t, models.GameSessionStatusCompleted, stopped.Status)
	assert.InDelta(t, 10.35, repo.lastDuration, 1e-9)
	assert.InDelta(t, 0.35, repo.lastDeviation, 1e-9)
	assert.Equal(t, start.Add(10*time.Second+350*time.Millisecond), repo.lastStoppedAt)
}

func TestStop_EarlyStopDeviationIsPositive(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	app, repo, users, clock := newTestApp(t, start)

	userID := uuid.New()
	users.users[userID] = &models.User{ID: userID, Username: "alice"}

	session, err := app.Start(context.Background(), userID)
	require.NoError(t, err)

	clock.Advance(8 * time.Second)

	_, err = app.Stop(context.Background(), session.ID)
	require.NoError(t, err)

	assert.InDelta(t, 8.0, repo.lastDuration, 1e-9)
	assert.InDelta(t, 2.0, repo.lastDeviation, 1e-9)
}

func TestStop_NotFound(t *testing.T) {
	app, _, _, _ := newTestApp(t, time.Now())

	_, err := app.Stop(context.Background(), uuid.New())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStop_AlreadyCompleted(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	app, repo, users, clock := newTestApp(t, start)

	userID := uuid.New()
	users.users[userID] = &models.User{ID: userID, Username: "alice"}

	session, err := app.Start(context.Background(), userID)
	require.NoError(t, err)

	clock.Advance(10 * time.Second)

	first, err := app.Stop(context.Background(), session.ID)
	require.NoError(t, err)

	clock.Advance(5 * time.Second)

	_, err = app.Stop(context.Background(), session.ID)
	assert.ErrorIs(t, err, apperrors.ErrSessionCompleted)

	// The stored result is untouched by the rejected stop
	assert.Equal(t, first.StoppedAt, repo.sessions[session.ID].StoppedAt)
	assert.InDelta(t, 10.0, *repo.sessions[session.ID].DurationSeconds, 1e-9)
}

func TestStop_RepoConflict(t *testing.T) {
	start := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	app, repo, users, clock := newTestApp(t, start)

	userID := uuid.New()
	users.users[userID] = &models.User{ID: userID, Username: "alice"}

	session, err := app.Start(context.Background(), userID)
	require.NoError(t, err)

	clock.Advance(9 * time.Second)

	// A concurrent stop won the conditional update
	repo.stopErr = fmt.Errorf("game session %s not active: %w", session.ID, apperrors.ErrSessionCompleted)

	_, err = app.Stop(context.Background(), session.ID)
	assert.ErrorIs(t, err, apperrors.ErrSessionCompleted)
}
