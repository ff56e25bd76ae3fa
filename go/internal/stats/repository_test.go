package stats

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcdev12/chrono/go/internal/models"
	"github.com/mcdev12/chrono/go/internal/stats/db"
)

func newRepoWithMock(t *testing.T) (*Repository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	database, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewRepository(db.New(database)), mock, database
}

func TestGetLeaderboard_RankedPage(t *testing.T) {
	repo, mock, database := newRepoWithMock(t)
	defer database.Close()

	cols := []string{"user_id", "username", "total_games", "avg_deviation", "best_deviation"}
	mock.ExpectQuery(`SELECT .* FROM game_sessions gs\s+JOIN users u`).
		WithArgs(int32(10), int32(0)).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(uuid.New(), "alice", int64(5), 0.12, 0.01).
			AddRow(uuid.New(), "bob", int64(3), 0.48, 0.2))

	entries, err := repo.GetLeaderboard(context.Background(), 10, 0)
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Equal(t, "alice", entries[0].Username)
	assert.Equal(t, 5, entries[0].TotalGames)
	assert.InDelta(t, 0.12, entries[0].AvgDeviation, 1e-9)
	assert.InDelta(t, 0.01, entries[0].BestDeviation, 1e-9)
	assert.Equal(t, "bob", entries[1].Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserStats_NoCompletedSessions(t *testing.T) {
	repo, mock, database := newRepoWithMock(t)
	defer database.Close()

	userID := uuid.New()
	cols := []string{"total_games", "avg_deviation", "best_deviation"}
	mock.ExpectQuery(`SELECT COUNT\(\*\)`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(int64(0), nil, nil))

	userStats, err := repo.GetUserStats(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, 0, userStats.TotalGames)
	assert.Nil(t, userStats.AvgDeviation)
	assert.Nil(t, userStats.BestDeviation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserStats_WithSessions(t *testing.T) {
	repo, mock, database := newRepoWithMock(t)
	defer database.Close()

	userID := uuid.New()
	cols := []string{"total_games", "avg_deviation", "best_deviation"}
	mock.ExpectQuery(`SELECT COUNT\(\*\)`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(int64(4), 0.3, 0.05))

	userStats, err := repo.GetUserStats(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, 4, userStats.TotalGames)
	require.NotNil(t, userStats.AvgDeviation)
	assert.InDelta(t, 0.3, *userStats.AvgDeviation, 1e-9)
	require.NotNil(t, userStats.BestDeviation)
	assert.InDelta(t, 0.05, *userStats.BestDeviation, 1e-9)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListUserSessions_MixedStatuses(t *testing.T) {
	repo, mock, database := newRepoWithMock(t)
	defer database.Close()

	userID := uuid.New()
	startedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	stoppedAt := startedAt.Add(9800 * time.Millisecond)

	cols := []string{"id", "user_id", "status", "started_at", "stopped_at", "duration_seconds", "deviation"}
	mock.ExpectQuery(`SELECT .* FROM game_sessions\s+WHERE user_id`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(uuid.New(), userID, "COMPLETED", startedAt, stoppedAt, 9.8, 0.2).
			AddRow(uuid.New(), userID, "ACTIVE", startedAt.Add(time.Minute), nil, nil, nil))

	sessions, err := repo.ListUserSessions(context.Background(), userID)
	require.NoError(t, err)

	require.Len(t, sessions, 2)
	assert.Equal(t, models.GameSessionStatusCompleted, sessions[0].Status)
	require.NotNil(t, sessions[0].Deviation)
	assert.InDelta(t, 0.2, *sessions[0].Deviation, 1e-9)
	assert.Equal(t, models.GameSessionStatusActive, sessions[1].Status)
	assert.Nil(t, sessions[1].StoppedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
