package stats

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mcdev12/chrono/go/internal/models"
	"github.com/mcdev12/chrono/go/internal/sqlutil"
	"github.com/mcdev12/chrono/go/internal/stats/db"
)

// Querier defines what the repository needs from the database layer
type Querier interface {
	GetLeaderboard(ctx context.Context, arg db.GetLeaderboardParams) ([]db.GetLeaderboardRow, error)
	GetUserStats(ctx context.Context, userID uuid.UUID) (db.GetUserStatsRow, error)
	ListUserSessions(ctx context.Context, userID uuid.UUID) ([]db.GameSession, error)
}

// Repository implements read-only aggregation queries over game sessions
type Repository struct {
	queries Querier
}

// NewRepository creates a new stats repository
func NewRepository(querier Querier) *Repository {
	return &Repository{
		queries: querier,
	}
}

// GetLeaderboard returns one page of ranked users. The ranking, tie-break
// and paging all happen in SQL so pagination stays stable.
func (r *Repository) GetLeaderboard(ctx context.Context, limit, offset int32) ([]models.LeaderboardEntry, error) {
	rows, err := r.queries.GetLeaderboard(ctx, db.GetLeaderboardParams{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	entries := make([]models.LeaderboardEntry, len(rows))
	for i, row := range rows {
		entries[i] = models.LeaderboardEntry{
			Username:      row.Username,
			TotalGames:    int(row.TotalGames),
			AvgDeviation:  row.AvgDeviation,
			BestDeviation: row.BestDeviation,
		}
	}

	return entries, nil
}

// GetUserStats returns aggregate stats for one user. A user with no
// completed sessions gets zero games and nil averages.
func (r *Repository) GetUserStats(ctx context.Context, userID uuid.UUID) (models.UserStats, error) {
	row, err := r.queries.GetUserStats(ctx, userID)
	if err != nil {
		return models.UserStats{}, fmt.Errorf("failed to get user stats: %w", err)
	}

	return models.UserStats{
		TotalGames:    int(row.TotalGames),
		AvgDeviation:  sqlutil.FromSqlFloat64(row.AvgDeviation),
		BestDeviation: sqlutil.FromSqlFloat64(row.BestDeviation),
	}, nil
}

// ListUserSessions returns every session for the user, active and
// completed, in chronological order.
func (r *Repository) ListUserSessions(ctx context.Context, userID uuid.UUID) ([]models.GameSession, error) {
	rows, err := r.queries.ListUserSessions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list user sessions: %w", err)
	}

	sessions := make([]models.GameSession, len(rows))
	for i, row := range rows {
		sessions[i] = models.GameSession{
			ID:              row.ID,
			UserID:          row.UserID,
			Status:          models.GameSessionStatus(row.Status),
			StartedAt:       row.StartedAt,
			StoppedAt:       sqlutil.FromSqlTime(row.StoppedAt),
			DurationSeconds: sqlutil.FromSqlFloat64(row.DurationSeconds),
			Deviation:       sqlutil.FromSqlFloat64(row.Deviation),
		}
	}

	return sessions, nil
}
