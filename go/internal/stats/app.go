package stats

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/mcdev12/chrono/go/internal/apperrors"
	"github.com/mcdev12/chrono/go/internal/models"
)

// StatsRepository defines what the app layer needs from the repository
type StatsRepository interface {
	GetLeaderboard(ctx context.Context, limit, offset int32) ([]models.LeaderboardEntry, error)
	GetUserStats(ctx context.Context, userID uuid.UUID) (models.UserStats, error)
	ListUserSessions(ctx context.Context, userID uuid.UUID) ([]models.GameSession, error)
}

// UserGetter resolves users for history lookups
type UserGetter interface {
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// App handles leaderboard and history aggregation
type App struct {
	repo  StatsRepository
	users UserGetter
}

// NewApp creates a new stats App
func NewApp(repo StatsRepository, users UserGetter) *App {
	return &App{
		repo:  repo,
		users: users,
	}
}

// Leaderboard returns one page of users ranked by ascending average
// deviation. Users with no completed sessions never appear. A page past the
// end returns an empty slice.
func (a *App) Leaderboard(ctx context.Context, page, pageSize int) ([]models.LeaderboardEntry, error) {
	if page < 1 {
		return nil, fmt.Errorf("page must be a positive integer: %w", apperrors.ErrValidation)
	}
	if pageSize < 1 {
		return nil, fmt.Errorf("page_size must be a positive integer: %w", apperrors.ErrValidation)
	}

	offset := (page - 1) * pageSize
	entries, err := a.repo.GetLeaderboard(ctx, int32(pageSize), int32(offset))
	if err != nil {
		return nil, err
	}

	if entries == nil {
		entries = []models.LeaderboardEntry{}
	}
	return entries, nil
}

// UserGameHistory returns a user's aggregate stats plus their full session
// history. Active sessions appear in the history but never in the stats.
func (a *App) UserGameHistory(ctx context.Context, userID uuid.UUID) (*models.UserGameHistory, error) {
	user, err := a.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	userStats, err := a.repo.GetUserStats(ctx, userID)
	if err != nil {
		return nil, err
	}

	history, err := a.repo.ListUserSessions(ctx, userID)
	if err != nil {
		return nil, err
	}
	if history == nil {
		history = []models.GameSession{}
	}

	return &models.UserGameHistory{
		Username: user.Username,
		Stats:    userStats,
		History:  history,
	}, nil
}
