package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/mcdev12/chrono/go/internal/models"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// StatsApp defines what the handlers need from the stats application
type StatsApp interface {
	Leaderboard(ctx context.Context, page, pageSize int) ([]models.LeaderboardEntry, error)
	UserGameHistory(ctx context.Context, userID uuid.UUID) (*models.UserGameHistory, error)
}

// StatsHandler serves the leaderboard and analytics endpoints
type StatsHandler struct {
	app StatsApp
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(app StatsApp) *StatsHandler {
	return &StatsHandler{app: app}
}

// GetLeaderboard handles GET /leaderboard?page=&page_size=
func (h *StatsHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	page, ok := queryInt(r, "page", defaultPage)
	if !ok {
		ErrorResponse(w, http.StatusBadRequest, "page must be a positive integer")
		return
	}
	pageSize, ok := queryInt(r, "page_size", defaultPageSize)
	if !ok {
		ErrorResponse(w, http.StatusBadRequest, "page_size must be a positive integer")
		return
	}

	entries, err := h.app.Leaderboard(r.Context(), page, pageSize)
	if err != nil {
		AppError(w, err)
		return
	}

	JSONResponse(w, http.StatusOK, entries)
}

// GetUserAnalytics handles GET /analytics/user/{user_id}
func (h *StatsHandler) GetUserAnalytics(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(r.PathValue("user_id"))
	if err != nil {
		ErrorResponse(w, http.StatusBadRequest, "invalid user_id format")
		return
	}

	history, err := h.app.UserGameHistory(r.Context(), userID)
	if err != nil {
		AppError(w, err)
		return
	}

	JSONResponse(w, http.StatusOK, history)
}

// queryInt reads an integer query parameter, falling back to def when the
// parameter is absent. A present but non-numeric value reports failure.
func queryInt(r *http.Request, key string, def int) (int, bool) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
