package api

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/mcdev12/chrono/go/internal/models"
)

// GamesApp defines what the handlers need from the game session application
type GamesApp interface {
	Start(ctx context.Context, userID uuid.UUID) (*models.GameSession, error)
	Stop(ctx context.Context, sessionID uuid.UUID) (*models.GameSession, error)
}

// GamesHandler serves the game session endpoints
type GamesHandler struct {
	app GamesApp
}

// NewGamesHandler creates a new games handler
func NewGamesHandler(app GamesApp) *GamesHandler {
	return &GamesHandler{app: app}
}

type startGameRequest struct {
	UserID uuid.UUID `json:"user_id"`
}

type startGameResponse struct {
	GameSessionID uuid.UUID `json:"game_session_id"`
	UserID        uuid.UUID `json:"user_id"`
	StartedAt     time.Time `json:"started_at"`
}

type stopGameResponse struct {
	GameSessionID   uuid.UUID `json:"game_session_id"`
	StoppedAt       time.Time `json:"stopped_at"`
	DurationSeconds float64   `json:"duration_seconds"`
	Deviation       float64   `json:"deviation"`
}

// StartGame handles POST /games/start
func (h *GamesHandler) StartGame(w http.ResponseWriter, r *http.Request) {
	var req startGameRequest
	if err := ParseJSONBody(r, &req); err != nil {
		ErrorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.UserID == uuid.Nil {
		ErrorResponse(w, http.StatusBadRequest, "user_id is required")
		return
	}

	session, err := h.app.Start(r.Context(), req.UserID)
	if err != nil {
		AppError(w, err)
		return
	}

	JSONResponse(w, http.StatusCreated, startGameResponse{
		GameSessionID: session.ID,
		UserID:        session.UserID,
		StartedAt:     session.StartedAt,
	})
}

// StopGame handles POST /games/{game_session_id}/stop
func (h *GamesHandler) StopGame(w http.ResponseWriter, r *http.Request) {
	sessionID, err := uuid.Parse(r.PathValue("game_session_id"))
	if err != nil {
		ErrorResponse(w, http.StatusBadRequest, "invalid game_session_id format")
		return
	}

	session, err := h.app.Stop(r.Context(), sessionID)
	if err != nil {
		AppError(w, err)
		return
	}

	JSONResponse(w, http.StatusOK, stopGameResponse{
		GameSessionID:   session.ID,
		StoppedAt:       *session.StoppedAt,
		DurationSeconds: *session.DurationSeconds,
		Deviation:       *session.Deviation,
	})
}
