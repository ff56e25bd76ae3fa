package api

import (
	"net/http"
	"time"

	"github.com/mcdev12/chrono/go/internal/auth"
)

// RouterConfig carries everything the router needs to wire handlers
type RouterConfig struct {
	Users    UsersApp
	Games    GamesApp
	Stats    StatsApp
	Secret   []byte
	TokenTTL time.Duration
}

// NewRouter builds the HTTP mux for the API
func NewRouter(cfg RouterConfig) *http.ServeMux {
	mux := http.NewServeMux()

	authHandler := NewAuthHandler(cfg.Users, cfg.Secret, cfg.TokenTTL)
	gamesHandler := NewGamesHandler(cfg.Games)
	statsHandler := NewStatsHandler(cfg.Stats)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Auth
	mux.HandleFunc("POST /auth/register", WithLogging(authHandler.Register))
	mux.HandleFunc("POST /auth/login", WithLogging(authHandler.Login))
	mux.HandleFunc("GET /auth/me", WithLogging(auth.RequireAuth(cfg.Secret, authHandler.Me)))

	// Game sessions
	mux.HandleFunc("POST /games/start", WithLogging(gamesHandler.StartGame))
	mux.HandleFunc("POST /games/{game_session_id}/stop", WithLogging(gamesHandler.StopGame))

	// Aggregations
	mux.HandleFunc("GET /leaderboard", WithLogging(statsHandler.GetLeaderboard))
	mux.HandleFunc("GET /analytics/user/{user_id}", WithLogging(statsHandler.GetUserAnalytics))

	return mux
}
