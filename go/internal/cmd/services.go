package main

import (
	"database/sql"

	"github.com/jonboulle/clockwork"

	"github.com/mcdev12/chrono/go/internal/gamesession"
	"github.com/mcdev12/chrono/go/internal/stats"
	"github.com/mcdev12/chrono/go/internal/users"

	statsdb "github.com/mcdev12/chrono/go/internal/stats/db"
	usersdb "github.com/mcdev12/chrono/go/internal/users/db"
)

type Services struct {
	Users *users.App
	Games *gamesession.App
	Stats *stats.App
}

func setupServices(database *sql.DB) *Services {
	// Wire up dependency injection chain
	// Database layer → Repository layer → App layer

	// Users
	userQueries := usersdb.New(database)
	userRepo := users.NewRepository(userQueries)
	userApp := users.NewApp(userRepo)

	// Game sessions
	sessionRepo := gamesession.NewRepository(database)
	sessionApp := gamesession.NewApp(sessionRepo, userApp, clockwork.NewRealClock())

	// Stats
	statsQueries := statsdb.New(database)
	statsRepo := stats.NewRepository(statsQueries)
	statsApp := stats.NewApp(statsRepo, userApp)

	return &Services{
		Users: userApp,
		Games: sessionApp,
		Stats: statsApp,
	}
}
