package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"github.com/mcdev12/chrono/go/internal/dbconfig"
)

// DemoUser is a well-known account for local development
type DemoUser struct {
	Username string
	Email    string
	Password string
}

var demoUsers = []DemoUser{
	{Username: "edygg_1", Email: "edygg1@example.com", Password: "password1"},
	{Username: "edygg_2", Email: "edygg2@example.com", Password: "password2"},
	{Username: "edygg_3", Email: "edygg3@example.com", Password: "password3"},
}

func main() {
	// 1) Connect using shared dbconfig
	cfg := dbconfig.NewConfigFromEnv()
	pool, err := pgxpool.New(context.Background(), cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	// 2) Upsert and count
	var (
		total    = len(demoUsers)
		inserted int
		skipped  int
		errs     int
	)

	for _, u := range demoUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error hashing password for %s: %v\n", u.Username, err)
			errs++
			continue
		}

		cmdTag, err := pool.Exec(context.Background(), `
            INSERT INTO users (
              id, username, email, password_hash
            ) VALUES (
              $1,$2,$3,$4
            )
            ON CONFLICT (username) DO NOTHING
        `,
			uuid.New(), u.Username, u.Email, string(hash),
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error inserting user %s: %v\n", u.Username, err)
			errs++
			continue
		}
		if cmdTag.RowsAffected() == 1 {
			inserted++
		} else {
			skipped++
		}
	}

	// 3) Print summary
	fmt.Printf(
		"Users seed complete: %d total, %d inserted, %d skipped, %d errors\n",
		total, inserted, skipped, errs,
	)
}
