package models

// UserStats aggregates a user's completed sessions. AvgDeviation and
// BestDeviation are nil when the user has no completed sessions.
type UserStats struct {
	TotalGames    int      `json:"total_games"`
	AvgDeviation  *float64 `json:"avg_deviation"`
	BestDeviation *float64 `json:"best_deviation"`
}

// LeaderboardEntry is one ranked row of the leaderboard.
type LeaderboardEntry struct {
	Username      string  `json:"username"`
	TotalGames    int     `json:"total_games"`
	AvgDeviation  float64 `json:"avg_deviation"`
	BestDeviation float64 `json:"best_deviation"`
}

// UserGameHistory bundles a user's aggregate stats with their full session
// history, active sessions included.
type UserGameHistory struct {
	Username string        `json:"username"`
	Stats    UserStats     `json:"stats"`
	History  []GameSession `json:"history"`
}
