package standings

import "time"

// Standing is one manager's row in the season table. The whole table is a
// recomputed snapshot; rows are never patched in place.
type Standing struct {
	ManagerID       int
	TotalPoints     float64
	GamesWithScores int
	AveragePoints   float64
	Rank            int
	UpdatedAt       time.Time
}
