package lineup

import (
	"sort"
	"time"
)

const (
	StatusActive = "active"
	StatusBench  = "bench"
)

// Entry is one row of the lineups table. A manager's lineup for a date is the
// full entry set covering their roster, with exactly the configured number of
// active slots. The set is only ever replaced wholesale per (manager, date).
type Entry struct {
	ID        int64
	ManagerID int
	GameDate  string
	PlayerID  int
	Status    string
	SavedAt   time.Time
}

// ActiveIDs extracts the active player ids from an entry set, sorted
// ascending for deterministic output.
func ActiveIDs(entries []Entry) []int {
	ids := make([]int, 0, len(entries))
	for _, e := range entries {
		if e.Status == StatusActive {
			ids = append(ids, e.PlayerID)
		}
	}
	sort.Ints(ids)
	return ids
}
