package translog

import "time"

// Entry is one append-only audit record of a successful lineup save. Detail
// carries the resulting active player ids as a JSON payload. Entries are
// never mutated or deleted by normal operation.
type Entry struct {
	ID        string
	LoggedAt  time.Time
	ManagerID int
	GameDate  string
	Action    string
	Detail    string
}

const ActionLineupSave = "lineup_save"
