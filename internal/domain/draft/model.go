package draft

import "time"

// Slot is one position in the generated snake order before any player is
// attached to it.
type Slot struct {
	Pick      int
	Round     int
	ManagerID int
}

// Result is a completed pick: a slot zipped with the player chosen for it.
type Result struct {
	Pick      int
	Round     int
	ManagerID int
	PlayerID  int
	PickedAt  time.Time
}
