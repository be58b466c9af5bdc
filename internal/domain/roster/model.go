package roster

import "time"

const AcquisitionDraft = "draft"

// Entry assigns one player to one manager. The full set is written atomically
// when the draft completes and only ever replaced wholesale on a draft reset.
type Entry struct {
	ManagerID       int
	PlayerID        int
	AcquisitionType string
	AcquiredAt      time.Time
}
