package player

import "fmt"

const (
	StatusActive  = "active"
	StatusInjured = "injured"
)

// Player is a draftable athlete from the handmade players table. Everything
// except Status is immutable for the season; an operator flips Status
// out-of-band when a player gets hurt or returns.
type Player struct {
	ID     int
	Name   string
	Team   string
	Status string
}

func (p Player) Injured() bool {
	return p.Status == StatusInjured
}

func (p Player) Validate() error {
	if p.ID <= 0 {
		return fmt.Errorf("player id must be positive")
	}
	if p.Name == "" {
		return fmt.Errorf("player name is required")
	}
	if p.Status != StatusActive && p.Status != StatusInjured {
		return fmt.Errorf("invalid player status: %s", p.Status)
	}

	return nil
}
