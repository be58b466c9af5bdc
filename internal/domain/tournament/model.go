package tournament

import "time"

// Matchup is one bracket pairing, seeded from standings rank. Seeds are
// 1-based; the bracket of 8 pairs 1v8, 4v5, 3v6, 2v7.
type Matchup struct {
	Round         int
	Slot          int
	HomeSeed      int
	AwaySeed      int
	HomeManagerID int
	AwayManagerID int
}

// Pick is one manager's chosen player for a tournament round.
type Pick struct {
	Round     int
	ManagerID int
	PlayerID  int
	PickedAt  time.Time
}

// GameScore is the derived tournament fantasy-point row for one player in one
// round, computed with the tournament weight table.
type GameScore struct {
	Round    int
	PlayerID int
	GameDate string
	Points   float64
	Played   bool
}

// SeedBracket pairs ranked manager ids into first-round matchups. The ranked
// slice must be ordered by standings rank ascending.
func SeedBracket(ranked []int) []Matchup {
	pairs := [][2]int{{1, 8}, {4, 5}, {3, 6}, {2, 7}}
	matchups := make([]Matchup, 0, len(pairs))
	for slot, p := range pairs {
		home, away := p[0], p[1]
		if home > len(ranked) || away > len(ranked) {
			continue
		}
		matchups = append(matchups, Matchup{
			Round:         1,
			Slot:          slot + 1,
			HomeSeed:      home,
			AwaySeed:      away,
			HomeManagerID: ranked[home-1],
			AwayManagerID: ranked[away-1],
		})
	}
	return matchups
}
