package scoring

// Weight-table variants. Same point algorithm, different tables: the regular
// season weighs made shots, rebounds, assists, steals, blocks and turnovers;
// the tournament uses a flat points-scored weight and excludes assists.
const (
	VariantRegular    = "regular"
	VariantTournament = "tournament"
)

// Config maps stat categories to point weights for one variant.
type Config struct {
	Variant string
	Weights map[string]float64
}

// PlayerGameScore is the derived fantasy-point row for one player on one
// date. Played distinguishes an all-zero stat line from a player who simply
// has no row at all.
type PlayerGameScore struct {
	PlayerID int
	GameDate string
	GameID   string
	Points   float64
	Played   bool
}

// ManagerDailyScore is one manager's total for one date: the sum over their
// active players that actually played. ActiveCount is the number of played
// score rows those active players produced, zero when none of them took the
// floor that date.
type ManagerDailyScore struct {
	ManagerID   int
	GameDate    string
	Points      float64
	ActiveCount int
}
