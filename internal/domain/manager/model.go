package manager

// Manager is one of the league's fantasy team owners. Created once at season
// setup from the handmade managers table and immutable thereafter.
type Manager struct {
	ID       int
	Name     string
	TeamName string
}
