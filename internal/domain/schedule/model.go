package schedule

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used across every persisted table.
// ISO dates compare correctly as strings, which the lock and replay logic
// relies on.
const DateLayout = "2006-01-02"

const tipoffLayout = "15:04"

// Game is one scheduled real-world game from the handmade schedule table.
// TipoffET is the scheduled start clock time in the league's reference
// timezone (US Eastern).
type Game struct {
	ID       int
	GameDate string
	TipoffET string
	HomeTeam string
	AwayTeam string
}

// TipoffAt resolves the game's start instant in the given reference location.
func (g Game) TipoffAt(loc *time.Location) (time.Time, error) {
	day, err := time.ParseInLocation(DateLayout, g.GameDate, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse game date %q: %w", g.GameDate, err)
	}
	clock, err := time.ParseInLocation(tipoffLayout, g.TipoffET, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse tipoff %q: %w", g.TipoffET, err)
	}

	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, loc), nil
}

// FormatDate renders an instant as a calendar date in the given location.
func FormatDate(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateLayout)
}

// ValidDate reports whether value is a well-formed calendar date.
func ValidDate(value string) bool {
	_, err := time.Parse(DateLayout, value)
	return err == nil
}
