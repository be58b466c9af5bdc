package csv

import (
	"testing"

	"github.com/riskibarqy/hoops-league/internal/domain/gamestats"
)

func TestGameStatsReplaceAndListByDate(t *testing.T) {
	repo := NewGameStatsRepository(newTestStore(t))

	rows := []gamestats.Row{
		{GameID: "g1", GameDate: "2026-01-10", PlayerID: 101, Stats: map[string]float64{"points": 12, "rebound": 4}},
		{GameID: "g1", GameDate: "2026-01-10", PlayerID: 102, Stats: map[string]float64{"points": 0, "rebound": 0}},
	}
	if err := repo.ReplaceForGame(t.Context(), "2026-01-10", 1, rows); err != nil {
		t.Fatalf("replace game 1: %v", err)
	}
	if err := repo.ReplaceForGame(t.Context(), "2026-01-10", 2, []gamestats.Row{
		{GameID: "g2", GameDate: "2026-01-10", PlayerID: 103, Stats: map[string]float64{"points": 7}},
	}); err != nil {
		t.Fatalf("replace game 2: %v", err)
	}

	got, err := repo.ListByDate(t.Context(), "2026-01-10")
	if err != nil {
		t.Fatalf("list by date: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected rows from both game files, got %d", len(got))
	}

	byPlayer := make(map[int]gamestats.Row)
	for _, row := range got {
		byPlayer[row.PlayerID] = row
	}
	if byPlayer[101].Stats["points"] != 12 || byPlayer[101].Stats["rebound"] != 4 {
		t.Fatalf("stats did not round-trip: %+v", byPlayer[101])
	}

	// Re-uploading the same game supersedes its prior rows.
	if err := repo.ReplaceForGame(t.Context(), "2026-01-10", 1, rows[:1]); err != nil {
		t.Fatalf("re-replace game 1: %v", err)
	}
	got, err = repo.ListByDate(t.Context(), "2026-01-10")
	if err != nil {
		t.Fatalf("list after re-upload: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected idempotent replace, got %d rows", len(got))
	}
}

func TestGameStatsListDates(t *testing.T) {
	repo := NewGameStatsRepository(newTestStore(t))

	for _, date := range []string{"2026-01-12", "2026-01-10"} {
		if err := repo.ReplaceForGame(t.Context(), date, 1, []gamestats.Row{
			{GameID: "g", GameDate: date, PlayerID: 101, Stats: map[string]float64{"points": 1}},
		}); err != nil {
			t.Fatalf("replace %s: %v", date, err)
		}
	}

	dates, err := repo.ListDates(t.Context())
	if err != nil {
		t.Fatalf("list dates: %v", err)
	}
	if len(dates) != 2 || dates[0] != "2026-01-10" || dates[1] != "2026-01-12" {
		t.Fatalf("expected ascending distinct dates, got %v", dates)
	}
}
