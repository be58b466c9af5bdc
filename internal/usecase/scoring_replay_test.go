package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/riskibarqy/hoops-league/internal/domain/gamestats"
	"github.com/riskibarqy/hoops-league/internal/domain/roster"
	csvrepo "github.com/riskibarqy/hoops-league/internal/infrastructure/repository/csv"
	"github.com/riskibarqy/hoops-league/internal/platform/id"
	"github.com/riskibarqy/hoops-league/internal/platform/logging"
)

// Season replay against the file-backed store. Every date's derivation
// rewrites the shared lineup and score tables, so a replay of fully valid
// uploads must never trip the per-table locks against itself.
func TestScoringService_RecalculateAll_FileStoreReplaysEveryDate(t *testing.T) {
	t.Parallel()

	dataDir := t.TempDir()
	store, err := csvrepo.NewStore(dataDir)
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	writeReferenceTable(t, dataDir, "managers.csv",
		"manager_id,name,team_name\n1,Alex,Alley Oops\n2,Brook,Brick City\n")
	writeReferenceTable(t, dataDir, "scoring_config.csv",
		"variant,stat_category,points_per_unit\nregular,points,1\nregular,rebounds,2\n")

	ctx := context.Background()
	rosters := csvrepo.NewRosterRepository(store)
	entries := []roster.Entry{}
	for _, playerID := range []int{3, 7, 9} {
		entries = append(entries, roster.Entry{ManagerID: 1, PlayerID: playerID, AcquisitionType: roster.AcquisitionDraft})
	}
	for _, playerID := range []int{4, 8, 10} {
		entries = append(entries, roster.Entry{ManagerID: 2, PlayerID: playerID, AcquisitionType: roster.AcquisitionDraft})
	}
	if err := rosters.ReplaceAll(ctx, entries); err != nil {
		t.Fatalf("seed rosters: %v", err)
	}

	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load timezone: %v", err)
	}
	managers := csvrepo.NewManagerRepository(store)
	stats := csvrepo.NewGameStatsRepository(store)
	scores := csvrepo.NewScoreRepository(store)
	lineups := NewLineupService(
		csvrepo.NewLineupRepository(store), rosters, managers,
		csvrepo.NewScheduleRepository(store), csvrepo.NewTranslogRepository(store),
		id.NewRandomGenerator(), loc, 3, 3,
		time.Millisecond, 2*time.Millisecond, nil,
	)
	service := NewScoringService(
		csvrepo.NewScoringConfigRepository(store), scores, stats,
		managers, lineups, 4, logging.NewNop(),
	)

	dates := make([]string, 0, 30)
	for day := 2; day <= 31; day++ {
		dates = append(dates, fmt.Sprintf("2026-01-%02d", day))
	}
	for _, date := range dates {
		if err := stats.ReplaceForGame(ctx, date, 1, []gamestats.Row{
			{GameID: "g1", GameDate: date, PlayerID: 3, Stats: map[string]float64{"points": 10, "rebounds": 2}},
			{GameID: "g1", GameDate: date, PlayerID: 4, Stats: map[string]float64{"points": 6, "rebounds": 1}},
		}); err != nil {
			t.Fatalf("seed upload for %s: %v", date, err)
		}
	}

	summary, err := service.RecalculateAll(ctx)
	if err != nil {
		t.Fatalf("recalculate all: %v", err)
	}
	if summary.DatesFailed != 0 {
		t.Fatalf("valid uploads must replay cleanly, failed %d/%d dates: %v",
			summary.DatesFailed, len(dates), summary.FailedDates)
	}
	if summary.DatesProcessed != len(dates) {
		t.Fatalf("expected %d dates processed, got %d", len(dates), summary.DatesProcessed)
	}

	dailies, err := scores.ListDailyScores(ctx)
	if err != nil {
		t.Fatalf("list daily scores: %v", err)
	}
	if len(dailies) != 2*len(dates) {
		t.Fatalf("expected a daily row per manager per date, got %d", len(dailies))
	}
}

func writeReferenceTable(t *testing.T, dataDir, name, contents string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dataDir, "handmade", name), []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}
