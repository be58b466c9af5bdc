package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/hoops-league/internal/domain/gamestats"
	"github.com/riskibarqy/hoops-league/internal/domain/manager"
	"github.com/riskibarqy/hoops-league/internal/domain/roster"
	"github.com/riskibarqy/hoops-league/internal/domain/scoring"
	"github.com/riskibarqy/hoops-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/hoops-league/internal/platform/id"
	"github.com/riskibarqy/hoops-league/internal/platform/logging"
)

type scoringFixture struct {
	service *ScoringService
	configs *memory.ScoringConfigRepository
	scores  *memory.ScoreRepository
	stats   *memory.GameStatsRepository
	lineups *LineupService
}

func newScoringFixture(t *testing.T) *scoringFixture {
	t.Helper()

	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load timezone: %v", err)
	}

	managers := memory.NewManagerRepository()
	managers.Seed(
		manager.Manager{ID: 1, Name: "Alex", TeamName: "Alley Oops"},
		manager.Manager{ID: 2, Name: "Brook", TeamName: "Brick City"},
	)

	rosters := memory.NewRosterRepository()
	entries := []roster.Entry{}
	for _, playerID := range []int{3, 7, 9, 14, 22, 31} {
		entries = append(entries, roster.Entry{ManagerID: 1, PlayerID: playerID, AcquisitionType: roster.AcquisitionDraft})
	}
	for _, playerID := range []int{4, 8, 10, 15, 23, 32} {
		entries = append(entries, roster.Entry{ManagerID: 2, PlayerID: playerID, AcquisitionType: roster.AcquisitionDraft})
	}
	if err := rosters.ReplaceAll(context.Background(), entries); err != nil {
		t.Fatalf("seed rosters: %v", err)
	}

	lineups := NewLineupService(
		memory.NewLineupRepository(), rosters, managers,
		memory.NewScheduleRepository(), memory.NewTranslogRepository(),
		id.NewRandomGenerator(), loc, 3, 3,
		time.Millisecond, 2*time.Millisecond, nil,
	)

	configs := memory.NewScoringConfigRepository()
	configs.Seed(scoring.Config{
		Variant: scoring.VariantRegular,
		Weights: map[string]float64{"points": 1, "rebounds": 2},
	})

	f := &scoringFixture{
		configs: configs,
		scores:  memory.NewScoreRepository(),
		stats:   memory.NewGameStatsRepository(),
		lineups: lineups,
	}
	f.service = NewScoringService(f.configs, f.scores, f.stats, managers, f.lineups, 2, logging.NewNop())
	return f
}

func (f *scoringFixture) seedStats(t *testing.T, gameDate string, rows ...gamestats.Row) {
	t.Helper()

	if err := f.stats.ReplaceForGame(context.Background(), gameDate, 1, rows); err != nil {
		t.Fatalf("seed stats for %s: %v", gameDate, err)
	}
}

func TestScoringService_UpdateScoresForDate(t *testing.T) {
	t.Parallel()

	f := newScoringFixture(t)
	ctx := context.Background()
	f.seedStats(t, "2026-01-12",
		gamestats.Row{GameID: "g1", GameDate: "2026-01-12", PlayerID: 3, Stats: map[string]float64{"points": 10, "rebounds": 5}},
		gamestats.Row{GameID: "g1", GameDate: "2026-01-12", PlayerID: 4, Stats: map[string]float64{"points": 8, "rebounds": 0}},
		gamestats.Row{GameID: "g1", GameDate: "2026-01-12", PlayerID: 99, Stats: map[string]float64{"points": 30, "rebounds": 10}},
	)

	if err := f.service.UpdateScoresForDate(ctx, "2026-01-12"); err != nil {
		t.Fatalf("update scores: %v", err)
	}

	playerScores, err := f.scores.ListPlayerScoresByDate(ctx, "2026-01-12")
	if err != nil {
		t.Fatalf("list player scores: %v", err)
	}
	if len(playerScores) != 3 {
		t.Fatalf("expected 3 player score rows, got %d", len(playerScores))
	}
	points := make(map[int]float64)
	for _, score := range playerScores {
		if !score.Played {
			t.Fatalf("expected played=true for player %d", score.PlayerID)
		}
		points[score.PlayerID] = score.Points
	}
	if points[3] != 20 {
		t.Fatalf("unexpected points for player 3: %v", points[3])
	}

	dailies, err := f.scores.ListDailyScoresByDate(ctx, "2026-01-12")
	if err != nil {
		t.Fatalf("list daily scores: %v", err)
	}
	if len(dailies) != 2 {
		t.Fatalf("expected a daily row per manager, got %d", len(dailies))
	}
	byManager := make(map[int]scoring.ManagerDailyScore)
	for _, daily := range dailies {
		byManager[daily.ManagerID] = daily
	}
	// Manager 1 defaults to players 3,7,9; only player 3 produced a row.
	if byManager[1].Points != 20 || byManager[1].ActiveCount != 1 {
		t.Fatalf("unexpected daily row for manager 1: %+v", byManager[1])
	}
	// Manager 2 defaults to players 4,8,10; only player 4 produced a row.
	if byManager[2].Points != 8 || byManager[2].ActiveCount != 1 {
		t.Fatalf("unexpected daily row for manager 2: %+v", byManager[2])
	}
}

func TestScoringService_UpdateScoresForDate_ActiveCountTracksPlayedRows(t *testing.T) {
	t.Parallel()

	f := newScoringFixture(t)
	ctx := context.Background()
	// Player 3 plays a doubleheader; manager 2's whole active trio sits out.
	f.seedStats(t, "2026-01-12",
		gamestats.Row{GameID: "g1", GameDate: "2026-01-12", PlayerID: 3, Stats: map[string]float64{"points": 10, "rebounds": 0}},
	)
	if err := f.stats.ReplaceForGame(ctx, "2026-01-12", 2, []gamestats.Row{
		{GameID: "g2", GameDate: "2026-01-12", PlayerID: 3, Stats: map[string]float64{"points": 4, "rebounds": 1}},
	}); err != nil {
		t.Fatalf("seed second game: %v", err)
	}

	if err := f.service.UpdateScoresForDate(ctx, "2026-01-12"); err != nil {
		t.Fatalf("update scores: %v", err)
	}

	dailies, err := f.scores.ListDailyScoresByDate(ctx, "2026-01-12")
	if err != nil {
		t.Fatalf("list daily scores: %v", err)
	}
	byManager := make(map[int]scoring.ManagerDailyScore)
	for _, daily := range dailies {
		byManager[daily.ManagerID] = daily
	}
	if byManager[1].ActiveCount != 2 || byManager[1].Points != 16 {
		t.Fatalf("expected both of player 3's rows counted, got %+v", byManager[1])
	}
	if byManager[2].ActiveCount != 0 || byManager[2].Points != 0 {
		t.Fatalf("expected zero played rows for manager 2, got %+v", byManager[2])
	}
}

func TestScoringService_UpdateScoresForDate_ReplacesWholeDate(t *testing.T) {
	t.Parallel()

	f := newScoringFixture(t)
	ctx := context.Background()
	f.seedStats(t, "2026-01-12",
		gamestats.Row{GameID: "g1", GameDate: "2026-01-12", PlayerID: 3, Stats: map[string]float64{"points": 10, "rebounds": 5}},
	)
	if err := f.service.UpdateScoresForDate(ctx, "2026-01-12"); err != nil {
		t.Fatalf("first update: %v", err)
	}

	// A corrected upload supersedes the date entirely.
	f.seedStats(t, "2026-01-12",
		gamestats.Row{GameID: "g1", GameDate: "2026-01-12", PlayerID: 3, Stats: map[string]float64{"points": 12, "rebounds": 5}},
	)
	if err := f.service.UpdateScoresForDate(ctx, "2026-01-12"); err != nil {
		t.Fatalf("second update: %v", err)
	}

	playerScores, err := f.scores.ListPlayerScoresByDate(ctx, "2026-01-12")
	if err != nil {
		t.Fatalf("list player scores: %v", err)
	}
	if len(playerScores) != 1 {
		t.Fatalf("expected one row after replacement, got %d", len(playerScores))
	}
	if playerScores[0].Points != 22 {
		t.Fatalf("expected recomputed points 22, got %v", playerScores[0].Points)
	}
}

func TestScoringService_RecalculateAll(t *testing.T) {
	t.Parallel()

	f := newScoringFixture(t)
	ctx := context.Background()
	f.seedStats(t, "2026-01-12",
		gamestats.Row{GameID: "g1", GameDate: "2026-01-12", PlayerID: 3, Stats: map[string]float64{"points": 10, "rebounds": 0}},
	)
	f.seedStats(t, "2026-01-13",
		gamestats.Row{GameID: "g2", GameDate: "2026-01-13", PlayerID: 3, Stats: map[string]float64{"points": 6, "rebounds": 3}},
	)

	summary, err := f.service.RecalculateAll(ctx)
	if err != nil {
		t.Fatalf("recalculate all: %v", err)
	}
	if summary.DatesProcessed != 2 || summary.DatesFailed != 0 {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	dailies, err := f.scores.ListDailyScores(ctx)
	if err != nil {
		t.Fatalf("list daily scores: %v", err)
	}
	if len(dailies) != 4 {
		t.Fatalf("expected two managers across two dates, got %d rows", len(dailies))
	}
}

func TestScoringService_RecalculateAll_ReportsFailedDates(t *testing.T) {
	t.Parallel()

	f := newScoringFixture(t)
	ctx := context.Background()
	f.seedStats(t, "2026-01-12",
		gamestats.Row{GameID: "g1", GameDate: "2026-01-12", PlayerID: 3, Stats: map[string]float64{"points": 10, "rebounds": 0}},
	)

	// Without a weight table every date replay fails, but the replay itself
	// still finishes and reports them.
	f.service.configRepo = memory.NewScoringConfigRepository()

	summary, err := f.service.RecalculateAll(ctx)
	if err != nil {
		t.Fatalf("recalculate all: %v", err)
	}
	if summary.DatesProcessed != 0 || summary.DatesFailed != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if len(summary.FailedDates) != 1 || summary.FailedDates[0] != "2026-01-12" {
		t.Fatalf("unexpected failed dates: %v", summary.FailedDates)
	}
}
