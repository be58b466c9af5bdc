package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/hoops-league/internal/domain/manager"
	"github.com/riskibarqy/hoops-league/internal/domain/scoring"
	"github.com/riskibarqy/hoops-league/internal/infrastructure/repository/memory"
)

func newStandingsFixture(t *testing.T) (*StandingsService, *memory.ScoreRepository, *memory.StandingsRepository) {
	t.Helper()

	managers := memory.NewManagerRepository()
	managers.Seed(
		manager.Manager{ID: 1, Name: "Alex"},
		manager.Manager{ID: 2, Name: "Brook"},
		manager.Manager{ID: 3, Name: "Casey"},
		manager.Manager{ID: 4, Name: "Drew"},
	)
	scores := memory.NewScoreRepository()
	table := memory.NewStandingsRepository()
	return NewStandingsService(managers, scores, table, nil), scores, table
}

func seedDaily(t *testing.T, scores *memory.ScoreRepository, gameDate string, rows ...scoring.ManagerDailyScore) {
	t.Helper()

	if err := scores.ReplaceDailyScoresForDate(context.Background(), gameDate, rows); err != nil {
		t.Fatalf("seed daily scores for %s: %v", gameDate, err)
	}
}

func TestStandingsService_Refresh_RanksByTotalThenManagerID(t *testing.T) {
	t.Parallel()

	service, scores, _ := newStandingsFixture(t)
	ctx := context.Background()
	service.now = func() time.Time { return time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC) }

	seedDaily(t, scores, "2026-01-12",
		scoring.ManagerDailyScore{ManagerID: 1, GameDate: "2026-01-12", Points: 40, ActiveCount: 3},
		scoring.ManagerDailyScore{ManagerID: 2, GameDate: "2026-01-12", Points: 55, ActiveCount: 3},
		scoring.ManagerDailyScore{ManagerID: 3, GameDate: "2026-01-12", Points: 55, ActiveCount: 3},
	)
	seedDaily(t, scores, "2026-01-13",
		scoring.ManagerDailyScore{ManagerID: 1, GameDate: "2026-01-13", Points: 10, ActiveCount: 3},
	)

	table, err := service.Refresh(ctx)
	if err != nil {
		t.Fatalf("refresh standings: %v", err)
	}
	if len(table) != 4 {
		t.Fatalf("expected every manager ranked, got %d rows", len(table))
	}

	// 55/55 tie breaks by ascending manager id; manager 4 has no scored
	// days and sorts last.
	wantOrder := []int{2, 3, 1, 4}
	for i, standing := range table {
		if standing.ManagerID != wantOrder[i] {
			t.Fatalf("unexpected order at %d: got manager %d want %d", i, standing.ManagerID, wantOrder[i])
		}
		if standing.Rank != i+1 {
			t.Fatalf("rank must be a strict permutation: got %d at position %d", standing.Rank, i)
		}
	}

	if table[2].GamesWithScores != 2 {
		t.Fatalf("expected 2 scored days for manager 1, got %d", table[2].GamesWithScores)
	}
	if table[2].AveragePoints != 25 {
		t.Fatalf("expected average 25 for manager 1, got %v", table[2].AveragePoints)
	}
	if table[3].AveragePoints != 0 || table[3].GamesWithScores != 0 {
		t.Fatalf("zero-day manager must not divide by zero: %+v", table[3])
	}
}

func TestStandingsService_Refresh_PersistsTable(t *testing.T) {
	t.Parallel()

	service, scores, tableRepo := newStandingsFixture(t)
	ctx := context.Background()
	seedDaily(t, scores, "2026-01-12",
		scoring.ManagerDailyScore{ManagerID: 1, GameDate: "2026-01-12", Points: 12, ActiveCount: 3},
	)

	if _, err := service.Refresh(ctx); err != nil {
		t.Fatalf("refresh standings: %v", err)
	}

	persisted, err := tableRepo.List(ctx)
	if err != nil {
		t.Fatalf("list persisted table: %v", err)
	}
	if len(persisted) != 4 {
		t.Fatalf("expected persisted rows for every manager, got %d", len(persisted))
	}
}

func TestStandingsService_List_EmptyIsNormal(t *testing.T) {
	t.Parallel()

	service, _, _ := newStandingsFixture(t)
	table, err := service.List(context.Background())
	if err != nil {
		t.Fatalf("list standings: %v", err)
	}
	if len(table) != 0 {
		t.Fatalf("expected empty table before first refresh, got %d rows", len(table))
	}
}
