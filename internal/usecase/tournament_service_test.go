package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/hoops-league/internal/domain/gamestats"
	"github.com/riskibarqy/hoops-league/internal/domain/player"
	"github.com/riskibarqy/hoops-league/internal/domain/scoring"
	"github.com/riskibarqy/hoops-league/internal/domain/standings"
	"github.com/riskibarqy/hoops-league/internal/infrastructure/repository/memory"
)

type tournamentFixture struct {
	service  *TournamentService
	configs  *memory.ScoringConfigRepository
	stats    *memory.GameStatsRepository
	table    *memory.StandingsRepository
	brackets *memory.TournamentRepository
}

func newTournamentFixture(t *testing.T) *tournamentFixture {
	t.Helper()

	configs := memory.NewScoringConfigRepository()
	configs.Seed(scoring.Config{
		Variant: scoring.VariantTournament,
		Weights: map[string]float64{"points": 1, "rebounds": 1, "steals": 2},
	})

	players := memory.NewPlayerRepository()
	for i := 1; i <= 10; i++ {
		players.Seed(player.Player{ID: i, Name: "Player", Team: "FA", Status: player.StatusActive})
	}

	f := &tournamentFixture{
		configs:  configs,
		stats:    memory.NewGameStatsRepository(),
		table:    memory.NewStandingsRepository(),
		brackets: memory.NewTournamentRepository(),
	}
	f.service = NewTournamentService(configs, f.stats, players, f.table, f.brackets, 8, nil)
	return f
}

func seedStandings(t *testing.T, repo *memory.StandingsRepository, managerIDs ...int) {
	t.Helper()

	table := make([]standings.Standing, 0, len(managerIDs))
	for rank, managerID := range managerIDs {
		table = append(table, standings.Standing{
			ManagerID: managerID,
			Rank:      rank + 1,
			UpdatedAt: time.Date(2026, 2, 27, 23, 0, 0, 0, time.UTC),
		})
	}
	if err := repo.ReplaceAll(context.Background(), table); err != nil {
		t.Fatalf("seed standings: %v", err)
	}
}

func TestTournamentService_Bracket_SeedsFromStandings(t *testing.T) {
	t.Parallel()

	f := newTournamentFixture(t)
	seedStandings(t, f.table, 5, 2, 8, 1, 7, 4, 6, 3)

	matchups, err := f.service.Bracket(context.Background())
	if err != nil {
		t.Fatalf("bracket: %v", err)
	}
	if len(matchups) != 4 {
		t.Fatalf("expected 4 first-round matchups, got %d", len(matchups))
	}

	// 1v8, 4v5, 3v6, 2v7 by seed.
	wantHome := []int{5, 1, 8, 2}
	wantAway := []int{3, 7, 6, 4}
	for i, matchup := range matchups {
		if matchup.HomeManagerID != wantHome[i] || matchup.AwayManagerID != wantAway[i] {
			t.Fatalf("unexpected matchup %d: %+v", i, matchup)
		}
	}
}

func TestTournamentService_Bracket_EmptyStandings(t *testing.T) {
	t.Parallel()

	f := newTournamentFixture(t)
	matchups, err := f.service.Bracket(context.Background())
	if err != nil {
		t.Fatalf("bracket: %v", err)
	}
	if matchups != nil {
		t.Fatalf("expected no bracket before standings exist, got %v", matchups)
	}
}

func TestTournamentService_ScoreRound_UsesTournamentWeights(t *testing.T) {
	t.Parallel()

	f := newTournamentFixture(t)
	ctx := context.Background()

	if err := f.stats.ReplaceForGame(ctx, "2026-03-02", 1, []gamestats.Row{
		// Assists are absent from the tournament table and must not score.
		{GameID: "g1", GameDate: "2026-03-02", PlayerID: 1, Stats: map[string]float64{"points": 20, "rebounds": 5, "steals": 2, "assists": 11}},
		{GameID: "g1", GameDate: "2026-03-02", PlayerID: 2, Stats: map[string]float64{"points": 10, "rebounds": 10, "steals": 0, "assists": 3}},
	}); err != nil {
		t.Fatalf("seed stats: %v", err)
	}

	if _, err := f.service.SavePicks(ctx, 1, 4, []int{1}); err != nil {
		t.Fatalf("save picks for manager 4: %v", err)
	}
	if _, err := f.service.SavePicks(ctx, 1, 6, []int{2}); err != nil {
		t.Fatalf("save picks for manager 6: %v", err)
	}

	results, err := f.service.ScoreRound(ctx, 1, "2026-03-02")
	if err != nil {
		t.Fatalf("score round: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 manager totals, got %d", len(results))
	}
	// 20 + 5 + 2*2 = 29 beats 10 + 10 = 20.
	if results[0].ManagerID != 4 || results[0].Points != 29 {
		t.Fatalf("unexpected winner row: %+v", results[0])
	}
	if results[1].ManagerID != 6 || results[1].Points != 20 {
		t.Fatalf("unexpected loser row: %+v", results[1])
	}

	scores, err := f.brackets.ListScoresByRound(ctx, 1)
	if err != nil {
		t.Fatalf("list round scores: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("expected persisted score rows, got %d", len(scores))
	}
}

func TestTournamentService_SavePicks_RejectsUnknownPlayer(t *testing.T) {
	t.Parallel()

	f := newTournamentFixture(t)
	if _, err := f.service.SavePicks(context.Background(), 1, 4, []int{999}); err == nil {
		t.Fatal("expected an error for an unknown player")
	}
}
