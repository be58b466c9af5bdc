package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/riskibarqy/hoops-league/internal/domain/player"
	"github.com/riskibarqy/hoops-league/internal/domain/scoring"
	"github.com/riskibarqy/hoops-league/internal/infrastructure/repository/memory"
)

func newPlayerStatsFixture(t *testing.T) (*PlayerStatsService, *memory.ScoreRepository) {
	t.Helper()

	players := memory.NewPlayerRepository()
	players.Seed(
		player.Player{ID: 3, Name: "Trey Splash", Team: "BOS", Status: player.StatusActive},
		player.Player{ID: 7, Name: "Big Mo", Team: "MIA", Status: player.StatusActive},
	)
	scores := memory.NewScoreRepository()
	return NewPlayerStatsService(players, scores, nil), scores
}

func seedPlayerScores(t *testing.T, scores *memory.ScoreRepository, playerID int, pointsByDate map[string]float64) {
	t.Helper()

	for gameDate, points := range pointsByDate {
		row := scoring.PlayerGameScore{
			PlayerID: playerID,
			GameDate: gameDate,
			GameID:   "g-" + gameDate,
			Points:   points,
			Played:   true,
		}
		if err := scores.ReplacePlayerScoresForDate(context.Background(), gameDate, []scoring.PlayerGameScore{row}); err != nil {
			t.Fatalf("seed score for %s: %v", gameDate, err)
		}
	}
}

func TestPlayerStatsService_SeasonLine_HotTrend(t *testing.T) {
	t.Parallel()

	service, scores := newPlayerStatsFixture(t)
	// Season average 20; last three average 30 clears the 1.2x bar.
	seedPlayerScores(t, scores, 3, map[string]float64{
		"2026-01-05": 10,
		"2026-01-06": 10,
		"2026-01-07": 10,
		"2026-01-08": 30,
		"2026-01-09": 30,
		"2026-01-10": 30,
	})

	line, err := service.SeasonLine(context.Background(), 3)
	if err != nil {
		t.Fatalf("season line: %v", err)
	}
	if line.GamesPlayed != 6 || line.AveragePoints != 20 {
		t.Fatalf("unexpected season line: %+v", line)
	}
	if line.RecentAverage != 30 || line.Trend != TrendHot {
		t.Fatalf("expected a hot trend, got %+v", line)
	}
}

func TestPlayerStatsService_SeasonLine_ColdTrend(t *testing.T) {
	t.Parallel()

	service, scores := newPlayerStatsFixture(t)
	seedPlayerScores(t, scores, 3, map[string]float64{
		"2026-01-05": 30,
		"2026-01-06": 30,
		"2026-01-07": 30,
		"2026-01-08": 10,
		"2026-01-09": 10,
		"2026-01-10": 10,
	})

	line, err := service.SeasonLine(context.Background(), 3)
	if err != nil {
		t.Fatalf("season line: %v", err)
	}
	if line.Trend != TrendCold {
		t.Fatalf("expected a cold trend, got %+v", line)
	}
}

func TestPlayerStatsService_SeasonLine_InsufficientData(t *testing.T) {
	t.Parallel()

	service, scores := newPlayerStatsFixture(t)
	seedPlayerScores(t, scores, 3, map[string]float64{
		"2026-01-05": 15,
		"2026-01-06": 18,
	})

	line, err := service.SeasonLine(context.Background(), 3)
	if err != nil {
		t.Fatalf("season line: %v", err)
	}
	if line.Trend != TrendInsufficient {
		t.Fatalf("two games must not produce a trend, got %+v", line)
	}
	if line.GamesPlayed != 2 || line.TotalPoints != 33 {
		t.Fatalf("unexpected season line: %+v", line)
	}
}

func TestPlayerStatsService_SeasonLine_UnknownPlayer(t *testing.T) {
	t.Parallel()

	service, _ := newPlayerStatsFixture(t)
	if _, err := service.SeasonLine(context.Background(), 999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPlayerStatsService_SeasonLines_OrdersByAverage(t *testing.T) {
	t.Parallel()

	service, scores := newPlayerStatsFixture(t)
	for i, points := range []float64{10, 12, 14} {
		gameDate := fmt.Sprintf("2026-01-0%d", i+5)
		rows := []scoring.PlayerGameScore{
			{PlayerID: 3, GameDate: gameDate, GameID: "g-" + gameDate, Points: points, Played: true},
			{PlayerID: 7, GameDate: gameDate, GameID: "g-" + gameDate, Points: points * 2, Played: true},
		}
		if err := scores.ReplacePlayerScoresForDate(context.Background(), gameDate, rows); err != nil {
			t.Fatalf("seed scores: %v", err)
		}
	}

	lines, err := service.SeasonLines(context.Background())
	if err != nil {
		t.Fatalf("season lines: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].PlayerID != 7 || lines[1].PlayerID != 3 {
		t.Fatalf("expected the higher average first, got %d then %d", lines[0].PlayerID, lines[1].PlayerID)
	}
}
