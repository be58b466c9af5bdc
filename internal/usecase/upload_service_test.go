package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/riskibarqy/hoops-league/internal/domain/player"
	"github.com/riskibarqy/hoops-league/internal/domain/scoring"
	"github.com/riskibarqy/hoops-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/hoops-league/internal/platform/logging"
)

type scorerStub struct {
	dates []string
	err   error
}

func (s *scorerStub) UpdateScoresForDate(_ context.Context, gameDate string) error {
	s.dates = append(s.dates, gameDate)
	return s.err
}

type uploadFixture struct {
	service *UploadService
	stats   *memory.GameStatsRepository
	scorer  *scorerStub
}

func newUploadFixture(t *testing.T) *uploadFixture {
	t.Helper()

	configs := memory.NewScoringConfigRepository()
	configs.Seed(scoring.Config{
		Variant: scoring.VariantRegular,
		Weights: map[string]float64{"points": 1, "rebounds": 1.2, "turnovers": -1},
	})

	players := memory.NewPlayerRepository()
	players.Seed(
		player.Player{ID: 3, Name: "Trey Splash", Team: "BOS", Status: player.StatusActive},
		player.Player{ID: 7, Name: "Big Mo", Team: "MIA", Status: player.StatusActive},
	)

	f := &uploadFixture{
		stats:  memory.NewGameStatsRepository(),
		scorer: &scorerStub{},
	}
	f.service = NewUploadService(configs, f.stats, players, f.scorer, logging.NewNop())
	return f
}

const validStatCSV = `game_id,player_id,points,rebounds,turnovers
g1,3,24,6,2
g1,7,11,13,1
`

func TestUploadService_UploadGameStats(t *testing.T) {
	t.Parallel()

	f := newUploadFixture(t)
	ctx := context.Background()

	summary, err := f.service.UploadGameStats(ctx, "2026-01-12", 1, strings.NewReader(validStatCSV))
	if err != nil {
		t.Fatalf("upload stats: %v", err)
	}
	if summary.RowCount != 2 || len(summary.Warnings) != 0 {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	rows, err := f.stats.ListByDate(ctx, "2026-01-12")
	if err != nil {
		t.Fatalf("list stored rows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 stored rows, got %d", len(rows))
	}
	if len(f.scorer.dates) != 1 || f.scorer.dates[0] != "2026-01-12" {
		t.Fatalf("expected one score recompute for the date, got %v", f.scorer.dates)
	}
}

func TestUploadService_UploadGameStats_MissingColumnRejects(t *testing.T) {
	t.Parallel()

	f := newUploadFixture(t)
	file := strings.NewReader("game_id,player_id,points,rebounds\ng1,3,24,6\n")

	_, err := f.service.UploadGameStats(context.Background(), "2026-01-12", 1, file)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if len(f.scorer.dates) != 0 {
		t.Fatal("rejected upload must not trigger a recompute")
	}
}

func TestUploadService_UploadGameStats_UnknownPlayerRejectsWholeFile(t *testing.T) {
	t.Parallel()

	f := newUploadFixture(t)
	file := strings.NewReader("game_id,player_id,points,rebounds,turnovers\ng1,3,24,6,2\ng1,99,5,1,0\n")
	ctx := context.Background()

	_, err := f.service.UploadGameStats(ctx, "2026-01-12", 1, file)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	rows, err := f.stats.ListByDate(ctx, "2026-01-12")
	if err != nil {
		t.Fatalf("list stored rows: %v", err)
	}
	if len(rows) != 0 {
		t.Fatalf("no rows may be stored from a rejected file, got %d", len(rows))
	}
}

func TestUploadService_UploadGameStats_NegativeStatWarnsButStores(t *testing.T) {
	t.Parallel()

	f := newUploadFixture(t)
	// Negative rebounds warns; negative turnovers is a legal correction.
	file := strings.NewReader("game_id,player_id,points,rebounds,turnovers\ng1,3,24,-2,-1\n")
	ctx := context.Background()

	summary, err := f.service.UploadGameStats(ctx, "2026-01-12", 1, file)
	if err != nil {
		t.Fatalf("upload stats: %v", err)
	}
	if summary.RowCount != 1 {
		t.Fatalf("expected the row stored, got %d", summary.RowCount)
	}
	if len(summary.Warnings) != 1 || !strings.Contains(summary.Warnings[0], "rebounds") {
		t.Fatalf("expected one rebounds warning, got %v", summary.Warnings)
	}
}

func TestUploadService_UploadGameStats_NegativeWarningFollowsConfiguredWeights(t *testing.T) {
	t.Parallel()

	// A league that penalizes fouls instead of turnovers: the exemption must
	// follow whichever categories the config weights negatively.
	configs := memory.NewScoringConfigRepository()
	configs.Seed(scoring.Config{
		Variant: scoring.VariantRegular,
		Weights: map[string]float64{"points": 1, "fouls": -0.5},
	})
	players := memory.NewPlayerRepository()
	players.Seed(player.Player{ID: 3, Name: "Trey Splash", Team: "BOS", Status: player.StatusActive})
	service := NewUploadService(configs, memory.NewGameStatsRepository(), players, nil, logging.NewNop())

	file := strings.NewReader("game_id,player_id,fouls,points\ng1,3,-2,-1\n")
	summary, err := service.UploadGameStats(context.Background(), "2026-01-12", 1, file)
	if err != nil {
		t.Fatalf("upload stats: %v", err)
	}
	if len(summary.Warnings) != 1 || !strings.Contains(summary.Warnings[0], "points") {
		t.Fatalf("expected only the negative points warning, got %v", summary.Warnings)
	}
}

func TestUploadService_UploadGameStats_ReuploadReplacesGame(t *testing.T) {
	t.Parallel()

	f := newUploadFixture(t)
	ctx := context.Background()

	if _, err := f.service.UploadGameStats(ctx, "2026-01-12", 1, strings.NewReader(validStatCSV)); err != nil {
		t.Fatalf("first upload: %v", err)
	}
	corrected := strings.NewReader("game_id,player_id,points,rebounds,turnovers\ng1,3,26,6,2\n")
	if _, err := f.service.UploadGameStats(ctx, "2026-01-12", 1, corrected); err != nil {
		t.Fatalf("second upload: %v", err)
	}

	rows, err := f.stats.ListByDate(ctx, "2026-01-12")
	if err != nil {
		t.Fatalf("list stored rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("re-upload must replace the game's rows, got %d", len(rows))
	}
	if rows[0].Stats["points"] != 26 {
		t.Fatalf("expected corrected points 26, got %v", rows[0].Stats["points"])
	}
}
