package usecase

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/riskibarqy/hoops-league/internal/domain/gamestats"
	"github.com/riskibarqy/hoops-league/internal/domain/player"
	"github.com/riskibarqy/hoops-league/internal/domain/schedule"
	"github.com/riskibarqy/hoops-league/internal/domain/scoring"
	"github.com/riskibarqy/hoops-league/internal/platform/logging"
)

// dateScorer recomputes derived scores after an accepted upload.
type dateScorer interface {
	UpdateScoresForDate(ctx context.Context, gameDate string) error
}

// UploadSummary reports what an accepted stat file contained. Warnings flag
// suspicious values that were stored anyway.
type UploadSummary struct {
	GameDate string   `json:"gameDate"`
	GameNum  int      `json:"gameNum"`
	RowCount int      `json:"rowCount"`
	Warnings []string `json:"warnings,omitempty"`
}

// UploadService validates raw box-score CSV files and stores them as the
// source of truth for a game. Re-uploading the same game replaces its rows.
type UploadService struct {
	configRepo scoring.ConfigRepository
	statsRepo  gamestats.Repository
	playerRepo player.Repository
	scorer     dateScorer
	logger     *logging.Logger
	now        func() time.Time
}

func NewUploadService(
	configRepo scoring.ConfigRepository,
	statsRepo gamestats.Repository,
	playerRepo player.Repository,
	scorer dateScorer,
	logger *logging.Logger,
) *UploadService {
	if logger == nil {
		logger = logging.Default()
	}

	return &UploadService{
		configRepo: configRepo,
		statsRepo:  statsRepo,
		playerRepo: playerRepo,
		scorer:     scorer,
		logger:     logger,
		now:        time.Now,
	}
}

// UploadGameStats parses one game's box-score CSV. The file must carry
// game_id, player_id, and a column for every configured stat category;
// unknown players reject the whole file. Stats are stored even when a
// warning fires so a correction can simply be re-uploaded.
func (s *UploadService) UploadGameStats(ctx context.Context, gameDate string, gameNum int, file io.Reader) (*UploadSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UploadService.UploadGameStats")
	defer span.End()

	if !schedule.ValidDate(gameDate) {
		return nil, fmt.Errorf("%w: game_date must be formatted as %s", ErrInvalidInput, schedule.DateLayout)
	}
	if gameNum <= 0 {
		return nil, fmt.Errorf("%w: game number must be positive", ErrInvalidInput)
	}

	cfg, found, err := s.configRepo.GetConfig(ctx, scoring.VariantRegular)
	if err != nil {
		return nil, fmt.Errorf("load scoring config: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("%w: scoring config variant %q is missing", ErrDependencyUnavailable, scoring.VariantRegular)
	}

	categories := make([]string, 0, len(cfg.Weights))
	for category := range cfg.Weights {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: stat file is empty", ErrInvalidInput)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read header: %v", ErrInvalidInput, err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}
	required := append([]string{"game_id", "player_id"}, categories...)
	for _, name := range required {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("%w: stat file is missing column %q", ErrInvalidInput, name)
		}
	}

	var (
		rows     []gamestats.Row
		warnings []string
	)
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrInvalidInput, line, err)
		}

		gameID := record[columns["game_id"]]
		if gameID == "" {
			return nil, fmt.Errorf("%w: line %d: game_id is empty", ErrInvalidInput, line)
		}
		playerID, err := strconv.Atoi(record[columns["player_id"]])
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: bad player_id %q", ErrInvalidInput, line, record[columns["player_id"]])
		}

		_, known, err := s.playerRepo.GetByID(ctx, playerID)
		if err != nil {
			return nil, fmt.Errorf("look up player %d: %w", playerID, err)
		}
		if !known {
			return nil, fmt.Errorf("%w: line %d: unknown player id %d", ErrInvalidInput, line, playerID)
		}

		stats := make(map[string]float64, len(categories))
		for _, category := range categories {
			raw := record[columns[category]]
			value, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: bad %s value %q", ErrInvalidInput, line, category, raw)
			}
			// Penalty categories (negative weight, turnovers in the stock
			// config) legitimately go negative on stat corrections.
			if value < 0 && cfg.Weights[category] >= 0 {
				warnings = append(warnings, fmt.Sprintf("line %d: negative %s %.2f for player %d", line, category, value, playerID))
			}
			stats[category] = value
		}

		rows = append(rows, gamestats.Row{
			GameID:   gameID,
			GameDate: gameDate,
			PlayerID: playerID,
			Stats:    stats,
		})
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: stat file has no data rows", ErrInvalidInput)
	}

	if err := s.statsRepo.ReplaceForGame(ctx, gameDate, gameNum, rows); err != nil {
		return nil, fmt.Errorf("store game stats: %w", err)
	}

	if s.scorer != nil {
		if err := s.scorer.UpdateScoresForDate(ctx, gameDate); err != nil {
			return nil, fmt.Errorf("recompute scores for %s: %w", gameDate, err)
		}
	}

	s.logger.InfoContext(ctx, "game stats uploaded",
		"game_date", gameDate, "game_num", gameNum,
		"rows", len(rows), "warnings", len(warnings))

	return &UploadSummary{
		GameDate: gameDate,
		GameNum:  gameNum,
		RowCount: len(rows),
		Warnings: warnings,
	}, nil
}
