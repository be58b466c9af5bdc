package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/riskibarqy/hoops-league/internal/domain/gamestats"
	"github.com/riskibarqy/hoops-league/internal/domain/player"
	"github.com/riskibarqy/hoops-league/internal/domain/schedule"
	"github.com/riskibarqy/hoops-league/internal/domain/scoring"
	"github.com/riskibarqy/hoops-league/internal/domain/standings"
	"github.com/riskibarqy/hoops-league/internal/domain/tournament"
)

// RoundResult is one manager's total over their picks for a scored round.
type RoundResult struct {
	ManagerID int
	Points    float64
}

// TournamentService applies the tournament weight table to bracket play. The
// point algorithm is the regular one; only the weights differ and assists
// never score.
type TournamentService struct {
	configRepo     scoring.ConfigRepository
	statsRepo      gamestats.Repository
	playerRepo     player.Repository
	standingsRepo  standings.Repository
	tournamentRepo tournament.Repository
	logger         *slog.Logger
	bracketSize    int
	now            func() time.Time
}

func NewTournamentService(
	configRepo scoring.ConfigRepository,
	statsRepo gamestats.Repository,
	playerRepo player.Repository,
	standingsRepo standings.Repository,
	tournamentRepo tournament.Repository,
	bracketSize int,
	logger *slog.Logger,
) *TournamentService {
	if logger == nil {
		logger = slog.Default()
	}

	return &TournamentService{
		configRepo:     configRepo,
		statsRepo:      statsRepo,
		playerRepo:     playerRepo,
		standingsRepo:  standingsRepo,
		tournamentRepo: tournamentRepo,
		logger:         logger,
		bracketSize:    bracketSize,
		now:            time.Now,
	}
}

// Bracket seeds first-round matchups from the current standings. An empty
// standings table yields an empty bracket, the normal pre-season state.
func (s *TournamentService) Bracket(ctx context.Context) ([]tournament.Matchup, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.Bracket")
	defer span.End()

	table, err := s.standingsRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list standings: %w", err)
	}
	if len(table) == 0 {
		return nil, nil
	}

	sort.Slice(table, func(i, j int) bool { return table[i].Rank < table[j].Rank })
	ranked := make([]int, 0, len(table))
	for _, standing := range table {
		if len(ranked) == s.bracketSize {
			break
		}
		ranked = append(ranked, standing.ManagerID)
	}

	return tournament.SeedBracket(ranked), nil
}

// SavePicks replaces one manager's picks for a round.
func (s *TournamentService) SavePicks(ctx context.Context, round, managerID int, playerIDs []int) ([]tournament.Pick, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.SavePicks")
	defer span.End()

	if round <= 0 || managerID <= 0 {
		return nil, fmt.Errorf("%w: round and manager_id are required", ErrInvalidInput)
	}
	if len(playerIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one pick is required", ErrInvalidInput)
	}

	pickedAt := s.now()
	picks := make([]tournament.Pick, 0, len(playerIDs))
	seen := make(map[int]struct{}, len(playerIDs))
	for _, playerID := range playerIDs {
		if _, dup := seen[playerID]; dup {
			return nil, fmt.Errorf("%w: duplicate player id %d", ErrInvalidInput, playerID)
		}
		seen[playerID] = struct{}{}

		_, found, err := s.playerRepo.GetByID(ctx, playerID)
		if err != nil {
			return nil, fmt.Errorf("look up player %d: %w", playerID, err)
		}
		if !found {
			return nil, fmt.Errorf("%w: unknown player id %d", ErrInvalidInput, playerID)
		}
		picks = append(picks, tournament.Pick{
			Round:     round,
			ManagerID: managerID,
			PlayerID:  playerID,
			PickedAt:  pickedAt,
		})
	}

	if err := s.tournamentRepo.ReplacePicksForManager(ctx, round, managerID, picks); err != nil {
		return nil, fmt.Errorf("replace tournament picks: %w", err)
	}
	return picks, nil
}

// ScoreRound recomputes the round's score rows from the date's raw stats
// with the tournament weight table, replacing the whole round, and returns
// per-manager totals over their picks.
func (s *TournamentService) ScoreRound(ctx context.Context, round int, gameDate string) ([]RoundResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TournamentService.ScoreRound")
	defer span.End()

	if round <= 0 {
		return nil, fmt.Errorf("%w: round is required", ErrInvalidInput)
	}
	if !schedule.ValidDate(gameDate) {
		return nil, fmt.Errorf("%w: game_date must be formatted as %s", ErrInvalidInput, schedule.DateLayout)
	}

	cfg, found, err := s.configRepo.GetConfig(ctx, scoring.VariantTournament)
	if err != nil {
		return nil, fmt.Errorf("load tournament scoring config: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("%w: scoring config variant %q is missing", ErrDependencyUnavailable, scoring.VariantTournament)
	}

	rows, err := s.statsRepo.ListByDate(ctx, gameDate)
	if err != nil {
		return nil, fmt.Errorf("list raw stats for %s: %w", gameDate, err)
	}

	points := make(map[int]float64, len(rows))
	scores := make([]tournament.GameScore, 0, len(rows))
	for _, row := range rows {
		rowPoints := scoring.Points(row.Stats, cfg)
		points[row.PlayerID] += rowPoints
		scores = append(scores, tournament.GameScore{
			Round:    round,
			PlayerID: row.PlayerID,
			GameDate: gameDate,
			Points:   rowPoints,
			Played:   true,
		})
	}
	if err := s.tournamentRepo.ReplaceScoresForRound(ctx, round, scores); err != nil {
		return nil, fmt.Errorf("replace tournament scores for round %d: %w", round, err)
	}

	picks, err := s.tournamentRepo.ListPicksByRound(ctx, round)
	if err != nil {
		return nil, fmt.Errorf("list picks for round %d: %w", round, err)
	}

	totals := make(map[int]float64)
	for _, pick := range picks {
		totals[pick.ManagerID] += points[pick.PlayerID]
	}

	results := make([]RoundResult, 0, len(totals))
	for managerID, total := range totals {
		results = append(results, RoundResult{ManagerID: managerID, Points: total})
	}
	sort.Slice(results, func(i, j int) bool {
		if results[i].Points != results[j].Points {
			return results[i].Points > results[j].Points
		}
		return results[i].ManagerID < results[j].ManagerID
	})

	s.logger.InfoContext(ctx, "tournament round scored",
		"round", round, "game_date", gameDate, "managers", len(results))
	return results, nil
}
