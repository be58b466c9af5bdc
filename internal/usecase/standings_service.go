package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/riskibarqy/hoops-league/internal/domain/manager"
	"github.com/riskibarqy/hoops-league/internal/domain/scoring"
	"github.com/riskibarqy/hoops-league/internal/domain/standings"
)

// StandingsService recomputes the season table from manager daily scores.
// There is no incremental update; Refresh always rebuilds the whole table.
type StandingsService struct {
	managerRepo   manager.Repository
	scoreRepo     scoring.ScoreRepository
	standingsRepo standings.Repository
	logger        *slog.Logger
	now           func() time.Time
}

func NewStandingsService(
	managerRepo manager.Repository,
	scoreRepo scoring.ScoreRepository,
	standingsRepo standings.Repository,
	logger *slog.Logger,
) *StandingsService {
	if logger == nil {
		logger = slog.Default()
	}

	return &StandingsService{
		managerRepo:   managerRepo,
		scoreRepo:     scoreRepo,
		standingsRepo: standingsRepo,
		logger:        logger,
		now:           time.Now,
	}
}

// List returns the persisted table. An empty result is the normal "no scores
// yet" state, not an error.
func (s *StandingsService) List(ctx context.Context) ([]standings.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.List")
	defer span.End()

	table, err := s.standingsRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list standings: %w", err)
	}
	return table, nil
}

// Refresh rebuilds the table from scratch. Games-with-scores counts distinct
// dates with a recorded daily row. Rank is a strict permutation 1..N ordered
// by total points descending with ascending manager id breaking ties;
// managers with zero recorded days sort last.
func (s *StandingsService) Refresh(ctx context.Context) ([]standings.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StandingsService.Refresh")
	defer span.End()

	managers, err := s.managerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list managers: %w", err)
	}

	dailies, err := s.scoreRepo.ListDailyScores(ctx)
	if err != nil {
		return nil, fmt.Errorf("list daily scores: %w", err)
	}

	totals := make(map[int]float64, len(managers))
	dates := make(map[int]map[string]struct{}, len(managers))
	for _, daily := range dailies {
		totals[daily.ManagerID] += daily.Points
		if dates[daily.ManagerID] == nil {
			dates[daily.ManagerID] = make(map[string]struct{})
		}
		dates[daily.ManagerID][daily.GameDate] = struct{}{}
	}

	updatedAt := s.now()
	table := make([]standings.Standing, 0, len(managers))
	for _, m := range managers {
		games := len(dates[m.ID])
		var avg float64
		if games > 0 {
			avg = totals[m.ID] / float64(games)
		}
		table = append(table, standings.Standing{
			ManagerID:       m.ID,
			TotalPoints:     totals[m.ID],
			GamesWithScores: games,
			AveragePoints:   avg,
			UpdatedAt:       updatedAt,
		})
	}

	sort.SliceStable(table, func(i, j int) bool {
		iScored := table[i].GamesWithScores > 0
		jScored := table[j].GamesWithScores > 0
		if iScored != jScored {
			return iScored
		}
		if table[i].TotalPoints != table[j].TotalPoints {
			return table[i].TotalPoints > table[j].TotalPoints
		}
		return table[i].ManagerID < table[j].ManagerID
	})
	for i := range table {
		table[i].Rank = i + 1
	}

	if err := s.standingsRepo.ReplaceAll(ctx, table); err != nil {
		return nil, fmt.Errorf("replace standings: %w", err)
	}

	s.logger.InfoContext(ctx, "standings refreshed", "managers", len(table))
	return table, nil
}
