package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/hoops-league/internal/domain/gamestats"
	"github.com/riskibarqy/hoops-league/internal/domain/manager"
	"github.com/riskibarqy/hoops-league/internal/domain/schedule"
	"github.com/riskibarqy/hoops-league/internal/domain/scoring"
	"github.com/riskibarqy/hoops-league/internal/platform/logging"
)

// lineupResolver is the slice of LineupService the aggregator needs.
type lineupResolver interface {
	EnsureDefaultLineups(ctx context.Context, gameDate string) error
	ActivePlayers(ctx context.Context, managerID int, gameDate string) ([]int, error)
}

// RecalcSummary reports the outcome of a season-wide score replay.
type RecalcSummary struct {
	DatesProcessed int
	DatesFailed    int
	FailedDates    []string
}

// ScoringService derives player fantasy points from raw box-score rows and
// aggregates them into per-manager daily totals. All derivations replace
// whole dates; nothing is merged incrementally.
type ScoringService struct {
	configRepo  scoring.ConfigRepository
	scoreRepo   scoring.ScoreRepository
	statsRepo   gamestats.Repository
	managerRepo manager.Repository
	lineups     lineupResolver
	logger      *logging.Logger
	workers     int
	now         func() time.Time
}

func NewScoringService(
	configRepo scoring.ConfigRepository,
	scoreRepo scoring.ScoreRepository,
	statsRepo gamestats.Repository,
	managerRepo manager.Repository,
	lineups lineupResolver,
	workers int,
	logger *logging.Logger,
) *ScoringService {
	if logger == nil {
		logger = logging.Default()
	}
	if workers <= 0 {
		workers = 1
	}

	return &ScoringService{
		configRepo:  configRepo,
		scoreRepo:   scoreRepo,
		statsRepo:   statsRepo,
		managerRepo: managerRepo,
		lineups:     lineups,
		logger:      logger,
		workers:     workers,
		now:         time.Now,
	}
}

// UpdateScoresForDate is the whole-date derivation pipeline: materialize
// default lineups for never-set managers, recompute player scores from the
// date's raw rows, then replace every manager's daily total for the date.
func (s *ScoringService) UpdateScoresForDate(ctx context.Context, gameDate string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.UpdateScoresForDate")
	defer span.End()

	if !schedule.ValidDate(gameDate) {
		return fmt.Errorf("%w: game_date must be formatted as %s", ErrInvalidInput, schedule.DateLayout)
	}

	if err := s.lineups.EnsureDefaultLineups(ctx, gameDate); err != nil {
		return fmt.Errorf("ensure default lineups for %s: %w", gameDate, err)
	}

	playerScores, err := s.calculatePlayerScores(ctx, gameDate)
	if err != nil {
		return err
	}
	if err := s.scoreRepo.ReplacePlayerScoresForDate(ctx, gameDate, playerScores); err != nil {
		return fmt.Errorf("replace player scores for %s: %w", gameDate, err)
	}

	playedPoints := make(map[int]float64, len(playerScores))
	playedRows := make(map[int]int, len(playerScores))
	for _, score := range playerScores {
		if score.Played {
			playedPoints[score.PlayerID] += score.Points
			playedRows[score.PlayerID]++
		}
	}

	managers, err := s.managerRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("list managers: %w", err)
	}

	// Managers aggregate independently over read-only inputs, so the pool
	// fans them out; both derived-table writes stay on this goroutine.
	pool, err := ants.NewPool(s.workers)
	if err != nil {
		return fmt.Errorf("create aggregation pool: %w", err)
	}
	defer pool.Release()

	dailyScores := make([]scoring.ManagerDailyScore, len(managers))
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}
	for i, m := range managers {
		i, m := i, m
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			active, err := s.lineups.ActivePlayers(ctx, m.ID, gameDate)
			if err != nil {
				fail(fmt.Errorf("resolve active players for manager %d: %w", m.ID, err))
				return
			}

			var total float64
			var scoredRows int
			for _, playerID := range active {
				total += playedPoints[playerID]
				scoredRows += playedRows[playerID]
			}
			dailyScores[i] = scoring.ManagerDailyScore{
				ManagerID:   m.ID,
				GameDate:    gameDate,
				Points:      total,
				ActiveCount: scoredRows,
			}
		})
		if submitErr != nil {
			wg.Done()
			fail(fmt.Errorf("submit aggregation for manager %d: %w", m.ID, submitErr))
		}
	}
	wg.Wait()
	if firstErr != nil {
		return firstErr
	}

	if err := s.scoreRepo.ReplaceDailyScoresForDate(ctx, gameDate, dailyScores); err != nil {
		return fmt.Errorf("replace daily scores for %s: %w", gameDate, err)
	}

	s.logger.InfoContext(ctx, "scores updated",
		"game_date", gameDate,
		"player_rows", len(playerScores),
		"managers", len(dailyScores),
	)
	return nil
}

// RecalculateAll clears both derived tables and replays every stored upload
// date strictly one at a time in ascending order: every date's derivation
// rewrites the same shared lineup and score files, so overlapping dates
// would only collide on the table locks. Dates stay independent otherwise;
// one failing date logs and is reported without aborting the rest.
func (s *ScoringService) RecalculateAll(ctx context.Context) (RecalcSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.RecalculateAll")
	defer span.End()

	if err := s.scoreRepo.ClearDerived(ctx); err != nil {
		return RecalcSummary{}, fmt.Errorf("clear derived scores: %w", err)
	}

	dates, err := s.statsRepo.ListDates(ctx)
	if err != nil {
		return RecalcSummary{}, fmt.Errorf("list upload dates: %w", err)
	}
	sort.Strings(dates)

	var (
		processed int
		failed    []string
	)
	for _, date := range dates {
		if err := s.UpdateScoresForDate(ctx, date); err != nil {
			s.logger.ErrorContext(ctx, "date replay failed", "game_date", date, "error", err)
			failed = append(failed, date)
			continue
		}
		processed++
	}

	summary := RecalcSummary{
		DatesProcessed: processed,
		DatesFailed:    len(failed),
		FailedDates:    failed,
	}
	s.logger.InfoContext(ctx, "season recalculation finished",
		"dates_processed", summary.DatesProcessed,
		"dates_failed", summary.DatesFailed,
	)
	return summary, nil
}

// calculatePlayerScores converts the date's raw rows into derived score rows
// with the regular-season weight table. A row that is all zeros still counts
// as played.
func (s *ScoringService) calculatePlayerScores(ctx context.Context, gameDate string) ([]scoring.PlayerGameScore, error) {
	cfg, found, err := s.configRepo.GetConfig(ctx, scoring.VariantRegular)
	if err != nil {
		return nil, fmt.Errorf("load scoring config: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("%w: scoring config variant %q is missing", ErrDependencyUnavailable, scoring.VariantRegular)
	}

	rows, err := s.statsRepo.ListByDate(ctx, gameDate)
	if err != nil {
		return nil, fmt.Errorf("list raw stats for %s: %w", gameDate, err)
	}

	scores := make([]scoring.PlayerGameScore, 0, len(rows))
	for _, row := range rows {
		scores = append(scores, scoring.PlayerGameScore{
			PlayerID: row.PlayerID,
			GameDate: gameDate,
			GameID:   row.GameID,
			Points:   scoring.Points(row.Stats, cfg),
			Played:   true,
		})
	}
	return scores, nil
}
