package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/riskibarqy/hoops-league/internal/domain/lineup"
	"github.com/riskibarqy/hoops-league/internal/domain/manager"
	"github.com/riskibarqy/hoops-league/internal/domain/player"
	"github.com/riskibarqy/hoops-league/internal/domain/schedule"
	"github.com/riskibarqy/hoops-league/internal/domain/scoring"
)

// RecapHighlight names a player and the points behind a recap callout.
type RecapHighlight struct {
	PlayerID   int     `json:"playerId"`
	PlayerName string  `json:"playerName"`
	Points     float64 `json:"points"`
}

// BenchMistake is the largest gap between a benched player's points and the
// weakest active player's points on one roster.
type BenchMistake struct {
	ManagerID     int     `json:"managerId"`
	ManagerName   string  `json:"managerName"`
	BenchedID     int     `json:"benchedId"`
	BenchedName   string  `json:"benchedName"`
	BenchedPoints float64 `json:"benchedPoints"`
	ActiveID      int     `json:"activeId"`
	ActivePoints  float64 `json:"activePoints"`
	PointsLost    float64 `json:"pointsLost"`
}

// DailyRecap summarizes one scored date.
type DailyRecap struct {
	GameDate     string          `json:"gameDate"`
	TopScorer    *RecapHighlight `json:"topScorer,omitempty"`
	TopManagerID int             `json:"topManagerId,omitempty"`
	TopManager   string          `json:"topManager,omitempty"`
	TopPoints    float64         `json:"topPoints,omitempty"`
	BenchMistake *BenchMistake   `json:"benchMistake,omitempty"`
}

// RecapService reads the derived tables and produces a day-after summary.
// It never recomputes scores; an unscored date yields an empty recap.
type RecapService struct {
	scoreRepo   scoring.ScoreRepository
	lineupRepo  lineup.Repository
	playerRepo  player.Repository
	managerRepo manager.Repository
	logger      *slog.Logger
}

func NewRecapService(
	scoreRepo scoring.ScoreRepository,
	lineupRepo lineup.Repository,
	playerRepo player.Repository,
	managerRepo manager.Repository,
	logger *slog.Logger,
) *RecapService {
	if logger == nil {
		logger = slog.Default()
	}
	return &RecapService{
		scoreRepo:   scoreRepo,
		lineupRepo:  lineupRepo,
		playerRepo:  playerRepo,
		managerRepo: managerRepo,
		logger:      logger,
	}
}

func (s *RecapService) DailyRecap(ctx context.Context, gameDate string) (*DailyRecap, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RecapService.DailyRecap")
	defer span.End()

	if !schedule.ValidDate(gameDate) {
		return nil, fmt.Errorf("%w: game_date must be formatted as %s", ErrInvalidInput, schedule.DateLayout)
	}

	recap := &DailyRecap{GameDate: gameDate}

	playerScores, err := s.scoreRepo.ListPlayerScoresByDate(ctx, gameDate)
	if err != nil {
		return nil, fmt.Errorf("list player scores for %s: %w", gameDate, err)
	}
	if len(playerScores) == 0 {
		return recap, nil
	}

	points := make(map[int]float64, len(playerScores))
	for _, score := range playerScores {
		if score.Played {
			points[score.PlayerID] += score.Points
		}
	}

	if top := s.topScorer(ctx, points); top != nil {
		recap.TopScorer = top
	}

	dailyScores, err := s.scoreRepo.ListDailyScoresByDate(ctx, gameDate)
	if err != nil {
		return nil, fmt.Errorf("list daily scores for %s: %w", gameDate, err)
	}
	sort.SliceStable(dailyScores, func(i, j int) bool {
		if dailyScores[i].Points != dailyScores[j].Points {
			return dailyScores[i].Points > dailyScores[j].Points
		}
		return dailyScores[i].ManagerID < dailyScores[j].ManagerID
	})
	if len(dailyScores) > 0 {
		best := dailyScores[0]
		recap.TopManagerID = best.ManagerID
		recap.TopPoints = best.Points
		if m, found, err := s.managerRepo.GetByID(ctx, best.ManagerID); err == nil && found {
			recap.TopManager = m.Name
		}
	}

	mistake, err := s.biggestBenchMistake(ctx, gameDate, dailyScores, points)
	if err != nil {
		return nil, err
	}
	recap.BenchMistake = mistake
	return recap, nil
}

func (s *RecapService) topScorer(ctx context.Context, points map[int]float64) *RecapHighlight {
	var top *RecapHighlight
	for playerID, total := range points {
		if top == nil || total > top.Points || (total == top.Points && playerID < top.PlayerID) {
			top = &RecapHighlight{PlayerID: playerID, Points: total}
		}
	}
	if top == nil {
		return nil
	}
	if p, found, err := s.playerRepo.GetByID(ctx, top.PlayerID); err == nil && found {
		top.PlayerName = p.Name
	}
	return top
}

// biggestBenchMistake compares each manager's benched players against their
// weakest active player for the date.
func (s *RecapService) biggestBenchMistake(ctx context.Context, gameDate string, dailyScores []scoring.ManagerDailyScore, points map[int]float64) (*BenchMistake, error) {
	var worst *BenchMistake
	for _, daily := range dailyScores {
		entries, err := s.lineupRepo.ListByManagerAndDate(ctx, daily.ManagerID, gameDate)
		if err != nil {
			return nil, fmt.Errorf("list lineup for manager %d on %s: %w", daily.ManagerID, gameDate, err)
		}

		weakestActive := -1
		weakestPoints := 0.0
		for _, entry := range entries {
			if entry.Status != lineup.StatusActive {
				continue
			}
			p := points[entry.PlayerID]
			if weakestActive < 0 || p < weakestPoints {
				weakestActive = entry.PlayerID
				weakestPoints = p
			}
		}
		if weakestActive < 0 {
			continue
		}

		for _, entry := range entries {
			if entry.Status != lineup.StatusBench {
				continue
			}
			lost := points[entry.PlayerID] - weakestPoints
			if lost <= 0 {
				continue
			}
			if worst == nil || lost > worst.PointsLost {
				worst = &BenchMistake{
					ManagerID:     daily.ManagerID,
					BenchedID:     entry.PlayerID,
					BenchedPoints: points[entry.PlayerID],
					ActiveID:      weakestActive,
					ActivePoints:  weakestPoints,
					PointsLost:    lost,
				}
			}
		}
	}
	if worst == nil {
		return nil, nil
	}

	if m, found, err := s.managerRepo.GetByID(ctx, worst.ManagerID); err == nil && found {
		worst.ManagerName = m.Name
	}
	if p, found, err := s.playerRepo.GetByID(ctx, worst.BenchedID); err == nil && found {
		worst.BenchedName = p.Name
	}
	return worst, nil
}
