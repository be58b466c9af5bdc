package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/riskibarqy/hoops-league/internal/domain/player"
	"github.com/riskibarqy/hoops-league/internal/domain/scoring"
)

const (
	// trendMinGames is the fewest scored games before a trend is worth
	// reporting at all.
	trendMinGames = 3
	trendWindow   = 3
	hotThreshold  = 1.2
	coldThreshold = 0.8
)

const (
	TrendHot          = "hot"
	TrendCold         = "cold"
	TrendSteady       = "steady"
	TrendInsufficient = "insufficient_data"
)

// PlayerSeasonLine summarizes one player's derived scoring history.
type PlayerSeasonLine struct {
	PlayerID      int     `json:"playerId"`
	Name          string  `json:"name"`
	Team          string  `json:"team"`
	GamesPlayed   int     `json:"gamesPlayed"`
	TotalPoints   float64 `json:"totalPoints"`
	AveragePoints float64 `json:"averagePoints"`
	RecentAverage float64 `json:"recentAverage"`
	Trend         string  `json:"trend"`
}

// PlayerStatsService reads the derived per-player score table and reports
// season averages plus a short-window form trend.
type PlayerStatsService struct {
	playerRepo player.Repository
	scoreRepo  scoring.ScoreRepository
	logger     *slog.Logger
}

func NewPlayerStatsService(playerRepo player.Repository, scoreRepo scoring.ScoreRepository, logger *slog.Logger) *PlayerStatsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PlayerStatsService{playerRepo: playerRepo, scoreRepo: scoreRepo, logger: logger}
}

// SeasonLine builds the player's season line from played games only. A
// player with fewer than three scored games reports an insufficient-data
// trend instead of a misleading hot or cold label.
func (s *PlayerStatsService) SeasonLine(ctx context.Context, playerID int) (*PlayerSeasonLine, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.SeasonLine")
	defer span.End()

	p, found, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("look up player %d: %w", playerID, err)
	}
	if !found {
		return nil, fmt.Errorf("%w: player %d", ErrNotFound, playerID)
	}

	scores, err := s.scoreRepo.ListPlayerScoresByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("list scores for player %d: %w", playerID, err)
	}

	played := scores[:0:0]
	for _, score := range scores {
		if score.Played {
			played = append(played, score)
		}
	}
	sort.Slice(played, func(i, j int) bool { return played[i].GameDate < played[j].GameDate })

	line := &PlayerSeasonLine{
		PlayerID: p.ID,
		Name:     p.Name,
		Team:     p.Team,
		Trend:    TrendInsufficient,
	}
	for _, score := range played {
		line.TotalPoints += score.Points
	}
	line.GamesPlayed = len(played)
	if line.GamesPlayed == 0 {
		return line, nil
	}
	line.AveragePoints = line.TotalPoints / float64(line.GamesPlayed)

	if line.GamesPlayed < trendMinGames {
		return line, nil
	}

	recent := played[len(played)-trendWindow:]
	var recentTotal float64
	for _, score := range recent {
		recentTotal += score.Points
	}
	line.RecentAverage = recentTotal / float64(len(recent))

	switch {
	case line.AveragePoints == 0:
		line.Trend = TrendSteady
	case line.RecentAverage >= line.AveragePoints*hotThreshold:
		line.Trend = TrendHot
	case line.RecentAverage <= line.AveragePoints*coldThreshold:
		line.Trend = TrendCold
	default:
		line.Trend = TrendSteady
	}
	return line, nil
}

// SeasonLines returns every player's season line ordered by average points
// descending. Players with no scored games rank last by player id.
func (s *PlayerStatsService) SeasonLines(ctx context.Context) ([]PlayerSeasonLine, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerStatsService.SeasonLines")
	defer span.End()

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	lines := make([]PlayerSeasonLine, 0, len(players))
	for _, p := range players {
		line, err := s.SeasonLine(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		lines = append(lines, *line)
	}

	sort.SliceStable(lines, func(i, j int) bool {
		if lines[i].AveragePoints != lines[j].AveragePoints {
			return lines[i].AveragePoints > lines[j].AveragePoints
		}
		return lines[i].PlayerID < lines[j].PlayerID
	})
	return lines, nil
}
