package csv

import (
	"context"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/hoops-league/internal/domain/scoring"
)

const (
	playerScoresFile = "player_game_scores.csv"
	dailyScoresFile  = "manager_daily_scores.csv"
)

var (
	playerScoresHeader = []string{"player_id", "game_date", "game_id", "fantasy_points", "played"}
	dailyScoresHeader  = []string{"manager_id", "game_date", "total_points", "active_count"}
)

// ScoreRepository owns the two derived score tables. Both are replaced
// whole-date, matching the recompute-and-overwrite policy of the engine.
type ScoreRepository struct {
	store *Store
}

func NewScoreRepository(store *Store) *ScoreRepository {
	return &ScoreRepository{store: store}
}

func (r *ScoreRepository) ListPlayerScoresByDate(_ context.Context, gameDate string) ([]scoring.PlayerGameScore, error) {
	scores, err := r.listPlayerScores()
	if err != nil {
		return nil, err
	}

	matched := make([]scoring.PlayerGameScore, 0, len(scores))
	for _, score := range scores {
		if score.GameDate == gameDate {
			matched = append(matched, score)
		}
	}
	return matched, nil
}

func (r *ScoreRepository) ListPlayerScoresByPlayer(_ context.Context, playerID int) ([]scoring.PlayerGameScore, error) {
	scores, err := r.listPlayerScores()
	if err != nil {
		return nil, err
	}

	matched := make([]scoring.PlayerGameScore, 0, len(scores))
	for _, score := range scores {
		if score.PlayerID == playerID {
			matched = append(matched, score)
		}
	}
	return matched, nil
}

func (r *ScoreRepository) ReplacePlayerScoresForDate(_ context.Context, gameDate string, scores []scoring.PlayerGameScore) error {
	path := r.store.processedPath(playerScoresFile)
	return r.store.withTableLock(path, func() error {
		existing, err := r.listPlayerScores()
		if err != nil {
			return err
		}
		kept := make([]scoring.PlayerGameScore, 0, len(existing)+len(scores))
		for _, score := range existing {
			if score.GameDate != gameDate {
				kept = append(kept, score)
			}
		}
		return r.writePlayerScores(path, append(kept, scores...))
	})
}

func (r *ScoreRepository) ListDailyScores(_ context.Context) ([]scoring.ManagerDailyScore, error) {
	return r.listDailyScores()
}

func (r *ScoreRepository) ListDailyScoresByDate(_ context.Context, gameDate string) ([]scoring.ManagerDailyScore, error) {
	scores, err := r.listDailyScores()
	if err != nil {
		return nil, err
	}

	matched := make([]scoring.ManagerDailyScore, 0, len(scores))
	for _, score := range scores {
		if score.GameDate == gameDate {
			matched = append(matched, score)
		}
	}
	return matched, nil
}

func (r *ScoreRepository) ReplaceDailyScoresForDate(_ context.Context, gameDate string, scores []scoring.ManagerDailyScore) error {
	path := r.store.processedPath(dailyScoresFile)
	return r.store.withTableLock(path, func() error {
		existing, err := r.listDailyScores()
		if err != nil {
			return err
		}
		kept := make([]scoring.ManagerDailyScore, 0, len(existing)+len(scores))
		for _, score := range existing {
			if score.GameDate != gameDate {
				kept = append(kept, score)
			}
		}
		return r.writeDailyScores(path, append(kept, scores...))
	})
}

// ClearDerived empties both derived score tables ahead of a full replay.
func (r *ScoreRepository) ClearDerived(_ context.Context) error {
	playerPath := r.store.processedPath(playerScoresFile)
	if err := r.store.withTableLock(playerPath, func() error {
		return r.writePlayerScores(playerPath, nil)
	}); err != nil {
		return err
	}

	dailyPath := r.store.processedPath(dailyScoresFile)
	return r.store.withTableLock(dailyPath, func() error {
		return r.writeDailyScores(dailyPath, nil)
	})
}

func (r *ScoreRepository) listPlayerScores() ([]scoring.PlayerGameScore, error) {
	_, rows, err := r.store.readTable(r.store.processedPath(playerScoresFile))
	if err != nil {
		return nil, err
	}

	scores := make([]scoring.PlayerGameScore, 0, len(rows))
	for _, row := range rows {
		if len(row) < len(playerScoresHeader) {
			return nil, errors.Newf("player scores row has %d columns, want %d", len(row), len(playerScoresHeader))
		}
		playerID, err := parseInt(row[0], "player_id")
		if err != nil {
			return nil, err
		}
		points, err := parseFloat(row[3], "fantasy_points")
		if err != nil {
			return nil, err
		}
		played, err := parseBool(row[4], "played")
		if err != nil {
			return nil, err
		}
		scores = append(scores, scoring.PlayerGameScore{
			PlayerID: playerID,
			GameDate: row[1],
			GameID:   row[2],
			Points:   points,
			Played:   played,
		})
	}

	return scores, nil
}

func (r *ScoreRepository) writePlayerScores(path string, scores []scoring.PlayerGameScore) error {
	rows := make([][]string, 0, len(scores))
	for _, score := range scores {
		rows = append(rows, []string{
			strconv.Itoa(score.PlayerID),
			score.GameDate,
			score.GameID,
			formatFloat(score.Points),
			strconv.FormatBool(score.Played),
		})
	}
	return r.store.writeTable(path, playerScoresHeader, rows)
}

func (r *ScoreRepository) listDailyScores() ([]scoring.ManagerDailyScore, error) {
	_, rows, err := r.store.readTable(r.store.processedPath(dailyScoresFile))
	if err != nil {
		return nil, err
	}

	scores := make([]scoring.ManagerDailyScore, 0, len(rows))
	for _, row := range rows {
		if len(row) < len(dailyScoresHeader) {
			return nil, errors.Newf("daily scores row has %d columns, want %d", len(row), len(dailyScoresHeader))
		}
		managerID, err := parseInt(row[0], "manager_id")
		if err != nil {
			return nil, err
		}
		points, err := parseFloat(row[2], "total_points")
		if err != nil {
			return nil, err
		}
		activeCount, err := parseInt(row[3], "active_count")
		if err != nil {
			return nil, err
		}
		scores = append(scores, scoring.ManagerDailyScore{
			ManagerID:   managerID,
			GameDate:    row[1],
			Points:      points,
			ActiveCount: activeCount,
		})
	}

	return scores, nil
}

func (r *ScoreRepository) writeDailyScores(path string, scores []scoring.ManagerDailyScore) error {
	rows := make([][]string, 0, len(scores))
	for _, score := range scores {
		rows = append(rows, []string{
			strconv.Itoa(score.ManagerID),
			score.GameDate,
			formatFloat(score.Points),
			strconv.Itoa(score.ActiveCount),
		})
	}
	return r.store.writeTable(path, dailyScoresHeader, rows)
}
