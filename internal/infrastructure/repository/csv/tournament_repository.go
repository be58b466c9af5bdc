package csv

import (
	"context"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/hoops-league/internal/domain/tournament"
)

const (
	tournamentPicksFile  = "tournament_picks.csv"
	tournamentScoresFile = "tournament_game_scores.csv"
)

var (
	tournamentPicksHeader  = []string{"round", "manager_id", "player_id", "picked_at"}
	tournamentScoresHeader = []string{"round", "player_id", "game_date", "fantasy_points", "played"}
)

type TournamentRepository struct {
	store *Store
}

func NewTournamentRepository(store *Store) *TournamentRepository {
	return &TournamentRepository{store: store}
}

func (r *TournamentRepository) ListPicksByRound(_ context.Context, round int) ([]tournament.Pick, error) {
	picks, err := r.listPicks()
	if err != nil {
		return nil, err
	}

	matched := make([]tournament.Pick, 0, len(picks))
	for _, pick := range picks {
		if pick.Round == round {
			matched = append(matched, pick)
		}
	}
	return matched, nil
}

func (r *TournamentRepository) ReplacePicksForManager(_ context.Context, round, managerID int, picks []tournament.Pick) error {
	path := r.store.processedPath(tournamentPicksFile)
	return r.store.withTableLock(path, func() error {
		existing, err := r.listPicks()
		if err != nil {
			return err
		}
		kept := make([]tournament.Pick, 0, len(existing)+len(picks))
		for _, pick := range existing {
			if pick.Round == round && pick.ManagerID == managerID {
				continue
			}
			kept = append(kept, pick)
		}
		return r.writePicks(path, append(kept, picks...))
	})
}

func (r *TournamentRepository) ListScoresByRound(_ context.Context, round int) ([]tournament.GameScore, error) {
	scores, err := r.listScores()
	if err != nil {
		return nil, err
	}

	matched := make([]tournament.GameScore, 0, len(scores))
	for _, score := range scores {
		if score.Round == round {
			matched = append(matched, score)
		}
	}
	return matched, nil
}

func (r *TournamentRepository) ReplaceScoresForRound(_ context.Context, round int, scores []tournament.GameScore) error {
	path := r.store.processedPath(tournamentScoresFile)
	return r.store.withTableLock(path, func() error {
		existing, err := r.listScores()
		if err != nil {
			return err
		}
		kept := make([]tournament.GameScore, 0, len(existing)+len(scores))
		for _, score := range existing {
			if score.Round != round {
				kept = append(kept, score)
			}
		}
		return r.writeScores(path, append(kept, scores...))
	})
}

func (r *TournamentRepository) listPicks() ([]tournament.Pick, error) {
	_, rows, err := r.store.readTable(r.store.processedPath(tournamentPicksFile))
	if err != nil {
		return nil, err
	}

	picks := make([]tournament.Pick, 0, len(rows))
	for _, row := range rows {
		if len(row) < len(tournamentPicksHeader) {
			return nil, errors.Newf("tournament picks row has %d columns, want %d", len(row), len(tournamentPicksHeader))
		}
		round, err := parseInt(row[0], "round")
		if err != nil {
			return nil, err
		}
		managerID, err := parseInt(row[1], "manager_id")
		if err != nil {
			return nil, err
		}
		playerID, err := parseInt(row[2], "player_id")
		if err != nil {
			return nil, err
		}
		pickedAt, err := parseTime(row[3], "picked_at")
		if err != nil {
			return nil, err
		}
		picks = append(picks, tournament.Pick{
			Round:     round,
			ManagerID: managerID,
			PlayerID:  playerID,
			PickedAt:  pickedAt,
		})
	}

	return picks, nil
}

func (r *TournamentRepository) writePicks(path string, picks []tournament.Pick) error {
	rows := make([][]string, 0, len(picks))
	for _, pick := range picks {
		rows = append(rows, []string{
			strconv.Itoa(pick.Round),
			strconv.Itoa(pick.ManagerID),
			strconv.Itoa(pick.PlayerID),
			pick.PickedAt.UTC().Format(time.RFC3339),
		})
	}
	return r.store.writeTable(path, tournamentPicksHeader, rows)
}

func (r *TournamentRepository) listScores() ([]tournament.GameScore, error) {
	_, rows, err := r.store.readTable(r.store.processedPath(tournamentScoresFile))
	if err != nil {
		return nil, err
	}

	scores := make([]tournament.GameScore, 0, len(rows))
	for _, row := range rows {
		if len(row) < len(tournamentScoresHeader) {
			return nil, errors.Newf("tournament scores row has %d columns, want %d", len(row), len(tournamentScoresHeader))
		}
		round, err := parseInt(row[0], "round")
		if err != nil {
			return nil, err
		}
		playerID, err := parseInt(row[1], "player_id")
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
		scores = append(scores, tournament.GameScore{
			Round:    round,
			PlayerID: playerID,
			GameDate: row[2],
			Points:   points,
			Played:   played,
		})
	}

	return scores, nil
}

func (r *TournamentRepository) writeScores(path string, scores []tournament.GameScore) error {
	rows := make([][]string, 0, len(scores))
	for _, score := range scores {
		rows = append(rows, []string{
			strconv.Itoa(score.Round),
			strconv.Itoa(score.PlayerID),
			score.GameDate,
			formatFloat(score.Points),
			strconv.FormatBool(score.Played),
		})
	}
	return r.store.writeTable(path, tournamentScoresHeader, rows)
}
