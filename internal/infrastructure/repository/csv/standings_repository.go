package csv

import (
	"context"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/hoops-league/internal/domain/standings"
)

const standingsFile = "standings.csv"

var standingsHeader = []string{"manager_id", "total_points", "games_with_scores", "avg_points_per_day", "rank", "last_updated"}

type StandingsRepository struct {
	store *Store
}

func NewStandingsRepository(store *Store) *StandingsRepository {
	return &StandingsRepository{store: store}
}

func (r *StandingsRepository) List(_ context.Context) ([]standings.Standing, error) {
	_, rows, err := r.store.readTable(r.store.processedPath(standingsFile))
	if err != nil {
		return nil, err
	}

	table := make([]standings.Standing, 0, len(rows))
	for _, row := range rows {
		if len(row) < len(standingsHeader) {
			return nil, errors.Newf("standings row has %d columns, want %d", len(row), len(standingsHeader))
		}
		managerID, err := parseInt(row[0], "manager_id")
		if err != nil {
			return nil, err
		}
		total, err := parseFloat(row[1], "total_points")
		if err != nil {
			return nil, err
		}
		games, err := parseInt(row[2], "games_with_scores")
		if err != nil {
			return nil, err
		}
		avg, err := parseFloat(row[3], "avg_points_per_day")
		if err != nil {
			return nil, err
		}
		rank, err := parseInt(row[4], "rank")
		if err != nil {
			return nil, err
		}
		updatedAt, err := parseTime(row[5], "last_updated")
		if err != nil {
			return nil, err
		}
		table = append(table, standings.Standing{
			ManagerID:       managerID,
			TotalPoints:     total,
			GamesWithScores: games,
			AveragePoints:   avg,
			Rank:            rank,
			UpdatedAt:       updatedAt,
		})
	}

	return table, nil
}

func (r *StandingsRepository) ReplaceAll(_ context.Context, table []standings.Standing) error {
	path := r.store.processedPath(standingsFile)
	return r.store.withTableLock(path, func() error {
		rows := make([][]string, 0, len(table))
		for _, standing := range table {
			rows = append(rows, []string{
				strconv.Itoa(standing.ManagerID),
				formatFloat(standing.TotalPoints),
				strconv.Itoa(standing.GamesWithScores),
				formatFloat(standing.AveragePoints),
				strconv.Itoa(standing.Rank),
				standing.UpdatedAt.UTC().Format(time.RFC3339),
			})
		}
		return r.store.writeTable(path, standingsHeader, rows)
	})
}
