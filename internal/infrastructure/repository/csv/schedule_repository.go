package csv

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/hoops-league/internal/domain/schedule"
)

const scheduleFile = "game_schedule.csv"

var scheduleHeader = []string{"game_id", "game_date", "tipoff_et", "home_team", "away_team"}

type ScheduleRepository struct {
	store *Store
}

func NewScheduleRepository(store *Store) *ScheduleRepository {
	return &ScheduleRepository{store: store}
}

func (r *ScheduleRepository) List(_ context.Context) ([]schedule.Game, error) {
	_, rows, err := r.store.readTable(r.store.handmadePath(scheduleFile))
	if err != nil {
		return nil, err
	}

	games := make([]schedule.Game, 0, len(rows))
	for _, row := range rows {
		if len(row) < len(scheduleHeader) {
			return nil, errors.Newf("schedule row has %d columns, want %d", len(row), len(scheduleHeader))
		}
		gameID, err := parseInt(row[0], "game_id")
		if err != nil {
			return nil, err
		}
		games = append(games, schedule.Game{
			ID:       gameID,
			GameDate: row[1],
			TipoffET: row[2],
			HomeTeam: row[3],
			AwayTeam: row[4],
		})
	}

	return games, nil
}

func (r *ScheduleRepository) ListByDate(ctx context.Context, gameDate string) ([]schedule.Game, error) {
	games, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]schedule.Game, 0, len(games))
	for _, game := range games {
		if game.GameDate == gameDate {
			matched = append(matched, game)
		}
	}
	return matched, nil
}
