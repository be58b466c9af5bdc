package csv

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/hoops-league/internal/domain/player"
)

const playersFile = "players.csv"

var playersHeader = []string{"player_id", "name", "team", "status"}

type PlayerRepository struct {
	store *Store
}

func NewPlayerRepository(store *Store) *PlayerRepository {
	return &PlayerRepository{store: store}
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	_, rows, err := r.store.readTable(r.store.handmadePath(playersFile))
	if err != nil {
		return nil, err
	}

	items := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		if len(row) < len(playersHeader) {
			return nil, errors.Newf("players row has %d columns, want %d", len(row), len(playersHeader))
		}
		playerID, err := parseInt(row[0], "player_id")
		if err != nil {
			return nil, err
		}
		items = append(items, player.Player{
			ID:     playerID,
			Name:   row[1],
			Team:   row[2],
			Status: row[3],
		})
	}

	return items, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID int) (player.Player, bool, error) {
	items, err := r.List(ctx)
	if err != nil {
		return player.Player{}, false, err
	}
	for _, item := range items {
		if item.ID == playerID {
			return item, true, nil
		}
	}
	return player.Player{}, false, nil
}
