package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/hoops-league/internal/domain/gamestats"
)

type gameKey struct {
	date string
	game int
}

type GameStatsRepository struct {
	mu    sync.RWMutex
	files map[gameKey][]gamestats.Row
}

func NewGameStatsRepository() *GameStatsRepository {
	return &GameStatsRepository{files: make(map[gameKey][]gamestats.Row)}
}

func (r *GameStatsRepository) ListByDate(_ context.Context, gameDate string) ([]gamestats.Row, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	games := make([]gameKey, 0)
	for key := range r.files {
		if key.date == gameDate {
			games = append(games, key)
		}
	}
	sort.Slice(games, func(i, j int) bool { return games[i].game < games[j].game })

	var out []gamestats.Row
	for _, key := range games {
		for _, row := range r.files[key] {
			row.Stats = row.CloneStats()
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *GameStatsRepository) ListDates(_ context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	for key := range r.files {
		seen[key.date] = struct{}{}
	}
	dates := make([]string, 0, len(seen))
	for date := range seen {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates, nil
}

func (r *GameStatsRepository) ReplaceForGame(_ context.Context, gameDate string, gameNumber int, rows []gamestats.Row) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := make([]gamestats.Row, len(rows))
	for i, row := range rows {
		row.Stats = row.CloneStats()
		copied[i] = row
	}
	r.files[gameKey{date: gameDate, game: gameNumber}] = copied
	return nil
}
