package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/hoops-league/internal/domain/schedule"
)

type ScheduleRepository struct {
	mu    sync.RWMutex
	games []schedule.Game
}

func NewScheduleRepository() *ScheduleRepository {
	return &ScheduleRepository{}
}

func (r *ScheduleRepository) Seed(games ...schedule.Game) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.games = append(r.games, games...)
}

func (r *ScheduleRepository) List(_ context.Context) ([]schedule.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]schedule.Game(nil), r.games...), nil
}

func (r *ScheduleRepository) ListByDate(_ context.Context, gameDate string) ([]schedule.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]schedule.Game, 0, len(r.games))
	for _, game := range r.games {
		if game.GameDate == gameDate {
			out = append(out, game)
		}
	}
	return out, nil
}
