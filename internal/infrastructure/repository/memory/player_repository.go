package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/hoops-league/internal/domain/player"
)

type PlayerRepository struct {
	mu    sync.RWMutex
	items map[int]player.Player
}

func NewPlayerRepository() *PlayerRepository {
	return &PlayerRepository{items: make(map[int]player.Player)}
}

func (r *PlayerRepository) Seed(players ...player.Player) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range players {
		r.items[p.ID] = p
	}
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *PlayerRepository) GetByID(_ context.Context, playerID int) (player.Player, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[playerID]
	return p, ok, nil
}
