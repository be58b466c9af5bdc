package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/riskibarqy/hoops-league/internal/domain/manager"
)

type ManagerRepository struct {
	mu    sync.RWMutex
	items map[int]manager.Manager
}

func NewManagerRepository() *ManagerRepository {
	return &ManagerRepository{items: make(map[int]manager.Manager)}
}

func (r *ManagerRepository) Seed(managers ...manager.Manager) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range managers {
		r.items[m.ID] = m
	}
}

func (r *ManagerRepository) List(_ context.Context) ([]manager.Manager, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]manager.Manager, 0, len(r.items))
	for _, m := range r.items {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *ManagerRepository) GetByID(_ context.Context, managerID int) (manager.Manager, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.items[managerID]
	return m, ok, nil
}
