package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/hoops-league/internal/domain/roster"
)

type RosterRepository struct {
	mu      sync.RWMutex
	entries []roster.Entry
}

func NewRosterRepository() *RosterRepository {
	return &RosterRepository{}
}

func (r *RosterRepository) List(_ context.Context) ([]roster.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]roster.Entry(nil), r.entries...), nil
}

func (r *RosterRepository) ListByManager(_ context.Context, managerID int) ([]roster.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]roster.Entry, 0, len(r.entries))
	for _, entry := range r.entries {
		if entry.ManagerID == managerID {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (r *RosterRepository) ReplaceAll(_ context.Context, entries []roster.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append([]roster.Entry(nil), entries...)
	return nil
}
