package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/hoops-league/internal/domain/translog"
)

type TranslogRepository struct {
	mu      sync.RWMutex
	entries []translog.Entry
}

func NewTranslogRepository() *TranslogRepository {
	return &TranslogRepository{}
}

func (r *TranslogRepository) Append(_ context.Context, entry translog.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	return nil
}

func (r *TranslogRepository) List(_ context.Context) ([]translog.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]translog.Entry(nil), r.entries...), nil
}
