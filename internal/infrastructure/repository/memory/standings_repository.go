package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/hoops-league/internal/domain/standings"
)

type StandingsRepository struct {
	mu    sync.RWMutex
	table []standings.Standing
}

func NewStandingsRepository() *StandingsRepository {
	return &StandingsRepository{}
}

func (r *StandingsRepository) List(_ context.Context) ([]standings.Standing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]standings.Standing(nil), r.table...), nil
}

func (r *StandingsRepository) ReplaceAll(_ context.Context, table []standings.Standing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.table = append([]standings.Standing(nil), table...)
	return nil
}
