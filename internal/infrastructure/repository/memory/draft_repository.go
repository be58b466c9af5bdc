package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/hoops-league/internal/domain/draft"
)

type DraftRepository struct {
	mu      sync.RWMutex
	results []draft.Result
}

func NewDraftRepository() *DraftRepository {
	return &DraftRepository{}
}

func (r *DraftRepository) ListResults(_ context.Context) ([]draft.Result, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]draft.Result(nil), r.results...), nil
}

func (r *DraftRepository) ReplaceResults(_ context.Context, results []draft.Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.results = append([]draft.Result(nil), results...)
	return nil
}
