package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/hoops-league/internal/domain/lineup"
)

// LineupRepository mirrors the csv store's id-allocation behavior: replaced
// sets receive ids above the current maximum across all entries.
type LineupRepository struct {
	mu      sync.RWMutex
	entries []lineup.Entry
	maxID   int64
}

func NewLineupRepository() *LineupRepository {
	return &LineupRepository{}
}

func (r *LineupRepository) ListByManagerAndDate(_ context.Context, managerID int, gameDate string) ([]lineup.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]lineup.Entry, 0, len(r.entries))
	for _, entry := range r.entries {
		if entry.ManagerID == managerID && entry.GameDate == gameDate {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (r *LineupRepository) ListByManager(_ context.Context, managerID int) ([]lineup.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]lineup.Entry, 0, len(r.entries))
	for _, entry := range r.entries {
		if entry.ManagerID == managerID {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (r *LineupRepository) HasAnyForManager(_ context.Context, managerID int) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, entry := range r.entries {
		if entry.ManagerID == managerID {
			return true, nil
		}
	}
	return false, nil
}

func (r *LineupRepository) ReplaceForManagerDate(_ context.Context, managerID int, gameDate string, entries []lineup.Entry) ([]lineup.Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := make([]lineup.Entry, 0, len(r.entries))
	for _, entry := range r.entries {
		if entry.ManagerID == managerID && entry.GameDate == gameDate {
			continue
		}
		kept = append(kept, entry)
	}

	saved := make([]lineup.Entry, len(entries))
	for i, entry := range entries {
		r.maxID++
		entry.ID = r.maxID
		entry.ManagerID = managerID
		entry.GameDate = gameDate
		saved[i] = entry
	}

	r.entries = append(kept, saved...)
	return append([]lineup.Entry(nil), saved...), nil
}
