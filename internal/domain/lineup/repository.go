package lineup

import (
	"context"
	"errors"
)

// ErrWriteContention reports that a lineup write collided with another
// concurrent writer on the shared store. Saves retry on it a bounded number
// of times before failing.
var ErrWriteContention = errors.New("lineup write contention")

// Repository persists lineup entries. ReplaceForManagerDate must atomically
// swap the full entry set for one (manager, date) pair and assign each new row
// an id above the current maximum across the whole store; implementations
// report write collisions between concurrent savers as a contention error the
// caller can retry.
type Repository interface {
	ListByManagerAndDate(ctx context.Context, managerID int, gameDate string) ([]Entry, error)
	ListByManager(ctx context.Context, managerID int) ([]Entry, error)
	HasAnyForManager(ctx context.Context, managerID int) (bool, error)
	ReplaceForManagerDate(ctx context.Context, managerID int, gameDate string, entries []Entry) ([]Entry, error)
}
