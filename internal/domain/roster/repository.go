package roster

import "context"

type Repository interface {
	List(ctx context.Context) ([]Entry, error)
	ListByManager(ctx context.Context, managerID int) ([]Entry, error)
	ReplaceAll(ctx context.Context, entries []Entry) error
}
