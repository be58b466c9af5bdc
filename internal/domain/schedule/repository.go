package schedule

import "context"

type Repository interface {
	List(ctx context.Context) ([]Game, error)
	ListByDate(ctx context.Context, gameDate string) ([]Game, error)
}
