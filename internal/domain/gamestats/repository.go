package gamestats

import "context"

type Repository interface {
	ListByDate(ctx context.Context, gameDate string) ([]Row, error)
	ListDates(ctx context.Context) ([]string, error)
	ReplaceForGame(ctx context.Context, gameDate string, gameNumber int, rows []Row) error
}
