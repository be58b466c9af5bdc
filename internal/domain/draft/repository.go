package draft

import "context"

type Repository interface {
	ListResults(ctx context.Context) ([]Result, error)
	ReplaceResults(ctx context.Context, results []Result) error
}
