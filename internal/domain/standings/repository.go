package standings

import "context"

type Repository interface {
	List(ctx context.Context) ([]Standing, error)
	ReplaceAll(ctx context.Context, table []Standing) error
}
