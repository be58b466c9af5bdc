package manager

import "context"

type Repository interface {
	List(ctx context.Context) ([]Manager, error)
	GetByID(ctx context.Context, managerID int) (Manager, bool, error)
}
