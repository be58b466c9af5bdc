package csv

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/hoops-league/internal/domain/manager"
)

const managersFile = "managers.csv"

var managersHeader = []string{"manager_id", "name", "team_name"}

type ManagerRepository struct {
	store *Store
}

func NewManagerRepository(store *Store) *ManagerRepository {
	return &ManagerRepository{store: store}
}

func (r *ManagerRepository) List(_ context.Context) ([]manager.Manager, error) {
	_, rows, err := r.store.readTable(r.store.handmadePath(managersFile))
	if err != nil {
		return nil, err
	}

	items := make([]manager.Manager, 0, len(rows))
	for _, row := range rows {
		if len(row) < len(managersHeader) {
			return nil, errors.Newf("managers row has %d columns, want %d", len(row), len(managersHeader))
		}
		managerID, err := parseInt(row[0], "manager_id")
		if err != nil {
			return nil, err
		}
		items = append(items, manager.Manager{
			ID:       managerID,
			Name:     row[1],
			TeamName: row[2],
		})
	}

	return items, nil
}

func (r *ManagerRepository) GetByID(ctx context.Context, managerID int) (manager.Manager, bool, error) {
	items, err := r.List(ctx)
	if err != nil {
		return manager.Manager{}, false, err
	}
	for _, item := range items {
		if item.ID == managerID {
			return item, true, nil
		}
	}
	return manager.Manager{}, false, nil
}
