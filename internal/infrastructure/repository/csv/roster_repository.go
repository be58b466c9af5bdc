package csv

import (
	"context"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/hoops-league/internal/domain/roster"
)

const rostersFile = "rosters.csv"

var rostersHeader = []string{"manager_id", "player_id", "acquisition_type", "acquired_at"}

type RosterRepository struct {
	store *Store
}

func NewRosterRepository(store *Store) *RosterRepository {
	return &RosterRepository{store: store}
}

func (r *RosterRepository) List(_ context.Context) ([]roster.Entry, error) {
	_, rows, err := r.store.readTable(r.store.processedPath(rostersFile))
	if err != nil {
		return nil, err
	}

	entries := make([]roster.Entry, 0, len(rows))
	for _, row := range rows {
		if len(row) < len(rostersHeader) {
			return nil, errors.Newf("rosters row has %d columns, want %d", len(row), len(rostersHeader))
		}
		managerID, err := parseInt(row[0], "manager_id")
		if err != nil {
			return nil, err
		}
		playerID, err := parseInt(row[1], "player_id")
		if err != nil {
			return nil, err
		}
		acquiredAt, err := parseTime(row[3], "acquired_at")
		if err != nil {
			return nil, err
		}
		entries = append(entries, roster.Entry{
			ManagerID:       managerID,
			PlayerID:        playerID,
			AcquisitionType: row[2],
			AcquiredAt:      acquiredAt,
		})
	}

	return entries, nil
}

func (r *RosterRepository) ListByManager(ctx context.Context, managerID int) ([]roster.Entry, error) {
	entries, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]roster.Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.ManagerID == managerID {
			matched = append(matched, entry)
		}
	}
	return matched, nil
}

func (r *RosterRepository) ReplaceAll(_ context.Context, entries []roster.Entry) error {
	path := r.store.processedPath(rostersFile)
	return r.store.withTableLock(path, func() error {
		rows := make([][]string, 0, len(entries))
		for _, entry := range entries {
			rows = append(rows, []string{
				strconv.Itoa(entry.ManagerID),
				strconv.Itoa(entry.PlayerID),
				entry.AcquisitionType,
				entry.AcquiredAt.UTC().Format(time.RFC3339),
			})
		}
		return r.store.writeTable(path, rostersHeader, rows)
	})
}
