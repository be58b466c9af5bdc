package csv

import (
	"context"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/hoops-league/internal/domain/lineup"
)

const lineupsFile = "lineups.csv"

var lineupsHeader = []string{"lineup_id", "manager_id", "game_date", "player_id", "status", "saved_at"}

type LineupRepository struct {
	store *Store
}

func NewLineupRepository(store *Store) *LineupRepository {
	return &LineupRepository{store: store}
}

func (r *LineupRepository) ListByManagerAndDate(ctx context.Context, managerID int, gameDate string) ([]lineup.Entry, error) {
	entries, err := r.listAll()
	if err != nil {
		return nil, err
	}

	matched := make([]lineup.Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.ManagerID == managerID && entry.GameDate == gameDate {
			matched = append(matched, entry)
		}
	}
	return matched, nil
}

func (r *LineupRepository) ListByManager(ctx context.Context, managerID int) ([]lineup.Entry, error) {
	entries, err := r.listAll()
	if err != nil {
		return nil, err
	}

	matched := make([]lineup.Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.ManagerID == managerID {
			matched = append(matched, entry)
		}
	}
	return matched, nil
}

func (r *LineupRepository) HasAnyForManager(ctx context.Context, managerID int) (bool, error) {
	entries, err := r.listAll()
	if err != nil {
		return false, err
	}
	for _, entry := range entries {
		if entry.ManagerID == managerID {
			return true, nil
		}
	}
	return false, nil
}

// ReplaceForManagerDate swaps the full entry set for one (manager, date)
// under the table lock. New rows receive ids above the current store-wide
// maximum. A held lock surfaces as lineup.ErrWriteContention so the caller's
// bounded retry can kick in.
func (r *LineupRepository) ReplaceForManagerDate(ctx context.Context, managerID int, gameDate string, entries []lineup.Entry) ([]lineup.Entry, error) {
	path := r.store.processedPath(lineupsFile)
	var saved []lineup.Entry

	err := r.store.withTableLock(path, func() error {
		existing, err := r.listAll()
		if err != nil {
			return err
		}

		var maxID int64
		kept := make([]lineup.Entry, 0, len(existing))
		for _, entry := range existing {
			if entry.ID > maxID {
				maxID = entry.ID
			}
			if entry.ManagerID == managerID && entry.GameDate == gameDate {
				continue
			}
			kept = append(kept, entry)
		}

		saved = make([]lineup.Entry, len(entries))
		for i, entry := range entries {
			maxID++
			entry.ID = maxID
			entry.ManagerID = managerID
			entry.GameDate = gameDate
			saved[i] = entry
		}

		return r.writeAll(path, append(kept, saved...))
	})
	if err != nil {
		if errors.Is(err, ErrTableLocked) {
			return nil, errors.Mark(err, lineup.ErrWriteContention)
		}
		return nil, err
	}

	return saved, nil
}

func (r *LineupRepository) listAll() ([]lineup.Entry, error) {
	_, rows, err := r.store.readTable(r.store.processedPath(lineupsFile))
	if err != nil {
		return nil, err
	}

	entries := make([]lineup.Entry, 0, len(rows))
	for _, row := range rows {
		if len(row) < len(lineupsHeader) {
			return nil, errors.Newf("lineups row has %d columns, want %d", len(row), len(lineupsHeader))
		}
		entryID, err := parseInt64(row[0], "lineup_id")
		if err != nil {
			return nil, err
		}
		managerID, err := parseInt(row[1], "manager_id")
		if err != nil {
			return nil, err
		}
		playerID, err := parseInt(row[3], "player_id")
		if err != nil {
			return nil, err
		}
		savedAt, err := parseTime(row[5], "saved_at")
		if err != nil {
			return nil, err
		}
		entries = append(entries, lineup.Entry{
			ID:        entryID,
			ManagerID: managerID,
			GameDate:  row[2],
			PlayerID:  playerID,
			Status:    row[4],
			SavedAt:   savedAt,
		})
	}

	return entries, nil
}

func (r *LineupRepository) writeAll(path string, entries []lineup.Entry) error {
	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		rows = append(rows, []string{
			strconv.FormatInt(entry.ID, 10),
			strconv.Itoa(entry.ManagerID),
			entry.GameDate,
			strconv.Itoa(entry.PlayerID),
			entry.Status,
			entry.SavedAt.UTC().Format(time.RFC3339),
		})
	}
	return r.store.writeTable(path, lineupsHeader, rows)
}
