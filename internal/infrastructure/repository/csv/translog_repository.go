package csv

import (
	"context"
	enccsv "encoding/csv"
	"os"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/hoops-league/internal/domain/translog"
)

const translogFile = "transaction_log.csv"

var translogHeader = []string{"entry_id", "logged_at", "manager_id", "game_date", "action", "detail"}

// TranslogRepository appends audit rows in place rather than rewriting the
// table; the log only ever grows.
type TranslogRepository struct {
	store *Store
}

func NewTranslogRepository(store *Store) *TranslogRepository {
	return &TranslogRepository{store: store}
}

func (r *TranslogRepository) Append(_ context.Context, entry translog.Entry) error {
	path := r.store.processedPath(translogFile)
	return r.store.withTableLock(path, func() error {
		writeHeader := false
		if _, err := os.Stat(path); os.IsNotExist(err) {
			writeHeader = true
		}

		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, filePerm)
		if err != nil {
			return errors.Wrap(err, "open transaction log")
		}
		defer f.Close()

		writer := enccsv.NewWriter(f)
		if writeHeader {
			if err := writer.Write(translogHeader); err != nil {
				return errors.Wrap(err, "write transaction log header")
			}
		}
		if err := writer.Write([]string{
			entry.ID,
			entry.LoggedAt.UTC().Format(time.RFC3339),
			strconv.Itoa(entry.ManagerID),
			entry.GameDate,
			entry.Action,
			entry.Detail,
		}); err != nil {
			return errors.Wrap(err, "write transaction log entry")
		}
		writer.Flush()
		return errors.Wrap(writer.Error(), "flush transaction log")
	})
}

func (r *TranslogRepository) List(_ context.Context) ([]translog.Entry, error) {
	_, rows, err := r.store.readTable(r.store.processedPath(translogFile))
	if err != nil {
		return nil, err
	}

	entries := make([]translog.Entry, 0, len(rows))
	for _, row := range rows {
		if len(row) < len(translogHeader) {
			return nil, errors.Newf("transaction log row has %d columns, want %d", len(row), len(translogHeader))
		}
		loggedAt, err := parseTime(row[1], "logged_at")
		if err != nil {
			return nil, err
		}
		managerID, err := parseInt(row[2], "manager_id")
		if err != nil {
			return nil, err
		}
		entries = append(entries, translog.Entry{
			ID:        row[0],
			LoggedAt:  loggedAt,
			ManagerID: managerID,
			GameDate:  row[3],
			Action:    row[4],
			Detail:    row[5],
		})
	}

	return entries, nil
}
