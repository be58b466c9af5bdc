package csv

import (
	enccsv "encoding/csv"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
)

const (
	handmadeDir  = "handmade"
	processedDir = "processed"
	gameStatsDir = "source/game_stats"

	dirPerm  = 0o755
	filePerm = 0o644

	// A lock file older than this is considered abandoned by a crashed
	// writer and may be taken over.
	staleLockAge = 10 * time.Second
)

// ErrTableLocked reports that another writer currently holds a table's lock
// file. Callers that retry map it to their own contention sentinel.
var ErrTableLocked = errors.New("csv store: table locked by another writer")

// Store reads and writes the league's tabular files under a single data
// directory. Reference tables live in handmade/, engine-owned tables in
// processed/, and raw box-score uploads in source/game_stats/. Writes are
// atomic (temp file + rename) and guarded by a per-table lock file so
// colliding writers surface as ErrTableLocked instead of corrupting rows.
type Store struct {
	dataDir string
}

func NewStore(dataDir string) (*Store, error) {
	for _, sub := range []string{handmadeDir, processedDir, gameStatsDir} {
		if err := os.MkdirAll(filepath.Join(dataDir, sub), dirPerm); err != nil {
			return nil, errors.Wrapf(err, "create data dir %s", sub)
		}
	}
	return &Store{dataDir: dataDir}, nil
}

func (s *Store) handmadePath(name string) string {
	return filepath.Join(s.dataDir, handmadeDir, name)
}

func (s *Store) processedPath(name string) string {
	return filepath.Join(s.dataDir, processedDir, name)
}

func (s *Store) gameStatsPath(name string) string {
	return filepath.Join(s.dataDir, gameStatsDir, name)
}

// readTable returns the header and data rows of a table file. A missing file
// is a normal "no data yet" condition and yields empty results.
func (s *Store) readTable(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil, nil
		}
		return nil, nil, errors.Wrapf(err, "open table %s", filepath.Base(path))
	}
	defer f.Close()

	reader := enccsv.NewReader(f)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, errors.Wrapf(err, "read table %s", filepath.Base(path))
	}
	if len(records) == 0 {
		return nil, nil, nil
	}

	return records[0], records[1:], nil
}

// writeTable atomically replaces a table file with the given header and rows.
func (s *Store) writeTable(path string, header []string, rows [][]string) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	writer := enccsv.NewWriter(buf)
	if err := writer.Write(header); err != nil {
		return errors.Wrapf(err, "encode header for %s", filepath.Base(path))
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return errors.Wrapf(err, "encode row for %s", filepath.Base(path))
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Wrapf(err, "flush rows for %s", filepath.Base(path))
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.B, filePerm); err != nil {
		return errors.Wrapf(err, "write temp file for %s", filepath.Base(path))
	}
	if err := os.Rename(tmp, path); err != nil {
		return errors.Wrapf(err, "replace table %s", filepath.Base(path))
	}

	return nil
}

// withTableLock runs fn while holding the table's lock file. A live lock held
// by another writer returns ErrTableLocked; an abandoned lock past
// staleLockAge is taken over once.
func (s *Store) withTableLock(path string, fn func() error) error {
	lockPath := path + ".lock"

	acquired, err := s.acquireLock(lockPath)
	if err != nil {
		return err
	}
	if !acquired {
		if !s.stealStaleLock(lockPath) {
			return errors.Wrapf(ErrTableLocked, "%s", filepath.Base(path))
		}
		acquired, err = s.acquireLock(lockPath)
		if err != nil {
			return err
		}
		if !acquired {
			return errors.Wrapf(ErrTableLocked, "%s", filepath.Base(path))
		}
	}
	defer os.Remove(lockPath)

	return fn()
}

func (s *Store) acquireLock(lockPath string) (bool, error) {
	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, filePerm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return false, nil
		}
		return false, errors.Wrapf(err, "acquire lock %s", filepath.Base(lockPath))
	}
	_ = f.Close()
	return true, nil
}

func (s *Store) stealStaleLock(lockPath string) bool {
	info, err := os.Stat(lockPath)
	if err != nil {
		// Holder released between our attempts; let the caller retry.
		return errors.Is(err, fs.ErrNotExist)
	}
	if time.Since(info.ModTime()) < staleLockAge {
		return false
	}
	return os.Remove(lockPath) == nil
}

func parseInt(value, column string) (int, error) {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Wrapf(err, "parse %s %q", column, value)
	}
	return parsed, nil
}

func parseInt64(value, column string) (int64, error) {
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parse %s %q", column, value)
	}
	return parsed, nil
}

func parseFloat(value, column string) (float64, error) {
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errors.Wrapf(err, "parse %s %q", column, value)
	}
	return parsed, nil
}

func parseBool(value, column string) (bool, error) {
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, errors.Wrapf(err, "parse %s %q", column, value)
	}
	return parsed, nil
}

func parseTime(value, column string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "parse %s %q", column, value)
	}
	return parsed, nil
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
