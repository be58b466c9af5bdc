package csv

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/hoops-league/internal/domain/gamestats"
)

// GameStatsRepository stores one raw box-score file per (date, game number),
// named {date}_game{n}.csv. Re-writing a pair fully supersedes its file.
type GameStatsRepository struct {
	store *Store
}

func NewGameStatsRepository(store *Store) *GameStatsRepository {
	return &GameStatsRepository{store: store}
}

func (r *GameStatsRepository) ListByDate(_ context.Context, gameDate string) ([]gamestats.Row, error) {
	dir := r.store.gameStatsPath("")
	names, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "read game stats dir")
	}

	var out []gamestats.Row
	prefix := gameDate + "_game"
	for _, entry := range names {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ".csv") {
			continue
		}
		rows, err := r.readFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		out = append(out, rows...)
	}

	return out, nil
}

func (r *GameStatsRepository) ListDates(_ context.Context) ([]string, error) {
	dir := r.store.gameStatsPath("")
	names, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "read game stats dir")
	}

	seen := make(map[string]struct{})
	for _, entry := range names {
		name := entry.Name()
		idx := strings.Index(name, "_game")
		if entry.IsDir() || idx <= 0 || !strings.HasSuffix(name, ".csv") {
			continue
		}
		seen[name[:idx]] = struct{}{}
	}

	dates := make([]string, 0, len(seen))
	for date := range seen {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates, nil
}

func (r *GameStatsRepository) ReplaceForGame(_ context.Context, gameDate string, gameNumber int, rows []gamestats.Row) error {
	path := r.store.gameStatsPath(fmt.Sprintf("%s_game%d.csv", gameDate, gameNumber))

	categories := make(map[string]struct{})
	for _, row := range rows {
		for category := range row.Stats {
			categories[category] = struct{}{}
		}
	}
	sorted := make([]string, 0, len(categories))
	for category := range categories {
		sorted = append(sorted, category)
	}
	sort.Strings(sorted)

	header := append([]string{"game_id", "game_date", "player_id"}, sorted...)
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		record := []string{row.GameID, row.GameDate, strconv.Itoa(row.PlayerID)}
		for _, category := range sorted {
			record = append(record, formatFloat(row.Stats[category]))
		}
		records = append(records, record)
	}

	return r.store.withTableLock(path, func() error {
		return r.store.writeTable(path, header, records)
	})
}

func (r *GameStatsRepository) readFile(path string) ([]gamestats.Row, error) {
	header, records, err := r.store.readTable(path)
	if err != nil {
		return nil, err
	}
	if len(header) < 3 {
		return nil, errors.Newf("game stats file %s has %d columns, want at least 3", filepath.Base(path), len(header))
	}

	rows := make([]gamestats.Row, 0, len(records))
	for _, record := range records {
		if len(record) < len(header) {
			return nil, errors.Newf("game stats row has %d columns, want %d", len(record), len(header))
		}
		playerID, err := parseInt(record[2], "player_id")
		if err != nil {
			return nil, err
		}
		stats := make(map[string]float64, len(header)-3)
		for i := 3; i < len(header); i++ {
			value, err := parseFloat(record[i], header[i])
			if err != nil {
				return nil, err
			}
			stats[header[i]] = value
		}
		rows = append(rows, gamestats.Row{
			GameID:   record[0],
			GameDate: record[1],
			PlayerID: playerID,
			Stats:    stats,
		})
	}

	return rows, nil
}
