package csv

import (
	"context"
	"strconv"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/hoops-league/internal/domain/draft"
)

const draftResultsFile = "draft_results.csv"

var draftResultsHeader = []string{"pick_number", "round", "manager_id", "player_id", "picked_at"}

type DraftRepository struct {
	store *Store
}

func NewDraftRepository(store *Store) *DraftRepository {
	return &DraftRepository{store: store}
}

func (r *DraftRepository) ListResults(_ context.Context) ([]draft.Result, error) {
	_, rows, err := r.store.readTable(r.store.processedPath(draftResultsFile))
	if err != nil {
		return nil, err
	}

	results := make([]draft.Result, 0, len(rows))
	for _, row := range rows {
		if len(row) < len(draftResultsHeader) {
			return nil, errors.Newf("draft results row has %d columns, want %d", len(row), len(draftResultsHeader))
		}
		pick, err := parseInt(row[0], "pick_number")
		if err != nil {
			return nil, err
		}
		round, err := parseInt(row[1], "round")
		if err != nil {
			return nil, err
		}
		managerID, err := parseInt(row[2], "manager_id")
		if err != nil {
			return nil, err
		}
		playerID, err := parseInt(row[3], "player_id")
		if err != nil {
			return nil, err
		}
		pickedAt, err := parseTime(row[4], "picked_at")
		if err != nil {
			return nil, err
		}
		results = append(results, draft.Result{
			Pick:      pick,
			Round:     round,
			ManagerID: managerID,
			PlayerID:  playerID,
			PickedAt:  pickedAt,
		})
	}

	return results, nil
}

func (r *DraftRepository) ReplaceResults(_ context.Context, results []draft.Result) error {
	path := r.store.processedPath(draftResultsFile)
	return r.store.withTableLock(path, func() error {
		rows := make([][]string, 0, len(results))
		for _, result := range results {
			rows = append(rows, []string{
				strconv.Itoa(result.Pick),
				strconv.Itoa(result.Round),
				strconv.Itoa(result.ManagerID),
				strconv.Itoa(result.PlayerID),
				result.PickedAt.UTC().Format(time.RFC3339),
			})
		}
		return r.store.writeTable(path, draftResultsHeader, rows)
	})
}
