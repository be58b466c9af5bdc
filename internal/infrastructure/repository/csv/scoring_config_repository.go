package csv

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/riskibarqy/hoops-league/internal/domain/scoring"
)

const scoringConfigFile = "scoring_config.csv"

var scoringConfigHeader = []string{"variant", "stat_category", "points_per_unit"}

// ScoringConfigRepository reads the handmade weight tables. Both variants
// live in one file keyed by the variant column.
type ScoringConfigRepository struct {
	store *Store
}

func NewScoringConfigRepository(store *Store) *ScoringConfigRepository {
	return &ScoringConfigRepository{store: store}
}

func (r *ScoringConfigRepository) GetConfig(_ context.Context, variant string) (scoring.Config, bool, error) {
	_, rows, err := r.store.readTable(r.store.handmadePath(scoringConfigFile))
	if err != nil {
		return scoring.Config{}, false, err
	}

	weights := make(map[string]float64)
	for _, row := range rows {
		if len(row) < len(scoringConfigHeader) {
			return scoring.Config{}, false, errors.Newf("scoring config row has %d columns, want %d", len(row), len(scoringConfigHeader))
		}
		if row[0] != variant {
			continue
		}
		weight, err := parseFloat(row[2], "points_per_unit")
		if err != nil {
			return scoring.Config{}, false, err
		}
		weights[row[1]] = weight
	}
	if len(weights) == 0 {
		return scoring.Config{}, false, nil
	}

	return scoring.Config{Variant: variant, Weights: weights}, true, nil
}
