package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/hoops-league/internal/domain/scoring"
)

type ScoringConfigRepository struct {
	mu      sync.RWMutex
	configs map[string]scoring.Config
}

func NewScoringConfigRepository() *ScoringConfigRepository {
	return &ScoringConfigRepository{configs: make(map[string]scoring.Config)}
}

func (r *ScoringConfigRepository) Seed(cfg scoring.Config) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.configs[cfg.Variant] = cfg
}

func (r *ScoringConfigRepository) GetConfig(_ context.Context, variant string) (scoring.Config, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cfg, ok := r.configs[variant]
	if !ok {
		return scoring.Config{}, false, nil
	}

	weights := make(map[string]float64, len(cfg.Weights))
	for k, v := range cfg.Weights {
		weights[k] = v
	}
	return scoring.Config{Variant: cfg.Variant, Weights: weights}, true, nil
}

type ScoreRepository struct {
	mu           sync.RWMutex
	playerScores []scoring.PlayerGameScore
	dailyScores  []scoring.ManagerDailyScore
}

func NewScoreRepository() *ScoreRepository {
	return &ScoreRepository{}
}

func (r *ScoreRepository) ListPlayerScoresByDate(_ context.Context, gameDate string) ([]scoring.PlayerGameScore, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]scoring.PlayerGameScore, 0, len(r.playerScores))
	for _, score := range r.playerScores {
		if score.GameDate == gameDate {
			out = append(out, score)
		}
	}
	return out, nil
}

func (r *ScoreRepository) ListPlayerScoresByPlayer(_ context.Context, playerID int) ([]scoring.PlayerGameScore, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]scoring.PlayerGameScore, 0, len(r.playerScores))
	for _, score := range r.playerScores {
		if score.PlayerID == playerID {
			out = append(out, score)
		}
	}
	return out, nil
}

func (r *ScoreRepository) ReplacePlayerScoresForDate(_ context.Context, gameDate string, scores []scoring.PlayerGameScore) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := make([]scoring.PlayerGameScore, 0, len(r.playerScores)+len(scores))
	for _, score := range r.playerScores {
		if score.GameDate != gameDate {
			kept = append(kept, score)
		}
	}
	r.playerScores = append(kept, scores...)
	return nil
}

func (r *ScoreRepository) ListDailyScores(_ context.Context) ([]scoring.ManagerDailyScore, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]scoring.ManagerDailyScore(nil), r.dailyScores...), nil
}

func (r *ScoreRepository) ListDailyScoresByDate(_ context.Context, gameDate string) ([]scoring.ManagerDailyScore, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]scoring.ManagerDailyScore, 0, len(r.dailyScores))
	for _, score := range r.dailyScores {
		if score.GameDate == gameDate {
			out = append(out, score)
		}
	}
	return out, nil
}

func (r *ScoreRepository) ReplaceDailyScoresForDate(_ context.Context, gameDate string, scores []scoring.ManagerDailyScore) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := make([]scoring.ManagerDailyScore, 0, len(r.dailyScores)+len(scores))
	for _, score := range r.dailyScores {
		if score.GameDate != gameDate {
			kept = append(kept, score)
		}
	}
	r.dailyScores = append(kept, scores...)
	return nil
}

func (r *ScoreRepository) ClearDerived(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.playerScores = nil
	r.dailyScores = nil
	return nil
}
