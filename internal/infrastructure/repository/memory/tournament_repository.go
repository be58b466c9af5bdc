package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/hoops-league/internal/domain/tournament"
)

type TournamentRepository struct {
	mu     sync.RWMutex
	picks  []tournament.Pick
	scores []tournament.GameScore
}

func NewTournamentRepository() *TournamentRepository {
	return &TournamentRepository{}
}

func (r *TournamentRepository) ListPicksByRound(_ context.Context, round int) ([]tournament.Pick, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]tournament.Pick, 0, len(r.picks))
	for _, pick := range r.picks {
		if pick.Round == round {
			out = append(out, pick)
		}
	}
	return out, nil
}

func (r *TournamentRepository) ReplacePicksForManager(_ context.Context, round, managerID int, picks []tournament.Pick) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := make([]tournament.Pick, 0, len(r.picks)+len(picks))
	for _, pick := range r.picks {
		if pick.Round == round && pick.ManagerID == managerID {
			continue
		}
		kept = append(kept, pick)
	}
	r.picks = append(kept, picks...)
	return nil
}

func (r *TournamentRepository) ListScoresByRound(_ context.Context, round int) ([]tournament.GameScore, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]tournament.GameScore, 0, len(r.scores))
	for _, score := range r.scores {
		if score.Round == round {
			out = append(out, score)
		}
	}
	return out, nil
}

func (r *TournamentRepository) ReplaceScoresForRound(_ context.Context, round int, scores []tournament.GameScore) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := make([]tournament.GameScore, 0, len(r.scores)+len(scores))
	for _, score := range r.scores {
		if score.Round != round {
			kept = append(kept, score)
		}
	}
	r.scores = append(kept, scores...)
	return nil
}
