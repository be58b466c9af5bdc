package tournament

import "context"

type Repository interface {
	ListPicksByRound(ctx context.Context, round int) ([]Pick, error)
	ReplacePicksForManager(ctx context.Context, round, managerID int, picks []Pick) error

	ListScoresByRound(ctx context.Context, round int) ([]GameScore, error)
	ReplaceScoresForRound(ctx context.Context, round int, scores []GameScore) error
}
