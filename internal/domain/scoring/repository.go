package scoring

import "context"

// ConfigRepository serves the handmade weight tables. Read-mostly; the cache
// layer may hold results for a bounded TTL.
type ConfigRepository interface {
	GetConfig(ctx context.Context, variant string) (Config, bool, error)
}

// ScoreRepository persists derived score tables. Derived rows are replaced
// whole-date and never cached across writes.
type ScoreRepository interface {
	ListPlayerScoresByDate(ctx context.Context, gameDate string) ([]PlayerGameScore, error)
	ListPlayerScoresByPlayer(ctx context.Context, playerID int) ([]PlayerGameScore, error)
	ReplacePlayerScoresForDate(ctx context.Context, gameDate string, scores []PlayerGameScore) error

	ListDailyScores(ctx context.Context) ([]ManagerDailyScore, error)
	ListDailyScoresByDate(ctx context.Context, gameDate string) ([]ManagerDailyScore, error)
	ReplaceDailyScoresForDate(ctx context.Context, gameDate string, scores []ManagerDailyScore) error

	ClearDerived(ctx context.Context) error
}
