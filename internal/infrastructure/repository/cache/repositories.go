package cache

import (
	"context"
	"fmt"

	platformcache "github.com/riskibarqy/hoops-league/internal/platform/cache"

	"github.com/riskibarqy/hoops-league/internal/domain/manager"
	"github.com/riskibarqy/hoops-league/internal/domain/player"
	"github.com/riskibarqy/hoops-league/internal/domain/schedule"
	"github.com/riskibarqy/hoops-league/internal/domain/scoring"
)

// Decorators below wrap the csv repositories with the process-local TTL
// store. Only read-mostly reference tables are cached; derived score tables
// bypass this layer entirely so a write is never followed by a stale read.

type CachedPlayerRepository struct {
	next  player.Repository
	store *platformcache.Store
}

func NewCachedPlayerRepository(next player.Repository, store *platformcache.Store) *CachedPlayerRepository {
	return &CachedPlayerRepository{next: next, store: store}
}

func (r *CachedPlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	value, err := r.store.GetOrLoad(ctx, "players:list", func(ctx context.Context) (any, error) {
		return r.next.List(ctx)
	})
	if err != nil {
		return nil, err
	}
	items, ok := value.([]player.Player)
	if !ok {
		return nil, fmt.Errorf("unexpected cache value type %T for players:list", value)
	}
	return items, nil
}

func (r *CachedPlayerRepository) GetByID(ctx context.Context, playerID int) (player.Player, bool, error) {
	items, err := r.List(ctx)
	if err != nil {
		return player.Player{}, false, err
	}
	for _, item := range items {
		if item.ID == playerID {
			return item, true, nil
		}
	}
	return player.Player{}, false, nil
}

type CachedManagerRepository struct {
	next  manager.Repository
	store *platformcache.Store
}

func NewCachedManagerRepository(next manager.Repository, store *platformcache.Store) *CachedManagerRepository {
	return &CachedManagerRepository{next: next, store: store}
}

func (r *CachedManagerRepository) List(ctx context.Context) ([]manager.Manager, error) {
	value, err := r.store.GetOrLoad(ctx, "managers:list", func(ctx context.Context) (any, error) {
		return r.next.List(ctx)
	})
	if err != nil {
		return nil, err
	}
	items, ok := value.([]manager.Manager)
	if !ok {
		return nil, fmt.Errorf("unexpected cache value type %T for managers:list", value)
	}
	return items, nil
}

func (r *CachedManagerRepository) GetByID(ctx context.Context, managerID int) (manager.Manager, bool, error) {
	items, err := r.List(ctx)
	if err != nil {
		return manager.Manager{}, false, err
	}
	for _, item := range items {
		if item.ID == managerID {
			return item, true, nil
		}
	}
	return manager.Manager{}, false, nil
}

type CachedScheduleRepository struct {
	next  schedule.Repository
	store *platformcache.Store
}

func NewCachedScheduleRepository(next schedule.Repository, store *platformcache.Store) *CachedScheduleRepository {
	return &CachedScheduleRepository{next: next, store: store}
}

func (r *CachedScheduleRepository) List(ctx context.Context) ([]schedule.Game, error) {
	value, err := r.store.GetOrLoad(ctx, "schedule:list", func(ctx context.Context) (any, error) {
		return r.next.List(ctx)
	})
	if err != nil {
		return nil, err
	}
	games, ok := value.([]schedule.Game)
	if !ok {
		return nil, fmt.Errorf("unexpected cache value type %T for schedule:list", value)
	}
	return games, nil
}

func (r *CachedScheduleRepository) ListByDate(ctx context.Context, gameDate string) ([]schedule.Game, error) {
	games, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]schedule.Game, 0, len(games))
	for _, game := range games {
		if game.GameDate == gameDate {
			matched = append(matched, game)
		}
	}
	return matched, nil
}

type CachedScoringConfigRepository struct {
	next  scoring.ConfigRepository
	store *platformcache.Store
}

func NewCachedScoringConfigRepository(next scoring.ConfigRepository, store *platformcache.Store) *CachedScoringConfigRepository {
	return &CachedScoringConfigRepository{next: next, store: store}
}

type cachedConfig struct {
	cfg   scoring.Config
	found bool
}

func (r *CachedScoringConfigRepository) GetConfig(ctx context.Context, variant string) (scoring.Config, bool, error) {
	key := "scoring-config:" + variant
	value, err := r.store.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		cfg, found, err := r.next.GetConfig(ctx, variant)
		if err != nil {
			return nil, err
		}
		return cachedConfig{cfg: cfg, found: found}, nil
	})
	if err != nil {
		return scoring.Config{}, false, err
	}
	cached, ok := value.(cachedConfig)
	if !ok {
		return scoring.Config{}, false, fmt.Errorf("unexpected cache value type %T for %s", value, key)
	}
	return cached.cfg, cached.found, nil
}
