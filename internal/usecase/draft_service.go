package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/riskibarqy/hoops-league/internal/domain/draft"
	"github.com/riskibarqy/hoops-league/internal/domain/manager"
	"github.com/riskibarqy/hoops-league/internal/domain/player"
	"github.com/riskibarqy/hoops-league/internal/domain/roster"
)

// DraftStatus is the completeness snapshot: the draft is complete when the
// persisted pick count reaches the configured total.
type DraftStatus struct {
	PicksMade  int
	TotalPicks int
	Complete   bool
}

// DraftService owns snake-order generation and draft execution. It does not
// enforce per-manager share balance; supplying one choice per snake slot is
// what guarantees it, which is why the order generation lives here.
type DraftService struct {
	managerRepo manager.Repository
	playerRepo  player.Repository
	draftRepo   draft.Repository
	rosterRepo  roster.Repository
	logger      *slog.Logger

	managerCount int
	rosterSize   int

	now func() time.Time
}

func NewDraftService(
	managerRepo manager.Repository,
	playerRepo player.Repository,
	draftRepo draft.Repository,
	rosterRepo roster.Repository,
	managerCount, rosterSize int,
	logger *slog.Logger,
) *DraftService {
	if logger == nil {
		logger = slog.Default()
	}

	return &DraftService{
		managerRepo:  managerRepo,
		playerRepo:   playerRepo,
		draftRepo:    draftRepo,
		rosterRepo:   rosterRepo,
		logger:       logger,
		managerCount: managerCount,
		rosterSize:   rosterSize,
		now:          time.Now,
	}
}

func (s *DraftService) totalPicks() int {
	return s.managerCount * s.rosterSize
}

// Order generates the full snake order from the managers in id order.
func (s *DraftService) Order(ctx context.Context) ([]draft.Slot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.Order")
	defer span.End()

	managers, err := s.managerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list managers: %w", err)
	}
	if len(managers) == 0 {
		return nil, nil
	}

	ids := make([]int, 0, len(managers))
	for _, m := range managers {
		ids = append(ids, m.ID)
	}
	sort.Ints(ids)

	return draft.SnakeOrder(ids, s.rosterSize), nil
}

// Execute zips externally made player choices, in pick order, against the
// snake order to produce draft results. When the draft reaches the full pick
// count the roster table is written atomically from the results; a shorter
// sequence persists partial results only.
func (s *DraftService) Execute(ctx context.Context, playerIDs []int) ([]draft.Result, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.Execute")
	defer span.End()

	if len(playerIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one pick is required", ErrInvalidInput)
	}
	if len(playerIDs) > s.totalPicks() {
		return nil, fmt.Errorf("%w: %d picks exceed the configured total of %d", ErrInvalidInput, len(playerIDs), s.totalPicks())
	}

	seen := make(map[int]struct{}, len(playerIDs))
	for _, playerID := range playerIDs {
		if _, dup := seen[playerID]; dup {
			return nil, fmt.Errorf("%w: player %d picked more than once", ErrInvalidInput, playerID)
		}
		seen[playerID] = struct{}{}

		p, found, err := s.playerRepo.GetByID(ctx, playerID)
		if err != nil {
			return nil, fmt.Errorf("look up player %d: %w", playerID, err)
		}
		if !found {
			return nil, fmt.Errorf("%w: unknown player id %d", ErrInvalidInput, playerID)
		}
		if p.Injured() {
			return nil, fmt.Errorf("%w: player %d is injured and cannot be drafted", ErrInvalidInput, playerID)
		}
	}

	order, err := s.Order(ctx)
	if err != nil {
		return nil, err
	}
	if len(order) < len(playerIDs) {
		return nil, fmt.Errorf("%w: snake order has %d slots for %d picks", ErrInvalidInput, len(order), len(playerIDs))
	}

	pickedAt := s.now()
	results := make([]draft.Result, 0, len(playerIDs))
	for i, playerID := range playerIDs {
		slot := order[i]
		results = append(results, draft.Result{
			Pick:      slot.Pick,
			Round:     slot.Round,
			ManagerID: slot.ManagerID,
			PlayerID:  playerID,
			PickedAt:  pickedAt,
		})
	}

	if err := s.draftRepo.ReplaceResults(ctx, results); err != nil {
		return nil, fmt.Errorf("replace draft results: %w", err)
	}

	if len(results) == s.totalPicks() {
		rosterEntries := make([]roster.Entry, 0, len(results))
		for _, result := range results {
			rosterEntries = append(rosterEntries, roster.Entry{
				ManagerID:       result.ManagerID,
				PlayerID:        result.PlayerID,
				AcquisitionType: roster.AcquisitionDraft,
				AcquiredAt:      pickedAt,
			})
		}
		if err := s.rosterRepo.ReplaceAll(ctx, rosterEntries); err != nil {
			return nil, fmt.Errorf("replace rosters: %w", err)
		}
		s.logger.InfoContext(ctx, "draft complete, rosters written", "picks", len(results))
	}

	return results, nil
}

// Status is a cardinality check against the configured total, nothing more.
func (s *DraftService) Status(ctx context.Context) (DraftStatus, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.Status")
	defer span.End()

	results, err := s.draftRepo.ListResults(ctx)
	if err != nil {
		return DraftStatus{}, fmt.Errorf("list draft results: %w", err)
	}

	return DraftStatus{
		PicksMade:  len(results),
		TotalPicks: s.totalPicks(),
		Complete:   len(results) == s.totalPicks(),
	}, nil
}

// AvailablePlayers lists everyone not yet drafted and not injured.
func (s *DraftService) AvailablePlayers(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.AvailablePlayers")
	defer span.End()

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	results, err := s.draftRepo.ListResults(ctx)
	if err != nil {
		return nil, fmt.Errorf("list draft results: %w", err)
	}

	drafted := make(map[int]struct{}, len(results))
	for _, result := range results {
		drafted[result.PlayerID] = struct{}{}
	}

	available := make([]player.Player, 0, len(players))
	for _, p := range players {
		if _, taken := drafted[p.ID]; taken || p.Injured() {
			continue
		}
		available = append(available, p)
	}
	return available, nil
}
