package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/bytedance/sonic"
	"github.com/riskibarqy/hoops-league/internal/domain/lineup"
	"github.com/riskibarqy/hoops-league/internal/domain/manager"
	"github.com/riskibarqy/hoops-league/internal/domain/roster"
	"github.com/riskibarqy/hoops-league/internal/domain/schedule"
	"github.com/riskibarqy/hoops-league/internal/domain/translog"
	"github.com/riskibarqy/hoops-league/internal/platform/id"
	"github.com/riskibarqy/hoops-league/internal/platform/resilience"
)

type SaveLineupInput struct {
	ManagerID       int
	GameDate        string
	ActivePlayerIDs []int
}

// LockStatus reports the lock state of one date.
type LockStatus struct {
	GameDate string
	LockAt   time.Time
	Locked   bool
}

// LineupService owns the lineup state machine: the active/bench partition of
// each manager's roster per date, gated behind the daily lock deadline.
type LineupService struct {
	lineupRepo   lineup.Repository
	rosterRepo   roster.Repository
	managerRepo  manager.Repository
	scheduleRepo schedule.Repository
	translogRepo translog.Repository
	idGen        id.Generator
	logger       *slog.Logger

	loc           *time.Location
	activeSlots   int
	retryAttempts int
	retryMin      time.Duration
	retryMax      time.Duration

	now func() time.Time
}

func NewLineupService(
	lineupRepo lineup.Repository,
	rosterRepo roster.Repository,
	managerRepo manager.Repository,
	scheduleRepo schedule.Repository,
	translogRepo translog.Repository,
	idGen id.Generator,
	loc *time.Location,
	activeSlots int,
	retryAttempts int,
	retryMin, retryMax time.Duration,
	logger *slog.Logger,
) *LineupService {
	if logger == nil {
		logger = slog.Default()
	}
	if loc == nil {
		loc = time.UTC
	}

	return &LineupService{
		lineupRepo:    lineupRepo,
		rosterRepo:    rosterRepo,
		managerRepo:   managerRepo,
		scheduleRepo:  scheduleRepo,
		translogRepo:  translogRepo,
		idGen:         idGen,
		logger:        logger,
		loc:           loc,
		activeSlots:   activeSlots,
		retryAttempts: retryAttempts,
		retryMin:      retryMin,
		retryMax:      retryMax,
		now:           time.Now,
	}
}

// LockInstant derives the lock deadline for a date: the earliest scheduled
// tipoff on it, or 23:59:59 when no games are scheduled.
func (s *LineupService) LockInstant(ctx context.Context, gameDate string) (time.Time, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.LockInstant")
	defer span.End()

	if !schedule.ValidDate(gameDate) {
		return time.Time{}, fmt.Errorf("%w: game_date must be formatted as %s", ErrInvalidInput, schedule.DateLayout)
	}

	games, err := s.scheduleRepo.ListByDate(ctx, gameDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("list schedule for %s: %w", gameDate, err)
	}
	if len(games) == 0 {
		day, _ := time.ParseInLocation(schedule.DateLayout, gameDate, s.loc)
		return time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, s.loc), nil
	}

	var earliest time.Time
	for _, game := range games {
		tipoff, err := game.TipoffAt(s.loc)
		if err != nil {
			return time.Time{}, fmt.Errorf("resolve tipoff for game %d: %w", game.ID, err)
		}
		if earliest.IsZero() || tipoff.Before(earliest) {
			earliest = tipoff
		}
	}

	return earliest, nil
}

// LockStatus evaluates is_locked for a date. Dates before today in the
// reference timezone are always locked; otherwise the date locks once now
// reaches its lock instant.
func (s *LineupService) LockStatus(ctx context.Context, gameDate string) (LockStatus, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.LockStatus")
	defer span.End()

	lockAt, err := s.LockInstant(ctx, gameDate)
	if err != nil {
		return LockStatus{}, err
	}

	now := s.now().In(s.loc)
	today := schedule.FormatDate(now, s.loc)
	locked := gameDate < today || !now.Before(lockAt)

	return LockStatus{GameDate: gameDate, LockAt: lockAt, Locked: locked}, nil
}

// Lineup returns the persisted entry set for (manager, date). An empty result
// means no explicit lineup exists; callers needing the effective active set
// should use ActivePlayers instead.
func (s *LineupService) Lineup(ctx context.Context, managerID int, gameDate string) ([]lineup.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.Lineup")
	defer span.End()

	if managerID <= 0 || !schedule.ValidDate(gameDate) {
		return nil, fmt.Errorf("%w: manager_id and game_date are required", ErrInvalidInput)
	}

	entries, err := s.lineupRepo.ListByManagerAndDate(ctx, managerID, gameDate)
	if err != nil {
		return nil, fmt.Errorf("list lineup entries: %w", err)
	}
	return entries, nil
}

// ActivePlayers resolves the active set for scoring with the three-tier
// fallback: the explicit lineup for the date, else the most recent prior
// date's active set, else the first N roster players by id. An empty result
// means the manager has no roster yet.
func (s *LineupService) ActivePlayers(ctx context.Context, managerID int, gameDate string) ([]int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.ActivePlayers")
	defer span.End()

	if managerID <= 0 || !schedule.ValidDate(gameDate) {
		return nil, fmt.Errorf("%w: manager_id and game_date are required", ErrInvalidInput)
	}

	entries, err := s.lineupRepo.ListByManagerAndDate(ctx, managerID, gameDate)
	if err != nil {
		return nil, fmt.Errorf("list lineup entries: %w", err)
	}
	if len(entries) > 0 {
		return lineup.ActiveIDs(entries), nil
	}

	all, err := s.lineupRepo.ListByManager(ctx, managerID)
	if err != nil {
		return nil, fmt.Errorf("list manager lineup history: %w", err)
	}
	var stickyDate string
	for _, entry := range all {
		if entry.GameDate < gameDate && entry.GameDate > stickyDate {
			stickyDate = entry.GameDate
		}
	}
	if stickyDate != "" {
		prior := make([]lineup.Entry, 0, len(all))
		for _, entry := range all {
			if entry.GameDate == stickyDate {
				prior = append(prior, entry)
			}
		}
		return lineup.ActiveIDs(prior), nil
	}

	return s.defaultActiveSet(ctx, managerID)
}

// Save validates and persists a full lineup for (manager, date). The checks
// run in order and each rejection is distinct: lock state first, then the
// active count and duplicates, then roster membership. On success the whole
// entry set for the pair is replaced and an audit row is appended
// best-effort.
func (s *LineupService) Save(ctx context.Context, input SaveLineupInput) ([]lineup.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.Save")
	defer span.End()

	if input.ManagerID <= 0 {
		return nil, fmt.Errorf("%w: manager_id is required", ErrInvalidInput)
	}
	if !schedule.ValidDate(input.GameDate) {
		return nil, fmt.Errorf("%w: game_date must be formatted as %s", ErrInvalidInput, schedule.DateLayout)
	}

	status, err := s.LockStatus(ctx, input.GameDate)
	if err != nil {
		return nil, err
	}
	if status.Locked {
		return nil, fmt.Errorf("%w: lineups for %s locked at %s", ErrLineupLocked, input.GameDate, status.LockAt.Format(time.RFC3339))
	}

	if len(input.ActivePlayerIDs) != s.activeSlots {
		return nil, fmt.Errorf("%w: exactly %d active players required, got %d", ErrInvalidInput, s.activeSlots, len(input.ActivePlayerIDs))
	}
	seen := make(map[int]struct{}, len(input.ActivePlayerIDs))
	for _, playerID := range input.ActivePlayerIDs {
		if _, dup := seen[playerID]; dup {
			return nil, fmt.Errorf("%w: duplicate player id %d", ErrInvalidInput, playerID)
		}
		seen[playerID] = struct{}{}
	}

	rosterEntries, err := s.rosterRepo.ListByManager(ctx, input.ManagerID)
	if err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}
	onRoster := make(map[int]struct{}, len(rosterEntries))
	for _, entry := range rosterEntries {
		onRoster[entry.PlayerID] = struct{}{}
	}
	for _, playerID := range input.ActivePlayerIDs {
		if _, ok := onRoster[playerID]; !ok {
			return nil, fmt.Errorf("%w: player %d is not on manager %d's roster", ErrInvalidInput, playerID, input.ManagerID)
		}
	}

	savedAt := s.now()
	entries := make([]lineup.Entry, 0, len(rosterEntries))
	for _, rosterEntry := range rosterEntries {
		entryStatus := lineup.StatusBench
		if _, active := seen[rosterEntry.PlayerID]; active {
			entryStatus = lineup.StatusActive
		}
		entries = append(entries, lineup.Entry{
			PlayerID: rosterEntry.PlayerID,
			Status:   entryStatus,
			SavedAt:  savedAt,
		})
	}

	var saved []lineup.Entry
	err = resilience.Retry(ctx, s.retryAttempts, s.retryMin, s.retryMax,
		func(err error) bool { return isWriteContention(err) },
		func() error {
			var replaceErr error
			saved, replaceErr = s.lineupRepo.ReplaceForManagerDate(ctx, input.ManagerID, input.GameDate, entries)
			return replaceErr
		})
	if err != nil {
		if isWriteContention(err) {
			return nil, fmt.Errorf("%w: save lineup after %d attempts: %v", ErrStorageContention, s.retryAttempts, err)
		}
		return nil, fmt.Errorf("save lineup: %w", err)
	}

	s.appendAuditEntry(ctx, input.ManagerID, input.GameDate, lineup.ActiveIDs(saved))

	return saved, nil
}

// EnsureDefaultLineups materializes a default entry set for the date for
// every manager who has never saved any lineup. Managers covered by sticky
// carry-forward are left alone.
func (s *LineupService) EnsureDefaultLineups(ctx context.Context, gameDate string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.LineupService.EnsureDefaultLineups")
	defer span.End()

	if !schedule.ValidDate(gameDate) {
		return fmt.Errorf("%w: game_date must be formatted as %s", ErrInvalidInput, schedule.DateLayout)
	}

	managers, err := s.managerRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("list managers: %w", err)
	}

	for _, m := range managers {
		hasAny, err := s.lineupRepo.HasAnyForManager(ctx, m.ID)
		if err != nil {
			return fmt.Errorf("check lineup history for manager %d: %w", m.ID, err)
		}
		if hasAny {
			continue
		}

		defaults, err := s.defaultActiveSet(ctx, m.ID)
		if err != nil {
			return err
		}
		if len(defaults) == 0 {
			// No roster yet; the draft has not completed for this league.
			continue
		}

		rosterEntries, err := s.rosterRepo.ListByManager(ctx, m.ID)
		if err != nil {
			return fmt.Errorf("list roster for manager %d: %w", m.ID, err)
		}
		active := make(map[int]struct{}, len(defaults))
		for _, playerID := range defaults {
			active[playerID] = struct{}{}
		}
		savedAt := s.now()
		entries := make([]lineup.Entry, 0, len(rosterEntries))
		for _, rosterEntry := range rosterEntries {
			entryStatus := lineup.StatusBench
			if _, ok := active[rosterEntry.PlayerID]; ok {
				entryStatus = lineup.StatusActive
			}
			entries = append(entries, lineup.Entry{
				PlayerID: rosterEntry.PlayerID,
				Status:   entryStatus,
				SavedAt:  savedAt,
			})
		}

		if _, err := s.lineupRepo.ReplaceForManagerDate(ctx, m.ID, gameDate, entries); err != nil {
			return fmt.Errorf("materialize default lineup for manager %d: %w", m.ID, err)
		}
		s.logger.InfoContext(ctx, "materialized default lineup",
			"manager_id", m.ID, "game_date", gameDate, "active_players", defaults)
	}

	return nil
}

// defaultActiveSet is the tier-3 fallback: the first N roster players by
// ascending player id. Deterministic, not a ranking.
func (s *LineupService) defaultActiveSet(ctx context.Context, managerID int) ([]int, error) {
	rosterEntries, err := s.rosterRepo.ListByManager(ctx, managerID)
	if err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}
	if len(rosterEntries) == 0 {
		return nil, nil
	}

	ids := make([]int, 0, len(rosterEntries))
	for _, entry := range rosterEntries {
		ids = append(ids, entry.PlayerID)
	}
	sort.Ints(ids)
	if len(ids) > s.activeSlots {
		ids = ids[:s.activeSlots]
	}
	return ids, nil
}

// appendAuditEntry records a successful save in the transaction log. Logging
// failures only warn; the save already succeeded.
func (s *LineupService) appendAuditEntry(ctx context.Context, managerID int, gameDate string, activeIDs []int) {
	detail, err := sonic.MarshalString(map[string]any{"active_player_ids": activeIDs})
	if err != nil {
		s.logger.WarnContext(ctx, "encode transaction log detail failed", "error", err)
		return
	}

	entryID, err := s.idGen.NewID()
	if err != nil {
		s.logger.WarnContext(ctx, "generate transaction log id failed", "error", err)
		return
	}

	entry := translog.Entry{
		ID:        entryID,
		LoggedAt:  s.now(),
		ManagerID: managerID,
		GameDate:  gameDate,
		Action:    translog.ActionLineupSave,
		Detail:    detail,
	}
	if err := s.translogRepo.Append(ctx, entry); err != nil {
		s.logger.WarnContext(ctx, "append transaction log failed",
			"manager_id", managerID, "game_date", gameDate, "error", err)
	}
}

func isWriteContention(err error) bool {
	return errors.Is(err, lineup.ErrWriteContention)
}
