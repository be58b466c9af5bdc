package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/hoops-league/internal/domain/lineup"
	"github.com/riskibarqy/hoops-league/internal/domain/manager"
	"github.com/riskibarqy/hoops-league/internal/domain/roster"
	"github.com/riskibarqy/hoops-league/internal/domain/schedule"
	"github.com/riskibarqy/hoops-league/internal/infrastructure/repository/memory"
	lineupmock "github.com/riskibarqy/hoops-league/internal/mocks/domain/lineup"
	"github.com/riskibarqy/hoops-league/internal/platform/id"
	"github.com/stretchr/testify/mock"
)

type lineupFixture struct {
	service  *LineupService
	lineups  *memory.LineupRepository
	rosters  *memory.RosterRepository
	managers *memory.ManagerRepository
	games    *memory.ScheduleRepository
	translog *memory.TranslogRepository
	loc      *time.Location
}

func newLineupFixture(t *testing.T) *lineupFixture {
	t.Helper()

	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Fatalf("load timezone: %v", err)
	}

	f := &lineupFixture{
		lineups:  memory.NewLineupRepository(),
		rosters:  memory.NewRosterRepository(),
		managers: memory.NewManagerRepository(),
		games:    memory.NewScheduleRepository(),
		translog: memory.NewTranslogRepository(),
		loc:      loc,
	}
	f.managers.Seed(
		manager.Manager{ID: 1, Name: "Alex", TeamName: "Alley Oops"},
		manager.Manager{ID: 2, Name: "Brook", TeamName: "Brick City"},
	)
	f.service = NewLineupService(
		f.lineups, f.rosters, f.managers, f.games, f.translog,
		id.NewRandomGenerator(), loc, 3, 3,
		time.Millisecond, 2*time.Millisecond, nil,
	)
	return f
}

func (f *lineupFixture) seedRoster(t *testing.T, managerID int, playerIDs ...int) {
	t.Helper()

	existing, err := f.rosters.List(context.Background())
	if err != nil {
		t.Fatalf("list rosters: %v", err)
	}
	for _, playerID := range playerIDs {
		existing = append(existing, roster.Entry{
			ManagerID:       managerID,
			PlayerID:        playerID,
			AcquisitionType: roster.AcquisitionDraft,
			AcquiredAt:      time.Date(2026, 1, 4, 12, 0, 0, 0, time.UTC),
		})
	}
	if err := f.rosters.ReplaceAll(context.Background(), existing); err != nil {
		t.Fatalf("seed roster: %v", err)
	}
}

func (f *lineupFixture) freeze(at time.Time) {
	f.service.now = func() time.Time { return at }
}

func TestLineupService_LockInstant_NoGamesFallsBackToEndOfDay(t *testing.T) {
	t.Parallel()

	f := newLineupFixture(t)
	lockAt, err := f.service.LockInstant(context.Background(), "2026-01-12")
	if err != nil {
		t.Fatalf("lock instant: %v", err)
	}

	want := time.Date(2026, 1, 12, 23, 59, 59, 0, f.loc)
	if !lockAt.Equal(want) {
		t.Fatalf("unexpected lock instant: got=%s want=%s", lockAt, want)
	}
}

func TestLineupService_LockInstant_UsesEarliestTipoff(t *testing.T) {
	t.Parallel()

	f := newLineupFixture(t)
	f.games.Seed(
		schedule.Game{ID: 1, GameDate: "2026-01-12", TipoffET: "19:30", HomeTeam: "BOS", AwayTeam: "NYK"},
		schedule.Game{ID: 2, GameDate: "2026-01-12", TipoffET: "19:00", HomeTeam: "MIA", AwayTeam: "ORL"},
	)

	lockAt, err := f.service.LockInstant(context.Background(), "2026-01-12")
	if err != nil {
		t.Fatalf("lock instant: %v", err)
	}
	want := time.Date(2026, 1, 12, 19, 0, 0, 0, f.loc)
	if !lockAt.Equal(want) {
		t.Fatalf("unexpected lock instant: got=%s want=%s", lockAt, want)
	}
}

func TestLineupService_LockStatus_Boundary(t *testing.T) {
	t.Parallel()

	f := newLineupFixture(t)
	f.games.Seed(schedule.Game{ID: 1, GameDate: "2026-01-12", TipoffET: "19:30", HomeTeam: "BOS", AwayTeam: "NYK"})

	f.freeze(time.Date(2026, 1, 12, 19, 29, 59, 0, f.loc))
	status, err := f.service.LockStatus(context.Background(), "2026-01-12")
	if err != nil {
		t.Fatalf("lock status: %v", err)
	}
	if status.Locked {
		t.Fatal("expected unlocked one second before tipoff")
	}

	f.freeze(time.Date(2026, 1, 12, 19, 30, 0, 0, f.loc))
	status, err = f.service.LockStatus(context.Background(), "2026-01-12")
	if err != nil {
		t.Fatalf("lock status: %v", err)
	}
	if !status.Locked {
		t.Fatal("expected locked exactly at tipoff")
	}
}

func TestLineupService_LockStatus_PastDateAlwaysLocked(t *testing.T) {
	t.Parallel()

	f := newLineupFixture(t)
	f.freeze(time.Date(2026, 1, 13, 0, 0, 1, 0, f.loc))

	status, err := f.service.LockStatus(context.Background(), "2026-01-12")
	if err != nil {
		t.Fatalf("lock status: %v", err)
	}
	if !status.Locked {
		t.Fatal("expected a past date to be locked")
	}
}

func TestLineupService_ActivePlayers_ThreeTierFallback(t *testing.T) {
	t.Parallel()

	f := newLineupFixture(t)
	ctx := context.Background()
	f.seedRoster(t, 1, 14, 7, 22, 3, 31, 9)

	// Tier 3: nothing saved, first three roster players by id.
	got, err := f.service.ActivePlayers(ctx, 1, "2026-01-12")
	if err != nil {
		t.Fatalf("active players: %v", err)
	}
	assertIntsEqual(t, got, []int{3, 7, 9})

	// Tier 2: a prior save carries forward to later dates.
	saveLineupForTest(t, f, 1, "2026-01-12", []int{14, 22, 31})
	got, err = f.service.ActivePlayers(ctx, 1, "2026-01-20")
	if err != nil {
		t.Fatalf("active players: %v", err)
	}
	assertIntsEqual(t, got, []int{14, 22, 31})

	// Tier 1: the explicit lineup wins on its own date.
	saveLineupForTest(t, f, 1, "2026-01-20", []int{3, 14, 22})
	got, err = f.service.ActivePlayers(ctx, 1, "2026-01-20")
	if err != nil {
		t.Fatalf("active players: %v", err)
	}
	assertIntsEqual(t, got, []int{3, 14, 22})
}

func TestLineupService_Save_LockCheckRunsFirst(t *testing.T) {
	t.Parallel()

	f := newLineupFixture(t)
	f.freeze(time.Date(2026, 1, 13, 12, 0, 0, 0, f.loc))

	// Wrong active count too, but the lock rejection must win.
	_, err := f.service.Save(context.Background(), SaveLineupInput{
		ManagerID:       1,
		GameDate:        "2026-01-12",
		ActivePlayerIDs: []int{7},
	})
	if !errors.Is(err, ErrLineupLocked) {
		t.Fatalf("expected ErrLineupLocked, got %v", err)
	}
}

func TestLineupService_Save_Rejections(t *testing.T) {
	t.Parallel()

	f := newLineupFixture(t)
	f.seedRoster(t, 1, 3, 7, 9, 14, 22, 31)
	f.freeze(time.Date(2026, 1, 12, 8, 0, 0, 0, f.loc))
	ctx := context.Background()

	cases := []struct {
		name    string
		active  []int
		wantErr error
	}{
		{"wrong count", []int{3, 7}, ErrInvalidInput},
		{"duplicate", []int{3, 3, 7}, ErrInvalidInput},
		{"off roster", []int{3, 7, 99}, ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.service.Save(ctx, SaveLineupInput{ManagerID: 1, GameDate: "2026-01-12", ActivePlayerIDs: tc.active})
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("expected %v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestLineupService_Save_PersistsFullRosterAndAuditRow(t *testing.T) {
	t.Parallel()

	f := newLineupFixture(t)
	f.seedRoster(t, 1, 3, 7, 9, 14, 22, 31)
	f.freeze(time.Date(2026, 1, 12, 8, 0, 0, 0, f.loc))
	ctx := context.Background()

	saved, err := f.service.Save(ctx, SaveLineupInput{ManagerID: 1, GameDate: "2026-01-12", ActivePlayerIDs: []int{7, 14, 31}})
	if err != nil {
		t.Fatalf("save lineup: %v", err)
	}
	if len(saved) != 6 {
		t.Fatalf("expected one entry per roster player, got %d", len(saved))
	}
	assertIntsEqual(t, lineup.ActiveIDs(saved), []int{7, 14, 31})
	for _, entry := range saved {
		if entry.ID == 0 {
			t.Fatalf("entry for player %d has no id", entry.PlayerID)
		}
	}

	audit, err := f.translog.List(ctx)
	if err != nil {
		t.Fatalf("list transaction log: %v", err)
	}
	if len(audit) != 1 {
		t.Fatalf("expected one audit row, got %d", len(audit))
	}
	if audit[0].Action != "lineup_save" || audit[0].ManagerID != 1 {
		t.Fatalf("unexpected audit row: %+v", audit[0])
	}
}

func TestLineupService_Save_RetriesContentionThenSucceeds(t *testing.T) {
	t.Parallel()

	f := newLineupFixture(t)
	f.seedRoster(t, 1, 3, 7, 9)
	f.freeze(time.Date(2026, 1, 12, 8, 0, 0, 0, f.loc))

	lineupRepo := lineupmock.NewRepository(t)
	f.service.lineupRepo = lineupRepo

	saved := []lineup.Entry{
		{ID: 1, ManagerID: 1, GameDate: "2026-01-12", PlayerID: 3, Status: lineup.StatusActive},
		{ID: 2, ManagerID: 1, GameDate: "2026-01-12", PlayerID: 7, Status: lineup.StatusActive},
		{ID: 3, ManagerID: 1, GameDate: "2026-01-12", PlayerID: 9, Status: lineup.StatusActive},
	}
	lineupRepo.
		On("ReplaceForManagerDate", mock.Anything, 1, "2026-01-12", mock.Anything).
		Return(nil, lineup.ErrWriteContention).
		Twice()
	lineupRepo.
		On("ReplaceForManagerDate", mock.Anything, 1, "2026-01-12", mock.Anything).
		Return(saved, nil).
		Once()

	got, err := f.service.Save(context.Background(), SaveLineupInput{ManagerID: 1, GameDate: "2026-01-12", ActivePlayerIDs: []int{3, 7, 9}})
	if err != nil {
		t.Fatalf("save lineup: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("unexpected entry count: %d", len(got))
	}
}

func TestLineupService_Save_ContentionExhaustsRetryBudget(t *testing.T) {
	t.Parallel()

	f := newLineupFixture(t)
	f.seedRoster(t, 1, 3, 7, 9)
	f.freeze(time.Date(2026, 1, 12, 8, 0, 0, 0, f.loc))

	lineupRepo := lineupmock.NewRepository(t)
	f.service.lineupRepo = lineupRepo
	lineupRepo.
		On("ReplaceForManagerDate", mock.Anything, 1, "2026-01-12", mock.Anything).
		Return(nil, lineup.ErrWriteContention).
		Times(3)

	_, err := f.service.Save(context.Background(), SaveLineupInput{ManagerID: 1, GameDate: "2026-01-12", ActivePlayerIDs: []int{3, 7, 9}})
	if !errors.Is(err, ErrStorageContention) {
		t.Fatalf("expected ErrStorageContention, got %v", err)
	}
}

func TestLineupService_EnsureDefaultLineups_OnlyNeverSetManagers(t *testing.T) {
	t.Parallel()

	f := newLineupFixture(t)
	ctx := context.Background()
	f.seedRoster(t, 1, 3, 7, 9, 14, 22, 31)
	f.seedRoster(t, 2, 4, 8, 10, 15, 23, 32)
	f.freeze(time.Date(2026, 1, 12, 8, 0, 0, 0, f.loc))

	// Manager 1 already saved once; the materializer must leave them alone.
	saveLineupForTest(t, f, 1, "2026-01-10", []int{9, 22, 31})

	if err := f.service.EnsureDefaultLineups(ctx, "2026-01-12"); err != nil {
		t.Fatalf("ensure default lineups: %v", err)
	}

	entries, err := f.lineups.ListByManagerAndDate(ctx, 1, "2026-01-12")
	if err != nil {
		t.Fatalf("list lineup: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no materialized rows for manager 1, got %d", len(entries))
	}

	entries, err = f.lineups.ListByManagerAndDate(ctx, 2, "2026-01-12")
	if err != nil {
		t.Fatalf("list lineup: %v", err)
	}
	if len(entries) != 6 {
		t.Fatalf("expected full roster materialized for manager 2, got %d", len(entries))
	}
	assertIntsEqual(t, lineup.ActiveIDs(entries), []int{4, 8, 10})
}

func saveLineupForTest(t *testing.T, f *lineupFixture, managerID int, gameDate string, active []int) {
	t.Helper()

	restore := f.service.now
	f.freeze(mustParseDateIn(t, gameDate, f.loc).Add(6 * time.Hour))
	defer func() { f.service.now = restore }()

	if _, err := f.service.Save(context.Background(), SaveLineupInput{
		ManagerID:       managerID,
		GameDate:        gameDate,
		ActivePlayerIDs: active,
	}); err != nil {
		t.Fatalf("save lineup for %s: %v", gameDate, err)
	}
}

func mustParseDateIn(t *testing.T, gameDate string, loc *time.Location) time.Time {
	t.Helper()

	day, err := time.ParseInLocation(schedule.DateLayout, gameDate, loc)
	if err != nil {
		t.Fatalf("parse date %s: %v", gameDate, err)
	}
	return day
}

func assertIntsEqual(t *testing.T, got, want []int) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("unexpected ids: got=%v want=%v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("unexpected ids: got=%v want=%v", got, want)
		}
	}
}
