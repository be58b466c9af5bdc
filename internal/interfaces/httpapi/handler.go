package httpapi

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/hoops-league/internal/domain/lineup"
	"github.com/riskibarqy/hoops-league/internal/usecase"
)

type Handler struct {
	lineupService      *usecase.LineupService
	scoringService     *usecase.ScoringService
	standingsService   *usecase.StandingsService
	draftService       *usecase.DraftService
	tournamentService  *usecase.TournamentService
	uploadService      *usecase.UploadService
	playerStatsService *usecase.PlayerStatsService
	recapService       *usecase.RecapService
	backupService      *usecase.BackupService
	logger             *slog.Logger
	validator          *validator.Validate
}

func NewHandler(
	lineupService *usecase.LineupService,
	scoringService *usecase.ScoringService,
	standingsService *usecase.StandingsService,
	draftService *usecase.DraftService,
	tournamentService *usecase.TournamentService,
	uploadService *usecase.UploadService,
	playerStatsService *usecase.PlayerStatsService,
	recapService *usecase.RecapService,
	backupService *usecase.BackupService,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		lineupService:      lineupService,
		scoringService:     scoringService,
		standingsService:   standingsService,
		draftService:       draftService,
		tournamentService:  tournamentService,
		uploadService:      uploadService,
		playerStatsService: playerStatsService,
		recapService:       recapService,
		backupService:      backupService,
		logger:             logger,
		validator:          validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func pathManagerID(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.PathValue("managerID"))
	managerID, err := strconv.Atoi(raw)
	if err != nil || managerID <= 0 {
		return 0, fmt.Errorf("%w: managerID must be a positive integer", usecase.ErrInvalidInput)
	}
	return managerID, nil
}

type lineupEntryDTO struct {
	ID       int64  `json:"id"`
	PlayerID int    `json:"playerId"`
	Status   string `json:"status"`
	SavedAt  string `json:"savedAt"`
}

type lineupResponseDTO struct {
	ManagerID int              `json:"managerId"`
	GameDate  string           `json:"gameDate"`
	Entries   []lineupEntryDTO `json:"entries"`
	ActiveIDs []int            `json:"activeIds"`
}

func lineupToDTO(managerID int, gameDate string, entries []lineup.Entry) lineupResponseDTO {
	items := make([]lineupEntryDTO, 0, len(entries))
	for _, entry := range entries {
		items = append(items, lineupEntryDTO{
			ID:       entry.ID,
			PlayerID: entry.PlayerID,
			Status:   entry.Status,
			SavedAt:  entry.SavedAt.Format(time.RFC3339),
		})
	}
	return lineupResponseDTO{
		ManagerID: managerID,
		GameDate:  gameDate,
		Entries:   items,
		ActiveIDs: lineup.ActiveIDs(entries),
	}
}
