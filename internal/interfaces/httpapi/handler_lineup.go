package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/hoops-league/internal/usecase"
)

type saveLineupRequest struct {
	ActivePlayerIDs []int `json:"active_player_ids" validate:"required,min=1,dive,gt=0"`
}

type lockStatusDTO struct {
	GameDate string `json:"gameDate"`
	LockAt   string `json:"lockAt"`
	Locked   bool   `json:"locked"`
}

func (h *Handler) GetLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLineup")
	defer span.End()

	managerID, err := pathManagerID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	gameDate := strings.TrimSpace(r.PathValue("date"))

	entries, err := h.lineupService.Lineup(ctx, managerID, gameDate)
	if err != nil {
		h.logger.WarnContext(ctx, "get lineup failed", "manager_id", managerID, "game_date", gameDate, "error", err)
		writeError(ctx, w, err)
		return
	}
	if len(entries) == 0 {
		// No explicit lineup; report the effective active set instead.
		active, err := h.lineupService.ActivePlayers(ctx, managerID, gameDate)
		if err != nil {
			writeError(ctx, w, err)
			return
		}
		writeSuccess(ctx, w, http.StatusOK, lineupResponseDTO{
			ManagerID: managerID,
			GameDate:  gameDate,
			Entries:   []lineupEntryDTO{},
			ActiveIDs: active,
		})
		return
	}

	writeSuccess(ctx, w, http.StatusOK, lineupToDTO(managerID, gameDate, entries))
}

func (h *Handler) SaveLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveLineup")
	defer span.End()

	managerID, err := pathManagerID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	gameDate := strings.TrimSpace(r.PathValue("date"))

	var req saveLineupRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	saved, err := h.lineupService.Save(ctx, usecase.SaveLineupInput{
		ManagerID:       managerID,
		GameDate:        gameDate,
		ActivePlayerIDs: req.ActivePlayerIDs,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "save lineup failed", "manager_id", managerID, "game_date", gameDate, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, lineupToDTO(managerID, gameDate, saved))
}

func (h *Handler) GetLineupLock(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLineupLock")
	defer span.End()

	if _, err := pathManagerID(r); err != nil {
		writeError(ctx, w, err)
		return
	}
	gameDate := strings.TrimSpace(r.PathValue("date"))

	status, err := h.lineupService.LockStatus(ctx, gameDate)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, lockStatusDTO{
		GameDate: status.GameDate,
		LockAt:   status.LockAt.Format(time.RFC3339),
		Locked:   status.Locked,
	})
}
