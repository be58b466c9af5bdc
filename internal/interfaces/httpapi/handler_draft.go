package httpapi

import (
	"fmt"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/hoops-league/internal/usecase"
)

type executeDraftRequest struct {
	PlayerIDs []int `json:"player_ids" validate:"required,min=1,dive,gt=0"`
}

type draftSlotDTO struct {
	Pick      int `json:"pick"`
	Round     int `json:"round"`
	ManagerID int `json:"managerId"`
}

type draftResultDTO struct {
	Pick      int    `json:"pick"`
	Round     int    `json:"round"`
	ManagerID int    `json:"managerId"`
	PlayerID  int    `json:"playerId"`
	PickedAt  string `json:"pickedAt"`
}

type playerDTO struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Team   string `json:"team"`
	Status string `json:"status"`
}

func (h *Handler) GetDraftOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDraftOrder")
	defer span.End()

	order, err := h.draftService.Order(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get draft order failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]draftSlotDTO, 0, len(order))
	for _, slot := range order {
		items = append(items, draftSlotDTO{Pick: slot.Pick, Round: slot.Round, ManagerID: slot.ManagerID})
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ExecuteDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExecuteDraft")
	defer span.End()

	var req executeDraftRequest
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

	results, err := h.draftService.Execute(ctx, req.PlayerIDs)
	if err != nil {
		h.logger.WarnContext(ctx, "execute draft failed", "picks", len(req.PlayerIDs), "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]draftResultDTO, 0, len(results))
	for _, result := range results {
		items = append(items, draftResultDTO{
			Pick:      result.Pick,
			Round:     result.Round,
			ManagerID: result.ManagerID,
			PlayerID:  result.PlayerID,
			PickedAt:  result.PickedAt.Format(time.RFC3339),
		})
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetDraftStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDraftStatus")
	defer span.End()

	status, err := h.draftService.Status(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get draft status failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"picksMade":  status.PicksMade,
		"totalPicks": status.TotalPicks,
		"complete":   status.Complete,
	})
}

func (h *Handler) ListAvailablePlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAvailablePlayers")
	defer span.End()

	players, err := h.draftService.AvailablePlayers(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list available players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerDTO{ID: p.ID, Name: p.Name, Team: p.Team, Status: p.Status})
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}
