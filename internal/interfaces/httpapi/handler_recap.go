package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/hoops-league/internal/usecase"
)

func (h *Handler) GetDailyRecap(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDailyRecap")
	defer span.End()

	gameDate := strings.TrimSpace(r.PathValue("date"))
	recap, err := h.recapService.DailyRecap(ctx, gameDate)
	if err != nil {
		h.logger.WarnContext(ctx, "get daily recap failed", "game_date", gameDate, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, recap)
}

func (h *Handler) GetPlayerSeasonStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerSeasonStats")
	defer span.End()

	raw := strings.TrimSpace(r.PathValue("playerID"))
	playerID, err := strconv.Atoi(raw)
	if err != nil || playerID <= 0 {
		writeError(ctx, w, fmt.Errorf("%w: playerID must be a positive integer", usecase.ErrInvalidInput))
		return
	}

	line, err := h.playerStatsService.SeasonLine(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player season stats failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, line)
}

func (h *Handler) ListPlayerSeasonStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerSeasonStats")
	defer span.End()

	lines, err := h.playerStatsService.SeasonLines(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list player season stats failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, lines)
}
