package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/riskibarqy/hoops-league/internal/usecase"
)

// uploadBodyLimit caps a box-score upload. A single game never comes close.
const uploadBodyLimit = 4 << 20

type recalcSummaryDTO struct {
	DatesProcessed int      `json:"datesProcessed"`
	DatesFailed    int      `json:"datesFailed"`
	FailedDates    []string `json:"failedDates,omitempty"`
}

func (h *Handler) UpdateScoresForDate(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateScoresForDate")
	defer span.End()

	gameDate := strings.TrimSpace(r.PathValue("date"))
	if err := h.scoringService.UpdateScoresForDate(ctx, gameDate); err != nil {
		h.logger.WarnContext(ctx, "update scores failed", "game_date", gameDate, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"gameDate": gameDate, "status": "scored"})
}

func (h *Handler) RecalculateAllScores(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecalculateAllScores")
	defer span.End()

	summary, err := h.scoringService.RecalculateAll(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "season recalculation failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, recalcSummaryDTO{
		DatesProcessed: summary.DatesProcessed,
		DatesFailed:    summary.DatesFailed,
		FailedDates:    summary.FailedDates,
	})
}

func (h *Handler) UploadGameStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UploadGameStats")
	defer span.End()

	gameDate := strings.TrimSpace(r.PathValue("date"))
	rawGame := strings.TrimSpace(r.PathValue("game"))
	gameNum, err := strconv.Atoi(rawGame)
	if err != nil || gameNum <= 0 {
		writeError(ctx, w, fmt.Errorf("%w: game must be a positive integer", usecase.ErrInvalidInput))
		return
	}

	body := http.MaxBytesReader(w, r.Body, uploadBodyLimit)
	defer body.Close()

	summary, err := h.uploadService.UploadGameStats(ctx, gameDate, gameNum, body)
	if err != nil {
		h.logger.WarnContext(ctx, "upload game stats failed", "game_date", gameDate, "game_num", gameNum, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, summary)
}
