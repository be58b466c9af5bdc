package httpapi

import (
	"net/http"
	"time"

	"github.com/riskibarqy/hoops-league/internal/domain/standings"
)

type standingDTO struct {
	ManagerID       int     `json:"managerId"`
	TotalPoints     float64 `json:"totalPoints"`
	GamesWithScores int     `json:"gamesWithScores"`
	AveragePoints   float64 `json:"averagePoints"`
	Rank            int     `json:"rank"`
	UpdatedAt       string  `json:"updatedAt"`
}

func standingsToDTO(table []standings.Standing) []standingDTO {
	items := make([]standingDTO, 0, len(table))
	for _, standing := range table {
		items = append(items, standingDTO{
			ManagerID:       standing.ManagerID,
			TotalPoints:     standing.TotalPoints,
			GamesWithScores: standing.GamesWithScores,
			AveragePoints:   standing.AveragePoints,
			Rank:            standing.Rank,
			UpdatedAt:       standing.UpdatedAt.Format(time.RFC3339),
		})
	}
	return items
}

func (h *Handler) ListStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStandings")
	defer span.End()

	table, err := h.standingsService.List(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list standings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingsToDTO(table))
}

func (h *Handler) RefreshStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RefreshStandings")
	defer span.End()

	table, err := h.standingsService.Refresh(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "refresh standings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingsToDTO(table))
}
