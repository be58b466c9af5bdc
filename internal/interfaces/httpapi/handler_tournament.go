package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/hoops-league/internal/usecase"
)

type savePicksRequest struct {
	PlayerIDs []int `json:"player_ids" validate:"required,min=1,dive,gt=0"`
}

type scoreRoundRequest struct {
	GameDate string `json:"game_date" validate:"required"`
}

type matchupDTO struct {
	Round         int `json:"round"`
	Slot          int `json:"slot"`
	HomeSeed      int `json:"homeSeed"`
	AwaySeed      int `json:"awaySeed"`
	HomeManagerID int `json:"homeManagerId"`
	AwayManagerID int `json:"awayManagerId"`
}

func pathRound(r *http.Request) (int, error) {
	raw := strings.TrimSpace(r.PathValue("round"))
	round, err := strconv.Atoi(raw)
	if err != nil || round <= 0 {
		return 0, fmt.Errorf("%w: round must be a positive integer", usecase.ErrInvalidInput)
	}
	return round, nil
}

func (h *Handler) GetTournamentBracket(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTournamentBracket")
	defer span.End()

	matchups, err := h.tournamentService.Bracket(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get tournament bracket failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchupDTO, 0, len(matchups))
	for _, matchup := range matchups {
		items = append(items, matchupDTO{
			Round:         matchup.Round,
			Slot:          matchup.Slot,
			HomeSeed:      matchup.HomeSeed,
			AwaySeed:      matchup.AwaySeed,
			HomeManagerID: matchup.HomeManagerID,
			AwayManagerID: matchup.AwayManagerID,
		})
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) SaveTournamentPicks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveTournamentPicks")
	defer span.End()

	round, err := pathRound(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	managerID, err := pathManagerID(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req savePicksRequest
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

	picks, err := h.tournamentService.SavePicks(ctx, round, managerID, req.PlayerIDs)
	if err != nil {
		h.logger.WarnContext(ctx, "save tournament picks failed", "round", round, "manager_id", managerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"round":     round,
		"managerId": managerID,
		"picks":     len(picks),
	})
}

func (h *Handler) ScoreTournamentRound(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ScoreTournamentRound")
	defer span.End()

	round, err := pathRound(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req scoreRoundRequest
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

	results, err := h.tournamentService.ScoreRound(ctx, round, req.GameDate)
	if err != nil {
		h.logger.WarnContext(ctx, "score tournament round failed", "round", round, "game_date", req.GameDate, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, results)
}
