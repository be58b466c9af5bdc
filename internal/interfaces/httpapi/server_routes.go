package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerLeagueRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/lineups/{managerID}/{date}", handler.GetLineup)
	mux.HandleFunc("PUT /v1/lineups/{managerID}/{date}", handler.SaveLineup)
	mux.HandleFunc("GET /v1/lineups/{managerID}/{date}/lock", handler.GetLineupLock)

	mux.HandleFunc("GET /v1/standings", handler.ListStandings)

	mux.HandleFunc("GET /v1/draft/order", handler.GetDraftOrder)
	mux.HandleFunc("GET /v1/draft/status", handler.GetDraftStatus)
	mux.HandleFunc("GET /v1/draft/available", handler.ListAvailablePlayers)
	mux.HandleFunc("POST /v1/draft/execute", handler.ExecuteDraft)

	mux.HandleFunc("GET /v1/tournament/bracket", handler.GetTournamentBracket)
	mux.HandleFunc("PUT /v1/tournament/rounds/{round}/picks/{managerID}", handler.SaveTournamentPicks)

	mux.HandleFunc("GET /v1/players/stats", handler.ListPlayerSeasonStats)
	mux.HandleFunc("GET /v1/players/{playerID}/stats", handler.GetPlayerSeasonStats)
	mux.HandleFunc("GET /v1/recap/{date}", handler.GetDailyRecap)
}

// Routes that mutate derived data or move files are gated behind the static
// internal job token.
func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	guard := func(h http.HandlerFunc) http.Handler {
		return RequireInternalJobToken(internalJobToken, h)
	}

	mux.Handle("POST /v1/uploads/{date}/{game}", guard(handler.UploadGameStats))
	mux.Handle("POST /v1/scores/{date}", guard(handler.UpdateScoresForDate))
	mux.Handle("POST /v1/scores/recalculate", guard(handler.RecalculateAllScores))
	mux.Handle("POST /v1/standings/refresh", guard(handler.RefreshStandings))
	mux.Handle("POST /v1/tournament/rounds/{round}/score", guard(handler.ScoreTournamentRound))
	mux.Handle("POST /v1/backup", guard(handler.ExportBackup))
	mux.Handle("POST /v1/restore", guard(handler.ImportBackup))
}
