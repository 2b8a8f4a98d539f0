package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players/{playerID}/stats", handler.GetPlayerStats)
	mux.HandleFunc("GET /v1/leaderboards", handler.GetLeaderboards)
	mux.HandleFunc("GET /v1/stats/overview", handler.GetStatsOverview)
	mux.HandleFunc("GET /v1/matches/{matchID}/events", handler.ListMatchEvents)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/standings", handler.ListStandings)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/prizes", handler.ListPrizes)
	mux.HandleFunc("GET /v1/tournaments/{tournamentID}/player-scores", handler.ListPlayerScores)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler, adminToken string) {
	admin := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, RequireAdminToken(adminToken, fn))
	}

	admin("POST /v1/admin/matches/{matchID}/stats/recompute", handler.RecomputeMatchStats)
	admin("POST /v1/admin/matches/{matchID}/events", handler.RecordMatchEvents)
	admin("PUT /v1/admin/matches/{matchID}/players/{playerID}/rating", handler.SetPlayerRating)
	admin("POST /v1/admin/tournaments/{tournamentID}/stats/recompute", handler.RecomputeTournamentStats)
	admin("POST /v1/admin/tournaments/{tournamentID}/standings/recalculate", handler.RecalculateStandings)
	admin("POST /v1/admin/tournaments/{tournamentID}/prizes/calculate", handler.CalculatePrizes)
	admin("PUT /v1/admin/tournaments/{tournamentID}/prizes/player-of-tournament", handler.SetPlayerOfTournament)
}
