package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /teams/{$}", handler.ListTeams)
	mux.HandleFunc("GET /teams/{teamID}", handler.GetTeam)
	mux.HandleFunc("GET /teams/{teamID}/record", handler.GetTeamRecord)
	mux.HandleFunc("GET /teams/{teamID}/trend", handler.GetTeamTrend)
	mux.HandleFunc("GET /matches/{$}", handler.ListMatches)
	mux.HandleFunc("GET /dashboard/{$}", handler.GetDashboard)

	mux.HandleFunc("GET /stats/teams/{$}", handler.ListTeamStats)
	mux.HandleFunc("GET /stats/teams/winloss/{$}", handler.ListTeamWinLoss)
	mux.HandleFunc("GET /stats/teams/avggoals/{$}", handler.ListTeamAverageGoals)
	mux.HandleFunc("GET /stats/teams/topscorers/{$}", handler.ListTopScorers)
	mux.HandleFunc("GET /stats/matches/top5goals/{$}", handler.ListTopScoringMatches)
	mux.HandleFunc("GET /stats/matches/countbydate/{$}", handler.ListMatchCountByDate)
	mux.HandleFunc("GET /stats/leagues/matchcount/{$}", handler.ListLeagueMatchCounts)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /internal/jobs/sync", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunSnapshotSync)))
}
