package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/seasons", handler.ListSeasons)
	mux.HandleFunc("GET /v1/seasons/current", handler.GetCurrentSeason)
	mux.HandleFunc("GET /v1/seasons/{year}", handler.GetSeasonByYear)
	mux.HandleFunc("GET /v1/teams/{teamID}/view", handler.GetTeamView)
	mux.HandleFunc("GET /v1/analytics/power-rankings", handler.ListPowerRankings)
	mux.HandleFunc("GET /v1/analytics/betting-edges", handler.ListBettingEdges)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/warm", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunWarmJob)))
	mux.Handle("POST /v1/internal/jobs/invalidate", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunInvalidateJob)))
}
