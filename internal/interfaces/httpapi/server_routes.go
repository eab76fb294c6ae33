package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerDashboardRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/dashboard", handler.GetDashboard)
	mux.HandleFunc("GET /v1/dashboard/quick-actions", handler.GetQuickActions)
	mux.HandleFunc("GET /v1/dashboard/activity", handler.GetActivity)
	mux.HandleFunc("GET /v1/dashboard/competitions", handler.GetCompetitions)
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/matches/upcoming", handler.ListUpcomingMatches)
	mux.HandleFunc("GET /v1/results/recent", handler.ListRecentResults)
}
