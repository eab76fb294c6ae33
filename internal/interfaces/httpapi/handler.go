package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/yagizozmericc/bay-tahmin-sub001/internal/domain/match"
	"github.com/yagizozmericc/bay-tahmin-sub001/internal/platform/logging"
	"github.com/yagizozmericc/bay-tahmin-sub001/internal/usecase"
)

type Handler struct {
	dashboardService *usecase.DashboardService
	matchService     *usecase.MatchService
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	dashboardService *usecase.DashboardService,
	matchService *usecase.MatchService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		dashboardService: dashboardService,
		matchService:     matchService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDashboard")
	defer span.End()

	dashboard, err := h.dashboardService.Get(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get dashboard failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, dashboardToDTO(dashboard))
}

func (h *Handler) GetQuickActions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetQuickActions")
	defer span.End()

	view, err := h.dashboardService.QuickActionsPanel(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get quick actions failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, quickActionsViewToDTO(view))
}

func (h *Handler) GetActivity(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetActivity")
	defer span.End()

	view, err := h.dashboardService.ActivityFeed(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get activity feed failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, activityViewToDTO(view))
}

func (h *Handler) GetCompetitions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCompetitions")
	defer span.End()

	view, err := h.dashboardService.CompetitionOverview(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "get competition overview failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, competitionsViewToDTO(view))
}

func (h *Handler) ListUpcomingMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListUpcomingMatches")
	defer span.End()

	req := upcomingMatchesRequest{
		Competitions: splitQueryCSV(r.URL.Query().Get("competitions")),
		DateFrom:     strings.TrimSpace(r.URL.Query().Get("dateFrom")),
		DateTo:       strings.TrimSpace(r.URL.Query().Get("dateTo")),
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	matches, err := h.matchService.ListUpcoming(ctx, match.Query{
		Competitions: req.Competitions,
		DateFrom:     req.DateFrom,
		DateTo:       req.DateTo,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list upcoming matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]upcomingMatchDTO, 0, len(matches))
	for _, m := range matches {
		items = append(items, upcomingToDTO(m))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListRecentResults(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListRecentResults")
	defer span.End()

	req := recentResultsRequest{
		Competitions: splitQueryCSV(r.URL.Query().Get("competitions")),
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			writeError(ctx, w, fmt.Errorf("%w: limit must be an integer", usecase.ErrInvalidInput))
			return
		}
		req.Limit = limit
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	results, err := h.matchService.ListResults(ctx, match.ResultQuery{
		Competitions: req.Competitions,
		Limit:        req.Limit,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "list recent results failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]resultDTO, 0, len(results))
	for _, res := range results {
		items = append(items, resultToDTO(res))
	}
	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type upcomingMatchesRequest struct {
	Competitions []string `validate:"omitempty,max=10,dive,required,uppercase,min=2,max=5"`
	DateFrom     string   `validate:"omitempty,datetime=2006-01-02"`
	DateTo       string   `validate:"omitempty,datetime=2006-01-02"`
}

type recentResultsRequest struct {
	Competitions []string `validate:"omitempty,max=10,dive,required,uppercase,min=2,max=5"`
	Limit        int      `validate:"omitempty,min=1,max=50"`
}

func splitQueryCSV(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
