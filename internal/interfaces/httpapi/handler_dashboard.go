package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/delilt/football-dashboard/internal/usecase"
)

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) GetTeamRecord(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamRecord")
	defer span.End()

	teamID, err := parseTeamIDPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	filter, err := h.parseFilter(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	record, err := h.statsService.TeamRecord(ctx, teamID, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "team record failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toRecordDTO(record))
}

func (h *Handler) GetTeamTrend(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamTrend")
	defer span.End()

	teamID, err := parseTeamIDPath(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	filter, err := h.parseFilter(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	trend, err := h.statsService.TeamTrend(ctx, teamID, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "team trend failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toMonthGoalsDTOs(trend))
}

func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDashboard")
	defer span.End()

	rawTeamID := strings.TrimSpace(r.URL.Query().Get("team_id"))
	teamID, err := strconv.ParseInt(rawTeamID, 10, 64)
	if err != nil || teamID < 1 {
		writeError(ctx, w, fmt.Errorf("%w: team_id must be a positive integer", usecase.ErrInvalidInput))
		return
	}

	filter, err := h.parseFilter(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	// team_id doubles as the dashboard subject; the filter itself stays
	// unscoped so the services can apply it per view.
	filter.TeamID = 0

	dashboard, err := h.dashboardService.Get(ctx, teamID, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "get dashboard failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toDashboardDTO(dashboard))
}
