package httpapi

import "net/http"

const defaultTopMatches = 5
const defaultTopScorers = 5

func (h *Handler) ListTeamStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamStats")
	defer span.End()

	table, err := h.statsService.TeamTable(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "team stats table failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toTeamRowDTOs(table))
}

func (h *Handler) ListTeamWinLoss(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamWinLoss")
	defer span.End()

	table, err := h.statsService.WinLossTable(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "win/loss table failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toTeamRowDTOs(table))
}

func (h *Handler) ListTeamAverageGoals(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeamAverageGoals")
	defer span.End()

	rows, err := h.statsService.AverageGoals(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "average goals failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toTeamAverageDTOs(rows))
}

func (h *Handler) ListTopScorers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopScorers")
	defer span.End()

	limit, err := parseLimit(r, defaultTopScorers)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.statsService.TopScorers(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "top scorers failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toTeamGoalsDTOs(rows))
}

func (h *Handler) ListTopScoringMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTopScoringMatches")
	defer span.End()

	limit, err := parseLimit(r, defaultTopMatches)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.statsService.TopScoringMatches(ctx, limit)
	if err != nil {
		h.logger.ErrorContext(ctx, "top scoring matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toMatchGoalsDTOs(rows))
}

func (h *Handler) ListLeagueMatchCounts(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagueMatchCounts")
	defer span.End()

	counts, err := h.statsService.LeagueMatchCounts(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "league match counts failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toLeagueCountDTOs(counts))
}

func (h *Handler) ListMatchCountByDate(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchCountByDate")
	defer span.End()

	counts, err := h.statsService.CountByDate(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "match count by date failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toDateCountDTOs(counts))
}
