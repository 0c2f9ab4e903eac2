package httpapi

import (
	"net/http"
	"strings"

	"github.com/delilt/football-dashboard/internal/usecase"
)

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	filter, err := h.parseFilter(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	sortByDate := strings.EqualFold(strings.TrimSpace(r.URL.Query().Get("sort")), "date")

	matches, err := h.matchService.List(ctx, usecase.MatchListQuery{
		Filter:     filter,
		SortByDate: sortByDate,
	})
	if err != nil {
		h.logger.ErrorContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toMatchDTOs(matches))
}
