package httpapi

import "net/http"

func (h *Handler) RunSnapshotSync(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunSnapshotSync")
	defer span.End()

	result, err := h.syncService.Refresh(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "snapshot sync failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, toSyncResultDTO(result))
}
