package handlers

import (
	"log/slog"
	"net/http"

	"github.com/selimyuksel/task-manager-backend/internal/apperr"
	"github.com/selimyuksel/task-manager-backend/internal/api/httpx"
)

func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation, apperr.KindConflict:
		return http.StatusBadRequest
	case apperr.KindUnauthorized:
		return http.StatusUnauthorized
	case apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindNotFound:
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// respondError maps a service error to its status code. Anything outside
// the taxonomy becomes a 500 with a generic message.
func respondError(w http.ResponseWriter, err error) {
	kind := apperr.KindOf(err)
	if kind == apperr.KindInternal {
		slog.Error("request failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Server error")
		return
	}
	httpx.WriteError(w, statusFor(kind), apperr.Message(err, "Server error"))
}
