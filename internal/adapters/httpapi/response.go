package httpapi

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"mergington/internal/domain"
)

type messageResponse struct {
	Message string `json:"message"`
}

type detailResponse struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, detailResponse{Detail: detail})
}

// statusForCode maps a domain error code to its HTTP status.
func statusForCode(code string) int {
	switch code {
	case domain.CodeActivityNotFound:
		return http.StatusNotFound
	case domain.CodeAlreadyRegistered, domain.CodeNotRegistered:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders domain errors with their translated detail and anything
// else as a 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := domain.Code(err)
	if code == "" {
		h.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeDetail(w, http.StatusInternalServerError, h.localizer.T(h.locale(r), "error.internal", nil))
		return
	}
	writeDetail(w, statusForCode(code), h.localizer.T(h.locale(r), "error."+code, nil))
}
