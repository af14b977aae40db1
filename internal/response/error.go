package response

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/predictkick/oracle-backend/internal/errs"
	"github.com/predictkick/oracle-backend/pkg/logger"
)

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (h *responseHandler) WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(ErrorResponse{
		Code:    code,
		Message: message,
	}); err != nil {
		log := logger.FromContext(r.Context())
		log.Error("failed to encode error response", "error", err, "status", status, "code", code)
	}
}

func (h *responseHandler) HandleError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromContext(r.Context())

	switch e := err.(type) {
	case *errs.ValidationError:
		log.Warn("validation failed", "error", e.Message)
		h.WriteError(w, r, http.StatusBadRequest, "invalid_input", e.Message)

	case *errs.NotFoundError:
		log.Warn("resource not found", "error", e.Message)
		h.WriteError(w, r, http.StatusNotFound, "not_found", e.Message)

	case *errs.RateLimitedError:
		log.Warn("retry budget exhausted", "error", e.Message)
		h.WriteError(w, r, http.StatusTooManyRequests, "rate_limited", e.Message)

	case *errs.UnknownFunctionError:
		log.Error("unknown contract function", "error", e.Message)
		h.WriteError(w, r, http.StatusInternalServerError, "upstream_error", e.Message)

	case *errs.UpstreamError:
		log.Error("external service error",
			"service", e.Service,
			"upstream_status", e.StatusCode,
			"error", e.Message)
		h.WriteError(w, r, http.StatusInternalServerError, "upstream_error", e.Message)

	default:
		log.Error("unexpected error",
			"error", err,
			"type", fmt.Sprintf("%T", err))
		h.WriteError(w, r, http.StatusInternalServerError, "internal_error",
			"An unexpected error occurred")
	}
}
