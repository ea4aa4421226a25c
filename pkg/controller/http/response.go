package http

import (
	"encoding/json"
	"net/http"

	"github.com/m-mizutani/ctxlog"
	"github.com/secmon-lab/o365ops/pkg/domain/model"
	"github.com/secmon-lab/o365ops/pkg/utils/apperr"
)

type successResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data"`
}

type failureResponse struct {
	Success bool              `json:"success"`
	Error   model.FailureKind `json:"error"`
	Message string            `json:"message"`
	Details string            `json:"details,omitempty"`
	Code    string            `json:"code,omitempty"`
}

// statusOf maps a failure kind to the HTTP status returned to clients
func statusOf(kind model.FailureKind) int {
	switch kind {
	case model.KindAuthFailure:
		return http.StatusUnauthorized
	case model.KindSubscriptionNotFound, model.KindUserNotFound:
		return http.StatusNotFound
	case model.KindMissingCredentials, model.KindMissingUserManagementConfig,
		model.KindTemplateMissing, model.KindTemplateUnparseable,
		model.KindWebhookNotConfigured:
		return http.StatusBadRequest
	case model.KindAPIError, model.KindCreationFailed, model.KindNoLicenseAvailable,
		model.KindNetworkError, model.KindWebhookFailed:
		return http.StatusBadGateway
	case model.KindTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}

func writeSuccess(w http.ResponseWriter, r *http.Request, data any) {
	writeJSON(w, r, http.StatusOK, successResponse{Success: true, Data: data})
}

// writeFailure renders a classified error
func writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	f := model.FailureOf(err)
	status := statusOf(f.Kind)
	if status >= http.StatusInternalServerError {
		apperr.Handle(r.Context(), err)
	} else {
		ctxlog.From(r.Context()).Info("Request failed", "kind", f.Kind, "error", err)
	}

	writeJSON(w, r, status, failureResponse{
		Success: false,
		Error:   f.Kind,
		Message: f.Message,
		Details: f.Details,
		Code:    f.Code,
	})
}

func writeBadRequest(w http.ResponseWriter, r *http.Request, message string) {
	writeJSON(w, r, http.StatusBadRequest, failureResponse{
		Success: false,
		Error:   "invalid_request",
		Message: message,
	})
}
