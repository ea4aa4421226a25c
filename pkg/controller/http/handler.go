package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/secmon-lab/o365ops/pkg/domain/types"
	"github.com/secmon-lab/o365ops/pkg/usecase"
	"github.com/secmon-lab/o365ops/pkg/utils/async"
)

type handler struct {
	uc *UseCases
}

type createUserRequest struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	AssignLicense bool   `json:"assign_license"`
}

type notifyRequest struct {
	Message string `json:"message"`
}

func subscriptionID(r *http.Request) types.SubscriptionID {
	return types.SubscriptionID(chi.URLParam(r, "subscriptionID"))
}

func wantNotify(r *http.Request) bool {
	return r.URL.Query().Get("notify") == "true"
}

// dispatchNotify delivers message in the background; delivery never affects the response
func (h *handler) dispatchNotify(r *http.Request, message string) {
	if h.uc.notifier == nil {
		return
	}
	done := async.Dispatch(r.Context(), func(ctx context.Context) error {
		return h.uc.notifier.Notify(ctx, message)
	})
	if h.uc.notifyDone != nil {
		h.uc.notifyDone(done)
	}
}

func (h *handler) listUsers(w http.ResponseWriter, r *http.Request) {
	page, err := h.uc.users.List(r.Context(), subscriptionID(r), r.URL.Query().Get("search"))
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeSuccess(w, r, page)
}

func (h *handler) createUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeBadRequest(w, r, "request body must be a JSON object")
		return
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		writeBadRequest(w, r, "username and password are required")
		return
	}

	result, err := h.uc.users.Create(r.Context(), subscriptionID(r), req.Username, req.Password, req.AssignLicense)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeSuccess(w, r, result)
}

func (h *handler) assignLicense(w http.ResponseWriter, r *http.Request) {
	objectID := types.ObjectID(chi.URLParam(r, "objectID"))
	license, err := h.uc.users.AssignLicense(r.Context(), subscriptionID(r), objectID)
	if err != nil {
		writeFailure(w, r, err)
		return
	}
	writeSuccess(w, r, license)
}

func (h *handler) queryAllActivations(w http.ResponseWriter, r *http.Request) {
	result, err := h.uc.activation.QueryAll(r.Context(), subscriptionID(r))
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	if wantNotify(r) {
		h.dispatchNotify(r, usecase.FormatBatchActivationMessage(result.SubscriptionName, result))
	}
	writeSuccess(w, r, result)
}

func (h *handler) queryUserActivation(w http.ResponseWriter, r *http.Request) {
	result, err := h.uc.activation.QueryUser(r.Context(), subscriptionID(r), chi.URLParam(r, "username"))
	if err != nil {
		writeFailure(w, r, err)
		return
	}

	if wantNotify(r) {
		h.dispatchNotify(r, usecase.FormatActivationMessage(result))
	}
	writeSuccess(w, r, result)
}

func (h *handler) notify(w http.ResponseWriter, r *http.Request) {
	var req notifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		writeBadRequest(w, r, "message is required")
		return
	}
	if h.uc.notifier == nil {
		writeBadRequest(w, r, "notifier is not available")
		return
	}

	if err := h.uc.notifier.Notify(r.Context(), req.Message); err != nil {
		writeFailure(w, r, err)
		return
	}
	writeSuccess(w, r, map[string]bool{"delivered": true})
}
