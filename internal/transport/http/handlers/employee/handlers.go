package employeehandler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hradmin/internal/domain/staff"
	"hradmin/internal/transport/http/api"
	"hradmin/internal/transport/http/middleware"
)

type Handler struct {
	Staff *staff.Store
}

func NewHandler(staffStore *staff.Store) *Handler {
	return &Handler{Staff: staffStore}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/employee", func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/{staffID}", h.handleGetProfile)
		r.Put("/{staffID}/phone", h.handleUpdatePhone)
	})
}

type phoneUpdateRequest struct {
	PhoneNumber string `json:"phoneNumber"`
}

func (h *Handler) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	staffID, ok := h.ownStaffID(w, r)
	if !ok {
		return
	}

	st, err := h.Staff.Get(r.Context(), staffID)
	if errors.Is(err, staff.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "staff not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "query_error", "failed to load staff", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, st, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleUpdatePhone(w http.ResponseWriter, r *http.Request) {
	staffID, ok := h.ownStaffID(w, r)
	if !ok {
		return
	}

	var payload phoneUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}

	updated, err := h.Staff.UpdatePhone(r.Context(), staffID, payload.PhoneNumber)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "update_failed", "failed to update phone number", middleware.GetRequestID(r.Context()))
		return
	}
	if !updated {
		api.Fail(w, http.StatusNotFound, "not_found", "staff not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "updated"}, middleware.GetRequestID(r.Context()))
}

// ownStaffID resolves the path staff ID and rejects access to anyone else's
// record; the employee surface is self-service only.
func (h *Handler) ownStaffID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	staffID, err := strconv.ParseInt(chi.URLParam(r, "staffID"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "invalid staff id", middleware.GetRequestID(r.Context()))
		return 0, false
	}
	user, ok := middleware.GetUser(r.Context())
	if !ok || user.StaffID != staffID {
		api.Fail(w, http.StatusForbidden, "forbidden", "insufficient permissions", middleware.GetRequestID(r.Context()))
		return 0, false
	}
	return staffID, true
}
