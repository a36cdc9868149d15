package managerhandler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"hradmin/internal/domain/auth"
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
	r.Route("/manager/section/{sectionID}", func(r chi.Router) {
		r.Use(middleware.RequireRole(auth.RoleDepartmentManager))
		r.Use(h.requireOwnSection)
		r.Get("/employees", h.handleSectionEmployees)
		r.Get("/employee/{staffID}", h.handleSectionEmployee)
		r.Get("/search", h.handleSearch)
		r.Get("/salary-stats", h.handleSalaryStats)
	})
}

// requireOwnSection pins a manager to the section recorded in their token.
func (h *Handler) requireOwnSection(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sectionID, err := strconv.ParseInt(chi.URLParam(r, "sectionID"), 10, 64)
		if err != nil {
			api.Fail(w, http.StatusBadRequest, "invalid_id", "invalid section id", middleware.GetRequestID(r.Context()))
			return
		}
		user, ok := middleware.GetUser(r.Context())
		if !ok || user.SectionID != sectionID {
			api.Fail(w, http.StatusForbidden, "forbidden", "insufficient permissions", middleware.GetRequestID(r.Context()))
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) handleSectionEmployees(w http.ResponseWriter, r *http.Request) {
	sectionID, _ := strconv.ParseInt(chi.URLParam(r, "sectionID"), 10, 64)
	orderBySalary := r.URL.Query().Get("orderBySalary") == "true"

	employees, err := h.Staff.ListBySection(r.Context(), sectionID, orderBySalary)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "query_error", "failed to list employees", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, employees, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSectionEmployee(w http.ResponseWriter, r *http.Request) {
	sectionID, _ := strconv.ParseInt(chi.URLParam(r, "sectionID"), 10, 64)
	staffID, err := strconv.ParseInt(chi.URLParam(r, "staffID"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "invalid staff id", middleware.GetRequestID(r.Context()))
		return
	}

	st, err := h.Staff.Get(r.Context(), staffID)
	if errors.Is(err, staff.ErrNotFound) || (err == nil && (st.SectionID == nil || *st.SectionID != sectionID)) {
		api.Fail(w, http.StatusNotFound, "not_found", "staff not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "query_error", "failed to load staff", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, st, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	sectionID, _ := strconv.ParseInt(chi.URLParam(r, "sectionID"), 10, 64)
	name := r.URL.Query().Get("name")

	employees, err := h.Staff.SearchByName(r.Context(), name, &sectionID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "query_error", "search failed", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, employees, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSalaryStats(w http.ResponseWriter, r *http.Request) {
	sectionID, _ := strconv.ParseInt(chi.URLParam(r, "sectionID"), 10, 64)

	stats, err := h.Staff.SalaryStatsBySection(r.Context(), sectionID)
	if errors.Is(err, staff.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "section not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "query_error", "failed to load salary stats", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, stats, middleware.GetRequestID(r.Context()))
}
