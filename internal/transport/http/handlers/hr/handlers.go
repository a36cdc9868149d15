package hrhandler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/jung-kurt/gofpdf"

	"hradmin/internal/domain/auth"
	"hradmin/internal/domain/history"
	"hradmin/internal/domain/place"
	"hradmin/internal/domain/section"
	"hradmin/internal/domain/staff"
	"hradmin/internal/transport/http/api"
	"hradmin/internal/transport/http/middleware"
)

type Handler struct {
	Staff    *staff.Store
	Sections *section.Store
	Places   *place.Store
	History  *history.Store
}

func NewHandler(staffStore *staff.Store, sections *section.Store, places *place.Store, historyStore *history.Store) *Handler {
	return &Handler{Staff: staffStore, Sections: sections, Places: places, History: historyStore}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/hr", func(r chi.Router) {
		r.Use(middleware.RequireRole(auth.RoleHRManager))
		r.Get("/employees", h.handleListEmployees)
		r.Get("/employee/{staffID}", h.handleGetEmployee)
		r.Get("/employee/{staffID}/history", h.handleEmployeeHistory)
		r.Get("/search", h.handleSearch)
		r.Get("/salary-stats", h.handleSalaryStats)
		r.Get("/salary-stats/report", h.handleSalaryStatsReport)
		r.Get("/sections", h.handleListSections)
		r.Get("/section/{sectionID}", h.handleGetSection)
		r.Put("/section/{sectionID}", h.handleUpdateSection)
		r.Get("/places", h.handleListPlaces)
		r.Post("/places", h.handleAddPlace)
	})
}

func (h *Handler) handleListEmployees(w http.ResponseWriter, r *http.Request) {
	orderBySalary := r.URL.Query().Get("orderBySalary") == "true"
	employees, err := h.Staff.ListAll(r.Context(), orderBySalary)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "query_error", "failed to list employees", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, employees, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetEmployee(w http.ResponseWriter, r *http.Request) {
	staffID, err := strconv.ParseInt(chi.URLParam(r, "staffID"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "invalid staff id", middleware.GetRequestID(r.Context()))
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

func (h *Handler) handleEmployeeHistory(w http.ResponseWriter, r *http.Request) {
	staffID, err := strconv.ParseInt(chi.URLParam(r, "staffID"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "invalid staff id", middleware.GetRequestID(r.Context()))
		return
	}
	entries, err := h.History.ByStaff(r.Context(), staffID)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "query_error", "failed to load history", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, entries, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	employees, err := h.Staff.SearchByName(r.Context(), name, nil)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "query_error", "search failed", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, employees, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSalaryStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Staff.SalaryStatsAllSections(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "query_error", "failed to load salary stats", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, stats, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleSalaryStatsReport(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Staff.SalaryStatsAllSections(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "query_error", "failed to load salary stats", middleware.GetRequestID(r.Context()))
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Salary Statistics by Section")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	for _, s := range stats {
		pdf.Cell(0, 8, fmt.Sprintf("%s (#%d)", s.SectionName, s.SectionID))
		pdf.Ln(7)
		pdf.Cell(0, 8, fmt.Sprintf("  max %.2f  min %.2f  avg %.2f", s.MaxSalary, s.MinSalary, s.AvgSalary))
		pdf.Ln(10)
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="salary-stats.pdf"`)
	if err := pdf.Output(w); err != nil {
		// Headers are already written; the cause only goes to the log.
		slog.Warn("salary stats pdf write failed", "err", err)
	}
}

func (h *Handler) handleListSections(w http.ResponseWriter, r *http.Request) {
	sections, err := h.Sections.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "query_error", "failed to list sections", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, sections, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleGetSection(w http.ResponseWriter, r *http.Request) {
	sectionID, err := strconv.ParseInt(chi.URLParam(r, "sectionID"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "invalid section id", middleware.GetRequestID(r.Context()))
		return
	}
	sec, err := h.Sections.Get(r.Context(), sectionID)
	if errors.Is(err, section.ErrNotFound) {
		api.Fail(w, http.StatusNotFound, "not_found", "section not found", middleware.GetRequestID(r.Context()))
		return
	}
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "query_error", "failed to load section", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, sec, middleware.GetRequestID(r.Context()))
}

type sectionUpdateRequest struct {
	SectionName string `json:"sectionName"`
}

func (h *Handler) handleUpdateSection(w http.ResponseWriter, r *http.Request) {
	sectionID, err := strconv.ParseInt(chi.URLParam(r, "sectionID"), 10, 64)
	if err != nil {
		api.Fail(w, http.StatusBadRequest, "invalid_id", "invalid section id", middleware.GetRequestID(r.Context()))
		return
	}
	var payload sectionUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || strings.TrimSpace(payload.SectionName) == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	updated, err := h.Sections.UpdateName(r.Context(), sectionID, payload.SectionName)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "update_failed", "failed to update section", middleware.GetRequestID(r.Context()))
		return
	}
	if !updated {
		api.Fail(w, http.StatusNotFound, "not_found", "section not found", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, map[string]string{"status": "updated"}, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleListPlaces(w http.ResponseWriter, r *http.Request) {
	places, err := h.Places.List(r.Context())
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "query_error", "failed to list places", middleware.GetRequestID(r.Context()))
		return
	}
	api.Success(w, places, middleware.GetRequestID(r.Context()))
}

func (h *Handler) handleAddPlace(w http.ResponseWriter, r *http.Request) {
	var payload place.Place
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || strings.TrimSpace(payload.StreetAddress) == "" || strings.TrimSpace(payload.City) == "" {
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", middleware.GetRequestID(r.Context()))
		return
	}
	saved, err := h.Places.Add(r.Context(), payload)
	if err != nil {
		api.Fail(w, http.StatusInternalServerError, "insert_failed", "failed to add place", middleware.GetRequestID(r.Context()))
		return
	}
	api.Created(w, saved, middleware.GetRequestID(r.Context()))
}
