package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/JonMunkholm/salarydash/internal/core"
	"github.com/JonMunkholm/salarydash/internal/dataset"
	"github.com/JonMunkholm/salarydash/internal/logging"
	"github.com/JonMunkholm/salarydash/internal/web/templates"
)

// handleDashboard renders the dashboard page for the requested selection.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFrom(r)
	q := r.URL.Query()

	sel, err := parseSelection(q, sess)
	if err != nil {
		respondError(w, r, err, http.StatusBadRequest)
		return
	}
	page, size, err := parsePaging(q, s.cfg.Dashboard.PageSize)
	if err != nil {
		respondError(w, r, err, http.StatusBadRequest)
		return
	}

	vm := sess.Render(sel, page, size)
	logging.FromContext(r.Context()).Debug("rendered dashboard",
		"rows", vm.TotalRows,
		"page", vm.Page,
	)

	data := templates.PageData{
		Title:              s.cfg.Dashboard.Title,
		View:               vm,
		Choices:            sess.Choices(),
		CompanySizeApplied: sess.Options().Filter.ApplyCompanySize,
		SessionID:          sess.ID.String(),
		Source:             sess.Source,
		LoadedAt:           sess.LoadedAt,
		ExportURL:          "/api/export?" + selectionQuery(vm.Selection).Encode(),
		ResetURL:           "/",
	}
	if vm.Page > 1 {
		data.PrevURL = pageURL(vm, vm.Page-1)
	}
	if vm.Page < vm.TotalPages {
		data.NextURL = pageURL(vm, vm.Page+1)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := templates.Dashboard(data).Render(r.Context(), w); err != nil {
		logging.FromContext(r.Context()).Error("render dashboard", "error", err)
	}
}

// pageURL links to another page of the detail table with the same filters.
func pageURL(vm core.ViewModel, page int) string {
	q := selectionQuery(vm.Selection)
	q.Set(paramPage, strconv.Itoa(page))
	q.Set(paramPageSize, strconv.Itoa(vm.PageSize))
	return "/?" + q.Encode()
}

// handleView returns the view model as JSON.
func (s *Server) handleView(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFrom(r)
	q := r.URL.Query()

	sel, err := parseSelection(q, sess)
	if err != nil {
		respondError(w, r, err, http.StatusBadRequest)
		return
	}
	page, size, err := parsePaging(q, s.cfg.Dashboard.PageSize)
	if err != nil {
		respondError(w, r, err, http.StatusBadRequest)
		return
	}

	writeJSON(w, r, sess.Render(sel, page, size))
}

// OptionsResponse is the body of GET /api/options.
type OptionsResponse struct {
	Choices            core.FilterChoices `json:"choices"`
	CompanySizeApplied bool               `json:"company_size_applied"`
	FocusRole          string             `json:"focus_role"`
}

// handleOptions lists the values each filter can take.
func (s *Server) handleOptions(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFrom(r)
	opts := sess.Options()
	focus := opts.FocusRole
	if focus == "" {
		focus = core.DefaultFocusRole
	}

	writeJSON(w, r, OptionsResponse{
		Choices:            sess.Choices(),
		CompanySizeApplied: opts.Filter.ApplyCompanySize,
		FocusRole:          focus,
	})
}

// handleExport downloads every filtered row as CSV.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	sess := s.sessionFrom(r)

	sel, err := parseSelection(r.URL.Query(), sess)
	if err != nil {
		respondError(w, r, err, http.StatusBadRequest)
		return
	}
	view := sess.Filtered(sel)

	timestamp := serverTime().Format("20060102_150405")
	filename := fmt.Sprintf("salarios_%s.csv", timestamp)
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))

	logger := logging.WithFields(r.Context(), "file", filename, "rows", len(view))
	if err := dataset.WriteCSV(w, view); err != nil {
		logger.Error("export csv", "error", err)
		return
	}
	logger.Debug("exported csv")
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status   string `json:"status"`
	Session  string `json:"session,omitempty"`
	Source   string `json:"source"`
	Rows     int    `json:"rows"`
	LoadedAt string `json:"loaded_at,omitempty"`
}

// handleHealth never triggers a load. It answers 503 with status
// "loading" until the dataset is available.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	sess := s.sessions.loaded()
	if sess == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_ = json.NewEncoder(w).Encode(HealthResponse{
			Status: "loading",
			Source: s.sessions.cache.Source().String(),
		})
		return
	}

	writeJSON(w, r, HealthResponse{
		Status:   "ok",
		Session:  sess.ID.String(),
		Source:   sess.Source,
		Rows:     len(sess.Dataset()),
		LoadedAt: sess.LoadedAt.UTC().Format("2006-01-02T15:04:05Z"),
	})
}
