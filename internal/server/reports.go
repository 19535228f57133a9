package server

import (
	"net/http"

	"foodshare/internal/report"
)

func (s *Service) handleReportDefinitions(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]any{"reports": report.Definitions})
}

func (s *Service) handleReport(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")

	loaded, err := s.reports.Load(r.Context(), slug)
	if err != nil {
		s.writeError(w, err, "failed to load report")
		return
	}

	s.writeJSON(w, http.StatusOK, loaded)
}
