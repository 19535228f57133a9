package server

import (
	"net/http"
)

func (s *Service) handleCities(w http.ResponseWriter, r *http.Request) {
	cities, err := s.directory.Cities(r.Context())
	if err != nil {
		s.writeError(w, err, "failed to fetch cities")
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{"cities": cities})
}

// handleDirectory answers with empty provider and receiver lists, not a
// 404, when the city has nobody registered.
func (s *Service) handleDirectory(w http.ResponseWriter, r *http.Request) {
	city := r.PathValue("city")

	directory, err := s.directory.Directory(r.Context(), city)
	if err != nil {
		s.writeError(w, err, "failed to fetch directory")
		return
	}

	s.writeJSON(w, http.StatusOK, directory)
}
