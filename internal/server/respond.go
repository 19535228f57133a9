package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"foodshare/pkg/types"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Service) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.WithError(err).Error("failed to encode response")
	}
}

// statusFor maps the store and report error taxonomy onto HTTP statuses.
// Order matters: ErrProviderNotFound is also an ErrNotFound.
func statusFor(err error) int {
	switch {
	case errors.Is(err, types.ErrProviderNotFound),
		errors.Is(err, types.ErrInvalidListing),
		errors.Is(err, types.ErrConstraintViolation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, types.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, types.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (s *Service) writeError(w http.ResponseWriter, err error, msg string) {
	status := statusFor(err)

	entry := s.logger.WithError(err).WithField("status", status)
	if status >= http.StatusInternalServerError {
		entry.Error(msg)
	} else {
		entry.Debug(msg)
	}

	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *Service) badRequest(w http.ResponseWriter, msg string) {
	s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.provider.Ping(r.Context()); err != nil {
		s.logger.WithError(err).Error("health check failed")
		http.Error(w, "store unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
