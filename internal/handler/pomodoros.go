// Package handler provides HTTP handlers for the pomodoro tracker.
package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"pomodoro-tracker/internal/pomodoros"
	"pomodoro-tracker/internal/pomodoros/models"

	"pomodoro-tracker/internal/shared/errors"
)

// PomodorosHandler handles HTTP requests for pomodoro operations.
type PomodorosHandler struct {
	service *pomodoros.PomodoroService
}

// NewPomodorosHandler creates a new PomodorosHandler.
func NewPomodorosHandler(svc *pomodoros.PomodoroService) *PomodorosHandler {
	return &PomodorosHandler{service: svc}
}

// Add handles POST /api/v1/pomodoros/add - records a completed pomodoro.
func (h *PomodorosHandler) Add(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		errors.WriteError(w, errors.ValidationError("Method not allowed"))
		return
	}

	var input models.PomodoroCreate
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		errors.WriteError(w, errors.ValidationError("Invalid JSON body"))
		return
	}

	record, err := h.service.Add(&input)
	if err != nil {
		if strings.Contains(err.Error(), "validation error") {
			errors.WriteError(w, errors.ValidationError(strings.TrimPrefix(err.Error(), "validation error: ")))
			return
		}
		errors.WriteError(w, errors.StorageError())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(record)
}

// Delete handles POST /api/v1/pomodoros/delete - removes a pomodoro by id.
// Deleting an unknown or already removed id succeeds: the operation is
// idempotent, so two racing tabs both deleting the same row are both fine.
func (h *PomodorosHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		errors.WriteError(w, errors.ValidationError("Method not allowed"))
		return
	}

	var input models.PomodoroDelete
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		errors.WriteError(w, errors.ValidationError("Invalid JSON body"))
		return
	}

	if err := h.service.Remove(input.ID); err != nil {
		errors.WriteError(w, errors.StorageError())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]bool{"deleted": true})
}

// List handles GET /api/v1/pomodoros - retrieves one page of pomodoros.
// The page parameter defaults to the last page; malformed or out-of-range
// values are normalized, never rejected.
func (h *PomodorosHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		errors.WriteError(w, errors.ValidationError("Method not allowed"))
		return
	}

	result, err := h.service.GetPage(r.URL.Query().Get("page"))
	if err != nil {
		errors.WriteError(w, errors.StorageError())
		return
	}

	response := models.PaginatedResponse[models.PomodoroResponse]{
		Items:      result.Items,
		Total:      result.Total,
		Page:       result.Page,
		TotalPages: result.TotalPages,
		PageSize:   result.PageSize,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// Stats handles GET /api/v1/pomodoros/stats - returns the rolling-window counts.
func (h *PomodorosHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		errors.WriteError(w, errors.ValidationError("Method not allowed"))
		return
	}

	stats, err := h.service.GetStats()
	if err != nil {
		errors.WriteError(w, errors.StorageError())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(stats)
}

// ServeHTTP implements http.Handler for routing pomodoro requests.
func (h *PomodorosHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path

	switch {
	case path == "/api/v1/pomodoros" && r.Method == http.MethodGet:
		h.List(w, r)
	case path == "/api/v1/pomodoros/add" && r.Method == http.MethodPost:
		h.Add(w, r)
	case path == "/api/v1/pomodoros/delete" && r.Method == http.MethodPost:
		h.Delete(w, r)
	case path == "/api/v1/pomodoros/stats" && r.Method == http.MethodGet:
		h.Stats(w, r)
	default:
		errors.WriteError(w, errors.NotFoundError("Endpoint not found"))
	}
}
