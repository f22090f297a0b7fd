package handler

import (
	"fmt"
	"html/template"
	"net/http"
	"time"

	"pomodoro-tracker/internal/pomodoros"

	"pomodoro-tracker/internal/shared/middleware"
)

// WebHandler handles HTTP requests for the web interface.
type WebHandler struct {
	service           *pomodoros.PomodoroService
	dashboardTemplate *template.Template
	timezone          *time.Location
}

// PomodoroViewData represents a pomodoro row for display in templates.
type PomodoroViewData struct {
	ID          int64
	Description string
	DisplayTime string
}

// NewWebHandler creates a new WebHandler.
func NewWebHandler(svc *pomodoros.PomodoroService, templatesPath string, tz *time.Location) (*WebHandler, error) {
	dashboardTmpl, err := template.ParseFiles(templatesPath+"/base.html", templatesPath+"/pomodoros.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse dashboard template: %w", err)
	}
	if tz == nil {
		tz = time.UTC
	}
	return &WebHandler{
		service:           svc,
		dashboardTemplate: dashboardTmpl,
		timezone:          tz,
	}, nil
}

// renderTemplate renders a template with the given data.
func (h *WebHandler) renderTemplate(w http.ResponseWriter, r *http.Request, tmpl *template.Template, templateName string, data interface{}) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	pageData, ok := data.(map[string]interface{})
	if !ok {
		pageData = map[string]interface{}{}
	}
	if nonce, ok := r.Context().Value(middleware.CSPNonceKey{}).(string); ok {
		pageData["ScriptNonce"] = nonce
	}
	if err := tmpl.ExecuteTemplate(w, templateName, pageData); err != nil {
		http.Error(w, "Template error: "+err.Error(), http.StatusInternalServerError)
	}
}

// formatTime converts an RFC3339 UTC timestamp to the configured timezone.
func (h *WebHandler) formatTime(rfc3339 string) string {
	t, err := time.Parse(time.RFC3339, rfc3339)
	if err != nil {
		return rfc3339
	}
	return t.In(h.timezone).Format("2006-01-02 15:04")
}

// ServeHTTP implements http.Handler for routing web requests.
func (h *WebHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	switch path {
	case "/web/pomodoros":
		h.Dashboard(w, r)
	case "/web/pomodoros/actions/add":
		h.WebAddPomodoro(w, r)
	case "/web/pomodoros/actions/delete":
		h.WebDeletePomodoro(w, r)
	default:
		http.NotFound(w, r)
	}
}
