package app

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"pomodoro-tracker/internal/handler"
	"pomodoro-tracker/internal/shared/health"
)

// NewRouter creates and configures the HTTP router with all routes.
// There is no authentication anywhere: this is a single-user dashboard.
func NewRouter(
	pomodorosHandler *handler.PomodorosHandler,
	healthHandler *health.HealthHandler,
	webHandler *handler.WebHandler,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Health endpoint
	mux.Handle("/healthz", healthHandler)

	// API endpoints
	mux.Handle("/api/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/v1/pomodoros") {
			pomodorosHandler.ServeHTTP(w, r)
			return
		}
		http.NotFound(w, r)
	}))

	// Web endpoints
	mux.Handle("/web/", webHandler)

	// Redirect root path to the dashboard
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/" {
			http.Redirect(w, r, "/web/pomodoros", http.StatusFound)
			return
		}
		http.NotFound(w, r)
	})

	// Static files from templates/static
	absTemplates, err := filepath.Abs("templates")
	if err == nil {
		staticPath := filepath.Join(absTemplates, "static")
		if _, err := os.Stat(staticPath); err == nil {
			mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticPath))))
		}
	}

	return mux
}
