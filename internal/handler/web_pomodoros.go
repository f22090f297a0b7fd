package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"pomodoro-tracker/internal/pomodoros/models"
)

// Dashboard handles GET /web/pomodoros - displays the pomodoro dashboard.
// Every render re-reads the store: the page parameter is re-resolved against
// the current total, so a delete that emptied the last page lands on the new
// last page instead of pointing past it. The updated parameter only forces a
// refresh after mutations and is ignored here.
func (h *WebHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()

	result, err := h.service.GetPage(query.Get("page"))
	if err != nil {
		http.Error(w, "Failed to fetch pomodoros", http.StatusInternalServerError)
		return
	}

	stats, err := h.service.GetStats()
	if err != nil {
		http.Error(w, "Failed to fetch stats", http.StatusInternalServerError)
		return
	}

	lastDescription, err := h.service.LastDescription()
	if err != nil {
		http.Error(w, "Failed to fetch last description", http.StatusInternalServerError)
		return
	}

	// Convert to view data
	rows := make([]PomodoroViewData, len(result.Items))
	for i, p := range result.Items {
		rows[i] = PomodoroViewData{
			ID:          p.ID,
			Description: p.Description,
			DisplayTime: h.formatTime(p.Timestamp),
		}
	}

	data := map[string]interface{}{
		"Title":           "Pomodoros",
		"ActivePage":      "pomodoros",
		"Rows":            rows,
		"Empty":           result.Empty,
		"CurrentPage":     result.Page,
		"TotalPages":      result.TotalPages,
		"PrevPage":        result.PrevPage,
		"NextPage":        result.NextPage,
		"HasPrev":         result.Page > 1,
		"HasNext":         result.Page < result.TotalPages,
		"Stats":           stats,
		"LastDescription": lastDescription,
		"FormError":       query.Get("error") == "description",
	}

	h.renderTemplate(w, r, h.dashboardTemplate, "base", data)
}

// WebAddPomodoro handles POST /web/pomodoros/actions/add - records a pomodoro
// from the dashboard form, then redirects back so the new row is visible on
// the (default) last page. An empty or whitespace-only description redirects
// back with an inline error flag instead of touching the store.
func (h *WebHandler) WebAddPomodoro(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form body", http.StatusBadRequest)
		return
	}

	input := models.PomodoroCreate{Description: r.FormValue("description")}
	if _, err := h.service.Add(&input); err != nil {
		if strings.Contains(err.Error(), "validation error") {
			h.redirectToDashboard(w, r, url.Values{"error": {"description"}})
			return
		}
		http.Error(w, "Failed to add pomodoro", http.StatusInternalServerError)
		return
	}

	// No page parameter: the dashboard defaults to the last page, where the
	// new record is.
	h.redirectToDashboard(w, r, url.Values{})
}

// WebDeletePomodoro handles POST /web/pomodoros/actions/delete - removes a
// pomodoro and redirects back to the page the user was on. The dashboard
// re-clamps that page if the delete emptied it.
func (h *WebHandler) WebDeletePomodoro(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form body", http.StatusBadRequest)
		return
	}

	id, err := strconv.ParseInt(r.FormValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}

	if err := h.service.Remove(id); err != nil {
		http.Error(w, "Failed to delete pomodoro", http.StatusInternalServerError)
		return
	}

	params := url.Values{}
	if page := r.FormValue("page"); page != "" {
		params.Set("page", page)
	}
	h.redirectToDashboard(w, r, params)
}

// redirectToDashboard issues a post-mutation redirect carrying an opaque
// updated marker. The marker's only job is to defeat caching between renders;
// read logic never inspects its value.
func (h *WebHandler) redirectToDashboard(w http.ResponseWriter, r *http.Request, params url.Values) {
	params.Set("updated", uuid.NewString())
	http.Redirect(w, r, "/web/pomodoros?"+params.Encode(), http.StatusSeeOther)
}
