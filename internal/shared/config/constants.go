package config

// Constants for application-wide use
const (
	// Pagination
	DefaultPageSize = 100

	// Goal: total intended pomodoros, shown next to the completed count
	DefaultGoal = 13000

	// Limits
	DescriptionMaxLen = 500
)

// StatWindowsDays are the rolling windows, in days, shown on the dashboard.
var StatWindowsDays = []int{7, 30, 365}
