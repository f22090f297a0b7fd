// Package models defines data structures and validation for the pomodoro tracker.
package models

import (
	"errors"
	"time"

	"pomodoro-tracker/internal/shared/config"
	"pomodoro-tracker/internal/shared/validation"
)

// Validation errors
var (
	ErrDescriptionRequired = errors.New("description is required")
	ErrDescriptionTooLong  = errors.New("description must be at most 500 characters")
)

// PomodoroCreate represents the input for recording a completed pomodoro.
// The timestamp is always assigned by the store, never by the caller.
type PomodoroCreate struct {
	Description string `json:"description"`
}

// Validate sanitizes the description and rejects empty/whitespace-only or
// over-long input before it reaches the store.
func (p *PomodoroCreate) Validate() error {
	p.Description = validation.SanitizeString(p.Description)

	if p.Description == "" {
		return ErrDescriptionRequired
	}
	if len(p.Description) > config.DescriptionMaxLen {
		return ErrDescriptionTooLong
	}

	return nil
}

// PomodoroDelete represents the input for removing a recorded pomodoro.
type PomodoroDelete struct {
	ID int64 `json:"id"`
}

// PomodoroResponse represents a recorded pomodoro returned from the API.
type PomodoroResponse struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	Timestamp   string `json:"timestamp"`
}

// PaginatedResponse wraps one page of items with pagination metadata.
type PaginatedResponse[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	TotalPages int   `json:"total_pages"`
	PageSize   int   `json:"page_size"`
}

// StatsResponse carries the rolling-window counts against the goal.
type StatsResponse struct {
	Total       int64 `json:"total"`
	Goal        int   `json:"goal"`
	Last7Days   int64 `json:"last_7_days"`
	Last30Days  int64 `json:"last_30_days"`
	Last365Days int64 `json:"last_365_days"`
}

// FormatRFC3339 formats a time.Time to RFC3339 UTC string.
func FormatRFC3339(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// NowRFC3339 returns the current time as RFC3339 UTC string.
func NowRFC3339() string {
	return FormatRFC3339(time.Now())
}
