package service

import (
	"fmt"
	"time"

	"pomodoro-tracker/internal/pomodoros/models"
	"pomodoro-tracker/internal/pomodoros/repository"

	"pomodoro-tracker/internal/shared/config"
	"pomodoro-tracker/internal/shared/pagination"
)

// PageResult carries one rendered page plus its navigation metadata.
// Empty is set when the store holds no records at all; no page number is
// computed in that case.
type PageResult struct {
	Items      []models.PomodoroResponse
	Total      int64
	Page       int
	TotalPages int
	PrevPage   int
	NextPage   int
	PageSize   int
	Empty      bool
}

// PomodoroService handles business logic for pomodoro operations.
type PomodoroService struct {
	repo     *repository.PomodoroRepository
	pageSize int
	goal     int
}

// NewPomodoroService creates a new PomodoroService. Non-positive pageSize or
// goal fall back to the defaults.
func NewPomodoroService(repo *repository.PomodoroRepository, pageSize, goal int) *PomodoroService {
	if pageSize <= 0 {
		pageSize = config.DefaultPageSize
	}
	if goal <= 0 {
		goal = config.DefaultGoal
	}
	return &PomodoroService{
		repo:     repo,
		pageSize: pageSize,
		goal:     goal,
	}
}

// Add records a completed pomodoro after validation. The store assigns the
// timestamp; the caller only supplies the description.
func (s *PomodoroService) Add(input *models.PomodoroCreate) (*models.PomodoroResponse, error) {
	if err := input.Validate(); err != nil {
		return nil, fmt.Errorf("validation error: %w", err)
	}

	return s.repo.Create(input)
}

// Remove deletes a recorded pomodoro. Removing an unknown or already removed
// id succeeds without effect.
func (s *PomodoroService) Remove(id int64) error {
	return s.repo.Delete(id)
}

// GetPage resolves the raw page parameter against the current record count and
// returns that page in ascending-id order. An absent or malformed parameter
// lands on the last page; out-of-range values clamp. Resolution happens on
// every call, so a delete that empties the last page re-clamps on the next
// render instead of pointing past the new last page.
func (s *PomodoroService) GetPage(pageParam string) (*PageResult, error) {
	total, err := s.repo.Count()
	if err != nil {
		return nil, err
	}

	pager := pagination.New(int(total), s.pageSize)
	if pager.Empty() {
		return &PageResult{
			Items:    []models.PomodoroResponse{},
			PageSize: s.pageSize,
			Empty:    true,
		}, nil
	}

	page := pager.Resolve(pageParam)
	start, end := pager.Bounds(page)

	items, err := s.repo.List(end-start, start)
	if err != nil {
		return nil, err
	}

	return &PageResult{
		Items:      items,
		Total:      total,
		Page:       page,
		TotalPages: pager.TotalPages(),
		PrevPage:   pager.Prev(page),
		NextPage:   pager.Next(page),
		PageSize:   s.pageSize,
	}, nil
}

// GetStats computes the rolling-window counts plus the all-time total. All
// cutoffs derive from a single clock sample so the four numbers describe one
// consistent snapshot, and windows are fixed 86400-second days rather than
// calendar days.
func (s *PomodoroService) GetStats() (*models.StatsResponse, error) {
	now := time.Now()

	counts := make([]int64, len(config.StatWindowsDays))
	for i, days := range config.StatWindowsDays {
		cutoff := now.Add(-time.Duration(days) * 24 * time.Hour)
		count, err := s.repo.CountSince(cutoff)
		if err != nil {
			return nil, err
		}
		counts[i] = count
	}

	total, err := s.repo.Count()
	if err != nil {
		return nil, err
	}

	return &models.StatsResponse{
		Total:       total,
		Goal:        s.goal,
		Last7Days:   counts[0],
		Last30Days:  counts[1],
		Last365Days: counts[2],
	}, nil
}

// LastDescription returns the most recently added description, used to
// pre-fill the add form. Empty string when no records exist.
func (s *PomodoroService) LastDescription() (string, error) {
	return s.repo.LastDescription()
}

// Goal returns the configured target pomodoro count.
func (s *PomodoroService) Goal() int {
	return s.goal
}

// PageSize returns the configured rows-per-page.
func (s *PomodoroService) PageSize() int {
	return s.pageSize
}
