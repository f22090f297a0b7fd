package service

import "pomodoro-tracker/internal/pomodoros/models"

// PomodoroServiceInterface defines the interface for pomodoro service operations.
type PomodoroServiceInterface interface {
	Add(input *models.PomodoroCreate) (*models.PomodoroResponse, error)
	Remove(id int64) error
	GetPage(pageParam string) (*PageResult, error)
	GetStats() (*models.StatsResponse, error)
	LastDescription() (string, error)
}
