package repository

import (
	"time"

	"pomodoro-tracker/internal/pomodoros/models"
)

// PomodoroRepositoryInterface defines the interface for record store operations.
type PomodoroRepositoryInterface interface {
	Create(input *models.PomodoroCreate) (*models.PomodoroResponse, error)
	Delete(id int64) error
	ListAll() ([]models.PomodoroResponse, error)
	List(limit, offset int) ([]models.PomodoroResponse, error)
	Count() (int64, error)
	LastDescription() (string, error)
	CountSince(cutoff time.Time) (int64, error)
}
