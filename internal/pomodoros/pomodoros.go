package pomodoros

import (
	"pomodoro-tracker/internal/pomodoros/repository"
	"pomodoro-tracker/internal/pomodoros/service"
	"pomodoro-tracker/internal/shared/database"
)

// NewPomodoroRepository keeps wiring at the feature-package level.
func NewPomodoroRepository(db *database.DB) *repository.PomodoroRepository {
	return repository.NewPomodoroRepository(db)
}

// NewPomodoroService keeps wiring at the feature-package level.
func NewPomodoroService(repo *repository.PomodoroRepository, pageSize, goal int) *service.PomodoroService {
	return service.NewPomodoroService(repo, pageSize, goal)
}

// Re-export types commonly referenced by handlers.
//
// Note: these are type aliases, so there is no runtime overhead.
type PomodoroRepository = repository.PomodoroRepository
type PomodoroService = service.PomodoroService

type PageResult = service.PageResult
