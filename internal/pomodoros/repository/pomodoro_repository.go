package repository

import (
	"database/sql"
	"fmt"
	"time"

	"pomodoro-tracker/internal/pomodoros/models"

	"pomodoro-tracker/internal/shared/database"
)

// PomodoroRepository handles database operations for pomodoro records.
type PomodoroRepository struct {
	db *database.DB
}

// NewPomodoroRepository creates a new PomodoroRepository.
func NewPomodoroRepository(db *database.DB) *PomodoroRepository {
	return &PomodoroRepository{db: db}
}

// Create inserts a new pomodoro with the current timestamp and returns the
// complete record including its generated id.
func (r *PomodoroRepository) Create(input *models.PomodoroCreate) (*models.PomodoroResponse, error) {
	timestamp := models.NowRFC3339()

	result, err := r.db.Exec(
		"INSERT INTO pomodoros (description, timestamp) VALUES (?, ?)",
		input.Description, timestamp,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert pomodoro: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert id: %w", err)
	}

	return &models.PomodoroResponse{
		ID:          id,
		Description: input.Description,
		Timestamp:   timestamp,
	}, nil
}

// Delete removes a pomodoro by id. Deleting an id that does not exist (or was
// already deleted) is a silent no-op: deletion is idempotent at the row level.
func (r *PomodoroRepository) Delete(id int64) error {
	if _, err := r.db.Exec("DELETE FROM pomodoros WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete pomodoro: %w", err)
	}
	return nil
}

// ListAll retrieves every pomodoro ascending by id. Returns an empty slice
// when the store is empty.
func (r *PomodoroRepository) ListAll() ([]models.PomodoroResponse, error) {
	rows, err := r.db.Query("SELECT id, description, timestamp FROM pomodoros ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("failed to query pomodoros: %w", err)
	}
	defer rows.Close()

	return scanPomodoros(rows)
}

// List retrieves one ascending-by-id page of pomodoros. Slicing in SQL is
// contract-equal to slicing ListAll in memory.
func (r *PomodoroRepository) List(limit, offset int) ([]models.PomodoroResponse, error) {
	rows, err := r.db.Query(
		"SELECT id, description, timestamp FROM pomodoros ORDER BY id ASC LIMIT ? OFFSET ?",
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query pomodoros: %w", err)
	}
	defer rows.Close()

	return scanPomodoros(rows)
}

// Count returns the total number of recorded pomodoros.
func (r *PomodoroRepository) Count() (int64, error) {
	var count int64
	if err := r.db.QueryRow("SELECT COUNT(*) FROM pomodoros").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count pomodoros: %w", err)
	}
	return count, nil
}

// LastDescription returns the description of the pomodoro with the greatest
// id, or the empty string when the store is empty. Ties break on id, not
// timestamp.
func (r *PomodoroRepository) LastDescription() (string, error) {
	var description string
	err := r.db.QueryRow("SELECT description FROM pomodoros ORDER BY id DESC LIMIT 1").Scan(&description)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to query last description: %w", err)
	}
	return description, nil
}

// CountSince returns the number of pomodoros whose timestamp is >= cutoff.
// RFC3339 UTC strings order lexicographically, so the comparison runs in SQL
// against the stored text column.
func (r *PomodoroRepository) CountSince(cutoff time.Time) (int64, error) {
	var count int64
	err := r.db.QueryRow(
		"SELECT COUNT(*) FROM pomodoros WHERE timestamp >= ?",
		models.FormatRFC3339(cutoff),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pomodoros since cutoff: %w", err)
	}
	return count, nil
}

// scanPomodoros reads all rows of a (id, description, timestamp) result set.
func scanPomodoros(rows *sql.Rows) ([]models.PomodoroResponse, error) {
	pomodoros := []models.PomodoroResponse{}
	for rows.Next() {
		var p models.PomodoroResponse
		if err := rows.Scan(&p.ID, &p.Description, &p.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan pomodoro row: %w", err)
		}
		pomodoros = append(pomodoros, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pomodoro rows: %w", err)
	}

	return pomodoros, nil
}
