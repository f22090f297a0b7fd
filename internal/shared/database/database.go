// Package database provides SQLite connection management and table initialization.
package database

import (
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

// DB wraps the SQLite database connection with initialization logic.
type DB struct {
	*sql.DB
	path string
	mu   sync.Mutex
}

// New creates a new database connection and initializes tables.
func New(dbPath string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys and WAL mode for better performance
	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON; PRAGMA journal_mode = WAL;"); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to set pragmas: %w", err)
	}

	// SQLite supports only one writer at a time. Setting MaxOpenConns to 1
	// ensures that we don't run into "database is locked" errors during
	// concurrent writes. Every record operation is a single statement, so one
	// connection is all the throughput this dashboard needs.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0) // Reuse connections forever

	db := &DB{
		DB:   sqlDB,
		path: dbPath,
	}

	if err := db.initTables(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to initialize tables: %w", err)
	}

	return db, nil
}

// initTables creates the pomodoros table and its index.
func (db *DB) initTables() error {
	db.mu.Lock()
	defer db.mu.Unlock()

	// AUTOINCREMENT guarantees ids are monotonically assigned and never reused
	// after a delete, which the view layer relies on for insertion ordering.
	pomodorosTableSQL := `
	CREATE TABLE IF NOT EXISTS pomodoros (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		description TEXT NOT NULL,
		timestamp TEXT NOT NULL
	);`

	if _, err := db.Exec(pomodorosTableSQL); err != nil {
		return fmt.Errorf("failed to create pomodoros table: %w", err)
	}

	if _, err := db.Exec("CREATE INDEX IF NOT EXISTS idx_pomodoros_timestamp ON pomodoros(timestamp);"); err != nil {
		return fmt.Errorf("failed to create pomodoros index: %w", err)
	}

	return nil
}

// Path returns the database file path.
func (db *DB) Path() string {
	return db.path
}
