package database

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // SQLite driver (pure Go)

	"github.com/ridloal/go-inventory-service/internal/platform/logger"
)

// Pragmas are applied on every new connection. WAL keeps readers unblocked
// while a write is in progress and keeps committed data intact across
// crashes; busy_timeout avoids immediate SQLITE_BUSY when writers overlap.
const dsnParams = "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"

func Connect(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path+dsnParams)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close() // Close handle if ping fails
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Successfully connected to the database at " + path)
	return db, nil
}
