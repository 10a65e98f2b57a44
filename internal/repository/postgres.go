package repository

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

func openDB(connURL string, db *sql.DB) (*sql.DB, error) {
	if db == nil {
		var err error
		db, err = sql.Open("postgres", connURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}
