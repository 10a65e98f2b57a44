package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Lutefd/estate-site/internal/model"
)

type PostgresLogRepository struct {
	db *sql.DB
}

// NewPostgresLogRepository opens connURL unless an existing handle is passed in.
func NewPostgresLogRepository(connURL string, db *sql.DB) (*PostgresLogRepository, error) {
	db, err := openDB(connURL, db)
	if err != nil {
		return nil, err
	}
	return &PostgresLogRepository{db: db}, nil
}

func (r *PostgresLogRepository) SaveLog(ctx context.Context, log model.Log) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO logs (id, level, message, timestamp, source)
		VALUES ($1, $2, $3, $4, $5)
	`, log.ID, log.Level, log.Message, log.Timestamp, log.Source)
	if err != nil {
		return fmt.Errorf("failed to save log: %w", err)
	}
	return nil
}

func (r *PostgresLogRepository) Close() error {
	return r.db.Close()
}
