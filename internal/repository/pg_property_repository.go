package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Lutefd/estate-site/internal/model"
)

const propertyColumns = `id, title, location, status, type, bedrooms, bathrooms, area, price, description, ` +
	`exterior_images, bedroom_images, bathroom_images, living_room_images`

type PostgresPropertyRepository struct {
	db *sql.DB
}

func NewPostgresPropertyRepository(connURL string, db *sql.DB) (*PostgresPropertyRepository, error) {
	db, err := openDB(connURL, db)
	if err != nil {
		return nil, err
	}
	return &PostgresPropertyRepository{db: db}, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProperty(row rowScanner) (model.Property, error) {
	var p model.Property
	err := row.Scan(
		&p.ID, &p.Title, &p.Location, &p.Status, &p.Type, &p.Bedrooms, &p.Bathrooms, &p.Area, &p.Price, &p.Description,
		&p.ExteriorImages, &p.BedroomImages, &p.BathroomImages, &p.LivingRoomImages,
	)
	return p, err
}

func (r *PostgresPropertyRepository) List(ctx context.Context) ([]model.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties ORDER BY position, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	defer rows.Close()

	properties := []model.Property{}
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan property: %w", err)
		}
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	return properties, nil
}

func (r *PostgresPropertyRepository) GetByID(ctx context.Context, id string) (*model.Property, error) {
	query := `SELECT ` + propertyColumns + ` FROM properties WHERE id = $1`
	p, err := scanProperty(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, model.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	return &p, nil
}

func (r *PostgresPropertyRepository) Upsert(ctx context.Context, p *model.Property) error {
	query := `INSERT INTO properties (` + propertyColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title, location = EXCLUDED.location, status = EXCLUDED.status,
			type = EXCLUDED.type, bedrooms = EXCLUDED.bedrooms, bathrooms = EXCLUDED.bathrooms,
			area = EXCLUDED.area, price = EXCLUDED.price, description = EXCLUDED.description,
			exterior_images = EXCLUDED.exterior_images, bedroom_images = EXCLUDED.bedroom_images,
			bathroom_images = EXCLUDED.bathroom_images, living_room_images = EXCLUDED.living_room_images,
			updated_at = NOW()`
	_, err := r.db.ExecContext(ctx, query,
		p.ID, p.Title, p.Location, p.Status, p.Type, p.Bedrooms, p.Bathrooms, p.Area, p.Price, p.Description,
		p.ExteriorImages, p.BedroomImages, p.BathroomImages, p.LivingRoomImages,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert property %s: %w", p.ID, err)
	}
	return nil
}

func (r *PostgresPropertyRepository) Close() error {
	return r.db.Close()
}
