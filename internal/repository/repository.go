package repository

import (
	"context"

	"github.com/Lutefd/estate-site/internal/model"
)

type PropertyRepository interface {
	List(ctx context.Context) ([]model.Property, error)
	GetByID(ctx context.Context, id string) (*model.Property, error)
	Upsert(ctx context.Context, property *model.Property) error
	Close() error
}

type LogRepository interface {
	SaveLog(ctx context.Context, log model.Log) error
	Close() error
}
