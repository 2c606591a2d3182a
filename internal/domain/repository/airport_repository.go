package repository

import (
	"context"

	"udaansathi-service/internal/domain/entity"
)

// AirportRepository looks up the fixed set of supported departure airports.
type AirportRepository interface {
	GetByCode(ctx context.Context, code string) (*entity.Airport, error)
	Exists(ctx context.Context, code string) (bool, error)
}
