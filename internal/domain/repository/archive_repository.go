package repository

import (
	"context"

	"udaansathi-service/internal/domain/entity"
)

// ArchiveRepository defines operations on cancelled_flights/{flight_id}.
type ArchiveRepository interface {
	Save(ctx context.Context, flight *entity.CancelledFlight) error
	Get(ctx context.Context, flightID string) (*entity.CancelledFlight, error)

	// RemovePassenger deletes one passenger entry from an archived
	// flight. Removing an absent entry is a no-op.
	RemovePassenger(ctx context.Context, flightID, pnr string) error
}
