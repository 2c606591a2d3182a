package repository

import (
	"context"

	"udaansathi-service/internal/domain/entity"
)

// RefundRepository defines operations on
// refund_requests/{CODE}/{flight_id}/{passenger_id}.
type RefundRepository interface {
	Save(ctx context.Context, airport, flightID, passengerID string, request *entity.RefundRequest) error

	// Get returns nil without error when the request does not exist.
	Get(ctx context.Context, airport, flightID, passengerID string) (*entity.RefundRequest, error)
	ListByFlight(ctx context.Context, airport, flightID string) ([]entity.RefundRequest, error)

	// Delete is idempotent; deleting an absent request succeeds.
	Delete(ctx context.Context, airport, flightID, passengerID string) error
}
