package usecase

import (
	"context"
	"fmt"
	"time"

	"udaansathi-service/internal/domain/entity"
	"udaansathi-service/internal/domain/repository"
	"udaansathi-service/pkg/logger"
	"udaansathi-service/pkg/utils"
)

// RefundService handles passenger refund submissions and their admin
// finalization.
type RefundService struct {
	refunds repository.RefundRepository
	archive repository.ArchiveRepository
	logger  logger.Logger
}

// NewRefundService creates a new refund service
func NewRefundService(
	refunds repository.RefundRepository,
	archive repository.ArchiveRepository,
	logger logger.Logger,
) *RefundService {
	return &RefundService{
		refunds: refunds,
		archive: archive,
		logger:  logger,
	}
}

// Submit validates and stores one refund request. Nothing is written when
// validation fails.
func (s *RefundService) Submit(ctx context.Context, airport, flightID, passengerID string, request *entity.RefundRequest) error {
	for field, value := range map[string]string{
		"airport":      airport,
		"flight_id":    flightID,
		"passenger_id": passengerID,
		"name":         request.Name,
		"pnr":          request.PNR,
		"upi_id":       request.UpiID,
	} {
		if value == "" {
			return fmt.Errorf("%w: missing %s", entity.ErrValidation, field)
		}
	}

	if !utils.IsValidPNR(request.PNR) {
		return fmt.Errorf("%w: malformed pnr %q", entity.ErrValidation, request.PNR)
	}

	if request.Status == "" {
		request.Status = entity.RefundStatusPending
	}
	request.Timestamp = time.Now().UTC()

	if err := s.refunds.Save(ctx, airport, flightID, passengerID, request); err != nil {
		return fmt.Errorf("save refund request: %w", err)
	}

	s.logger.Info("Refund request submitted",
		"airport", airport,
		"flightId", flightID,
		"passengerId", passengerID,
		"pnr", request.PNR)
	return nil
}

// List returns the refund requests for one flight.
func (s *RefundService) List(ctx context.Context, airport, flightID string) ([]entity.RefundRequest, error) {
	return s.refunds.ListByFlight(ctx, airport, flightID)
}

// Finalize deletes a refund request and removes the passenger from the
// archived flight copy. Finalizing an absent request is a no-op, so the
// operation stays idempotent.
func (s *RefundService) Finalize(ctx context.Context, airport, flightID, passengerID string) error {
	request, err := s.refunds.Get(ctx, airport, flightID, passengerID)
	if err != nil {
		return fmt.Errorf("load refund request: %w", err)
	}

	if err := s.refunds.Delete(ctx, airport, flightID, passengerID); err != nil {
		return fmt.Errorf("delete refund request: %w", err)
	}

	if request != nil && request.PNR != "" {
		// Best effort; the refund itself is already finalized.
		if err := s.archive.RemovePassenger(ctx, flightID, request.PNR); err != nil {
			s.logger.Warn("Failed to remove passenger from archived flight",
				"flightId", flightID,
				"pnr", request.PNR,
				"error", err)
		}
	}

	return nil
}
