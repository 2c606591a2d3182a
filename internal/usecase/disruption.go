package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"udaansathi-service/internal/domain/entity"
	"udaansathi-service/internal/domain/repository"
	"udaansathi-service/pkg/logger"
	"udaansathi-service/pkg/metrics"
	"udaansathi-service/pkg/utils"
)

// DisruptionOrchestrator sequences the steps of a cancellation or
// delay/update event. Ordering is fixed: archive before delete on cancel,
// update before notify on delay. There is no cross-step transaction and no
// rollback; the fan-out step is best-effort by design.
type DisruptionOrchestrator struct {
	flights  repository.FlightRepository
	archive  repository.ArchiveRepository
	notifier *Notifier
	metrics  *metrics.Metrics
	logger   logger.Logger
}

// NewDisruptionOrchestrator creates a new disruption orchestrator
func NewDisruptionOrchestrator(
	flights repository.FlightRepository,
	archive repository.ArchiveRepository,
	notifier *Notifier,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *DisruptionOrchestrator {
	return &DisruptionOrchestrator{
		flights:  flights,
		archive:  archive,
		notifier: notifier,
		metrics:  metrics,
		logger:   logger,
	}
}

// FlightUpdate carries the allow-listed fields a delay/update may change.
// Anything else in the request is ignored, not rejected.
type FlightUpdate struct {
	DepartureTime string
	ArrivalTime   string
	Status        string
	Delay         string
	FlightNumber  string
	Notify        bool
}

// CancelFlight reads the live record, archives it, fans the cancellation
// out to the pre-archive passenger list, and deletes the live record.
// Per-passenger fan-out failures are swallowed; archive or delete failures
// surface to the caller.
func (o *DisruptionOrchestrator) CancelFlight(ctx context.Context, airport, flightID, reason string) error {
	flight, err := o.flights.GetFlight(ctx, airport, flightID)
	if err != nil {
		return err
	}

	archived := &entity.CancelledFlight{
		Flight:       *flight,
		CancelReason: reason,
		CancelledAt:  time.Now().UTC(),
	}
	archived.Status = entity.FlightStatusCancelled

	// The archive write comes first so the copy exists even when later
	// steps partially fail.
	if err := o.archive.Save(ctx, archived); err != nil {
		o.metrics.ErrorsCount.WithLabelValues("archive_write").Inc()
		return fmt.Errorf("archive flight %s: %w", flightID, err)
	}

	message := fmt.Sprintf("Flight %s from %s has been cancelled. Reason: %s",
		flightID, utils.NormalizeCode(airport), reason)
	result := o.notifier.NotifyPassengers(ctx, flight, message, entity.EventCancelled)
	if len(result.Failures) > 0 {
		o.logger.Warn("Cancellation fan-out finished with failures",
			"flightId", flightID,
			"notified", result.Notified,
			"failed", len(result.Failures))
	}

	if err := o.flights.DeleteFlight(ctx, airport, flightID); err != nil {
		// Archive already exists; the live record is now stale. No
		// reconciliation is attempted here.
		o.metrics.ErrorsCount.WithLabelValues("live_delete").Inc()
		return fmt.Errorf("delete live flight %s: %w", flightID, err)
	}

	o.metrics.FlightsCancelled.Inc()
	o.logger.Info("Flight cancelled",
		"flightId", flightID,
		"airport", utils.NormalizeCode(airport),
		"reason", reason,
		"passengersNotified", result.Notified,
		"emailsSent", result.EmailsSent)

	return nil
}

// ApplyUpdate applies allow-listed field changes to a live flight and, when
// requested, re-reads the record and notifies its passengers. Returns the
// updated record.
func (o *DisruptionOrchestrator) ApplyUpdate(ctx context.Context, airport, flightID string, update FlightUpdate) (*entity.Flight, error) {
	if _, err := o.flights.GetFlight(ctx, airport, flightID); err != nil {
		return nil, err
	}

	fields := make(map[string]interface{})
	if update.DepartureTime != "" {
		fields["departure_time"] = update.DepartureTime
	}
	if update.ArrivalTime != "" {
		fields["arrival_time"] = update.ArrivalTime
	}
	if update.Status != "" {
		fields["status"] = update.Status
	}
	if update.Delay != "" {
		fields["delay"] = update.Delay
	}
	if update.FlightNumber != "" {
		fields["flight_number"] = update.FlightNumber
	}

	if len(fields) > 0 {
		if err := o.flights.UpdateFlight(ctx, airport, flightID, fields); err != nil {
			o.metrics.ErrorsCount.WithLabelValues("flight_update").Inc()
			return nil, fmt.Errorf("update flight %s: %w", flightID, err)
		}
	}

	updated, err := o.flights.GetFlight(ctx, airport, flightID)
	if err != nil {
		return nil, err
	}

	if update.Notify {
		message := utils.JoinNonEmpty(" | ",
			prefixed("Status: ", update.Status),
			prefixed("Delay: ", update.Delay),
			prefixed("New departure time: ", update.DepartureTime),
		)
		if message == "" {
			message = fmt.Sprintf("Flight %s has been updated.", flightID)
		}

		eventType := entity.EventUpdate
		if update.Status != "" {
			eventType = strings.ToUpper(update.Status)
		}

		result := o.notifier.NotifyPassengers(ctx, updated, message, eventType)
		if len(result.Failures) > 0 {
			o.logger.Warn("Update fan-out finished with failures",
				"flightId", flightID,
				"notified", result.Notified,
				"failed", len(result.Failures))
		}
	}

	o.metrics.FlightsUpdated.Inc()
	return updated, nil
}

// DelayFlight is the delay shorthand: new departure time, status Delayed,
// passengers notified.
func (o *DisruptionOrchestrator) DelayFlight(ctx context.Context, airport, flightID, newDepartureTime, delay string) (*entity.Flight, error) {
	return o.ApplyUpdate(ctx, airport, flightID, FlightUpdate{
		DepartureTime: newDepartureTime,
		Status:        entity.FlightStatusDelayed,
		Delay:         delay,
		Notify:        true,
	})
}

func prefixed(prefix, value string) string {
	if value == "" {
		return ""
	}
	return prefix + value
}
