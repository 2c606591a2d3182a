package usecase

import (
	"context"
	"fmt"
	"time"

	"udaansathi-service/internal/domain/entity"
	"udaansathi-service/internal/domain/repository"
	"udaansathi-service/pkg/logger"
	"udaansathi-service/pkg/metrics"
	"udaansathi-service/templates"
)

// Notifier fans one disruption event out to every passenger on a flight:
// one notification append per PNR, plus an email for passengers with an
// address. Processing is best-effort and passenger-independent; a failure
// for one passenger never stops the loop.
type Notifier struct {
	notifications repository.NotificationRepository
	mailer        repository.Mailer
	dispatchLog   repository.DispatchLogRepository
	metrics       *metrics.Metrics
	logger        logger.Logger
}

// NewNotifier creates a new notification fan-out. dispatchLog may be nil
// when no dispatch database is configured.
func NewNotifier(
	notifications repository.NotificationRepository,
	mailer repository.Mailer,
	dispatchLog repository.DispatchLogRepository,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *Notifier {
	return &Notifier{
		notifications: notifications,
		mailer:        mailer,
		dispatchLog:   dispatchLog,
		metrics:       metrics,
		logger:        logger,
	}
}

// PassengerFailure is one swallowed per-passenger error.
type PassengerFailure struct {
	PNR string
	Err error
}

// FanoutResult collects what happened to each passenger. Callers log it;
// they must not fail the surrounding request because of it.
type FanoutResult struct {
	Notified   int
	EmailsSent int
	Failures   []PassengerFailure
}

// NotifyPassengers writes one notification per passenger on the flight and
// attempts an email for each passenger that has an address. Iteration order
// follows the passenger map and is not stable.
func (n *Notifier) NotifyPassengers(ctx context.Context, flight *entity.Flight, message, eventType string) FanoutResult {
	started := time.Now()
	defer func() {
		n.metrics.FanoutDuration.Observe(time.Since(started).Seconds())
	}()

	var result FanoutResult

	for pnr, passenger := range flight.Passengers {
		notification := &entity.Notification{
			Title:     fmt.Sprintf("Flight %s", flight.ID),
			Message:   message,
			Type:      eventType,
			Timestamp: time.Now().UTC(),
		}

		if _, err := n.notifications.Append(ctx, pnr, notification); err != nil {
			n.logger.Error("Failed to write passenger notification",
				"pnr", pnr,
				"flightId", flight.ID,
				"error", err)
			n.metrics.ErrorsCount.WithLabelValues("notification_append").Inc()
			result.Failures = append(result.Failures, PassengerFailure{PNR: pnr, Err: err})
			continue
		}
		n.metrics.NotificationsWritten.Inc()
		result.Notified++

		if passenger.Email == "" {
			continue
		}

		email := templates.DisruptionEmail(passenger.Name, passenger.Email, flight.ID, flight.Source, flight.Destination, message, eventType)
		if err := n.mailer.Send(ctx, email); err != nil {
			n.logger.Error("Failed to send passenger email",
				"pnr", pnr,
				"flightId", flight.ID,
				"to", passenger.Email,
				"error", err)
			n.metrics.EmailFailures.Inc()
			result.Failures = append(result.Failures, PassengerFailure{PNR: pnr, Err: err})
			n.recordDispatch(ctx, pnr, flight.ID, passenger.Email, eventType, email.Subject, entity.DispatchStatusFailed, err)
			continue
		}

		n.metrics.EmailsSent.Inc()
		result.EmailsSent++
		n.recordDispatch(ctx, pnr, flight.ID, passenger.Email, eventType, email.Subject, entity.DispatchStatusSent, nil)
	}

	return result
}

func (n *Notifier) recordDispatch(ctx context.Context, pnr, flightID, recipient, eventType, subject, status string, sendErr error) {
	if n.dispatchLog == nil {
		return
	}

	dispatch := &entity.EmailDispatch{
		PNR:       pnr,
		FlightID:  flightID,
		Recipient: recipient,
		EventType: eventType,
		Subject:   subject,
		Status:    status,
		SentAt:    time.Now().UTC(),
	}
	if sendErr != nil {
		dispatch.ErrorDetail = sendErr.Error()
	}

	if err := n.dispatchLog.Record(ctx, dispatch); err != nil {
		n.logger.Warn("Failed to record email dispatch",
			"pnr", pnr,
			"flightId", flightID,
			"error", err)
	}
}
