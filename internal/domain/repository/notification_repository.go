package repository

import (
	"context"

	"udaansathi-service/internal/domain/entity"
)

// NotificationRepository is the append-only notification list per PNR.
type NotificationRepository interface {
	Append(ctx context.Context, pnr string, notification *entity.Notification) (string, error)
	ListByPNR(ctx context.Context, pnr string) ([]entity.Notification, error)
}
