package repository

import (
	"context"
	"sort"

	"udaansathi-service/internal/domain/entity"
	"udaansathi-service/internal/domain/repository"
)

// StoreNotificationRepository implements the NotificationRepository
// interface over the notifications tree. Entries are append-only; the
// store generates the keys.
type StoreNotificationRepository struct {
	store repository.DocumentStore
}

// NewStoreNotificationRepository creates a new document-store notification repository
func NewStoreNotificationRepository(store repository.DocumentStore) repository.NotificationRepository {
	return &StoreNotificationRepository{
		store: store,
	}
}

func (r *StoreNotificationRepository) Append(ctx context.Context, pnr string, notification *entity.Notification) (string, error) {
	return r.store.Push(ctx, "notifications/"+pnr, notification)
}

func (r *StoreNotificationRepository) ListByPNR(ctx context.Context, pnr string) ([]entity.Notification, error) {
	var raw map[string]entity.Notification
	if err := r.store.Get(ctx, "notifications/"+pnr, &raw); err != nil {
		return nil, err
	}

	notifications := make([]entity.Notification, 0, len(raw))
	for id, n := range raw {
		n.ID = id
		notifications = append(notifications, n)
	}

	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].Timestamp.Before(notifications[j].Timestamp)
	})
	return notifications, nil
}
