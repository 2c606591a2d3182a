package repository

import (
	"context"
	"fmt"

	"udaansathi-service/internal/domain/entity"
	"udaansathi-service/internal/domain/repository"
)

// StoreArchiveRepository implements the ArchiveRepository interface over the
// cancelled_flights tree.
type StoreArchiveRepository struct {
	store repository.DocumentStore
}

// NewStoreArchiveRepository creates a new document-store archive repository
func NewStoreArchiveRepository(store repository.DocumentStore) repository.ArchiveRepository {
	return &StoreArchiveRepository{
		store: store,
	}
}

func archivePath(flightID string) string {
	return "cancelled_flights/" + flightID
}

func (r *StoreArchiveRepository) Save(ctx context.Context, flight *entity.CancelledFlight) error {
	return r.store.Set(ctx, archivePath(flight.ID), flight)
}

func (r *StoreArchiveRepository) Get(ctx context.Context, flightID string) (*entity.CancelledFlight, error) {
	var raw map[string]interface{}
	if err := r.store.Get(ctx, archivePath(flightID), &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, entity.ErrFlightNotFound
	}

	var flight entity.CancelledFlight
	if err := decodeNode(raw, &flight); err != nil {
		return nil, fmt.Errorf("decode archived flight %s: %w", flightID, err)
	}
	flight.ID = flightID
	return &flight, nil
}

func (r *StoreArchiveRepository) RemovePassenger(ctx context.Context, flightID, pnr string) error {
	return r.store.Delete(ctx, fmt.Sprintf("cancelled_flights/%s/passengers/%s", flightID, pnr))
}
