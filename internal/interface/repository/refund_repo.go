package repository

import (
	"context"
	"fmt"
	"sort"

	"udaansathi-service/internal/domain/entity"
	"udaansathi-service/internal/domain/repository"
	"udaansathi-service/pkg/utils"
)

// StoreRefundRepository implements the RefundRepository interface over the
// refund_requests tree.
type StoreRefundRepository struct {
	store repository.DocumentStore
}

// NewStoreRefundRepository creates a new document-store refund repository
func NewStoreRefundRepository(store repository.DocumentStore) repository.RefundRepository {
	return &StoreRefundRepository{
		store: store,
	}
}

func refundPath(airport, flightID, passengerID string) string {
	return fmt.Sprintf("refund_requests/%s/%s/%s", utils.NormalizeCode(airport), flightID, passengerID)
}

func (r *StoreRefundRepository) Save(ctx context.Context, airport, flightID, passengerID string, request *entity.RefundRequest) error {
	return r.store.Set(ctx, refundPath(airport, flightID, passengerID), request)
}

func (r *StoreRefundRepository) Get(ctx context.Context, airport, flightID, passengerID string) (*entity.RefundRequest, error) {
	var raw map[string]interface{}
	if err := r.store.Get(ctx, refundPath(airport, flightID, passengerID), &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var request entity.RefundRequest
	if err := decodeNode(raw, &request); err != nil {
		return nil, fmt.Errorf("decode refund request %s: %w", passengerID, err)
	}
	request.ID = passengerID
	return &request, nil
}

func (r *StoreRefundRepository) ListByFlight(ctx context.Context, airport, flightID string) ([]entity.RefundRequest, error) {
	path := fmt.Sprintf("refund_requests/%s/%s", utils.NormalizeCode(airport), flightID)

	var raw map[string]entity.RefundRequest
	if err := r.store.Get(ctx, path, &raw); err != nil {
		return nil, err
	}

	requests := make([]entity.RefundRequest, 0, len(raw))
	for id, req := range raw {
		req.ID = id
		requests = append(requests, req)
	}

	sort.Slice(requests, func(i, j int) bool {
		return requests[i].Timestamp.Before(requests[j].Timestamp)
	})
	return requests, nil
}

func (r *StoreRefundRepository) Delete(ctx context.Context, airport, flightID, passengerID string) error {
	return r.store.Delete(ctx, refundPath(airport, flightID, passengerID))
}
