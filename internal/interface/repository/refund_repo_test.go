package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"udaansathi-service/internal/domain/entity"
)

func TestRefundGetAbsentReturnsNil(t *testing.T) {
	ctx := context.Background()
	repo := NewStoreRefundRepository(NewMemoryStore())

	request, err := repo.Get(ctx, "DEL", "6E213", "p1")
	require.NoError(t, err)
	assert.Nil(t, request)
}

func TestRefundSaveGetDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewStoreRefundRepository(NewMemoryStore())

	require.NoError(t, repo.Save(ctx, "del", "6E213", "p1", &entity.RefundRequest{
		Name:      "Asha Rao",
		PNR:       "ABC123",
		UpiID:     "asha@upi",
		Status:    entity.RefundStatusPending,
		Timestamp: time.Now().UTC(),
	}))

	// Save normalizes the airport segment, so mixed-case reads line up.
	request, err := repo.Get(ctx, "DEL", "6E213", "p1")
	require.NoError(t, err)
	require.NotNil(t, request)
	assert.Equal(t, "p1", request.ID)
	assert.Equal(t, "ABC123", request.PNR)

	require.NoError(t, repo.Delete(ctx, "DEL", "6E213", "p1"))
	request, err = repo.Get(ctx, "DEL", "6E213", "p1")
	require.NoError(t, err)
	assert.Nil(t, request)

	// Deleting again is a no-op.
	require.NoError(t, repo.Delete(ctx, "DEL", "6E213", "p1"))
}

func TestRefundListByFlight(t *testing.T) {
	ctx := context.Background()
	repo := NewStoreRefundRepository(NewMemoryStore())

	base := time.Now().UTC()
	require.NoError(t, repo.Save(ctx, "DEL", "6E213", "p2", &entity.RefundRequest{
		Name: "Vikram Shah", PNR: "DEF456", UpiID: "vikram@upi", Timestamp: base.Add(time.Minute),
	}))
	require.NoError(t, repo.Save(ctx, "DEL", "6E213", "p1", &entity.RefundRequest{
		Name: "Asha Rao", PNR: "ABC123", UpiID: "asha@upi", Timestamp: base,
	}))
	require.NoError(t, repo.Save(ctx, "DEL", "AI101", "p3", &entity.RefundRequest{
		Name: "Other Flight", PNR: "GHI789", UpiID: "other@upi", Timestamp: base,
	}))

	requests, err := repo.ListByFlight(ctx, "DEL", "6E213")
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, "ABC123", requests[0].PNR)
	assert.Equal(t, "DEF456", requests[1].PNR)
}
