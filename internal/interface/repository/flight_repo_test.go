package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"udaansathi-service/internal/domain/entity"
	"udaansathi-service/pkg/logger"
)

func seedFlight(t *testing.T, store *MemoryStore, airport, flightID string, flight *entity.Flight) {
	t.Helper()
	repo := NewStoreFlightRepository(store, logger.NewNop())
	require.NoError(t, repo.SaveFlight(context.Background(), airport, flightID, flight))
}

func TestGetFlightNormalizesAirportCode(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := NewStoreFlightRepository(store, logger.NewNop())

	seedFlight(t, store, "DEL", "6E213", &entity.Flight{Airline: "IndiGo", Destination: "BOM", DepartureTime: "10:30", Status: "Scheduled"})

	flight, err := repo.GetFlight(ctx, " del ", "6E213")
	require.NoError(t, err)
	assert.Equal(t, "6E213", flight.ID)
	assert.Equal(t, "DEL", flight.Source)
	assert.Equal(t, "IndiGo", flight.Airline)
}

func TestGetFlightNotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewStoreFlightRepository(NewMemoryStore(), logger.NewNop())

	_, err := repo.GetFlight(ctx, "DEL", "XX000")
	assert.ErrorIs(t, err, entity.ErrFlightNotFound)
}

func TestListFlightsSortedByFlightNumber(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := NewStoreFlightRepository(store, logger.NewNop())

	seedFlight(t, store, "DEL", "UK955", &entity.Flight{Airline: "Vistara", Destination: "BOM"})
	seedFlight(t, store, "DEL", "6E213", &entity.Flight{Airline: "IndiGo", Destination: "BOM"})
	seedFlight(t, store, "DEL", "AI101", &entity.Flight{Airline: "Air India", Destination: "CCU"})

	flights, err := repo.ListFlights(ctx, "DEL")
	require.NoError(t, err)
	require.Len(t, flights, 3)
	assert.Equal(t, "6E213", flights[0].ID)
	assert.Equal(t, "AI101", flights[1].ID)
	assert.Equal(t, "UK955", flights[2].ID)
}

func TestListFlightsUnknownAirportIsEmpty(t *testing.T) {
	ctx := context.Background()
	repo := NewStoreFlightRepository(NewMemoryStore(), logger.NewNop())

	flights, err := repo.ListFlights(ctx, "XYZ")
	require.NoError(t, err)
	assert.Empty(t, flights)
}

func TestUpdateFlightMergesFields(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := NewStoreFlightRepository(store, logger.NewNop())

	seedFlight(t, store, "DEL", "6E213", &entity.Flight{
		Airline:       "IndiGo",
		Destination:   "BOM",
		DepartureTime: "10:30",
		Status:        "Scheduled",
		Passengers:    map[string]entity.Passenger{"ABC123": {Name: "Asha Rao"}},
	})

	require.NoError(t, repo.UpdateFlight(ctx, "DEL", "6E213", map[string]interface{}{
		"status":         "Delayed",
		"departure_time": "14:00",
	}))

	flight, err := repo.GetFlight(ctx, "DEL", "6E213")
	require.NoError(t, err)
	assert.Equal(t, "Delayed", flight.Status)
	assert.Equal(t, "14:00", flight.DepartureTime)
	assert.Equal(t, "IndiGo", flight.Airline)
	assert.Len(t, flight.Passengers, 1)
}

func TestFindBookingByPNR(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	repo := NewStoreFlightRepository(store, logger.NewNop())

	seedFlight(t, store, "DEL", "6E213", &entity.Flight{
		Airline:       "IndiGo",
		Destination:   "BOM",
		DepartureTime: "10:30",
		Status:        "Scheduled",
		Passengers:    map[string]entity.Passenger{"ABC123": {Name: "Asha Rao", Seat: "12A"}},
	})
	seedFlight(t, store, "BOM", "AI101", &entity.Flight{Airline: "Air India", Destination: "CCU"})

	booking, err := repo.FindBookingByPNR(ctx, "ABC123")
	require.NoError(t, err)
	assert.Equal(t, "ABC123", booking.PNR)
	assert.Equal(t, "DEL", booking.Airport)
	assert.Equal(t, "6E213", booking.FlightID)
	assert.Equal(t, "Asha Rao", booking.Passenger.Name)
	assert.Equal(t, "12A", booking.Passenger.Seat)

	_, err = repo.FindBookingByPNR(ctx, "ZZZ999")
	assert.ErrorIs(t, err, entity.ErrBookingNotFound)
}
