package repository

import (
	"context"

	"udaansathi-service/internal/domain/entity"
)

// FlightRepository defines operations on live flight records under
// airports/{CODE}/flights/{flight_id}.
type FlightRepository interface {
	GetFlight(ctx context.Context, airport, flightID string) (*entity.Flight, error)
	ListFlights(ctx context.Context, airport string) ([]entity.Flight, error)
	SaveFlight(ctx context.Context, airport, flightID string, flight *entity.Flight) error
	UpdateFlight(ctx context.Context, airport, flightID string, fields map[string]interface{}) error
	DeleteFlight(ctx context.Context, airport, flightID string) error

	// FindBookingByPNR scans all airports for the passenger with the
	// given PNR.
	FindBookingByPNR(ctx context.Context, pnr string) (*entity.Booking, error)
}
