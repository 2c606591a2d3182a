package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"udaansathi-service/internal/domain/entity"
	"udaansathi-service/internal/domain/repository"
	"udaansathi-service/pkg/logger"
	"udaansathi-service/pkg/utils"
)

// StoreFlightRepository implements the FlightRepository interface over the
// document store.
type StoreFlightRepository struct {
	store  repository.DocumentStore
	logger logger.Logger
}

// NewStoreFlightRepository creates a new document-store flight repository
func NewStoreFlightRepository(store repository.DocumentStore, logger logger.Logger) repository.FlightRepository {
	return &StoreFlightRepository{
		store:  store,
		logger: logger,
	}
}

func flightPath(airport, flightID string) string {
	return fmt.Sprintf("airports/%s/flights/%s", utils.NormalizeCode(airport), flightID)
}

// decodeNode converts a raw store node into a typed record.
func decodeNode(raw map[string]interface{}, into interface{}) error {
	data, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, into)
}

// GetFlight reads one live flight record. An absent record is NotFound.
func (r *StoreFlightRepository) GetFlight(ctx context.Context, airport, flightID string) (*entity.Flight, error) {
	var raw map[string]interface{}
	if err := r.store.Get(ctx, flightPath(airport, flightID), &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, entity.ErrFlightNotFound
	}

	var flight entity.Flight
	if err := decodeNode(raw, &flight); err != nil {
		return nil, fmt.Errorf("decode flight %s: %w", flightID, err)
	}
	flight.ID = flightID
	if flight.Source == "" {
		flight.Source = utils.NormalizeCode(airport)
	}
	return &flight, nil
}

// ListFlights returns all flights departing one airport, ordered by flight
// number. An unknown airport yields an empty list.
func (r *StoreFlightRepository) ListFlights(ctx context.Context, airport string) ([]entity.Flight, error) {
	path := fmt.Sprintf("airports/%s/flights", utils.NormalizeCode(airport))

	var raw map[string]entity.Flight
	if err := r.store.Get(ctx, path, &raw); err != nil {
		return nil, err
	}

	flights := make([]entity.Flight, 0, len(raw))
	for id, flight := range raw {
		flight.ID = id
		if flight.Source == "" {
			flight.Source = utils.NormalizeCode(airport)
		}
		flights = append(flights, flight)
	}

	sort.Slice(flights, func(i, j int) bool { return flights[i].ID < flights[j].ID })
	return flights, nil
}

func (r *StoreFlightRepository) SaveFlight(ctx context.Context, airport, flightID string, flight *entity.Flight) error {
	flight.ID = flightID
	flight.Source = utils.NormalizeCode(airport)
	return r.store.Set(ctx, flightPath(airport, flightID), flight)
}

func (r *StoreFlightRepository) UpdateFlight(ctx context.Context, airport, flightID string, fields map[string]interface{}) error {
	return r.store.Update(ctx, flightPath(airport, flightID), fields)
}

func (r *StoreFlightRepository) DeleteFlight(ctx context.Context, airport, flightID string) error {
	return r.store.Delete(ctx, flightPath(airport, flightID))
}

type airportNode struct {
	City    string                   `json:"city,omitempty"`
	Country string                   `json:"country,omitempty"`
	Flights map[string]entity.Flight `json:"flights,omitempty"`
}

// FindBookingByPNR scans the whole airports tree for the passenger. The
// scan order is the store's natural order; PNRs are only unique within a
// flight, so the first match wins.
func (r *StoreFlightRepository) FindBookingByPNR(ctx context.Context, pnr string) (*entity.Booking, error) {
	var airports map[string]airportNode
	if err := r.store.Get(ctx, "airports", &airports); err != nil {
		return nil, err
	}

	for code, airport := range airports {
		for flightID, flight := range airport.Flights {
			passenger, ok := flight.Passengers[pnr]
			if !ok {
				continue
			}

			source := flight.Source
			if source == "" {
				source = code
			}
			return &entity.Booking{
				PNR:             pnr,
				Airport:         code,
				FlightID:        flightID,
				Airline:         flight.Airline,
				Source:          source,
				Destination:     flight.Destination,
				DestinationCity: flight.DestinationCity,
				DepartureTime:   flight.DepartureTime,
				ArrivalTime:     flight.ArrivalTime,
				FlightStatus:    flight.Status,
				Passenger:       passenger,
			}, nil
		}
	}

	return nil, entity.ErrBookingNotFound
}
