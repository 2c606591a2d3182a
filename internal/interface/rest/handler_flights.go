package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"udaansathi-service/internal/domain/entity"
	"udaansathi-service/internal/usecase"
	"udaansathi-service/pkg/utils"
)

type addFlightRequest struct {
	FlightID        string `json:"flight_id"`
	Airline         string `json:"airline"`
	Source          string `json:"source"`
	Destination     string `json:"destination"`
	DestinationCity string `json:"destination_city"`
	DepartureTime   string `json:"departure_time"`
	// Older frontend revisions post dep_time; coalesced into
	// departure_time at this edge.
	DepTime     string `json:"dep_time"`
	ArrivalTime string `json:"arrival_time"`
	Status      string `json:"status"`
}

type cancelFlightRequest struct {
	FlightID string `json:"flight_id"`
	Source   string `json:"source"`
	Reason   string `json:"reason"`
}

type delayFlightRequest struct {
	FlightID string `json:"flight_id"`
	Source   string `json:"source"`
	NewTime  string `json:"new_time"`
	Delay    string `json:"delay"`
}

type patchFlightRequest struct {
	DepartureTime string `json:"departure_time"`
	DepTime       string `json:"dep_time"`
	ArrivalTime   string `json:"arrival_time"`
	Status        string `json:"status"`
	Delay         string `json:"delay"`
	FlightNumber  string `json:"flight_number"`
	Notify        bool   `json:"notify"`
}

// GetFlights lists flights departing one airport. Missing or unsupported
// codes answer 200 with an empty list and a message, matching the
// frontend's expectations.
func (s *Server) GetFlights(c echo.Context) error {
	code := c.QueryParam("airport")
	if code == "" {
		return c.JSON(http.StatusOK, envelope{OK: true, Data: []entity.Flight{}, Message: "missing airport code"})
	}

	supported, err := s.airports.Exists(c.Request().Context(), code)
	if err != nil {
		return fmt.Errorf("check airport %s: %w", code, err)
	}
	if !supported {
		return c.JSON(http.StatusOK, envelope{OK: true, Data: []entity.Flight{}, Message: "unsupported airport code"})
	}

	flights, err := s.flights.ListFlights(c.Request().Context(), code)
	if err != nil {
		return fmt.Errorf("list flights for %s: %w", code, err)
	}

	return c.JSON(http.StatusOK, envelope{OK: true, Data: flights})
}

// SearchFlights filters flights by route.
func (s *Server) SearchFlights(c echo.Context) error {
	source := c.QueryParam("source")
	destination := c.QueryParam("destination")
	if source == "" || destination == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "source and destination are required")
	}

	flights, err := s.flights.ListFlights(c.Request().Context(), source)
	if err != nil {
		return fmt.Errorf("list flights for %s: %w", source, err)
	}

	matched := make([]entity.Flight, 0, len(flights))
	for _, f := range flights {
		if utils.NormalizeCode(f.Destination) == utils.NormalizeCode(destination) {
			matched = append(matched, f)
		}
	}

	return c.JSON(http.StatusOK, envelope{OK: true, Data: matched})
}

func (s *Server) PostAddFlight(c echo.Context) error {
	var req addFlightRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	departureTime := req.DepartureTime
	if departureTime == "" {
		departureTime = req.DepTime
	}

	if req.FlightID == "" || req.Airline == "" || req.Source == "" || req.Destination == "" || departureTime == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "flight_id, airline, source, destination and departure_time are required")
	}

	status := req.Status
	if status == "" {
		status = entity.FlightStatusScheduled
	}

	destinationCity := req.DestinationCity
	if destinationCity == "" {
		if airport, err := s.airports.GetByCode(c.Request().Context(), req.Destination); err == nil {
			destinationCity = airport.City
		}
	}

	flight := &entity.Flight{
		Airline:         req.Airline,
		Destination:     utils.NormalizeCode(req.Destination),
		DestinationCity: destinationCity,
		DepartureTime:   departureTime,
		ArrivalTime:     req.ArrivalTime,
		Status:          status,
	}
	if err := s.flights.SaveFlight(c.Request().Context(), req.Source, req.FlightID, flight); err != nil {
		return fmt.Errorf("save flight %s: %w", req.FlightID, err)
	}

	return c.JSON(http.StatusCreated, envelope{OK: true, Message: "Flight added"})
}

func (s *Server) PostCancelFlight(c echo.Context) error {
	var req cancelFlightRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.FlightID == "" || req.Source == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "flight_id and source are required")
	}

	err := s.disruptions.CancelFlight(c.Request().Context(), req.Source, req.FlightID, req.Reason)
	if errors.Is(err, entity.ErrFlightNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Flight not found")
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, envelope{OK: true, Message: "Flight cancelled"})
}

func (s *Server) PostDelayFlight(c echo.Context) error {
	var req delayFlightRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.FlightID == "" || req.Source == "" || req.NewTime == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "flight_id, source and new_time are required")
	}

	_, err := s.disruptions.DelayFlight(c.Request().Context(), req.Source, req.FlightID, req.NewTime, req.Delay)
	if errors.Is(err, entity.ErrFlightNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Flight not found")
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, envelope{OK: true, Message: "Flight delayed"})
}

func (s *Server) GetFlight(c echo.Context) error {
	flight, err := s.flights.GetFlight(c.Request().Context(), c.Param("airport"), c.Param("flight_id"))
	if errors.Is(err, entity.ErrFlightNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Flight not found")
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, envelope{OK: true, Data: flight})
}

func (s *Server) PatchFlight(c echo.Context) error {
	var req patchFlightRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	departureTime := req.DepartureTime
	if departureTime == "" {
		departureTime = req.DepTime
	}

	updated, err := s.disruptions.ApplyUpdate(c.Request().Context(), c.Param("airport"), c.Param("flight_id"), usecase.FlightUpdate{
		DepartureTime: departureTime,
		ArrivalTime:   req.ArrivalTime,
		Status:        req.Status,
		Delay:         req.Delay,
		FlightNumber:  req.FlightNumber,
		Notify:        req.Notify,
	})
	if errors.Is(err, entity.ErrFlightNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Flight not found")
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, envelope{OK: true, Data: updated})
}

func (s *Server) DeleteFlight(c echo.Context) error {
	airport := c.Param("airport")
	flightID := c.Param("flight_id")

	if _, err := s.flights.GetFlight(c.Request().Context(), airport, flightID); err != nil {
		if errors.Is(err, entity.ErrFlightNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Flight not found")
		}
		return err
	}

	if err := s.flights.DeleteFlight(c.Request().Context(), airport, flightID); err != nil {
		return fmt.Errorf("delete flight %s: %w", flightID, err)
	}

	return c.JSON(http.StatusOK, envelope{OK: true, Message: "Flight deleted"})
}
