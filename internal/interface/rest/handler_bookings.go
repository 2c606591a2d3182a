package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"udaansathi-service/internal/domain/entity"
)

func (s *Server) GetBooking(c echo.Context) error {
	booking, err := s.flights.FindBookingByPNR(c.Request().Context(), c.Param("pnr"))
	if errors.Is(err, entity.ErrBookingNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Booking not found")
	}
	if err != nil {
		return fmt.Errorf("find booking: %w", err)
	}

	return c.JSON(http.StatusOK, booking)
}

func (s *Server) GetBookingTicket(c echo.Context) error {
	pnr := c.Param("pnr")

	booking, err := s.flights.FindBookingByPNR(c.Request().Context(), pnr)
	if errors.Is(err, entity.ErrBookingNotFound) {
		return echo.NewHTTPError(http.StatusNotFound, "Booking not found")
	}
	if err != nil {
		return fmt.Errorf("find booking: %w", err)
	}

	pdf, err := s.tickets.RenderTicket(booking)
	if err != nil {
		return fmt.Errorf("render ticket: %w", err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="ticket_%s.pdf"`, pnr))
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}
