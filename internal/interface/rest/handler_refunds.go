package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"udaansathi-service/internal/domain/entity"
)

type submitRefundRequest struct {
	Airport     string  `json:"airport"`
	FlightID    string  `json:"flight_id"`
	PassengerID string  `json:"passenger_id"`
	Name        string  `json:"name"`
	PNR         string  `json:"pnr"`
	UpiID       string  `json:"upi_id"`
	Amount      float64 `json:"amount"`
	Reason      string  `json:"reason"`
}

func (s *Server) PostRefundSubmit(c echo.Context) error {
	var req submitRefundRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	request := &entity.RefundRequest{
		Name:   req.Name,
		PNR:    req.PNR,
		UpiID:  req.UpiID,
		Amount: req.Amount,
		Reason: req.Reason,
	}

	err := s.refunds.Submit(c.Request().Context(), req.Airport, req.FlightID, req.PassengerID, request)
	if errors.Is(err, entity.ErrValidation) {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, envelope{OK: true, Message: "Refund request submitted"})
}

func (s *Server) GetRefunds(c echo.Context) error {
	requests, err := s.refunds.List(c.Request().Context(), c.Param("airport"), c.Param("flight_id"))
	if err != nil {
		return fmt.Errorf("list refund requests: %w", err)
	}

	return c.JSON(http.StatusOK, requests)
}

func (s *Server) DeleteRefund(c echo.Context) error {
	err := s.refunds.Finalize(c.Request().Context(), c.Param("airport"), c.Param("flight_id"), c.Param("passenger_id"))
	if err != nil {
		return fmt.Errorf("finalize refund: %w", err)
	}

	return c.JSON(http.StatusOK, envelope{OK: true, Message: "Refund finalized"})
}
