package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"udaansathi-service/internal/domain/repository"
	"udaansathi-service/internal/usecase"
	"udaansathi-service/pkg/logger"
)

// Server is the HTTP surface of the service.
type Server struct {
	addr   string
	e      *echo.Echo
	logger logger.Logger

	flights       repository.FlightRepository
	airports      repository.AirportRepository
	notifications repository.NotificationRepository
	disruptions   *usecase.DisruptionOrchestrator
	refunds       *usecase.RefundService
	tickets       *usecase.TicketRenderer
}

// NewServer creates the echo server and registers all routes
func NewServer(
	addr string,
	allowedOrigins []string,
	logger logger.Logger,
	flights repository.FlightRepository,
	airports repository.AirportRepository,
	notifications repository.NotificationRepository,
	disruptions *usecase.DisruptionOrchestrator,
	refunds *usecase.RefundService,
	tickets *usecase.TicketRenderer,
) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	server := &Server{
		addr:          addr,
		e:             e,
		logger:        logger,
		flights:       flights,
		airports:      airports,
		notifications: notifications,
		disruptions:   disruptions,
		refunds:       refunds,
		tickets:       tickets,
	}

	e.HTTPErrorHandler = server.handleError
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.GET("/", server.GetStatus)
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.GET("/flights", server.GetFlights)
	e.GET("/flights/search", server.SearchFlights)
	e.POST("/add-flight", server.PostAddFlight)
	e.POST("/cancel-flight", server.PostCancelFlight)
	e.POST("/delay-flight", server.PostDelayFlight)
	e.GET("/flights/:airport/:flight_id", server.GetFlight)
	e.PATCH("/flights/:airport/:flight_id", server.PatchFlight)
	e.DELETE("/flights/:airport/:flight_id", server.DeleteFlight)

	e.GET("/bookings/:pnr", server.GetBooking)
	e.GET("/bookings/:pnr/ticket", server.GetBookingTicket)
	e.GET("/notifications/:pnr", server.GetNotifications)

	e.POST("/api/refunds/submit", server.PostRefundSubmit)
	e.GET("/api/refunds/:airport/:flight_id", server.GetRefunds)
	e.DELETE("/api/refunds/:airport/:flight_id/:passenger_id", server.DeleteRefund)

	return server
}

// Handler exposes the underlying handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.e
}

// Run serves until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		if err := s.e.Shutdown(context.Background()); err != nil {
			s.logger.Error("HTTP server shutdown error", "error", err)
		}
	}()

	s.logger.Info("HTTP server listening", "addr", s.addr)
	if err := s.e.Start(s.addr); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) GetStatus(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "backend running"})
}

// handleError maps every unhandled error to the uniform
// {ok:false, error} body.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := err.Error()

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		if m, ok := httpErr.Message.(string); ok {
			message = m
		}
	}

	if code >= http.StatusInternalServerError {
		s.logger.Error("Request failed", "method", c.Request().Method, "path", c.Path(), "error", err)
	}

	if writeErr := c.JSON(code, envelope{OK: false, Error: message}); writeErr != nil {
		s.logger.Error("Failed to write error response", "error", writeErr)
	}
}
