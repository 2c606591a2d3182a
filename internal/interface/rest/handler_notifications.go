package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"udaansathi-service/internal/domain/entity"
)

// GetNotifications lists the notifications for a PNR. Store errors are
// swallowed into an empty list so the notification panel never breaks the
// page.
func (s *Server) GetNotifications(c echo.Context) error {
	pnr := c.Param("pnr")

	notifications, err := s.notifications.ListByPNR(c.Request().Context(), pnr)
	if err != nil {
		s.logger.Error("Failed to list notifications", "pnr", pnr, "error", err)
		return c.JSON(http.StatusOK, envelope{OK: true, Data: []entity.Notification{}})
	}

	return c.JSON(http.StatusOK, envelope{OK: true, Data: notifications})
}
