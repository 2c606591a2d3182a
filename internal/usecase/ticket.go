package usecase

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"udaansathi-service/internal/domain/entity"
)

// TicketRenderer renders a one-page PDF ticket for a booking.
type TicketRenderer struct{}

// NewTicketRenderer creates a new ticket renderer
func NewTicketRenderer() *TicketRenderer {
	return &TicketRenderer{}
}

// RenderTicket produces the PDF bytes for one booking.
func (t *TicketRenderer) RenderTicket(booking *entity.Booking) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "Udaan Sathi - E-Ticket", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, fmt.Sprintf("Flight %s  %s -> %s", booking.FlightID, booking.Source, booking.Destination), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 12)
	rows := [][2]string{
		{"Passenger", booking.Passenger.Name},
		{"PNR", booking.PNR},
		{"Airline", booking.Airline},
		{"Seat", booking.Passenger.Seat},
		{"Departure", booking.DepartureTime},
		{"Arrival", booking.ArrivalTime},
		{"Status", booking.FlightStatus},
	}
	for _, row := range rows {
		if row[1] == "" {
			continue
		}
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(40, 8, row[0], "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 12)
		pdf.CellFormat(0, 8, row[1], "", 1, "L", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.CellFormat(0, 6, "Carry a government-issued photo ID. Gates close 25 minutes before departure.", "", 1, "L", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render ticket pdf: %w", err)
	}
	return buf.Bytes(), nil
}
