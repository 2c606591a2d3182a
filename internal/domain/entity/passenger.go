package entity

const PassengerStatusConfirmed = "Confirmed"

// Passenger is keyed by PNR within a flight's passenger map. The PNR is
// unique within a flight, not globally.
type Passenger struct {
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	Seat        string `json:"seat,omitempty"`
	Status      string `json:"status,omitempty"`
	BookingDate string `json:"booking_date,omitempty"`
}
