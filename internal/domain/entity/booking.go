package entity

// Booking is the flattened view of a passenger plus their flight, assembled
// for PNR lookups across all airports.
type Booking struct {
	PNR             string    `json:"pnr"`
	Airport         string    `json:"airport"`
	FlightID        string    `json:"flight_id"`
	Airline         string    `json:"airline"`
	Source          string    `json:"source"`
	Destination     string    `json:"destination"`
	DestinationCity string    `json:"destination_city,omitempty"`
	DepartureTime   string    `json:"departure_time"`
	ArrivalTime     string    `json:"arrival_time,omitempty"`
	FlightStatus    string    `json:"flight_status"`
	Passenger       Passenger `json:"passenger"`
}
