package entity

import (
	"time"
)

// Flight statuses as stored in the realtime database. Status is free text
// written by admin updates; these are the values the service itself writes.
const (
	FlightStatusScheduled = "Scheduled"
	FlightStatusDelayed   = "Delayed"
	FlightStatusCancelled = "CANCELLED"
)

// Disruption event types attached to passenger notifications.
const (
	EventCancelled = "CANCELLED"
	EventDelayed   = "DELAYED"
	EventUpdate    = "UPDATE"
)

// Flight is a live flight record stored under
// airports/{CODE}/flights/{flight_id}. The ID mirrors the store key.
type Flight struct {
	ID              string               `json:"id,omitempty"`
	Airline         string               `json:"airline"`
	Source          string               `json:"source,omitempty"`
	Destination     string               `json:"destination"`
	DestinationCity string               `json:"destination_city,omitempty"`
	DepartureTime   string               `json:"departure_time"`
	ArrivalTime     string               `json:"arrival_time,omitempty"`
	Status          string               `json:"status"`
	Delay           string               `json:"delay,omitempty"`
	Passengers      map[string]Passenger `json:"passengers,omitempty"`
}

// CancelledFlight is the archived copy of a flight written to
// cancelled_flights/{flight_id} at cancellation time. Written once; only
// refund finalization removes individual passenger entries afterwards.
type CancelledFlight struct {
	Flight
	CancelReason string    `json:"cancel_reason"`
	CancelledAt  time.Time `json:"cancelled_at"`
}
