package entity

import (
	"errors"
)

var (
	ErrFlightNotFound  = errors.New("flight not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrAirportNotFound = errors.New("airport not found")
	ErrValidation      = errors.New("validation failed")
)
