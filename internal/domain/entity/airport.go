package entity

import (
	"time"

	"gorm.io/gorm"
)

// Airport is reference data for a supported departure airport. Backed by
// the airports table in Postgres, with a static fallback set when no
// database is configured.
type Airport struct {
	ID        uint
	Code      string
	City      string
	Country   string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt
}
