package repository

import (
	"context"

	"udaansathi-service/internal/domain/entity"
	"udaansathi-service/internal/domain/repository"
	"udaansathi-service/pkg/utils"
)

// defaultAirports is the built-in supported set, used when no reference
// database is configured.
var defaultAirports = map[string]entity.Airport{
	"DEL": {Code: "DEL", City: "New Delhi", Country: "India"},
	"BOM": {Code: "BOM", City: "Mumbai", Country: "India"},
	"BLR": {Code: "BLR", City: "Bengaluru", Country: "India"},
	"HYD": {Code: "HYD", City: "Hyderabad", Country: "India"},
	"MAA": {Code: "MAA", City: "Chennai", Country: "India"},
	"CCU": {Code: "CCU", City: "Kolkata", Country: "India"},
	"AMD": {Code: "AMD", City: "Ahmedabad", Country: "India"},
	"COK": {Code: "COK", City: "Kochi", Country: "India"},
	"PNQ": {Code: "PNQ", City: "Pune", Country: "India"},
	"GOI": {Code: "GOI", City: "Goa", Country: "India"},
}

// StaticAirportRepository serves the built-in airport set
type StaticAirportRepository struct {
	airports map[string]entity.Airport
}

// NewStaticAirportRepository creates an airport repository over the
// built-in set
func NewStaticAirportRepository() repository.AirportRepository {
	return &StaticAirportRepository{
		airports: defaultAirports,
	}
}

func (r *StaticAirportRepository) GetByCode(ctx context.Context, code string) (*entity.Airport, error) {
	airport, ok := r.airports[utils.NormalizeCode(code)]
	if !ok {
		return nil, entity.ErrAirportNotFound
	}
	return &airport, nil
}

func (r *StaticAirportRepository) Exists(ctx context.Context, code string) (bool, error) {
	_, ok := r.airports[utils.NormalizeCode(code)]
	return ok, nil
}
