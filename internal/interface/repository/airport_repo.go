package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"udaansathi-service/internal/domain/entity"
	"udaansathi-service/pkg/utils"
)

// GormAirportRepository implements the AirportRepository interface
type GormAirportRepository struct {
	db *gorm.DB
}

// Airportlist GORM model for database mapping
type Airportlist struct {
	ID        uint           `gorm:"primaryKey"`
	Code      string         `gorm:"column:code;unique"`
	City      string         `gorm:"column:city"`
	Country   string         `gorm:"column:country"`
	DeletedAt gorm.DeletedAt `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the default table name
func (Airportlist) TableName() string {
	return "airports"
}

// NewGormAirportRepository creates a new GORM airport repository
func NewGormAirportRepository(db *gorm.DB) (*GormAirportRepository, error) {
	if err := db.AutoMigrate(&Airportlist{}); err != nil {
		return nil, err
	}

	return &GormAirportRepository{
		db: db,
	}, nil
}

// GetByCode finds an airport by its IATA code
func (r *GormAirportRepository) GetByCode(ctx context.Context, code string) (*entity.Airport, error) {
	var row Airportlist
	err := r.db.WithContext(ctx).Where("code = ?", utils.NormalizeCode(code)).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrAirportNotFound
		}
		return nil, err
	}

	return &entity.Airport{
		ID:        row.ID,
		Code:      row.Code,
		City:      row.City,
		Country:   row.Country,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
		DeletedAt: row.DeletedAt,
	}, nil
}

// Exists reports whether the code is in the supported set
func (r *GormAirportRepository) Exists(ctx context.Context, code string) (bool, error) {
	_, err := r.GetByCode(ctx, code)
	if errors.Is(err, entity.ErrAirportNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Seed upserts reference rows, used by the seeding CLI.
func (r *GormAirportRepository) Seed(ctx context.Context, airports map[string]entity.Airport) error {
	for code, a := range airports {
		var row Airportlist
		err := r.db.WithContext(ctx).Where("code = ?", utils.NormalizeCode(code)).First(&row).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			row = Airportlist{Code: utils.NormalizeCode(code), City: a.City, Country: a.Country}
			if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			row.City = a.City
			row.Country = a.Country
			if err := r.db.WithContext(ctx).Save(&row).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
