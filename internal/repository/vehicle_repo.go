package repository

import (
	"context"
	"errors"
	"time"

	"motorent/internal/domain"
	"motorent/internal/pkg/utils"

	"gorm.io/gorm"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

type vehicleModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	LicensePlate string    `gorm:"column:license_plate;not null;uniqueIndex"`
	Type         string    `gorm:"column:type;not null"`
	Brand        string    `gorm:"column:brand;not null"`
	PricePerDay  float64   `gorm:"column:price_per_day;not null"`
	Status       string    `gorm:"column:status;default:available"`
	Images       string    `gorm:"column:images;type:text"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (vehicleModel) TableName() string { return "vehicles" }

func toDomainVehicle(m vehicleModel) *domain.Vehicle {
	return &domain.Vehicle{
		ID:           m.ID,
		LicensePlate: m.LicensePlate,
		Type:         m.Type,
		Brand:        m.Brand,
		PricePerDay:  m.PricePerDay,
		Status:       domain.VehicleStatus(m.Status),
		Images:       utils.StringToURLs(m.Images),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toVehicleModel(v *domain.Vehicle) vehicleModel {
	return vehicleModel{
		ID:           v.ID,
		LicensePlate: v.LicensePlate,
		Type:         v.Type,
		Brand:        v.Brand,
		PricePerDay:  v.PricePerDay,
		Status:       string(v.Status),
		Images:       utils.URLsToString(v.Images),
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

// Create inserts a vehicle. A license plate collision surfaces as
// ErrDuplicateKey; uniqueness lives in the schema, not in a pre-check.
func (r *VehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	m := toVehicleModel(v)
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		if isDuplicateErr(tx.Error) {
			return ErrDuplicateKey
		}
		return tx.Error
	}
	*v = *toDomainVehicle(m)
	return nil
}

func (r *VehicleRepository) GetAll(ctx context.Context) ([]domain.Vehicle, error) {
	var models []vehicleModel
	if tx := r.db.WithContext(ctx).Order("id").Find(&models); tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Vehicle, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainVehicle(m))
	}
	return out, nil
}

// GetByID returns (nil, nil) when no vehicle with that id exists.
func (r *VehicleRepository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	var m vehicleModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainVehicle(m), nil
}

func (r *VehicleRepository) GetByIDs(ctx context.Context, ids []int64) ([]domain.Vehicle, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var models []vehicleModel
	if tx := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&models); tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.Vehicle, 0, len(models))
	for _, m := range models {
		out = append(out, *toDomainVehicle(m))
	}
	return out, nil
}

func (r *VehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	m := toVehicleModel(v)
	if tx := r.db.WithContext(ctx).Save(&m); tx.Error != nil {
		if isDuplicateErr(tx.Error) {
			return ErrDuplicateKey
		}
		return tx.Error
	}
	*v = *toDomainVehicle(m)
	return nil
}

func (r *VehicleRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&vehicleModel{}, id).Error
}
