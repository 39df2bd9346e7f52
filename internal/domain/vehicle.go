package domain

import "time"

type VehicleStatus string

const (
	VehicleAvailable   VehicleStatus = "available"
	VehicleRented      VehicleStatus = "rented"
	VehicleMaintenance VehicleStatus = "maintenance"
)

func (s VehicleStatus) Valid() bool {
	switch s {
	case VehicleAvailable, VehicleRented, VehicleMaintenance:
		return true
	}
	return false
}

// MaxVehicleImages caps the image list per vehicle.
const MaxVehicleImages = 5

type Vehicle struct {
	ID           int64         `json:"id"`
	LicensePlate string        `json:"licensePlate" validate:"required"`
	Type         string        `json:"type" validate:"required"`
	Brand        string        `json:"brand" validate:"required"`
	PricePerDay  float64       `json:"pricePerDay" validate:"required,gt=0"`
	Status       VehicleStatus `json:"status"`

	// Remote image URLs in upload order. No deletion handles are kept for
	// vehicle images: replacement overwrites the whole list.
	Images []string `json:"images"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
