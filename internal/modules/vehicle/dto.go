package vehicle

// CreateVehicleRequest carries the multipart form fields of POST /api/vehicles.
type CreateVehicleRequest struct {
	LicensePlate string  `form:"licensePlate" validate:"required"`
	Type         string  `form:"type" validate:"required"`
	Brand        string  `form:"brand" validate:"required"`
	PricePerDay  float64 `form:"pricePerDay" validate:"required,gt=0"`
	Status       string  `form:"status"`
}

// UpdateVehicleRequest mirrors PUT /api/vehicles/:id. Unlike the customer
// update, fields present in the form are written as given, falsy values
// included; nil means the field was absent and stays untouched.
type UpdateVehicleRequest struct {
	LicensePlate *string
	Type         *string
	Brand        *string
	PricePerDay  *float64
	Status       *string
}
