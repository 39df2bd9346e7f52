package booking

import "time"

// CreateBookingRequest is the JSON body of POST /api/bookings. A client may
// send either `vehicle` (a single id) or `vehicles` (an array); both are
// normalized to one ordered collection.
type CreateBookingRequest struct {
	Customer   int64   `json:"customer" validate:"required"`
	Vehicle    *int64  `json:"vehicle"`
	Vehicles   []int64 `json:"vehicles"`
	StartDate  string  `json:"startDate" validate:"required"`
	EndDate    string  `json:"endDate" validate:"required"`
	TotalPrice float64 `json:"totalPrice" validate:"required,gt=0"`
}

// UpdateBookingRequest is the JSON body of PUT /api/bookings/:id. Supplied
// fields overwrite stored values as given; nil fields stay untouched.
type UpdateBookingRequest struct {
	Customer   *int64   `json:"customer"`
	Vehicle    *int64   `json:"vehicle"`
	Vehicles   []int64  `json:"vehicles"`
	StartDate  *string  `json:"startDate"`
	EndDate    *string  `json:"endDate"`
	TotalPrice *float64 `json:"totalPrice"`
	Status     *string  `json:"status"`
}

// CustomerRef is the projection of the referenced customer in responses.
type CustomerRef struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// VehicleRef is the projection of a referenced vehicle in responses.
type VehicleRef struct {
	ID           int64  `json:"id"`
	LicensePlate string `json:"licensePlate"`
	Brand        string `json:"brand"`
}

// BookingDetails is a booking with its references expanded.
type BookingDetails struct {
	ID         int64        `json:"id"`
	Customer   *CustomerRef `json:"customer"`
	Vehicles   []VehicleRef `json:"vehicles"`
	StartDate  time.Time    `json:"startDate"`
	EndDate    time.Time    `json:"endDate"`
	TotalPrice float64      `json:"totalPrice"`
	Status     string       `json:"status"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
}
