package customer

import (
	"mime/multipart"

	"motorent/internal/domain"
)

// CreateCustomerRequest carries the multipart form fields of POST /api/customers.
type CreateCustomerRequest struct {
	Name          string `form:"name" validate:"required"`
	Phone         string `form:"phone" validate:"required"`
	Cccd          string `form:"cccd"`
	DriverLicense string `form:"driverLicense"`
	Notes         string `form:"notes"`
}

// UpdateCustomerRequest carries the multipart form fields of PUT /api/customers/:id.
// Empty values are treated as "not supplied" and skipped (partial update).
type UpdateCustomerRequest struct {
	Name          string `form:"name"`
	Phone         string `form:"phone"`
	Cccd          string `form:"cccd"`
	DriverLicense string `form:"driverLicense"`
	Notes         string `form:"notes"`
}

// Files holds the optional image uploads accompanying a create or update.
type Files struct {
	CccdImage          *multipart.FileHeader
	DriverLicenseImage *multipart.FileHeader
}

// ListCustomersResponse is one page of customers plus pagination totals.
type ListCustomersResponse struct {
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int64             `json:"total"`
	Pages int64             `json:"pages"`
	Data  []domain.Customer `json:"data"`
}
