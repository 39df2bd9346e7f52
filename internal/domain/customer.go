package domain

import "time"

// Image is a remote media asset reference: the public URL plus the opaque
// handle needed to delete the asset later. Both are set together or not at all.
type Image struct {
	URL      string `json:"url,omitempty"`
	PublicID string `json:"public_id,omitempty"`
}

func (i Image) IsZero() bool { return i.URL == "" && i.PublicID == "" }

type Customer struct {
	ID            int64  `json:"id"`
	Name          string `json:"name" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	Cccd          string `json:"cccd,omitempty"`
	DriverLicense string `json:"driverLicense,omitempty"`
	Notes         string `json:"notes,omitempty"`

	CccdImage          *Image `json:"cccdImage,omitempty"`
	DriverLicenseImage *Image `json:"driverLicenseImage,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
