package customer

import (
	"context"
	"strings"

	"motorent/internal/domain"
	"motorent/internal/media"
)

const (
	cccdFolder    = "customers/cccd"
	licenseFolder = "customers/license"
)

type Service struct {
	customers CustomerRepository
	store     media.Store
}

func NewService(customers CustomerRepository, store media.Store) *Service {
	return &Service{customers: customers, store: store}
}

// Create registers a customer. Name and phone are mandatory; each supplied
// image is pushed to the media store and attached as a {url, public_id}
// pair. An upload failure aborts the creation.
func (s *Service) Create(ctx context.Context, req CreateCustomerRequest, files Files) (*domain.Customer, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Phone) == "" {
		return nil, ErrMissingFields
	}

	c := &domain.Customer{
		Name:          req.Name,
		Phone:         req.Phone,
		Cccd:          req.Cccd,
		DriverLicense: req.DriverLicense,
		Notes:         req.Notes,
	}

	if files.CccdImage != nil {
		asset, err := s.store.Upload(ctx, files.CccdImage, cccdFolder)
		if err != nil {
			return nil, err
		}
		c.CccdImage = &domain.Image{URL: asset.URL, PublicID: asset.PublicID}
	}
	if files.DriverLicenseImage != nil {
		asset, err := s.store.Upload(ctx, files.DriverLicenseImage, licenseFolder)
		if err != nil {
			return nil, err
		}
		c.DriverLicenseImage = &domain.Image{URL: asset.URL, PublicID: asset.PublicID}
	}

	if err := s.customers.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// List returns one page of customers, newest first. Page and limit fall
// back to 1 and 10; pages is the ceiling of total/limit.
func (s *Service) List(ctx context.Context, page, limit int, search string) (*ListCustomersResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	data, total, err := s.customers.List(ctx, search, limit, (page-1)*limit)
	if err != nil {
		return nil, err
	}

	pages := (total + int64(limit) - 1) / int64(limit)
	return &ListCustomersResponse{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: pages,
		Data:  data,
	}, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	c, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}
	return c, nil
}

// Update applies the supplied fields to an existing customer. Empty values
// are skipped, not written. A replacement image deletes the old remote copy
// first (best-effort) before the new one is attached.
func (s *Service) Update(ctx context.Context, id int64, req UpdateCustomerRequest, files Files) (*domain.Customer, error) {
	c, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrNotFound
	}

	if req.Name != "" {
		c.Name = req.Name
	}
	if req.Phone != "" {
		c.Phone = req.Phone
	}
	if req.Cccd != "" {
		c.Cccd = req.Cccd
	}
	if req.DriverLicense != "" {
		c.DriverLicense = req.DriverLicense
	}
	if req.Notes != "" {
		c.Notes = req.Notes
	}

	if files.CccdImage != nil {
		if c.CccdImage != nil {
			media.CleanupDelete(ctx, s.store, c.CccdImage.PublicID)
		}
		asset, err := s.store.Upload(ctx, files.CccdImage, cccdFolder)
		if err != nil {
			return nil, err
		}
		c.CccdImage = &domain.Image{URL: asset.URL, PublicID: asset.PublicID}
	}
	if files.DriverLicenseImage != nil {
		if c.DriverLicenseImage != nil {
			media.CleanupDelete(ctx, s.store, c.DriverLicenseImage.PublicID)
		}
		asset, err := s.store.Upload(ctx, files.DriverLicenseImage, licenseFolder)
		if err != nil {
			return nil, err
		}
		c.DriverLicenseImage = &domain.Image{URL: asset.URL, PublicID: asset.PublicID}
	}

	if err := s.customers.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete removes the customer and, best-effort, any remote images.
func (s *Service) Delete(ctx context.Context, id int64) error {
	c, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if c == nil {
		return ErrNotFound
	}

	if c.CccdImage != nil {
		media.CleanupDelete(ctx, s.store, c.CccdImage.PublicID)
	}
	if c.DriverLicenseImage != nil {
		media.CleanupDelete(ctx, s.store, c.DriverLicenseImage.PublicID)
	}

	return s.customers.Delete(ctx, id)
}
