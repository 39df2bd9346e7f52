package vehicle

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"

	"motorent/internal/domain"
	"motorent/internal/media"
	"motorent/internal/repository"
)

const imagesFolder = "vehicles"

type Service struct {
	vehicles VehicleRepository
	store    media.Store
}

func NewService(vehicles VehicleRepository, store media.Store) *Service {
	return &Service{vehicles: vehicles, store: store}
}

// Create registers a vehicle. Plate uniqueness is enforced by the schema,
// not a pre-check; a collision surfaces as ErrPlateExists. Up to five
// images are uploaded in order and only their URLs retained.
func (s *Service) Create(ctx context.Context, req CreateVehicleRequest, images []*multipart.FileHeader) (*domain.Vehicle, error) {
	if strings.TrimSpace(req.LicensePlate) == "" ||
		strings.TrimSpace(req.Type) == "" ||
		strings.TrimSpace(req.Brand) == "" ||
		req.PricePerDay <= 0 {
		return nil, ErrMissingFields
	}

	status := domain.VehicleAvailable
	if req.Status != "" {
		status = domain.VehicleStatus(req.Status)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
	}

	urls, err := s.uploadImages(ctx, images)
	if err != nil {
		return nil, err
	}

	v := &domain.Vehicle{
		LicensePlate: req.LicensePlate,
		Type:         req.Type,
		Brand:        req.Brand,
		PricePerDay:  req.PricePerDay,
		Status:       status,
		Images:       urls,
	}

	if err := s.vehicles.Create(ctx, v); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrPlateExists
		}
		return nil, err
	}
	return v, nil
}

// List returns all vehicles, unfiltered and unpaginated.
func (s *Service) List(ctx context.Context) ([]domain.Vehicle, error) {
	return s.vehicles.GetAll(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	v, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrNotFound
	}
	return v, nil
}

// Update writes the fields present in the request as given (falsy values
// included). New uploads replace the whole image list; old remote copies
// are not deleted.
func (s *Service) Update(ctx context.Context, id int64, req UpdateVehicleRequest, images []*multipart.FileHeader) (*domain.Vehicle, error) {
	v, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, ErrNotFound
	}

	if req.LicensePlate != nil {
		v.LicensePlate = *req.LicensePlate
	}
	if req.Type != nil {
		v.Type = *req.Type
	}
	if req.Brand != nil {
		v.Brand = *req.Brand
	}
	if req.PricePerDay != nil {
		v.PricePerDay = *req.PricePerDay
	}
	if req.Status != nil {
		status := domain.VehicleStatus(*req.Status)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
		v.Status = status
	}

	if len(images) > 0 {
		urls, err := s.uploadImages(ctx, images)
		if err != nil {
			return nil, err
		}
		v.Images = urls
	}

	if err := s.vehicles.Update(ctx, v); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrPlateExists
		}
		return nil, err
	}
	return v, nil
}

// Delete removes the record outright; vehicle images carry no deletion
// handles, so there is no remote cleanup.
func (s *Service) Delete(ctx context.Context, id int64) error {
	v, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if v == nil {
		return ErrNotFound
	}
	return s.vehicles.Delete(ctx, id)
}

func (s *Service) uploadImages(ctx context.Context, images []*multipart.FileHeader) ([]string, error) {
	if len(images) > domain.MaxVehicleImages {
		return nil, ErrTooManyImages
	}
	urls := make([]string, 0, len(images))
	for _, fh := range images {
		asset, err := s.store.Upload(ctx, fh, imagesFolder)
		if err != nil {
			return nil, err
		}
		urls = append(urls, asset.URL)
	}
	return urls, nil
}
