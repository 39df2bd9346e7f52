package booking

import (
	"context"
	"time"

	"motorent/internal/domain"
)

type Service struct {
	bookings  BookingRepository
	customers CustomerDirectory
	vehicles  VehicleDirectory
}

func NewService(bookings BookingRepository, customers CustomerDirectory, vehicles VehicleDirectory) *Service {
	return &Service{bookings: bookings, customers: customers, vehicles: vehicles}
}

// Create records a booking. Referenced ids are stored as given, without
// existence checks, and date ordering is not enforced.
func (s *Service) Create(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	vehicleIDs := normalizeVehicles(req.Vehicle, req.Vehicles)
	if req.Customer == 0 || len(vehicleIDs) == 0 || req.TotalPrice <= 0 {
		return nil, ErrMissingFields
	}

	start, err := parseDate(req.StartDate)
	if err != nil {
		return nil, ErrInvalidDate
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return nil, ErrInvalidDate
	}

	b := &domain.Booking{
		CustomerID: req.Customer,
		VehicleIDs: vehicleIDs,
		StartDate:  start,
		EndDate:    end,
		TotalPrice: req.TotalPrice,
		Status:     domain.BookingPending,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// List returns all bookings with their references expanded.
func (s *Service) List(ctx context.Context) ([]BookingDetails, error) {
	bookings, err := s.bookings.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.expand(ctx, bookings)
}

// GetByID returns one booking with its references expanded.
func (s *Service) GetByID(ctx context.Context, id int64) (*BookingDetails, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}

	expanded, err := s.expand(ctx, []domain.Booking{*b})
	if err != nil {
		return nil, err
	}
	return &expanded[0], nil
}

// Update overwrites the supplied fields as given. A singular vehicle reference
// in the request is normalized to a one-element collection.
func (s *Service) Update(ctx context.Context, id int64, req UpdateBookingRequest) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}

	if req.Customer != nil {
		b.CustomerID = *req.Customer
	}
	if ids := normalizeVehicles(req.Vehicle, req.Vehicles); len(ids) > 0 {
		b.VehicleIDs = ids
	}
	if req.StartDate != nil {
		start, err := parseDate(*req.StartDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		b.StartDate = start
	}
	if req.EndDate != nil {
		end, err := parseDate(*req.EndDate)
		if err != nil {
			return nil, ErrInvalidDate
		}
		b.EndDate = end
	}
	if req.TotalPrice != nil {
		b.TotalPrice = *req.TotalPrice
	}
	if req.Status != nil {
		status := domain.BookingStatus(*req.Status)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
		b.Status = status
	}

	if err := s.bookings.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if b == nil {
		return ErrNotFound
	}
	return s.bookings.Delete(ctx, id)
}

// expand resolves customer and vehicle references in one batch per kind.
// Dangling references are skipped rather than failing the request: the
// customer projection comes back nil and missing vehicles are omitted.
func (s *Service) expand(ctx context.Context, bookings []domain.Booking) ([]BookingDetails, error) {
	customerIDs := make([]int64, 0, len(bookings))
	vehicleIDs := make([]int64, 0, len(bookings))
	seenCustomer := make(map[int64]bool)
	seenVehicle := make(map[int64]bool)
	for _, b := range bookings {
		if !seenCustomer[b.CustomerID] {
			seenCustomer[b.CustomerID] = true
			customerIDs = append(customerIDs, b.CustomerID)
		}
		for _, id := range b.VehicleIDs {
			if !seenVehicle[id] {
				seenVehicle[id] = true
				vehicleIDs = append(vehicleIDs, id)
			}
		}
	}

	customersByID := make(map[int64]*CustomerRef)
	if len(customerIDs) > 0 {
		customers, err := s.customers.GetByIDs(ctx, customerIDs)
		if err != nil {
			return nil, err
		}
		for _, c := range customers {
			customersByID[c.ID] = &CustomerRef{ID: c.ID, Name: c.Name, Phone: c.Phone}
		}
	}

	vehiclesByID := make(map[int64]VehicleRef)
	if len(vehicleIDs) > 0 {
		vehicles, err := s.vehicles.GetByIDs(ctx, vehicleIDs)
		if err != nil {
			return nil, err
		}
		for _, v := range vehicles {
			vehiclesByID[v.ID] = VehicleRef{ID: v.ID, LicensePlate: v.LicensePlate, Brand: v.Brand}
		}
	}

	details := make([]BookingDetails, 0, len(bookings))
	for _, b := range bookings {
		refs := make([]VehicleRef, 0, len(b.VehicleIDs))
		for _, id := range b.VehicleIDs {
			if ref, ok := vehiclesByID[id]; ok {
				refs = append(refs, ref)
			}
		}
		details = append(details, BookingDetails{
			ID:         b.ID,
			Customer:   customersByID[b.CustomerID],
			Vehicles:   refs,
			StartDate:  b.StartDate,
			EndDate:    b.EndDate,
			TotalPrice: b.TotalPrice,
			Status:     string(b.Status),
			CreatedAt:  b.CreatedAt,
			UpdatedAt:  b.UpdatedAt,
		})
	}
	return details, nil
}

// normalizeVehicles folds the two accepted request shapes into one list.
// The plural form wins when both are present.
func normalizeVehicles(vehicle *int64, vehicles []int64) []int64 {
	if len(vehicles) > 0 {
		return vehicles
	}
	if vehicle != nil {
		return []int64{*vehicle}
	}
	return nil
}

var dateLayouts = []string{"2006-01-02", time.RFC3339}

func parseDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
