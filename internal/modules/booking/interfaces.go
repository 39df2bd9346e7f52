package booking

import (
	"context"

	"motorent/internal/domain"
)

// BookingRepository defines the persistence operations the service needs.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetAll(ctx context.Context) ([]domain.Booking, error)
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	Update(ctx context.Context, b *domain.Booking) error
	Delete(ctx context.Context, id int64) error
}

// CustomerDirectory resolves customer references for response expansion.
type CustomerDirectory interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Customer, error)
}

// VehicleDirectory resolves vehicle references for response expansion.
type VehicleDirectory interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Vehicle, error)
}
