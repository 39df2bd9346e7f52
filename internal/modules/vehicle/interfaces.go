package vehicle

import (
	"context"

	"motorent/internal/domain"
)

// VehicleRepository defines the persistence operations the service needs.
type VehicleRepository interface {
	Create(ctx context.Context, v *domain.Vehicle) error
	GetAll(ctx context.Context) ([]domain.Vehicle, error)
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	Update(ctx context.Context, v *domain.Vehicle) error
	Delete(ctx context.Context, id int64) error
}
