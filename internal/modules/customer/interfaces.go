package customer

import (
	"context"

	"motorent/internal/domain"
)

// CustomerRepository defines the persistence operations the service needs.
type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	List(ctx context.Context, search string, limit, offset int) ([]domain.Customer, int64, error)
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, id int64) error
}
