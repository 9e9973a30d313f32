package ports

import (
	"context"

	"github.com/grandstay/hotel-api/internal/core/domain"
)

// CustomerRepository persists customers keyed by their external id.
type CustomerRepository interface {
	// Create inserts c and returns the generated storage id.
	// Returns domain.ErrAlreadyExists when the customer id is taken.
	Create(ctx context.Context, c *domain.Customer) (string, error)
	Get(ctx context.Context, customerID string) (*domain.Customer, error)
	// Update replaces the mutable fields of the customer and returns the stored result.
	Update(ctx context.Context, customerID string, c *domain.Customer) (*domain.Customer, error)
	Delete(ctx context.Context, customerID string) error
	List(ctx context.Context) ([]*domain.Customer, error)
	RoomOccupancy
}

// RoomOccupancy counts the customers that reference a room.
type RoomOccupancy interface {
	CountByRoom(ctx context.Context, number int) (int64, error)
}
