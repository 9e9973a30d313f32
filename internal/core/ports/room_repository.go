package ports

import (
	"context"

	"github.com/grandstay/hotel-api/internal/core/domain"
)

// RoomRepository persists rooms keyed by room number.
type RoomRepository interface {
	// Create inserts r and returns the generated storage id.
	// Returns domain.ErrAlreadyExists when the number is taken.
	Create(ctx context.Context, r *domain.Room) (string, error)
	Get(ctx context.Context, number int) (*domain.Room, error)
	// Update replaces the mutable fields of the room and returns the stored result.
	Update(ctx context.Context, number int, r *domain.Room) (*domain.Room, error)
	Delete(ctx context.Context, number int) error
	List(ctx context.Context) ([]*domain.Room, error)
}
