package ports

import (
	"context"

	"github.com/grandstay/hotel-api/internal/core/domain"
)

// CreateRoomInput carries the fields of a new room.
type CreateRoomInput struct {
	Number         int
	Type           string
	Status         string
	IdempotencyKey string
}

// UpdateRoomInput carries the new state of a room. An empty Type keeps the
// stored type.
type UpdateRoomInput struct {
	Type   string
	Status string
}

// RoomService defines use-case operations for rooms.
type RoomService interface {
	CreateRoom(ctx context.Context, input CreateRoomInput) (string, error)
	GetRoom(ctx context.Context, number int) (*domain.Room, error)
	UpdateRoom(ctx context.Context, number int, input UpdateRoomInput) (*domain.Room, error)
	DeleteRoom(ctx context.Context, number int) error
	ListRooms(ctx context.Context) ([]*domain.Room, error)
}
