package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/grandstay/hotel-api/internal/core/domain"
	"github.com/grandstay/hotel-api/internal/core/ports"
)

type RoomService struct {
	repo      ports.RoomRepository
	occupancy ports.RoomOccupancy
	idem      ports.IdempotencyStore
	metrics   ports.Metrics
	logger    zerolog.Logger
}

// NewRoomService returns a RoomService. occupancy guards deletes of rooms
// that customers still reference. idem and m may be nil.
func NewRoomService(repo ports.RoomRepository, occupancy ports.RoomOccupancy, idem ports.IdempotencyStore, m ports.Metrics, logger zerolog.Logger) *RoomService {
	if idem == nil {
		idem = noopIdempotency{}
	}
	if m == nil {
		m = noopMetrics{}
	}
	return &RoomService{repo: repo, occupancy: occupancy, idem: idem, metrics: m, logger: logger}
}

// CreateRoom inserts a new room. A repeated idempotency key returns the id
// produced by the first call without inserting again.
func (s *RoomService) CreateRoom(ctx context.Context, input ports.CreateRoomInput) (string, error) {
	if input.IdempotencyKey != "" {
		id, found, err := s.idem.Lookup(ctx, scopeRooms, input.IdempotencyKey)
		if err != nil {
			s.logger.Warn().Err(err).Str("idempotency_key", input.IdempotencyKey).Msg("idempotency lookup failed, creating anyway")
		} else if found {
			s.logger.Info().Str("idempotency_key", input.IdempotencyKey).Str("id", id).Msg("idempotent replay")
			return id, nil
		}
	}

	if input.Number <= 0 {
		return "", fmt.Errorf("%w: room number must be positive", domain.ErrInvalidInput)
	}
	roomType := strings.TrimSpace(input.Type)
	if roomType == "" {
		return "", fmt.Errorf("%w: room type is required", domain.ErrInvalidInput)
	}
	status := domain.RoomStatus(input.Status)
	if !status.Valid() {
		return "", fmt.Errorf("%w: unknown room status %q", domain.ErrInvalidInput, input.Status)
	}

	id, err := s.repo.Create(ctx, &domain.Room{Number: input.Number, Type: roomType, Status: status})
	if err != nil {
		return "", err
	}
	s.metrics.EntityOp(scopeRooms, "create")

	if input.IdempotencyKey != "" {
		if err := s.idem.Remember(ctx, scopeRooms, input.IdempotencyKey, id); err != nil {
			s.logger.Warn().Err(err).Str("idempotency_key", input.IdempotencyKey).Msg("failed to store idempotency key")
		}
	}

	s.logger.Info().Int("room_number", input.Number).Str("id", id).Msg("room created")
	return id, nil
}

func (s *RoomService) GetRoom(ctx context.Context, number int) (*domain.Room, error) {
	return s.repo.Get(ctx, number)
}

// UpdateRoom applies input as the room's new state. An empty type keeps the stored one.
func (s *RoomService) UpdateRoom(ctx context.Context, number int, input ports.UpdateRoomInput) (*domain.Room, error) {
	status := domain.RoomStatus(input.Status)
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown room status %q", domain.ErrInvalidInput, input.Status)
	}

	room, err := s.repo.Update(ctx, number, &domain.Room{
		Number: number,
		Type:   strings.TrimSpace(input.Type),
		Status: status,
	})
	if err != nil {
		return nil, err
	}
	s.metrics.EntityOp(scopeRooms, "update")

	s.logger.Info().Int("room_number", number).Str("status", string(status)).Msg("room updated")
	return room, nil
}

// DeleteRoom removes a room. A room still assigned to a customer is kept
// and ErrRoomInUse is returned.
func (s *RoomService) DeleteRoom(ctx context.Context, number int) error {
	if s.occupancy != nil {
		n, err := s.occupancy.CountByRoom(ctx, number)
		if err != nil {
			return fmt.Errorf("check room occupancy: %w", err)
		}
		if n > 0 {
			return fmt.Errorf("%w: room %d has %d customer(s)", domain.ErrRoomInUse, number, n)
		}
	}
	if err := s.repo.Delete(ctx, number); err != nil {
		return err
	}
	s.metrics.EntityOp(scopeRooms, "delete")

	s.logger.Info().Int("room_number", number).Msg("room deleted")
	return nil
}

func (s *RoomService) ListRooms(ctx context.Context) ([]*domain.Room, error) {
	return s.repo.List(ctx)
}
