package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/grandstay/hotel-api/internal/core/domain"
	"github.com/grandstay/hotel-api/internal/core/ports"
)

type CustomerService struct {
	repo    ports.CustomerRepository
	rooms   ports.RoomRepository
	idem    ports.IdempotencyStore
	metrics ports.Metrics
	logger  zerolog.Logger
}

// NewCustomerService returns a CustomerService. rooms is used to check room
// references; idem and m may be nil.
func NewCustomerService(repo ports.CustomerRepository, rooms ports.RoomRepository, idem ports.IdempotencyStore, m ports.Metrics, logger zerolog.Logger) *CustomerService {
	if idem == nil {
		idem = noopIdempotency{}
	}
	if m == nil {
		m = noopMetrics{}
	}
	return &CustomerService{repo: repo, rooms: rooms, idem: idem, metrics: m, logger: logger}
}

func (s *CustomerService) CreateCustomer(ctx context.Context, input ports.CreateCustomerInput) (string, error) {
	if input.IdempotencyKey != "" {
		id, found, err := s.idem.Lookup(ctx, scopeCustomers, input.IdempotencyKey)
		if err != nil {
			s.logger.Warn().Err(err).Str("idempotency_key", input.IdempotencyKey).Msg("idempotency lookup failed, creating anyway")
		} else if found {
			s.logger.Info().Str("idempotency_key", input.IdempotencyKey).Str("id", id).Msg("idempotent replay")
			return id, nil
		}
	}

	customerID := strings.TrimSpace(input.CustomerID)
	if customerID == "" {
		return "", fmt.Errorf("%w: customer id is required", domain.ErrInvalidInput)
	}
	status := domain.CustomerPresent
	if input.Status != "" {
		status = domain.CustomerStatus(input.Status)
	}
	if !status.Valid() {
		return "", fmt.Errorf("%w: unknown customer status %q", domain.ErrInvalidInput, input.Status)
	}
	if err := s.checkRoom(ctx, input.Room); err != nil {
		return "", err
	}

	id, err := s.repo.Create(ctx, &domain.Customer{
		CustomerID:  customerID,
		Firstname:   input.Firstname,
		Lastname:    input.Lastname,
		Phone:       input.Phone,
		Nationality: input.Nationality,
		Status:      status,
		Room:        input.Room,
	})
	if err != nil {
		return "", err
	}
	s.metrics.EntityOp(scopeCustomers, "create")

	if input.IdempotencyKey != "" {
		if err := s.idem.Remember(ctx, scopeCustomers, input.IdempotencyKey, id); err != nil {
			s.logger.Warn().Err(err).Str("idempotency_key", input.IdempotencyKey).Msg("failed to store idempotency key")
		}
	}

	s.logger.Info().Str("customer_id", customerID).Str("id", id).Msg("customer created")
	return id, nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	return s.repo.Get(ctx, customerID)
}

// UpdateCustomer replaces the customer's mutable fields with input.
// A missing customer is reported before an unknown room reference.
func (s *CustomerService) UpdateCustomer(ctx context.Context, customerID string, input ports.UpdateCustomerInput) (*domain.Customer, error) {
	status := domain.CustomerStatus(input.Status)
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown customer status %q", domain.ErrInvalidInput, input.Status)
	}
	if _, err := s.repo.Get(ctx, customerID); err != nil {
		return nil, err
	}
	if err := s.checkRoom(ctx, input.Room); err != nil {
		return nil, err
	}

	customer, err := s.repo.Update(ctx, customerID, &domain.Customer{
		CustomerID:  customerID,
		Firstname:   input.Firstname,
		Lastname:    input.Lastname,
		Phone:       input.Phone,
		Nationality: input.Nationality,
		Status:      status,
		Room:        input.Room,
	})
	if err != nil {
		return nil, err
	}
	s.metrics.EntityOp(scopeCustomers, "update")

	s.logger.Info().Str("customer_id", customerID).Str("status", string(status)).Msg("customer updated")
	return customer, nil
}

func (s *CustomerService) DeleteCustomer(ctx context.Context, customerID string) error {
	if err := s.repo.Delete(ctx, customerID); err != nil {
		return err
	}
	s.metrics.EntityOp(scopeCustomers, "delete")

	s.logger.Info().Str("customer_id", customerID).Msg("customer deleted")
	return nil
}

func (s *CustomerService) ListCustomers(ctx context.Context) ([]*domain.Customer, error) {
	return s.repo.List(ctx)
}

// checkRoom verifies that a room reference, when present, points at a stored room.
func (s *CustomerService) checkRoom(ctx context.Context, room *int) error {
	if room == nil {
		return nil
	}
	if _, err := s.rooms.Get(ctx, *room); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: room %d", domain.ErrRoomNotFound, *room)
		}
		return fmt.Errorf("check room: %w", err)
	}
	return nil
}
