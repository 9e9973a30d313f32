package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/rs/zerolog"

	"github.com/grandstay/hotel-api/internal/core/domain"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubRoomRepo struct {
	rooms     map[int]*domain.Room
	nextID    int
	createErr error
}

func newStubRoomRepo() *stubRoomRepo {
	return &stubRoomRepo{rooms: make(map[int]*domain.Room)}
}

func (r *stubRoomRepo) Create(_ context.Context, room *domain.Room) (string, error) {
	if r.createErr != nil {
		return "", r.createErr
	}
	if _, exists := r.rooms[room.Number]; exists {
		return "", domain.ErrAlreadyExists
	}
	r.nextID++
	clone := *room
	clone.ID = idFor(r.nextID)
	r.rooms[room.Number] = &clone
	return clone.ID, nil
}

func (r *stubRoomRepo) Get(_ context.Context, number int) (*domain.Room, error) {
	room, ok := r.rooms[number]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *room
	return &clone, nil
}

// Update mirrors the Mongo repository: an empty type keeps the stored one.
func (r *stubRoomRepo) Update(_ context.Context, number int, room *domain.Room) (*domain.Room, error) {
	stored, ok := r.rooms[number]
	if !ok {
		return nil, domain.ErrNotFound
	}
	stored.Status = room.Status
	if room.Type != "" {
		stored.Type = room.Type
	}
	clone := *stored
	return &clone, nil
}

func (r *stubRoomRepo) Delete(_ context.Context, number int) error {
	if _, ok := r.rooms[number]; !ok {
		return domain.ErrNotFound
	}
	delete(r.rooms, number)
	return nil
}

func (r *stubRoomRepo) List(_ context.Context) ([]*domain.Room, error) {
	out := make([]*domain.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		clone := *room
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

type stubCustomerRepo struct {
	customers map[string]*domain.Customer
	nextID    int
}

func newStubCustomerRepo() *stubCustomerRepo {
	return &stubCustomerRepo{customers: make(map[string]*domain.Customer)}
}

func (r *stubCustomerRepo) Create(_ context.Context, c *domain.Customer) (string, error) {
	if _, exists := r.customers[c.CustomerID]; exists {
		return "", domain.ErrAlreadyExists
	}
	r.nextID++
	clone := *c
	clone.ID = idFor(r.nextID)
	r.customers[c.CustomerID] = &clone
	return clone.ID, nil
}

func (r *stubCustomerRepo) Get(_ context.Context, customerID string) (*domain.Customer, error) {
	c, ok := r.customers[customerID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCustomerRepo) Update(_ context.Context, customerID string, c *domain.Customer) (*domain.Customer, error) {
	stored, ok := r.customers[customerID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	id := stored.ID
	*stored = *c
	stored.ID = id
	stored.CustomerID = customerID
	clone := *stored
	return &clone, nil
}

func (r *stubCustomerRepo) Delete(_ context.Context, customerID string) error {
	if _, ok := r.customers[customerID]; !ok {
		return domain.ErrNotFound
	}
	delete(r.customers, customerID)
	return nil
}

func (r *stubCustomerRepo) List(_ context.Context) ([]*domain.Customer, error) {
	out := make([]*domain.Customer, 0, len(r.customers))
	for _, c := range r.customers {
		clone := *c
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubCustomerRepo) CountByRoom(_ context.Context, number int) (int64, error) {
	var n int64
	for _, c := range r.customers {
		if c.Room != nil && *c.Room == number {
			n++
		}
	}
	return n, nil
}

type stubMetrics struct {
	logins map[string]int
	ops    map[string]int
}

func newStubMetrics() *stubMetrics {
	return &stubMetrics{logins: make(map[string]int), ops: make(map[string]int)}
}

func (m *stubMetrics) LoginAttempt(result string) { m.logins[result]++ }

func (m *stubMetrics) EntityOp(entity, op string) { m.ops[entity+":"+op]++ }

type stubIdempotency struct {
	ids       map[string]string
	lookupErr error
}

func newStubIdempotency() *stubIdempotency {
	return &stubIdempotency{ids: make(map[string]string)}
}

func (s *stubIdempotency) Lookup(_ context.Context, scope, key string) (string, bool, error) {
	if s.lookupErr != nil {
		return "", false, s.lookupErr
	}
	id, ok := s.ids[scope+":"+key]
	return id, ok, nil
}

func (s *stubIdempotency) Remember(_ context.Context, scope, key, id string) error {
	s.ids[scope+":"+key] = id
	return nil
}

var errStore = errors.New("store unavailable")

func idFor(n int) string {
	return fmt.Sprintf("id-%d", n)
}

func intPtr(n int) *int { return &n }
