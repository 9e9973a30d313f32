package api

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/grandstay/hotel-api/internal/core/domain"
)

// In-memory repositories used to drive the router end to end.

type memRooms struct {
	mu    sync.Mutex
	rooms map[int]domain.Room
	seq   int
}

func (m *memRooms) Create(_ context.Context, r *domain.Room) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rooms[r.Number]; ok {
		return "", fmt.Errorf("room %d: %w", r.Number, domain.ErrAlreadyExists)
	}
	m.seq++
	stored := *r
	stored.ID = fmt.Sprintf("%024x", m.seq)
	m.rooms[r.Number] = stored
	return stored.ID, nil
}

func (m *memRooms) Get(_ context.Context, number int) (*domain.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	r, ok := m.rooms[number]
	if !ok {
		return nil, fmt.Errorf("room %d: %w", number, domain.ErrNotFound)
	}
	return &r, nil
}

func (m *memRooms) Update(_ context.Context, number int, r *domain.Room) (*domain.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.rooms[number]
	if !ok {
		return nil, fmt.Errorf("room %d: %w", number, domain.ErrNotFound)
	}
	stored.Status = r.Status
	if r.Type != "" {
		stored.Type = r.Type
	}
	m.rooms[number] = stored
	return &stored, nil
}

func (m *memRooms) Delete(_ context.Context, number int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.rooms[number]; !ok {
		return fmt.Errorf("room %d: %w", number, domain.ErrNotFound)
	}
	delete(m.rooms, number)
	return nil
}

func (m *memRooms) List(_ context.Context) ([]*domain.Room, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.Room, 0, len(m.rooms))
	for _, r := range m.rooms {
		r := r
		out = append(out, &r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

type memCustomers struct {
	mu        sync.Mutex
	customers map[string]domain.Customer
	seq       int
}

func (m *memCustomers) Create(_ context.Context, c *domain.Customer) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.customers[c.CustomerID]; ok {
		return "", fmt.Errorf("customer %s: %w", c.CustomerID, domain.ErrAlreadyExists)
	}
	m.seq++
	stored := *c
	stored.ID = fmt.Sprintf("%024x", m.seq)
	m.customers[c.CustomerID] = stored
	return stored.ID, nil
}

func (m *memCustomers) Get(_ context.Context, id string) (*domain.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.customers[id]
	if !ok {
		return nil, fmt.Errorf("customer %s: %w", id, domain.ErrNotFound)
	}
	return &c, nil
}

func (m *memCustomers) Update(_ context.Context, id string, c *domain.Customer) (*domain.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored, ok := m.customers[id]
	if !ok {
		return nil, fmt.Errorf("customer %s: %w", id, domain.ErrNotFound)
	}
	next := *c
	next.ID = stored.ID
	next.CustomerID = id
	m.customers[id] = next
	return &next, nil
}

func (m *memCustomers) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.customers[id]; !ok {
		return fmt.Errorf("customer %s: %w", id, domain.ErrNotFound)
	}
	delete(m.customers, id)
	return nil
}

func (m *memCustomers) List(_ context.Context) ([]*domain.Customer, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.Customer, 0, len(m.customers))
	for _, c := range m.customers {
		c := c
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CustomerID < out[j].CustomerID })
	return out, nil
}

func (m *memCustomers) CountByRoom(_ context.Context, number int) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, c := range m.customers {
		if c.Room != nil && *c.Room == number {
			n++
		}
	}
	return n, nil
}

type memCredentials struct {
	mu    sync.Mutex
	creds map[string]domain.Credential
}

func (m *memCredentials) FindByUsername(_ context.Context, username string) (*domain.Credential, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.creds[username]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

func (m *memCredentials) Create(_ context.Context, c *domain.Credential) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.creds[c.Username]; ok {
		return fmt.Errorf("credential %s: %w", c.Username, domain.ErrAlreadyExists)
	}
	m.creds[c.Username] = *c
	return nil
}
