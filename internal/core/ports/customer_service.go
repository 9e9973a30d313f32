package ports

import (
	"context"

	"github.com/grandstay/hotel-api/internal/core/domain"
)

// CreateCustomerInput carries the fields of a new customer.
// Status defaults to "present" when empty.
type CreateCustomerInput struct {
	CustomerID     string
	Firstname      string
	Lastname       string
	Phone          string
	Nationality    string
	Status         string
	Room           *int
	IdempotencyKey string
}

// UpdateCustomerInput is the full new state of a customer's mutable fields.
type UpdateCustomerInput struct {
	Firstname   string
	Lastname    string
	Phone       string
	Nationality string
	Status      string
	Room        *int
}

// CustomerService defines use-case operations for customers.
type CustomerService interface {
	CreateCustomer(ctx context.Context, input CreateCustomerInput) (string, error)
	GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error)
	UpdateCustomer(ctx context.Context, customerID string, input UpdateCustomerInput) (*domain.Customer, error)
	DeleteCustomer(ctx context.Context, customerID string) error
	ListCustomers(ctx context.Context) ([]*domain.Customer, error)
}
