package service

import (
	"context"
	"errors"
	"testing"

	"github.com/grandstay/hotel-api/internal/core/domain"
	"github.com/grandstay/hotel-api/internal/core/ports"
)

func johnDoe(id string) ports.CreateCustomerInput {
	return ports.CreateCustomerInput{
		CustomerID:  id,
		Firstname:   "john",
		Lastname:    "doe",
		Phone:       "059 999 99 99",
		Nationality: "Iran",
	}
}

func newCustomerSvc() (*CustomerService, *stubCustomerRepo, *stubRoomRepo) {
	repo := newStubCustomerRepo()
	rooms := newStubRoomRepo()
	return NewCustomerService(repo, rooms, nil, nil, discardLogger), repo, rooms
}

func TestCustomerService_Create_DefaultsToPresent(t *testing.T) {
	svc, repo, _ := newCustomerSvc()

	id, err := svc.CreateCustomer(context.Background(), johnDoe("C-1"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id == "" {
		t.Fatal("expected generated id")
	}
	if got := repo.customers["C-1"].Status; got != domain.CustomerPresent {
		t.Errorf("status: want present, got %q", got)
	}
}

func TestCustomerService_Create_Duplicate(t *testing.T) {
	svc, repo, _ := newCustomerSvc()

	if _, err := svc.CreateCustomer(context.Background(), johnDoe("C-1")); err != nil {
		t.Fatalf("first create: %v", err)
	}
	other := johnDoe("C-1")
	other.Firstname = "jane"
	if _, err := svc.CreateCustomer(context.Background(), other); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
	if len(repo.customers) != 1 || repo.customers["C-1"].Firstname != "john" {
		t.Errorf("storage must hold exactly the first record: %+v", repo.customers)
	}
}

func TestCustomerService_Create_Validation(t *testing.T) {
	svc, _, _ := newCustomerSvc()

	blank := johnDoe("   ")
	if _, err := svc.CreateCustomer(context.Background(), blank); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("blank id: expected ErrInvalidInput, got %v", err)
	}

	badStatus := johnDoe("C-2")
	badStatus.Status = "checked_out"
	if _, err := svc.CreateCustomer(context.Background(), badStatus); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("bad status: expected ErrInvalidInput, got %v", err)
	}
}

func TestCustomerService_Create_RoomMustExist(t *testing.T) {
	svc, repo, rooms := newCustomerSvc()

	in := johnDoe("C-1")
	in.Room = intPtr(101)
	if _, err := svc.CreateCustomer(context.Background(), in); !errors.Is(err, domain.ErrRoomNotFound) {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
	if len(repo.customers) != 0 {
		t.Fatal("customer must not be stored when room is missing")
	}

	rooms.rooms[101] = &domain.Room{Number: 101, Type: "suite", Status: domain.RoomOccupied}
	if _, err := svc.CreateCustomer(context.Background(), in); err != nil {
		t.Fatalf("create with existing room: %v", err)
	}
	if got := repo.customers["C-1"].Room; got == nil || *got != 101 {
		t.Errorf("room reference not stored: %v", got)
	}
}

func TestCustomerService_Create_IdempotencyReplay(t *testing.T) {
	repo := newStubCustomerRepo()
	svc := NewCustomerService(repo, newStubRoomRepo(), newStubIdempotency(), nil, discardLogger)

	in := johnDoe("C-1")
	in.IdempotencyKey = "retry-1"
	first, err := svc.CreateCustomer(context.Background(), in)
	if err != nil {
		t.Fatalf("first create: %v", err)
	}
	second, err := svc.CreateCustomer(context.Background(), in)
	if err != nil {
		t.Fatalf("replay: %v", err)
	}
	if first != second {
		t.Errorf("replay must return same id: got %q, want %q", second, first)
	}
}

func TestCustomerService_Update_AppliesFields(t *testing.T) {
	svc, _, _ := newCustomerSvc()
	_, _ = svc.CreateCustomer(context.Background(), johnDoe("C-1"))

	updated, err := svc.UpdateCustomer(context.Background(), "C-1", ports.UpdateCustomerInput{
		Firstname:   "johnny",
		Lastname:    "doe",
		Phone:       "059 111 11 11",
		Nationality: "Spain",
		Status:      "absent",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Firstname != "johnny" || updated.Nationality != "Spain" || updated.Status != domain.CustomerAbsent {
		t.Errorf("fields not applied: %+v", updated)
	}
	if updated.CustomerID != "C-1" {
		t.Errorf("natural key must be preserved, got %q", updated.CustomerID)
	}

	fetched, _ := svc.GetCustomer(context.Background(), "C-1")
	if fetched.Firstname != "johnny" {
		t.Errorf("update not persisted: %+v", fetched)
	}
}

func TestCustomerService_Update_NotFound(t *testing.T) {
	svc, repo, _ := newCustomerSvc()

	_, err := svc.UpdateCustomer(context.Background(), "ghost", ports.UpdateCustomerInput{Status: "present"})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(repo.customers) != 0 {
		t.Error("update of missing customer must not insert")
	}
}

func TestCustomerService_Update_InvalidStatus(t *testing.T) {
	svc, _, _ := newCustomerSvc()
	_, _ = svc.CreateCustomer(context.Background(), johnDoe("C-1"))

	if _, err := svc.UpdateCustomer(context.Background(), "C-1", ports.UpdateCustomerInput{Status: ""}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCustomerService_DeleteThenGet(t *testing.T) {
	svc, _, _ := newCustomerSvc()
	_, _ = svc.CreateCustomer(context.Background(), johnDoe("C-1"))

	if err := svc.DeleteCustomer(context.Background(), "C-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.GetCustomer(context.Background(), "C-1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := svc.DeleteCustomer(context.Background(), "C-1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("second delete: expected ErrNotFound, got %v", err)
	}
}

func TestCustomerService_List(t *testing.T) {
	svc, _, _ := newCustomerSvc()
	_, _ = svc.CreateCustomer(context.Background(), johnDoe("C-1"))
	_, _ = svc.CreateCustomer(context.Background(), johnDoe("C-2"))

	list, err := svc.ListCustomers(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Errorf("expected 2 customers, got %d", len(list))
	}
}

func TestCustomerService_Update_MissingCustomerBeforeUnknownRoom(t *testing.T) {
	svc, _, _ := newCustomerSvc()

	_, err := svc.UpdateCustomer(context.Background(), "ghost", ports.UpdateCustomerInput{
		Firstname: "john",
		Lastname:  "doe",
		Status:    "present",
		Room:      intPtr(999),
	})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCustomerService_Update_UnknownRoom(t *testing.T) {
	svc, _, _ := newCustomerSvc()
	_, _ = svc.CreateCustomer(context.Background(), johnDoe("C-1"))

	_, err := svc.UpdateCustomer(context.Background(), "C-1", ports.UpdateCustomerInput{
		Firstname: "john",
		Lastname:  "doe",
		Status:    "present",
		Room:      intPtr(999),
	})
	if !errors.Is(err, domain.ErrRoomNotFound) {
		t.Fatalf("expected ErrRoomNotFound, got %v", err)
	}
}
