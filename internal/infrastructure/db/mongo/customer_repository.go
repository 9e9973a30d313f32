package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/grandstay/hotel-api/internal/core/domain"
)

const collectionCustomers = "customers"

type CustomerRepository struct {
	col *mongo.Collection
}

func NewCustomerRepository(db *mongo.Database) *CustomerRepository {
	return &CustomerRepository{col: db.Collection(collectionCustomers)}
}

type customerDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	CustomerID  string             `bson:"id"`
	Firstname   string             `bson:"firstname"`
	Lastname    string             `bson:"lastname"`
	Phone       string             `bson:"phone"`
	Nationality string             `bson:"nationality"`
	Status      string             `bson:"status"`
	Room        *int               `bson:"room,omitempty"`
}

func (d customerDoc) toDomain() *domain.Customer {
	return &domain.Customer{
		ID:          d.ID.Hex(),
		CustomerID:  d.CustomerID,
		Firstname:   d.Firstname,
		Lastname:    d.Lastname,
		Phone:       d.Phone,
		Nationality: d.Nationality,
		Status:      domain.CustomerStatus(d.Status),
		Room:        d.Room,
	}
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, customerDoc{
		CustomerID:  c.CustomerID,
		Firstname:   c.Firstname,
		Lastname:    c.Lastname,
		Phone:       c.Phone,
		Nationality: c.Nationality,
		Status:      string(c.Status),
		Room:        c.Room,
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", fmt.Errorf("customer %s: %w", c.CustomerID, domain.ErrAlreadyExists)
		}
		return "", fmt.Errorf("insert customer: %w", err)
	}
	return insertedHex(res), nil
}

func (r *CustomerRepository) Get(ctx context.Context, customerID string) (*domain.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc customerDoc
	if err := r.col.FindOne(ctx, bson.M{"id": customerID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("customer %s: %w", customerID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}
	return doc.toDomain(), nil
}

// Update replaces every mutable field with the values in c. A nil room
// clears the room reference.
func (r *CustomerRepository) Update(ctx context.Context, customerID string, c *domain.Customer) (*domain.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{
		"$set": bson.M{
			"firstname":   c.Firstname,
			"lastname":    c.Lastname,
			"phone":       c.Phone,
			"nationality": c.Nationality,
			"status":      string(c.Status),
		},
	}
	if c.Room != nil {
		update["$set"].(bson.M)["room"] = *c.Room
	} else {
		update["$unset"] = bson.M{"room": ""}
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc customerDoc
	err := r.col.FindOneAndUpdate(ctx, bson.M{"id": customerID}, update, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("customer %s: %w", customerID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("update customer: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CustomerRepository) Delete(ctx context.Context, customerID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"id": customerID})
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("customer %s: %w", customerID, domain.ErrNotFound)
	}
	return nil
}

// List returns all customers in storage order.
func (r *CustomerRepository) List(ctx context.Context) ([]*domain.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	var docs []customerDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode customers: %w", err)
	}

	customers := make([]*domain.Customer, len(docs))
	for i, d := range docs {
		customers[i] = d.toDomain()
	}
	return customers, nil
}

// CountByRoom returns how many customers are assigned to room number.
func (r *CustomerRepository) CountByRoom(ctx context.Context, number int) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"room": number})
	if err != nil {
		return 0, fmt.Errorf("count customers in room %d: %w", number, err)
	}
	return n, nil
}

// EnsureIndexes creates the unique index on the customer id.
func (r *CustomerRepository) EnsureIndexes(ctx context.Context) error {
	return ensureUnique(ctx, r.col, "id")
}
