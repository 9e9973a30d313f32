package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultTimeout = 10 * time.Second
	indexTimeout   = 30 * time.Second
)

// Config captures the minimal settings required to establish a MongoDB connection.
type Config struct {
	URI      string
	Database string
	Timeout  time.Duration
}

// Connect establishes a MongoDB client, verifies connectivity with a ping, and
// returns both the client and the selected database. A default timeout is
// applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*mongo.Client, *mongo.Database, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(connectCtx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := client.Database(cfg.Database)
	return client, db, nil
}

// Store bundles the repositories that share one database.
type Store struct {
	Credentials *CredentialRepository
	Customers   *CustomerRepository
	Rooms       *RoomRepository
}

func NewStore(db *mongo.Database) *Store {
	return &Store{
		Credentials: NewCredentialRepository(db),
		Customers:   NewCustomerRepository(db),
		Rooms:       NewRoomRepository(db),
	}
}

// EnsureIndexes creates the unique natural-key indexes of every collection.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	if err := s.Credentials.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("credentials indexes: %w", err)
	}
	if err := s.Customers.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("customers indexes: %w", err)
	}
	if err := s.Rooms.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("rooms indexes: %w", err)
	}
	return nil
}

func ensureUnique(ctx context.Context, col *mongo.Collection, field string) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	_, err := col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: field, Value: 1}},
		Options: options.Index().SetUnique(true).SetName(field + "_unique"),
	})
	return err
}

func insertedHex(res *mongo.InsertOneResult) string {
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(res.InsertedID)
}
