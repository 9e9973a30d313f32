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

const collectionRooms = "rooms"

type RoomRepository struct {
	col *mongo.Collection
}

func NewRoomRepository(db *mongo.Database) *RoomRepository {
	return &RoomRepository{col: db.Collection(collectionRooms)}
}

type roomDoc struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Number int                `bson:"number"`
	Type   string             `bson:"type"`
	Status string             `bson:"status"`
}

func (d roomDoc) toDomain() *domain.Room {
	return &domain.Room{
		ID:     d.ID.Hex(),
		Number: d.Number,
		Type:   d.Type,
		Status: domain.RoomStatus(d.Status),
	}
}

// Create inserts a room. The unique index on number makes the uniqueness
// check and the insert a single atomic operation.
func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.InsertOne(ctx, roomDoc{
		Number: room.Number,
		Type:   room.Type,
		Status: string(room.Status),
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", fmt.Errorf("room %d: %w", room.Number, domain.ErrAlreadyExists)
		}
		return "", fmt.Errorf("insert room: %w", err)
	}
	return insertedHex(res), nil
}

func (r *RoomRepository) Get(ctx context.Context, number int) (*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc roomDoc
	if err := r.col.FindOne(ctx, bson.M{"number": number}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("room %d: %w", number, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("find room: %w", err)
	}
	return doc.toDomain(), nil
}

// Update sets the room status, and the type when room.Type is non-empty,
// returning the document as stored after the update.
func (r *RoomRepository) Update(ctx context.Context, number int, room *domain.Room) (*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"status": string(room.Status)}
	if room.Type != "" {
		set["type"] = room.Type
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc roomDoc
	err := r.col.FindOneAndUpdate(ctx, bson.M{"number": number}, bson.M{"$set": set}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("room %d: %w", number, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("update room: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *RoomRepository) Delete(ctx context.Context, number int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, bson.M{"number": number})
	if err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("room %d: %w", number, domain.ErrNotFound)
	}
	return nil
}

// List returns all rooms in storage order.
func (r *RoomRepository) List(ctx context.Context) ([]*domain.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	var docs []roomDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode rooms: %w", err)
	}

	rooms := make([]*domain.Room, len(docs))
	for i, d := range docs {
		rooms[i] = d.toDomain()
	}
	return rooms, nil
}

// EnsureIndexes creates the unique index on the room number.
func (r *RoomRepository) EnsureIndexes(ctx context.Context) error {
	return ensureUnique(ctx, r.col, "number")
}
