package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-labyrinth/domain"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// DesignerRepo handles the persistence of designers.
type DesignerRepo struct {
	collection *mongo.Collection
}

// NewDesignerRepo creates a new DesignerRepo with the given MongoDB client, database name, and collection name.
func NewDesignerRepo(client *mongo.Client, dbName, collectionName string) *DesignerRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &DesignerRepo{
		collection: collection,
	}
}

// EnsureIndexes makes usernames unique.
func (d *DesignerRepo) EnsureIndexes(ctx context.Context) error {
	_, err := d.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Save inserts or updates a designer in the repository.
// If the designer already exists, it updates the existing record.
// If the designer does not exist, it adds a new record.
func (d *DesignerRepo) Save(ctx context.Context, designer *dmn.Designer) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	filter := bson.M{"_id": designer.ID}
	update := bson.M{
		"$set": bson.M{
			"username":     designer.Username,
			"passwordHash": designer.PasswordHash,
			"levels":       designer.Levels,
			"updatedAt":    time.Now(),
		},
	}

	opts := options.Update().SetUpsert(true)
	_, err := d.collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return dmn.ErrUsernameConflict
		}
		return fmt.Errorf("unexpected error: %w", err)
	}

	return nil
}

// ByID retrieves a designer by their ID.
// Returns an error if the designer is not found or if an unexpected error occurs.
func (d *DesignerRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.Designer, error) {
	return d.findOne(ctx, bson.M{"_id": id})
}

// ByUsername retrieves a designer by their username.
// Returns an error if the designer is not found or if an unexpected error occurs.
func (d *DesignerRepo) ByUsername(ctx context.Context, username string) (*dmn.Designer, error) {
	return d.findOne(ctx, bson.M{"username": username})
}

// IncrementLevels bumps the level count of a designer in place, so concurrent
// level creations never overwrite each other's count.
func (d *DesignerRepo) IncrementLevels(ctx context.Context, id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	update := bson.M{
		"$inc": bson.M{"levels": 1},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	result, err := d.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("unexpected error: %w", err)
	}
	if result.MatchedCount == 0 {
		return dmn.ErrDesignerNotFound
	}

	return nil
}

func (d *DesignerRepo) findOne(ctx context.Context, filter bson.M) (*dmn.Designer, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	var designer dmn.Designer
	if err := d.collection.FindOne(ctx, filter).Decode(&designer); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, dmn.ErrDesignerNotFound
		}
		return nil, fmt.Errorf("unexpected error: %w", err)
	}
	return &designer, nil
}
