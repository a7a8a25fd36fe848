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

// LevelRepo handles the persistence of levels. A level document embeds its
// grid rows, descriptor and stats.
type LevelRepo struct {
	collection *mongo.Collection
}

// NewLevelRepo creates a new LevelRepo with the given MongoDB client, database name, and collection name.
func NewLevelRepo(client *mongo.Client, dbName, collectionName string) *LevelRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &LevelRepo{
		collection: collection,
	}
}

// EnsureIndexes indexes levels by designer and creation time.
func (l *LevelRepo) EnsureIndexes(ctx context.Context) error {
	_, err := l.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "designerId", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	return err
}

// Save inserts a level or replaces the stored one with the same ID.
func (l *LevelRepo) Save(ctx context.Context, level *dmn.Level) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := l.collection.ReplaceOne(ctx, bson.M{"_id": level.ID}, level, opts); err != nil {
		return fmt.Errorf("unexpected error: %w", err)
	}
	return nil
}

// ByID retrieves a level by its ID.
func (l *LevelRepo) ByID(ctx context.Context, id uuid.UUID) (*dmn.Level, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	var level dmn.Level
	if err := l.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&level); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, dmn.ErrLevelNotFound
		}
		return nil, fmt.Errorf("unexpected error: %w", err)
	}
	return &level, nil
}

// ByDesigner lists the levels of a designer, newest first.
func (l *LevelRepo) ByDesigner(ctx context.Context, designerID uuid.UUID) ([]*dmn.Level, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := l.collection.Find(ctx, bson.M{"designerId": designerID}, opts)
	if err != nil {
		return nil, fmt.Errorf("unexpected error: %w", err)
	}

	levels := []*dmn.Level{}
	if err := cursor.All(ctx, &levels); err != nil {
		return nil, fmt.Errorf("unexpected error: %w", err)
	}
	return levels, nil
}
