package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"schedly/database"
	"schedly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AvailabilityRepository defines data access for weekly availability
// templates. GetByUser returns (nil, nil) when the user has no record yet.
type AvailabilityRepository interface {
	GetByUser(userID string) (*models.Availability, error)
	Insert(availability *models.Availability) error
	ReplaceDays(userID string, days []models.AvailabilityDay) error
}

// MongoAvailabilityRepo implements AvailabilityRepository using MongoDB.
type MongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo creates a new instance of AvailabilityRepository using MongoDB.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	coll := database.DB().Collection("availabilities")
	repo := &MongoAvailabilityRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAvailabilityRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// GetByUser retrieves the availability template for a user.
func (r *MongoAvailabilityRepo) GetByUser(userID string) (*models.Availability, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var availability models.Availability
	if err := r.coll.FindOne(ctx, bson.M{"userId": userID}).Decode(&availability); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch availability for user %s: %w", userID, err)
	}
	return &availability, nil
}

// Insert persists a new availability document.
func (r *MongoAvailabilityRepo) Insert(availability *models.Availability) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, availability)
	if err != nil {
		return fmt.Errorf("failed to create availability: %w", err)
	}
	return nil
}

// ReplaceDays overwrites the days sequence wholesale.
func (r *MongoAvailabilityRepo) ReplaceDays(userID string, days []models.AvailabilityDay) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"userId": userID}
	update := bson.M{"$set": bson.M{"days": days}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update availability for user %s: %w", userID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("availability for user %s not found", userID)
	}
	return nil
}
