package eventRepo

import (
	"fmt"
	"time"

	"schedly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Insert persists a new event document.
func (r *MongoEventRepo) Insert(event *models.Event) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	_, err := r.coll.InsertOne(ctx, event)
	if err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

// GetByIDAndHost retrieves an event scoped to its host.
func (r *MongoEventRepo) GetByIDAndHost(id, hostID string) (*models.Event, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var event models.Event
	filter := bson.M{"id": id, "hostId": hostID}
	if err := r.coll.FindOne(ctx, filter).Decode(&event); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch event with id %s: %w", id, err)
	}
	return &event, nil
}

// Update replaces the stored event document.
func (r *MongoEventRepo) Update(event *models.Event) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"id": event.ID}
	update := bson.M{"$set": event}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update event with id %s: %w", event.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("event with id %s not found", event.ID)
	}
	return nil
}

// DeleteByIDAndHost removes the event scoped to its host and returns the
// deleted document, or (nil, nil) if nothing matched.
func (r *MongoEventRepo) DeleteByIDAndHost(id, hostID string) (*models.Event, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var event models.Event
	filter := bson.M{"id": id, "hostId": hostID}
	if err := r.coll.FindOneAndDelete(ctx, filter).Decode(&event); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to delete event with id %s: %w", id, err)
	}
	return &event, nil
}
