package eventRepo

import (
	"fmt"
	"time"

	"schedly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListForUser retrieves events the user hosts or participates in.
func (r *MongoEventRepo) ListForUser(userID string) ([]models.Event, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"$or": []bson.M{
			{"hostId": userID},
			{"participants.userId": userID},
		},
	}
	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch events for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var events []models.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("failed to decode events: %w", err)
	}
	return events, nil
}

// HasOverlapping reports whether the host owns any event overlapping the
// given range. Touching endpoints do not match: the filter requires
// startTime < candidate.End AND endTime > candidate.Start.
func (r *MongoEventRepo) HasOverlapping(hostID string, tr models.TimeRange, excludeID string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"hostId":    hostID,
		"startTime": bson.M{"$lt": tr.End},
		"endTime":   bson.M{"$gt": tr.Start},
	}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}

	err := r.coll.FindOne(ctx, filter).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check overlapping events for host %s: %w", hostID, err)
	}
	return true, nil
}
