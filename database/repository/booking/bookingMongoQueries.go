package bookingRepo

import (
	"fmt"
	"time"

	"schedly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListForUser retrieves bookings the user hosts or participates in, sorted
// by start time ascending. status filters when non-empty.
func (r *MongoBookingRepo) ListForUser(userID, status string) ([]models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{
		"$or": []bson.M{
			{"hostId": userID},
			{"participants.userId": userID},
		},
	}
	if status != "" {
		filter = bson.M{"$and": []bson.M{filter, {"status": status}}}
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for user %s: %w", userID, err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

// HasOverlapping reports whether the host owns any booking overlapping the
// given range. Touching endpoints do not match.
func (r *MongoBookingRepo) HasOverlapping(hostID string, tr models.TimeRange, excludeID string) (bool, error) {
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
		return false, fmt.Errorf("failed to check overlapping bookings for host %s: %w", hostID, err)
	}
	return true, nil
}
