package bookingRepo

import (
	"fmt"
	"time"

	"schedly/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Insert persists a new booking document. Participants are deduplicated by
// user id before the write, first occurrence winning.
func (r *MongoBookingRepo) Insert(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	booking.DedupeParticipants()

	_, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetByID retrieves a booking by its unique ID.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// GetByIDAndHost retrieves a booking scoped to its host.
func (r *MongoBookingRepo) GetByIDAndHost(id, hostID string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	filter := bson.M{"id": id, "hostId": hostID}
	if err := r.coll.FindOne(ctx, filter).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// Update replaces the stored booking document, re-enforcing the
// unique-participant invariant at the persistence boundary.
func (r *MongoBookingRepo) Update(booking *models.Booking) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	booking.DedupeParticipants()

	filter := bson.M{"id": booking.ID}
	update := bson.M{"$set": booking}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update booking with id %s: %w", booking.ID, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("booking with id %s not found", booking.ID)
	}
	return nil
}

// DeleteByIDAndHost removes the booking scoped to its host and returns the
// deleted document, or (nil, nil) if nothing matched.
func (r *MongoBookingRepo) DeleteByIDAndHost(id, hostID string) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	filter := bson.M{"id": id, "hostId": hostID}
	if err := r.coll.FindOneAndDelete(ctx, filter).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to delete booking with id %s: %w", id, err)
	}
	return &booking, nil
}

// CancelByEventID marks every booking mirroring the event as Canceled.
func (r *MongoBookingRepo) CancelByEventID(eventID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	filter := bson.M{"eventId": eventID}
	update := bson.M{"$set": bson.M{"status": models.StatusCanceled}}

	_, err := r.coll.UpdateMany(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to cancel bookings for event %s: %w", eventID, err)
	}
	return nil
}
