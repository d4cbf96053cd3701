package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"homeserve/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// TransitionStatus performs a guarded read-modify-write: the update only
// applies while the booking still sits in the expected source status, so
// racing transition attempts resolve to a single winner.
func (r *MongoBookingRepo) TransitionStatus(ctx context.Context, id, from, to string, patch models.BookingPatch) (bool, error) {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{
		"status":     to,
		"updated_at": time.Now(),
	}
	if patch.StartedAt != nil {
		set["started_at"] = *patch.StartedAt
	}

	res, err := r.coll.UpdateOne(cctx, bson.M{"id": id, "status": from}, bson.M{"$set": set})
	if err != nil {
		return false, fmt.Errorf("failed to transition booking %s from %s to %s: %w", id, from, to, err)
	}
	return res.MatchedCount > 0, nil
}

// AssignProvider confirms a pending, unassigned booking with the given
// provider. The active-triple unique index still applies to this update, so
// a manual assignment colliding with an existing active booking fails with
// ErrDuplicateActiveBooking.
func (r *MongoBookingRepo) AssignProvider(ctx context.Context, id, providerID string) (bool, error) {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":     id,
		"status": models.BookingPending,
		"$or": []bson.M{
			{"provider_id": bson.M{"$exists": false}},
			{"provider_id": ""},
		},
	}
	update := bson.M{"$set": bson.M{
		"provider_id": providerID,
		"status":      models.BookingConfirmed,
		"updated_at":  time.Now(),
	}}

	res, err := r.coll.UpdateOne(cctx, filter, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return false, ErrDuplicateActiveBooking
		}
		return false, fmt.Errorf("failed to assign provider to booking %s: %w", id, err)
	}
	return res.MatchedCount > 0, nil
}

// SetFeedback stores the feedback annotation, guarded so a completed booking
// accepts it at most once.
func (r *MongoBookingRepo) SetFeedback(ctx context.Context, id string, feedback models.Feedback) (bool, error) {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":       id,
		"status":   models.BookingCompleted,
		"feedback": bson.M{"$exists": false},
	}
	update := bson.M{"$set": bson.M{
		"feedback":   feedback,
		"updated_at": time.Now(),
	}}

	res, err := r.coll.UpdateOne(cctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to store feedback for booking %s: %w", id, err)
	}
	return res.MatchedCount > 0, nil
}
