package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"homeserve/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ActiveForProviderOnDate returns the provider's active bookings for one
// calendar day.
func (r *MongoBookingRepo) ActiveForProviderOnDate(ctx context.Context, providerID, date string) ([]models.Booking, error) {
	return r.list(ctx, bson.M{
		"provider_id": providerID,
		"date":        date,
		"status":      bson.M{"$in": models.ActiveStatuses},
	})
}

// BusyProviderIDs returns the distinct providers holding a booking for
// (date, timeSlot) in any of the given statuses.
func (r *MongoBookingRepo) BusyProviderIDs(ctx context.Context, date, timeSlot string, statuses []string) ([]string, error) {
	cctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{
		"date":        date,
		"time_slot":   timeSlot,
		"status":      bson.M{"$in": statuses},
		"provider_id": bson.M{"$gt": ""},
	}
	raw, err := r.coll.Distinct(cctx, "provider_id", filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query busy providers: %w", err)
	}

	ids := make([]string, 0, len(raw))
	for _, v := range raw {
		if id, ok := v.(string); ok && id != "" {
			ids = append(ids, id)
		}
	}
	return ids, nil
}
