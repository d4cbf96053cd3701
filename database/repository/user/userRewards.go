package userRepo

import (
	"context"
	"fmt"
	"time"

	"homeserve/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AwardEarnings atomically increments a provider's accrued earnings.
func (r *MongoUserRepo) AwardEarnings(ctx context.Context, providerID string, amount float64) error {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": providerID, "role": models.RoleProvider}
	update := bson.M{
		"$inc": bson.M{"earnings": amount},
		"$set": bson.M{"updated_at": time.Now()},
	}
	res, err := r.coll.UpdateOne(cctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to award earnings to provider %s: %w", providerID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("provider %s not found", providerID)
	}
	return nil
}

// AwardLoyaltyPoints atomically adds points and returns the new balance.
func (r *MongoUserRepo) AwardLoyaltyPoints(ctx context.Context, providerID string, points int) (int, error) {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": providerID, "role": models.RoleProvider}
	update := bson.M{
		"$inc": bson.M{"loyalty_points": points},
		"$set": bson.M{"updated_at": time.Now()},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.User
	if err := r.coll.FindOneAndUpdate(cctx, filter, update, opts).Decode(&updated); err != nil {
		if err == mongo.ErrNoDocuments {
			return 0, fmt.Errorf("provider %s not found", providerID)
		}
		return 0, fmt.Errorf("failed to award loyalty points to provider %s: %w", providerID, err)
	}
	return updated.LoyaltyPoints, nil
}

// ConvertGiftCredit converts one block of 100 loyalty points into a gift
// credit. The filter makes the conversion a no-op when the balance is short,
// so concurrent feedback events cannot double-convert the same points.
func (r *MongoUserRepo) ConvertGiftCredit(ctx context.Context, providerID string) (bool, error) {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"id":             providerID,
		"role":           models.RoleProvider,
		"loyalty_points": bson.M{"$gte": 100},
	}
	update := bson.M{
		"$inc": bson.M{"loyalty_points": -100, "gift_credits": 1},
		"$set": bson.M{"updated_at": time.Now()},
	}
	res, err := r.coll.UpdateOne(cctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("failed to convert gift credit for provider %s: %w", providerID, err)
	}
	return res.ModifiedCount > 0, nil
}
