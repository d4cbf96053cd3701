package userRepo

import (
	"context"
	"fmt"
	"time"

	"homeserve/database"
	"homeserve/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
}

// NewMongoUserRepo creates a new instance of UserRepository using MongoDB.
func NewMongoUserRepo() UserRepository {
	coll := database.MongoClient.Database(database.DatabaseName).Collection("users")
	repo := &MongoUserRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create user indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// ensureIndexes creates indexes for fields that are frequently used in queries.
func (r *MongoUserRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "role", Value: 1}}},
		{Keys: bson.D{{Key: "service_category", Value: 1}}},
		// 2dsphere index on location_geo for the eligibility query.
		{Keys: bson.D{{Key: "location_geo", Value: "2dsphere"}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new user record.
func (r *MongoUserRepo) Create(ctx context.Context, user *models.User) error {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.InsertOne(cctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("a user with this email already exists")
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by its unique ID. Returns nil when not found.
func (r *MongoUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var user models.User
	if err := r.coll.FindOne(cctx, bson.M{"id": id}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user with id %s: %w", id, err)
	}
	return &user, nil
}

// GetByEmail retrieves a user by its email address. Returns nil when not found.
func (r *MongoUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var user models.User
	if err := r.coll.FindOne(cctx, bson.M{"email": email}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user with email %s: %w", email, err)
	}
	return &user, nil
}

// setFields applies a $set update with a refreshed updated_at.
func (r *MongoUserRepo) setFields(ctx context.Context, id string, fields bson.M) error {
	cctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	fields["updated_at"] = time.Now()
	res, err := r.coll.UpdateOne(cctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("failed to update user %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("user %s not found", id)
	}
	return nil
}

// SetVerified flips the administrator verification flag on a provider.
func (r *MongoUserRepo) SetVerified(ctx context.Context, id string, verified bool) error {
	return r.setFields(ctx, id, bson.M{"verified": verified})
}

// UpdateLocation stores a fresh GeoJSON point for the user.
func (r *MongoUserRepo) UpdateLocation(ctx context.Context, id string, lng, lat float64) error {
	return r.setFields(ctx, id, bson.M{"location_geo": models.NewGeoPoint(lng, lat)})
}

// UpdatePushToken stores the latest FCM push token for the user's device.
func (r *MongoUserRepo) UpdatePushToken(ctx context.Context, id string, token string) error {
	return r.setFields(ctx, id, bson.M{"push_token": token})
}

// UpdateWorkingHours stores a provider's daily working window.
func (r *MongoUserRepo) UpdateWorkingHours(ctx context.Context, id string, hours models.WorkingHours) error {
	return r.setFields(ctx, id, bson.M{"working_hours": hours})
}

// UpdateProfileImage stores the uploaded profile image URL.
func (r *MongoUserRepo) UpdateProfileImage(ctx context.Context, id string, imageURL string) error {
	return r.setFields(ctx, id, bson.M{"profile_image": imageURL})
}
