package userRepo

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"homeserve/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// FindEligibleProviders runs a $geoNear pipeline over the users collection.
// $geoNear orders results nearest first, which is the selection order the
// assignment step relies on.
func (r *MongoUserRepo) FindEligibleProviders(ctx context.Context, criteria EligibleProviderCriteria) ([]models.User, error) {
	cctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if len(criteria.LocationGeo.Coordinates) != 2 {
		return nil, fmt.Errorf("invalid search center coordinates")
	}

	var pipeline mongo.Pipeline

	// $geoNear must come first to filter and sort by distance.
	pipeline = append(pipeline, bson.D{
		{Key: "$geoNear", Value: bson.D{
			{Key: "near", Value: bson.D{
				{Key: "type", Value: "Point"},
				{Key: "coordinates", Value: criteria.LocationGeo.Coordinates},
			}},
			{Key: "distanceField", Value: "distance"},
			{Key: "maxDistance", Value: criteria.RadiusMeters},
			{Key: "spherical", Value: true},
		}},
	})

	match := bson.D{
		{Key: "role", Value: models.RoleProvider},
		{Key: "verified", Value: true},
		{Key: "service_category", Value: categoryPattern(criteria.Category)},
	}
	if len(criteria.ExcludeIDs) > 0 {
		match = append(match, bson.E{Key: "id", Value: bson.M{"$nin": criteria.ExcludeIDs}})
	}
	pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})

	cursor, err := r.coll.Aggregate(cctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("eligible provider search failed: %w", err)
	}
	defer cursor.Close(cctx)

	var providers []models.User
	if err := cursor.All(cctx, &providers); err != nil {
		return nil, fmt.Errorf("failed to decode eligible providers: %w", err)
	}
	return providers, nil
}

// categoryPattern matches the stored category exactly, ignoring case and
// surrounding whitespace on both sides of the comparison.
func categoryPattern(category string) primitive.Regex {
	return primitive.Regex{
		Pattern: `^\s*` + regexp.QuoteMeta(strings.TrimSpace(category)) + `\s*$`,
		Options: "i",
	}
}
