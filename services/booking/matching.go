package booking

import (
	"context"
	"fmt"

	userRepo "homeserve/database/repository/user"
	"homeserve/models"
	"homeserve/utils"

	"go.uber.org/zap"
)

// eligibleProviders answers "verified providers of this category within the
// match radius of the point, minus the exclusion set". The radius and the
// exact trimmed case-insensitive category policy are system constants. An
// empty result is a normal outcome, never an error.
//
// Ordering is whatever the geo query returns (nearest first); the assignment
// step deliberately takes the first result with no further ranking.
func (s *DefaultBookingService) eligibleProviders(ctx context.Context, category string, point models.GeoPoint, excludeIDs []string) ([]models.User, error) {
	criteria := userRepo.EligibleProviderCriteria{
		Category:     category,
		LocationGeo:  point,
		RadiusMeters: utils.MatchRadiusMeters,
		ExcludeIDs:   excludeIDs,
	}
	providers, err := s.UserRepo.FindEligibleProviders(ctx, criteria)
	if err != nil {
		return nil, fmt.Errorf("eligible provider search failed: %w", err)
	}
	if len(providers) == 0 {
		utils.GetLogger().Debug("no eligible providers",
			zap.String("category", category), zap.Int("excluded", len(excludeIDs)))
		return []models.User{}, nil
	}
	return providers, nil
}
