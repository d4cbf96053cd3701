package userRepo

import (
	"context"

	"homeserve/models"
)

// EligibleProviderCriteria selects providers for matching: role "provider",
// verified, exact trimmed case-insensitive category equality, within the
// radius of the given point, and not in the exclusion set.
type EligibleProviderCriteria struct {
	Category     string
	LocationGeo  models.GeoPoint
	RadiusMeters float64
	ExcludeIDs   []string
}

// UserRepository defines persistence for customer and provider accounts.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// FindEligibleProviders answers the geo eligibility query, ordered
	// nearest first. An empty result is not an error.
	FindEligibleProviders(ctx context.Context, criteria EligibleProviderCriteria) ([]models.User, error)

	SetVerified(ctx context.Context, id string, verified bool) error
	UpdateLocation(ctx context.Context, id string, lng, lat float64) error
	UpdatePushToken(ctx context.Context, id string, token string) error
	UpdateWorkingHours(ctx context.Context, id string, hours models.WorkingHours) error
	UpdateProfileImage(ctx context.Context, id string, imageURL string) error

	// AwardEarnings atomically increments a provider's accrued earnings.
	AwardEarnings(ctx context.Context, providerID string, amount float64) error

	// AwardLoyaltyPoints atomically adds points and returns the new balance.
	AwardLoyaltyPoints(ctx context.Context, providerID string, points int) (int, error)

	// ConvertGiftCredit performs one 100-point-to-gift conversion. It reports
	// false when the balance is below 100, so callers loop until it stops.
	ConvertGiftCredit(ctx context.Context, providerID string) (bool, error)
}
