package user

import (
	"context"
	"fmt"

	"homeserve/models"
)

// UpdateLocation stores a fresh location for the account.
func (s *DefaultUserService) UpdateLocation(ctx context.Context, id string, lng, lat float64) error {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return fmt.Errorf("coordinates out of range")
	}
	return s.Repo.UpdateLocation(ctx, id, lng, lat)
}

// UpdatePushToken stores the device push token used by the notifier.
func (s *DefaultUserService) UpdatePushToken(ctx context.Context, id, token string) error {
	if token == "" {
		return fmt.Errorf("push token is required")
	}
	return s.Repo.UpdatePushToken(ctx, id, token)
}

// UpdateWorkingHours stores a provider's daily working window. The window is
// kept as entered; unparseable values degrade that provider to zero slots at
// query time rather than being rejected here retroactively.
func (s *DefaultUserService) UpdateWorkingHours(ctx context.Context, id string, hours models.WorkingHours) error {
	if hours.Start == "" || hours.End == "" {
		return fmt.Errorf("working hours start and end are required")
	}
	return s.Repo.UpdateWorkingHours(ctx, id, hours)
}

// UpdateProfileImage stores the uploaded profile image URL.
func (s *DefaultUserService) UpdateProfileImage(ctx context.Context, id, imageURL string) error {
	if imageURL == "" {
		return fmt.Errorf("image URL is required")
	}
	return s.Repo.UpdateProfileImage(ctx, id, imageURL)
}

// VerifyProvider marks a provider as verified, making them matchable.
func (s *DefaultUserService) VerifyProvider(ctx context.Context, id string) (*models.User, error) {
	u, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !u.IsProvider() {
		return nil, fmt.Errorf("user %s is not a provider", id)
	}
	if err := s.Repo.SetVerified(ctx, id, true); err != nil {
		return nil, err
	}
	u.Verified = true
	return u, nil
}
