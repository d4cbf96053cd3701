package booking

import (
	"context"

	userRepo "homeserve/database/repository/user"
	"homeserve/models"
)

// stubUserRepo implements userRepo.UserRepository with overridable behavior.
type stubUserRepo struct {
	GetByIDFn               func(ctx context.Context, id string) (*models.User, error)
	FindEligibleProvidersFn func(ctx context.Context, criteria userRepo.EligibleProviderCriteria) ([]models.User, error)
	AwardEarningsFn         func(ctx context.Context, providerID string, amount float64) error
	AwardLoyaltyPointsFn    func(ctx context.Context, providerID string, points int) (int, error)
	ConvertGiftCreditFn     func(ctx context.Context, providerID string) (bool, error)
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) error { return nil }

func (s *stubUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return nil, nil
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, nil
}

func (s *stubUserRepo) FindEligibleProviders(ctx context.Context, criteria userRepo.EligibleProviderCriteria) ([]models.User, error) {
	if s.FindEligibleProvidersFn != nil {
		return s.FindEligibleProvidersFn(ctx, criteria)
	}
	return nil, nil
}

func (s *stubUserRepo) SetVerified(ctx context.Context, id string, verified bool) error { return nil }

func (s *stubUserRepo) UpdateLocation(ctx context.Context, id string, lng, lat float64) error {
	return nil
}

func (s *stubUserRepo) UpdatePushToken(ctx context.Context, id string, token string) error {
	return nil
}

func (s *stubUserRepo) UpdateWorkingHours(ctx context.Context, id string, hours models.WorkingHours) error {
	return nil
}

func (s *stubUserRepo) UpdateProfileImage(ctx context.Context, id string, imageURL string) error {
	return nil
}

func (s *stubUserRepo) AwardEarnings(ctx context.Context, providerID string, amount float64) error {
	if s.AwardEarningsFn != nil {
		return s.AwardEarningsFn(ctx, providerID, amount)
	}
	return nil
}

func (s *stubUserRepo) AwardLoyaltyPoints(ctx context.Context, providerID string, points int) (int, error) {
	if s.AwardLoyaltyPointsFn != nil {
		return s.AwardLoyaltyPointsFn(ctx, providerID, points)
	}
	return points, nil
}

func (s *stubUserRepo) ConvertGiftCredit(ctx context.Context, providerID string) (bool, error) {
	if s.ConvertGiftCreditFn != nil {
		return s.ConvertGiftCreditFn(ctx, providerID)
	}
	return false, nil
}

// stubBookingRepo implements bookingRepo.BookingRepository with overridable
// behavior.
type stubBookingRepo struct {
	CreateFn                  func(ctx context.Context, booking *models.Booking) error
	GetByIDFn                 func(ctx context.Context, id string) (*models.Booking, error)
	ActiveForProviderOnDateFn func(ctx context.Context, providerID, date string) ([]models.Booking, error)
	BusyProviderIDsFn         func(ctx context.Context, date, timeSlot string, statuses []string) ([]string, error)
	TransitionStatusFn        func(ctx context.Context, id, from, to string, patch models.BookingPatch) (bool, error)
	AssignProviderFn          func(ctx context.Context, id, providerID string) (bool, error)
	SetFeedbackFn             func(ctx context.Context, id string, feedback models.Feedback) (bool, error)
}

func (s *stubBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	if s.CreateFn != nil {
		return s.CreateFn(ctx, booking)
	}
	return nil
}

func (s *stubBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	if s.GetByIDFn != nil {
		return s.GetByIDFn(ctx, id)
	}
	return nil, nil
}

func (s *stubBookingRepo) ListByCustomer(ctx context.Context, customerID string) ([]models.Booking, error) {
	return nil, nil
}

func (s *stubBookingRepo) ListByProvider(ctx context.Context, providerID string) ([]models.Booking, error) {
	return nil, nil
}

func (s *stubBookingRepo) ActiveForProviderOnDate(ctx context.Context, providerID, date string) ([]models.Booking, error) {
	if s.ActiveForProviderOnDateFn != nil {
		return s.ActiveForProviderOnDateFn(ctx, providerID, date)
	}
	return nil, nil
}

func (s *stubBookingRepo) BusyProviderIDs(ctx context.Context, date, timeSlot string, statuses []string) ([]string, error) {
	if s.BusyProviderIDsFn != nil {
		return s.BusyProviderIDsFn(ctx, date, timeSlot, statuses)
	}
	return nil, nil
}

func (s *stubBookingRepo) TransitionStatus(ctx context.Context, id, from, to string, patch models.BookingPatch) (bool, error) {
	if s.TransitionStatusFn != nil {
		return s.TransitionStatusFn(ctx, id, from, to, patch)
	}
	return false, nil
}

func (s *stubBookingRepo) AssignProvider(ctx context.Context, id, providerID string) (bool, error) {
	if s.AssignProviderFn != nil {
		return s.AssignProviderFn(ctx, id, providerID)
	}
	return false, nil
}

func (s *stubBookingRepo) SetFeedback(ctx context.Context, id string, feedback models.Feedback) (bool, error) {
	if s.SetFeedbackFn != nil {
		return s.SetFeedbackFn(ctx, id, feedback)
	}
	return false, nil
}

// stubServiceRepo implements serviceRepo.ServiceRepository over a fixed set.
type stubServiceRepo struct {
	services map[string]*models.Service
}

func (s *stubServiceRepo) Create(ctx context.Context, svc *models.Service) error { return nil }
func (s *stubServiceRepo) Update(ctx context.Context, svc *models.Service) error { return nil }
func (s *stubServiceRepo) Delete(ctx context.Context, id string) error           { return nil }

func (s *stubServiceRepo) GetByID(ctx context.Context, id string) (*models.Service, error) {
	return s.services[id], nil
}

func (s *stubServiceRepo) GetAll(ctx context.Context) ([]models.Service, error) {
	var all []models.Service
	for _, svc := range s.services {
		all = append(all, *svc)
	}
	return all, nil
}

// bathroomCleaning is the shared fixture service.
func bathroomCleaning() *models.Service {
	return &models.Service{
		ID:   "svc-1",
		Name: "Bathroom Cleaning",
		PricingWindows: []models.PricingWindow{
			{Start: "09:00", End: "11:00", Price: 400},
		},
		BaseDuration: 120,
	}
}

func verifiedProvider(id, name string) models.User {
	return models.User{
		ID:              id,
		Name:            name,
		Role:            models.RoleProvider,
		ServiceCategory: "Bathroom Cleaning",
		Verified:        true,
		WorkingHours:    models.WorkingHours{Start: "08:00", End: "20:00"},
	}
}
