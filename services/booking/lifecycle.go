package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "homeserve/database/repository/booking"
	"homeserve/models"
	"homeserve/utils"

	"go.uber.org/zap"
)

// GetBooking fetches one booking record.
func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if b == nil {
		return nil, NewNotFoundError("booking %s not found", id)
	}
	return b, nil
}

// ListCustomerBookings returns a customer's bookings, newest first.
func (s *DefaultBookingService) ListCustomerBookings(ctx context.Context, customerID string) ([]models.Booking, error) {
	return s.Repo.ListByCustomer(ctx, customerID)
}

// ListProviderBookings returns a provider's assigned bookings, newest first.
func (s *DefaultBookingService) ListProviderBookings(ctx context.Context, providerID string) ([]models.Booking, error) {
	return s.Repo.ListByProvider(ctx, providerID)
}

// StartBooking moves a confirmed booking to in_progress. Only the assigned
// provider may start; the guarded transition leaves the record untouched on
// any race.
func (s *DefaultBookingService) StartBooking(ctx context.Context, id, actorID string) (*models.Booking, error) {
	b, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.ProviderID == "" || b.ProviderID != actorID {
		return nil, NewUnauthorizedError("only the assigned provider may start this booking")
	}

	startedAt := time.Now()
	ok, err := s.Repo.TransitionStatus(ctx, id, models.BookingConfirmed, models.BookingInProgress,
		models.BookingPatch{StartedAt: &startedAt})
	if err != nil {
		return nil, fmt.Errorf("failed to start booking: %w", err)
	}
	if !ok {
		return nil, NewConflictError("booking %s cannot be started from status %s", id, b.Status)
	}

	b.Status = models.BookingInProgress
	b.StartedAt = &startedAt
	return b, nil
}

// CompleteBooking moves an in-progress booking to completed and credits the
// provider's earnings. The earnings increment is tied to winning the guarded
// status transition, so concurrent completion requests award at most once.
func (s *DefaultBookingService) CompleteBooking(ctx context.Context, id, actorID string) (*models.Booking, error) {
	b, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.ProviderID == "" || b.ProviderID != actorID {
		return nil, NewUnauthorizedError("only the assigned provider may complete this booking")
	}

	ok, err := s.Repo.TransitionStatus(ctx, id, models.BookingInProgress, models.BookingCompleted, models.BookingPatch{})
	if err != nil {
		return nil, fmt.Errorf("failed to complete booking: %w", err)
	}
	if !ok {
		return nil, NewConflictError("booking %s cannot be completed from status %s", id, b.Status)
	}

	if err := s.UserRepo.AwardEarnings(ctx, b.ProviderID, b.Pricing.Total); err != nil {
		// The booking is completed; the missed credit needs operator
		// attention, not a rollback.
		utils.GetLogger().Error("failed to award provider earnings",
			zap.String("bookingID", b.ID), zap.String("providerID", b.ProviderID), zap.Error(err))
	}

	if customer, cerr := s.UserRepo.GetByID(ctx, b.CustomerID); cerr == nil && customer != nil {
		s.notifyAsync(customer.PushToken, "Service Completed",
			fmt.Sprintf("Your booking on %s at %s is complete. We'd love your feedback!", b.Date, b.TimeSlot),
			map[string]string{"bookingId": b.ID, "status": models.BookingCompleted})
	}

	b.Status = models.BookingCompleted
	return b, nil
}

// CancelBooking cancels a pending or confirmed booking. Cancellation is a
// state, not a removal; cancelled bookings stop blocking their slot.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, id, actorID string) (*models.Booking, error) {
	b, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.CustomerID != actorID {
		return nil, NewUnauthorizedError("only the booking's customer may cancel it")
	}

	for _, from := range []string{models.BookingPending, models.BookingConfirmed} {
		ok, err := s.Repo.TransitionStatus(ctx, id, from, models.BookingCancelled, models.BookingPatch{})
		if err != nil {
			return nil, fmt.Errorf("failed to cancel booking: %w", err)
		}
		if ok {
			b.Status = models.BookingCancelled
			return b, nil
		}
	}
	return nil, NewConflictError("booking %s cannot be cancelled from status %s", id, b.Status)
}

// LeaveFeedback records the one-shot feedback annotation on a completed
// booking, then awards loyalty points to the provider. Every full 100 points
// converts into a gift credit; the conversion loops while the balance
// allows, and each deduction is guarded so concurrent feedback events cannot
// convert the same points twice.
func (s *DefaultBookingService) LeaveFeedback(ctx context.Context, id, actorID string, req models.FeedbackRequest) (*models.Booking, error) {
	b, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if b.CustomerID != actorID {
		return nil, NewUnauthorizedError("only the booking's customer may leave feedback")
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, NewInvalidInputError("rating must be between 1 and 5")
	}

	feedback := models.Feedback{Rating: req.Rating, Comment: req.Comment}
	ok, err := s.Repo.SetFeedback(ctx, id, feedback)
	if err != nil {
		return nil, fmt.Errorf("failed to store feedback: %w", err)
	}
	if !ok {
		return nil, NewConflictError("booking %s is not completed or already has feedback", id)
	}
	b.Feedback = &feedback

	if points := LoyaltyPointsFor(req.Rating); points > 0 && b.ProviderID != "" {
		balance, err := s.UserRepo.AwardLoyaltyPoints(ctx, b.ProviderID, points)
		if err != nil {
			utils.GetLogger().Error("failed to award loyalty points",
				zap.String("providerID", b.ProviderID), zap.Error(err))
			return b, nil
		}
		for conversions := balance / 100; conversions > 0; conversions-- {
			converted, err := s.UserRepo.ConvertGiftCredit(ctx, b.ProviderID)
			if err != nil {
				utils.GetLogger().Error("failed to convert gift credit",
					zap.String("providerID", b.ProviderID), zap.Error(err))
				break
			}
			if !converted {
				break
			}
		}
	}

	return b, nil
}

// LoyaltyPointsFor maps a feedback rating onto provider loyalty points.
func LoyaltyPointsFor(rating int) int {
	switch {
	case rating >= 4:
		return 10
	case rating >= 3:
		return 5
	default:
		return 0
	}
}

// ManualAssign confirms a pending unassigned booking with an
// administrator-chosen provider. The target must be a verified provider
// whose category matches the booking's service exactly.
func (s *DefaultBookingService) ManualAssign(ctx context.Context, id, providerID string) (*models.Booking, error) {
	b, err := s.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	svc, err := s.ServiceRepo.GetByID(ctx, b.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve service: %w", err)
	}
	if svc == nil {
		return nil, NewNotFoundError("service %s not found", b.ServiceID)
	}

	provider, err := s.UserRepo.GetByID(ctx, providerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve provider: %w", err)
	}
	if provider == nil || !provider.IsProvider() {
		return nil, NewNotFoundError("provider %s not found", providerID)
	}
	if !provider.Verified {
		return nil, NewConflictError("provider %s is not verified", providerID)
	}
	if !CategoryEquals(provider.ServiceCategory, svc.Name) {
		return nil, NewConflictError("provider category %q does not match service %q",
			provider.ServiceCategory, svc.Name)
	}

	ok, err := s.Repo.AssignProvider(ctx, id, providerID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicateActiveBooking) {
			return nil, NewConflictError("provider %s already has an active booking for this slot", providerID)
		}
		return nil, fmt.Errorf("failed to assign provider: %w", err)
	}
	if !ok {
		return nil, NewConflictError("booking %s is not pending unassigned", id)
	}

	if customer, cerr := s.UserRepo.GetByID(ctx, b.CustomerID); cerr == nil && customer != nil {
		s.notifyAsync(customer.PushToken, "Provider Assigned",
			fmt.Sprintf("%s will handle your booking on %s at %s.", provider.Name, b.Date, b.TimeSlot),
			map[string]string{"bookingId": b.ID, "status": models.BookingConfirmed})
		b2 := *b
		b2.ProviderID = providerID
		s.scheduleReminder(ctx, &b2, customer.PushToken)
	}

	b.ProviderID = providerID
	b.Status = models.BookingConfirmed
	return b, nil
}
