package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingRepo "homeserve/database/repository/booking"
	"homeserve/models"
	"homeserve/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PendingBookingMessage is the human-readable outcome when no provider could
// be assigned.
const PendingBookingMessage = "No provider available at this time. Booking is pending."

// CreateBooking resolves pricing, then tries to assign one eligible provider
// atomically. The matching decision and the write are not covered by any
// application lock; the booking insert itself is the compare-and-insert, and
// a uniqueness conflict means the provider was taken concurrently. On
// conflict the provider joins the exclusion set and the search re-runs, a
// bounded number of times, before falling back to a pending unassigned
// booking.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, customerID string, req models.CreateBookingRequest) (*models.BookingResponse, error) {
	logger := utils.GetLogger()

	customer, err := s.UserRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve customer: %w", err)
	}
	if customer == nil {
		return nil, NewNotFoundError("customer %s not found", customerID)
	}

	svc, err := s.ServiceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve service: %w", err)
	}
	if svc == nil {
		return nil, NewNotFoundError("service %s not found", req.ServiceID)
	}

	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		return nil, NewInvalidInputError("invalid date %q, expected YYYY-MM-DD", req.Date)
	}

	start, end, err := ParseSlotLabel(req.TimeSlot)
	if err != nil {
		return nil, NewInvalidInputError("invalid time slot %q", req.TimeSlot)
	}
	// A reversed or empty interval would slip past pricing (both nesting
	// bounds hold vacuously) and then never register as busy.
	if end <= start {
		return nil, NewInvalidInputError("time slot %q must end after it starts", req.TimeSlot)
	}

	point, err := pointFromCoords(req.Lng, req.Lat)
	if err != nil {
		return nil, err
	}

	// A slot no pricing window covers is a hard validation failure; nothing
	// is written.
	base, ok := ResolvePrice(svc.PricingWindows, start, end)
	if !ok {
		return nil, NewInvalidInputError("time slot %q is not covered by any pricing window", req.TimeSlot)
	}
	pricing := PriceSnapshot(base, s.TaxRate)

	booking := &models.Booking{
		ID:          uuid.New().String(),
		CustomerID:  customer.ID,
		ServiceID:   svc.ID,
		Address:     req.Address,
		Date:        req.Date,
		TimeSlot:    FormatSlotLabel(start, end),
		Start:       start,
		End:         end,
		Pricing:     pricing,
		LocationGeo: point,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	// Providers already holding this slot with a firm booking are excluded
	// up front; pending unassigned bookings do not block anyone.
	exclude, err := s.Repo.BusyProviderIDs(ctx, booking.Date, booking.TimeSlot,
		[]string{models.BookingConfirmed, models.BookingInProgress})
	if err != nil {
		return nil, fmt.Errorf("failed to compute exclusion set: %w", err)
	}

	for attempt := 0; attempt < utils.AssignMaxAttempts; attempt++ {
		candidates, err := s.eligibleProviders(ctx, svc.Name, point, exclude)
		if err != nil {
			return nil, err
		}
		if len(candidates) == 0 {
			break
		}

		provider := candidates[0]
		booking.ProviderID = provider.ID
		booking.Status = models.BookingConfirmed

		if err := s.Repo.Create(ctx, booking); err != nil {
			if errors.Is(err, bookingRepo.ErrDuplicateActiveBooking) {
				// Provider became unavailable between the search and the
				// write; exclude them and try the next one.
				logger.Info("assignment conflict, retrying with next provider",
					zap.String("providerID", provider.ID),
					zap.String("date", booking.Date),
					zap.String("timeSlot", booking.TimeSlot))
				exclude = append(exclude, provider.ID)
				continue
			}
			return nil, fmt.Errorf("failed to create booking: %w", err)
		}

		s.notifyAsync(customer.PushToken, "Booking Confirmed!",
			fmt.Sprintf("Your %s booking on %s at %s is confirmed with %s.",
				svc.Name, booking.Date, booking.TimeSlot, provider.Name),
			map[string]string{"bookingId": booking.ID, "status": booking.Status})
		s.scheduleReminder(ctx, booking, customer.PushToken)

		return &models.BookingResponse{
			Booking: booking,
			Message: fmt.Sprintf("Booking confirmed with provider %s.", provider.Name),
		}, nil
	}

	// No assignable provider: record the request unassigned, pending manual
	// assignment. The uniqueness constraint exempts null-provider bookings.
	booking.ProviderID = ""
	booking.Status = models.BookingPending
	if err := s.Repo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create pending booking: %w", err)
	}

	s.notifyAsync(customer.PushToken, "Booking Pending",
		fmt.Sprintf("We received your %s booking for %s at %s. We'll notify you once a provider is assigned.",
			svc.Name, booking.Date, booking.TimeSlot),
		map[string]string{"bookingId": booking.ID, "status": booking.Status})

	return &models.BookingResponse{
		Booking: booking,
		Message: PendingBookingMessage,
	}, nil
}

// notifyAsync pushes in the background; notification failures never fail the
// core operation.
func (s *DefaultBookingService) notifyAsync(pushToken, title, body string, data map[string]string) {
	if s.Notifier == nil || pushToken == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.Notifier.Push(ctx, pushToken, title, body, data); err != nil {
			utils.GetLogger().Warn("push notification failed", zap.Error(err))
		}
	}()
}

func (s *DefaultBookingService) scheduleReminder(ctx context.Context, booking *models.Booking, pushToken string) {
	if s.Reminders == nil || pushToken == "" {
		return
	}
	if err := s.Reminders.ScheduleBookingReminder(ctx, booking, pushToken); err != nil {
		utils.GetLogger().Warn("failed to schedule booking reminder",
			zap.String("bookingID", booking.ID), zap.Error(err))
	}
}
