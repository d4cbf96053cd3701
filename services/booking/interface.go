package booking

import (
	"context"
	"time"

	bookingRepo "homeserve/database/repository/booking"
	serviceRepo "homeserve/database/repository/service"
	userRepo "homeserve/database/repository/user"
	"homeserve/models"
	"homeserve/services/notification"

	"github.com/go-redis/redis/v8"
)

// BookingService is the provider-matching and slot-availability engine.
type BookingService interface {
	// GetAvailability computes the bookable slots for a service on a date
	// around a point. Availability is advisory; only creation is
	// authoritative.
	GetAvailability(ctx context.Context, req models.AvailabilityRequest) (*models.AvailabilityResponse, error)

	// CreateBooking assigns one eligible provider atomically, or records a
	// pending unassigned booking when none is available.
	CreateBooking(ctx context.Context, customerID string, req models.CreateBookingRequest) (*models.BookingResponse, error)

	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	ListCustomerBookings(ctx context.Context, customerID string) ([]models.Booking, error)
	ListProviderBookings(ctx context.Context, providerID string) ([]models.Booking, error)

	// StartBooking moves a confirmed booking to in_progress; only the
	// assigned provider may start.
	StartBooking(ctx context.Context, id, actorID string) (*models.Booking, error)

	// CompleteBooking moves an in-progress booking to completed and awards
	// the provider's earnings exactly once.
	CompleteBooking(ctx context.Context, id, actorID string) (*models.Booking, error)

	// CancelBooking cancels a pending or confirmed booking; only the owning
	// customer may cancel.
	CancelBooking(ctx context.Context, id, actorID string) (*models.Booking, error)

	// LeaveFeedback annotates a completed booking once, awarding loyalty
	// points and converting accumulated points into gift credits.
	LeaveFeedback(ctx context.Context, id, actorID string, req models.FeedbackRequest) (*models.Booking, error)

	// ManualAssign confirms a pending booking with an administrator-chosen
	// provider after validating category and verification.
	ManualAssign(ctx context.Context, id, providerID string) (*models.Booking, error)
}

// ReminderScheduler enqueues a best-effort pre-appointment reminder.
type ReminderScheduler interface {
	ScheduleBookingReminder(ctx context.Context, booking *models.Booking, pushToken string) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo        bookingRepo.BookingRepository
	UserRepo    userRepo.UserRepository
	ServiceRepo serviceRepo.ServiceRepository
	Notifier    notification.Service
	Reminders   ReminderScheduler
	Cache       *redis.Client
	TaxRate     float64

	// Now is the clock used for the same-day cutoff; nil means time.Now.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}
