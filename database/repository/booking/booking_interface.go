package bookingRepo

import (
	"context"
	"errors"

	"homeserve/models"
)

// ErrDuplicateActiveBooking signals the (provider, date, timeSlot) uniqueness
// constraint rejected a write: an active booking already holds that triple.
var ErrDuplicateActiveBooking = errors.New("an active booking already exists for this provider, date and time slot")

// BookingRepository defines persistence for booking records. Creation and
// assignment are atomic with respect to the active-triple uniqueness index;
// both surface ErrDuplicateActiveBooking on collision.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListByCustomer(ctx context.Context, customerID string) ([]models.Booking, error)
	ListByProvider(ctx context.Context, providerID string) ([]models.Booking, error)

	// ActiveForProviderOnDate returns the provider's active bookings for one
	// calendar day, the source of busy intervals during slot generation.
	ActiveForProviderOnDate(ctx context.Context, providerID, date string) ([]models.Booking, error)

	// BusyProviderIDs returns providers holding a booking for (date, timeSlot)
	// in any of the given statuses.
	BusyProviderIDs(ctx context.Context, date, timeSlot string, statuses []string) ([]string, error)

	// TransitionStatus performs a guarded single-record state change. It
	// reports false, without error, when the booking was not in the expected
	// source status (or does not exist).
	TransitionStatus(ctx context.Context, id, from, to string, patch models.BookingPatch) (bool, error)

	// AssignProvider confirms a pending, unassigned booking with the given
	// provider. Reports false when the booking is no longer pending/unassigned.
	AssignProvider(ctx context.Context, id, providerID string) (bool, error)

	// SetFeedback stores the one-shot feedback annotation on a completed
	// booking. Reports false when the booking is not completed or already
	// carries feedback.
	SetFeedback(ctx context.Context, id string, feedback models.Feedback) (bool, error)
}
