package models

import "time"

// Booking statuses.
const (
	BookingPending    = "pending"
	BookingConfirmed  = "confirmed"
	BookingInProgress = "in_progress"
	BookingCompleted  = "completed"
	BookingCancelled  = "cancelled"
)

// ActiveStatuses are the statuses counted for conflict and busy-interval purposes.
var ActiveStatuses = []string{BookingPending, BookingConfirmed, BookingInProgress}

// Pricing is the price snapshot frozen at creation time.
type Pricing struct {
	Base  float64 `bson:"base" json:"base"`
	Tax   float64 `bson:"tax" json:"tax"`
	Total float64 `bson:"total" json:"total"`
}

// Feedback is the one-shot customer annotation on a completed booking.
type Feedback struct {
	Rating  int    `bson:"rating" json:"rating"`
	Comment string `bson:"comment,omitempty" json:"comment,omitempty"`
}

// Booking is the only record this system originates. ProviderID is empty while
// the booking is pending manual assignment. TimeSlot is the rendered label
// ("09:00 am - 11:00 am") and is the persisted conflict key; Start/End carry
// the same interval as minutes from midnight for overlap arithmetic.
type Booking struct {
	ID         string     `bson:"id" json:"id"`
	CustomerID string     `bson:"customer_id" json:"customerId"`
	ProviderID string     `bson:"provider_id,omitempty" json:"providerId,omitempty"`
	ServiceID  string     `bson:"service_id" json:"serviceId"`
	Address    string     `bson:"address,omitempty" json:"address,omitempty"`
	Date       string     `bson:"date" json:"date"` // calendar day, "2006-01-02"
	TimeSlot   string     `bson:"time_slot" json:"timeSlot"`
	Start      int        `bson:"start" json:"start"` // minutes from midnight
	End        int        `bson:"end" json:"end"`
	Status     string     `bson:"status" json:"status"`
	Pricing    Pricing    `bson:"pricing" json:"pricing"`
	LocationGeo GeoPoint  `bson:"location_geo,omitempty" json:"locationGeo,omitzero"`
	StartedAt  *time.Time `bson:"started_at,omitempty" json:"startedAt,omitempty"`
	Feedback   *Feedback  `bson:"feedback,omitempty" json:"feedback,omitempty"`
	CreatedAt  time.Time  `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time  `bson:"updated_at" json:"updatedAt"`
}

// IsActive reports whether the booking still blocks its (provider, date, slot) triple.
func (b *Booking) IsActive() bool {
	switch b.Status {
	case BookingPending, BookingConfirmed, BookingInProgress:
		return true
	}
	return false
}

// BookingPatch carries the optional fields a guarded status transition may set.
type BookingPatch struct {
	StartedAt *time.Time
}
