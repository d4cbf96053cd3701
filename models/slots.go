package models

// ProviderSlot is one candidate slot generated for a single provider.
// Start/End are minutes from midnight; Label is the canonical rendering
// used as the grouping and conflict key.
type ProviderSlot struct {
	ProviderID  string  `json:"providerId"`
	Label       string  `json:"label"`
	Start       int     `json:"start"`
	End         int     `json:"end"`
	Price       float64 `json:"price"`
	IsAvailable bool    `json:"isAvailable"`
}

// AvailabilitySlot is the aggregated per-service view of one slot label.
type AvailabilitySlot struct {
	TimeSlot       string  `json:"timeSlot"`
	Price          float64 `json:"price"`
	IsAvailable    bool    `json:"isAvailable"`
	RemainingSpots int     `json:"remainingSpots"`
}

// AvailabilityRequest is a slot-availability query.
type AvailabilityRequest struct {
	ServiceID       string  `json:"serviceId" binding:"required"`
	Date            string  `json:"date" binding:"required"` // "2006-01-02"
	DurationMinutes int     `json:"durationMinutes,omitempty"`
	Lat             float64 `json:"lat"`
	Lng             float64 `json:"lng"`
}

// AvailabilityResponse lists bookable slots ordered by start time ascending.
type AvailabilityResponse struct {
	Service  string             `json:"service"`
	Date     string             `json:"date"`
	Duration int                `json:"duration"`
	Slots    []AvailabilitySlot `json:"slots"`
}

// CreateBookingRequest is a booking-creation input.
type CreateBookingRequest struct {
	ServiceID string  `json:"serviceId" binding:"required"`
	Address   string  `json:"address"`
	Date      string  `json:"date" binding:"required"`
	TimeSlot  string  `json:"timeSlot" binding:"required"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
}

// BookingResponse pairs the created record with a human-readable outcome.
type BookingResponse struct {
	Booking *Booking `json:"booking"`
	Message string   `json:"message"`
}

// FeedbackRequest annotates a completed booking.
type FeedbackRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}
