package booking

import (
	"fmt"

	"homeserve/models"
	"homeserve/utils"

	"go.uber.org/zap"
)

// GenerateSlots produces one provider's candidate slots for a day: starting
// at the provider's working-hours start, step forward in fixed 30-minute
// increments, each candidate being [current, current+duration). Generation
// stops when the candidate's end passes the working-hours end, or after
// MaxSlotSteps so malformed configuration cannot loop forever.
//
// Candidates no pricing window covers are skipped outright; pricing gaps
// remove slots rather than producing unpriced markers. A priced candidate is
// available when no busy interval overlaps it (half-open overlap).
func GenerateSlots(providerID string, hours models.WorkingHours, durationMinutes int, busy []Interval, windows []models.PricingWindow) ([]models.ProviderSlot, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("invalid slot duration %d", durationMinutes)
	}
	dayStart, err := ParseTimeOfDay(hours.Start)
	if err != nil {
		return nil, fmt.Errorf("malformed working hours start: %w", err)
	}
	dayEnd, err := ParseTimeOfDay(hours.End)
	if err != nil {
		return nil, fmt.Errorf("malformed working hours end: %w", err)
	}

	var slots []models.ProviderSlot
	current := dayStart
	for step := 0; step < utils.MaxSlotSteps; step++ {
		candidate := Interval{Start: current, End: current + durationMinutes}
		if candidate.End > dayEnd {
			break
		}

		price, ok := ResolvePrice(windows, candidate.Start, candidate.End)
		if ok {
			available := true
			for _, b := range busy {
				if candidate.Overlaps(b) {
					available = false
					break
				}
			}
			slots = append(slots, models.ProviderSlot{
				ProviderID:  providerID,
				Label:       FormatSlotLabel(candidate.Start, candidate.End),
				Start:       candidate.Start,
				End:         candidate.End,
				Price:       price,
				IsAvailable: available,
			})
		}

		current += utils.SlotStepMinutes
	}
	return slots, nil
}

// BusyIntervals derives a provider's busy intervals from their active
// bookings on a date. Bookings persist the structured interval; records that
// predate it fall back to parsing the rendered label. Unparsable labels are
// no constraint, only logged.
func BusyIntervals(bookings []models.Booking, logger *zap.Logger) []Interval {
	var busy []Interval
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if b.End > b.Start {
			busy = append(busy, Interval{Start: b.Start, End: b.End})
			continue
		}
		start, end, err := ParseSlotLabel(b.TimeSlot)
		if err != nil || end <= start {
			if logger != nil {
				logger.Warn("skipping busy interval with unusable time slot",
					zap.String("bookingID", b.ID), zap.String("timeSlot", b.TimeSlot))
			}
			continue
		}
		busy = append(busy, Interval{Start: start, End: end})
	}
	return busy
}
