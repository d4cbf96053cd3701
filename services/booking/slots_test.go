package booking

import (
	"testing"

	"homeserve/models"

	"go.uber.org/zap"
)

func TestGenerateSlotsSingleWindow(t *testing.T) {
	hours := models.WorkingHours{Start: "08:00", End: "20:00"}
	windows := []models.PricingWindow{
		{Start: "09:00", End: "11:00", Price: 400},
	}

	slots, err := GenerateSlots("prov-1", hours, 120, nil, windows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Only the 09:00 start yields a 2-hour slot fully inside the window.
	if len(slots) != 1 {
		t.Fatalf("got %d slots, want 1: %+v", len(slots), slots)
	}
	sl := slots[0]
	if sl.Label != "09:00 am - 11:00 am" {
		t.Errorf("Label = %q, want %q", sl.Label, "09:00 am - 11:00 am")
	}
	if sl.Price != 400 {
		t.Errorf("Price = %v, want 400", sl.Price)
	}
	if !sl.IsAvailable {
		t.Error("slot with no busy intervals must be available")
	}
	if sl.Start != 540 || sl.End != 660 {
		t.Errorf("interval = (%d, %d), want (540, 660)", sl.Start, sl.End)
	}
}

func TestGenerateSlotsBusyOverlap(t *testing.T) {
	hours := models.WorkingHours{Start: "08:00", End: "12:00"}
	windows := []models.PricingWindow{
		{Start: "08:00", End: "12:00", Price: 100},
	}
	busy := []Interval{{Start: 540, End: 660}} // 09:00 - 11:00

	slots, err := GenerateSlots("prov-1", hours, 60, busy, windows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	byLabel := make(map[string]models.ProviderSlot, len(slots))
	for _, sl := range slots {
		byLabel[sl.Label] = sl
	}

	// Back-to-back with the busy interval stays available; overlap does not.
	if sl := byLabel["08:00 am - 09:00 am"]; !sl.IsAvailable {
		t.Error("slot ending where busy starts must be available")
	}
	if sl := byLabel["08:30 am - 09:30 am"]; sl.IsAvailable {
		t.Error("slot overlapping busy start must be unavailable")
	}
	if sl := byLabel["10:30 am - 11:30 am"]; sl.IsAvailable {
		t.Error("slot overlapping busy end must be unavailable")
	}
	if sl := byLabel["11:00 am - 12:00 pm"]; !sl.IsAvailable {
		t.Error("slot starting where busy ends must be available")
	}
}

func TestGenerateSlotsStopsAtWorkingHoursEnd(t *testing.T) {
	hours := models.WorkingHours{Start: "18:00", End: "20:00"}
	windows := []models.PricingWindow{
		{Start: "00:00", End: "23:59", Price: 50},
	}

	slots, err := GenerateSlots("prov-1", hours, 90, nil, windows)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Starts 18:00 and 18:30 fit; 19:00 would end past 20:00.
	if len(slots) != 2 {
		t.Fatalf("got %d slots, want 2: %+v", len(slots), slots)
	}
	if slots[len(slots)-1].End > 20*60 {
		t.Errorf("last slot ends at %d, past working hours end", slots[len(slots)-1].End)
	}
}

func TestGenerateSlotsRejectsBadInput(t *testing.T) {
	windows := []models.PricingWindow{{Start: "09:00", End: "11:00", Price: 400}}

	if _, err := GenerateSlots("p", models.WorkingHours{Start: "late", End: "20:00"}, 60, nil, windows); err == nil {
		t.Error("malformed working hours start must error")
	}
	if _, err := GenerateSlots("p", models.WorkingHours{Start: "08:00", End: "never"}, 60, nil, windows); err == nil {
		t.Error("malformed working hours end must error")
	}
	if _, err := GenerateSlots("p", models.WorkingHours{Start: "08:00", End: "20:00"}, 0, nil, windows); err == nil {
		t.Error("non-positive duration must error")
	}
}

func TestBusyIntervals(t *testing.T) {
	logger := zap.NewNop()
	bookings := []models.Booking{
		// Structured interval takes precedence.
		{ID: "b1", Status: models.BookingConfirmed, Start: 540, End: 660, TimeSlot: "09:00 am - 11:00 am"},
		// Legacy record without ints falls back to label parsing.
		{ID: "b2", Status: models.BookingInProgress, TimeSlot: "02:00 pm - 04:00 pm"},
		// Unparsable legacy label is skipped, not fatal.
		{ID: "b3", Status: models.BookingConfirmed, TimeSlot: "sometime"},
		// Cancelled bookings do not block.
		{ID: "b4", Status: models.BookingCancelled, Start: 600, End: 720},
		// A reversed label can never overlap anything; skip it rather than
		// carry a vacuous interval.
		{ID: "b5", Status: models.BookingConfirmed, TimeSlot: "10:00 am - 09:00 am"},
	}

	busy := BusyIntervals(bookings, logger)
	want := []Interval{{Start: 540, End: 660}, {Start: 840, End: 960}}
	if len(busy) != len(want) {
		t.Fatalf("got %d intervals, want %d: %+v", len(busy), len(want), busy)
	}
	for i := range want {
		if busy[i] != want[i] {
			t.Errorf("interval %d = %+v, want %+v", i, busy[i], want[i])
		}
	}
}
