package booking

import (
	"math"

	"homeserve/models"
)

// ResolvePrice returns the price for a candidate slot, or false when no
// pricing window covers it. A window matches when the slot is fully nested
// inside it; windows are consulted in stored order and the first match wins,
// so overlapping windows resolve by declaration order rather than best price.
func ResolvePrice(windows []models.PricingWindow, slotStart, slotEnd int) (float64, bool) {
	for _, w := range windows {
		wStart, err := ParseTimeOfDay(w.Start)
		if err != nil {
			continue
		}
		wEnd, err := ParseTimeOfDay(w.End)
		if err != nil {
			continue
		}
		if slotStart >= wStart && slotEnd <= wEnd {
			return w.Price, true
		}
	}
	return 0, false
}

// PriceSnapshot freezes the pricing of a booking at creation time.
func PriceSnapshot(base, taxRate float64) models.Pricing {
	tax := round2(base * taxRate)
	return models.Pricing{
		Base:  base,
		Tax:   tax,
		Total: round2(base + tax),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
