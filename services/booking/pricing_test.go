package booking

import (
	"testing"

	"homeserve/models"
)

func TestResolvePriceRequiresFullNesting(t *testing.T) {
	windows := []models.PricingWindow{
		{Start: "09:00", End: "11:00", Price: 400},
	}

	if _, ok := ResolvePrice(windows, 480, 600); ok {
		t.Error("slot starting before the window must not match")
	}
	if _, ok := ResolvePrice(windows, 600, 720); ok {
		t.Error("slot ending after the window must not match")
	}

	price, ok := ResolvePrice(windows, 540, 660)
	if !ok || price != 400 {
		t.Errorf("exactly nested slot: got (%v, %v), want (400, true)", price, ok)
	}

	price, ok = ResolvePrice(windows, 570, 630)
	if !ok || price != 400 {
		t.Errorf("strictly nested slot: got (%v, %v), want (400, true)", price, ok)
	}
}

func TestResolvePriceFirstWindowWins(t *testing.T) {
	windows := []models.PricingWindow{
		{Start: "08:00", End: "12:00", Price: 300},
		{Start: "09:00", End: "11:00", Price: 999},
	}

	price, ok := ResolvePrice(windows, 540, 660)
	if !ok {
		t.Fatal("expected a price")
	}
	if price != 300 {
		t.Errorf("overlapping windows resolve in stored order: got %v, want 300", price)
	}
}

func TestResolvePriceSkipsMalformedWindows(t *testing.T) {
	windows := []models.PricingWindow{
		{Start: "not-a-time", End: "11:00", Price: 100},
		{Start: "09:00", End: "11:00", Price: 400},
	}

	price, ok := ResolvePrice(windows, 540, 660)
	if !ok || price != 400 {
		t.Errorf("got (%v, %v), want (400, true)", price, ok)
	}
}

func TestResolvePriceNoWindows(t *testing.T) {
	if _, ok := ResolvePrice(nil, 540, 660); ok {
		t.Error("no windows must resolve to no price")
	}
}

func TestPriceSnapshot(t *testing.T) {
	p := PriceSnapshot(400, 0.18)
	if p.Base != 400 {
		t.Errorf("Base = %v, want 400", p.Base)
	}
	if p.Tax != 72 {
		t.Errorf("Tax = %v, want 72", p.Tax)
	}
	if p.Total != 472 {
		t.Errorf("Total = %v, want 472", p.Total)
	}

	// Fractional amounts round to two decimals.
	p = PriceSnapshot(99.99, 0.18)
	if p.Tax != 18.0 {
		t.Errorf("Tax = %v, want 18.0", p.Tax)
	}
	if p.Total != 117.99 {
		t.Errorf("Total = %v, want 117.99", p.Total)
	}
}
