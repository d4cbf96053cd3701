package booking

import (
	"context"
	"fmt"
	"testing"

	bookingRepo "homeserve/database/repository/booking"
	userRepo "homeserve/database/repository/user"
	"homeserve/models"
)

func excluded(ids []string, id string) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

func assignFixture(providers []models.User, repo *stubBookingRepo) *DefaultBookingService {
	customer := &models.User{ID: "cust-1", Name: "Carol", Role: models.RoleCustomer}
	return &DefaultBookingService{
		Repo: repo,
		UserRepo: &stubUserRepo{
			GetByIDFn: func(ctx context.Context, id string) (*models.User, error) {
				if id == customer.ID {
					return customer, nil
				}
				return nil, nil
			},
			FindEligibleProvidersFn: func(ctx context.Context, criteria userRepo.EligibleProviderCriteria) ([]models.User, error) {
				var out []models.User
				for _, p := range providers {
					if !excluded(criteria.ExcludeIDs, p.ID) {
						out = append(out, p)
					}
				}
				return out, nil
			},
		},
		ServiceRepo: &stubServiceRepo{services: map[string]*models.Service{"svc-1": bathroomCleaning()}},
		TaxRate:     0.18,
	}
}

func validCreateRequest() models.CreateBookingRequest {
	return models.CreateBookingRequest{
		ServiceID: "svc-1",
		Address:   "12 Riverside Dr",
		Date:      "2026-09-01",
		TimeSlot:  "09:00 am - 11:00 am",
		Lat:       -1.28,
		Lng:       36.82,
	}
}

func TestCreateBookingAssignsProvider(t *testing.T) {
	var created *models.Booking
	repo := &stubBookingRepo{
		CreateFn: func(ctx context.Context, b *models.Booking) error {
			created = b
			return nil
		},
	}
	svc := assignFixture([]models.User{verifiedProvider("p1", "Alice")}, repo)

	resp, err := svc.CreateBooking(context.Background(), "cust-1", validCreateRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Message != "Booking confirmed with provider Alice." {
		t.Errorf("Message = %q", resp.Message)
	}
	if created == nil {
		t.Fatal("no booking written")
	}
	if created.ProviderID != "p1" || created.Status != models.BookingConfirmed {
		t.Errorf("booking = provider %q status %q", created.ProviderID, created.Status)
	}
	if created.Start != 540 || created.End != 660 {
		t.Errorf("interval = (%d, %d), want (540, 660)", created.Start, created.End)
	}
	if created.TimeSlot != "09:00 am - 11:00 am" {
		t.Errorf("TimeSlot = %q", created.TimeSlot)
	}
	if created.Pricing.Base != 400 || created.Pricing.Tax != 72 || created.Pricing.Total != 472 {
		t.Errorf("pricing snapshot = %+v", created.Pricing)
	}
}

func TestCreateBookingNoProviderFallsBackToPending(t *testing.T) {
	var created *models.Booking
	repo := &stubBookingRepo{
		CreateFn: func(ctx context.Context, b *models.Booking) error {
			created = b
			return nil
		},
	}
	svc := assignFixture(nil, repo)

	resp, err := svc.CreateBooking(context.Background(), "cust-1", validCreateRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Message != PendingBookingMessage {
		t.Errorf("Message = %q, want %q", resp.Message, PendingBookingMessage)
	}
	if created == nil {
		t.Fatal("no booking written")
	}
	if created.ProviderID != "" || created.Status != models.BookingPending {
		t.Errorf("booking = provider %q status %q, want unassigned pending", created.ProviderID, created.Status)
	}
	if created.Pricing.Total != 472 {
		t.Errorf("pending bookings still carry the price snapshot: %+v", created.Pricing)
	}
}

func TestCreateBookingRetriesOnConflict(t *testing.T) {
	providers := []models.User{
		verifiedProvider("p1", "Alice"),
		verifiedProvider("p2", "Bob"),
	}
	var created *models.Booking
	repo := &stubBookingRepo{
		CreateFn: func(ctx context.Context, b *models.Booking) error {
			// p1 was taken concurrently; only p2 can be written.
			if b.ProviderID == "p1" {
				return bookingRepo.ErrDuplicateActiveBooking
			}
			created = b
			return nil
		},
	}
	svc := assignFixture(providers, repo)

	resp, err := svc.CreateBooking(context.Background(), "cust-1", validCreateRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil || created.ProviderID != "p2" {
		t.Fatalf("expected reassignment to p2, got %+v", created)
	}
	if resp.Message != "Booking confirmed with provider Bob." {
		t.Errorf("Message = %q", resp.Message)
	}
}

func TestCreateBookingExhaustedRetriesFallBackToPending(t *testing.T) {
	providers := []models.User{
		verifiedProvider("p1", "Alice"),
		verifiedProvider("p2", "Bob"),
		verifiedProvider("p3", "Cleo"),
		verifiedProvider("p4", "Dan"),
	}
	attempts := 0
	var created *models.Booking
	repo := &stubBookingRepo{
		CreateFn: func(ctx context.Context, b *models.Booking) error {
			if b.ProviderID != "" {
				attempts++
				return bookingRepo.ErrDuplicateActiveBooking
			}
			created = b
			return nil
		},
	}
	svc := assignFixture(providers, repo)

	resp, err := svc.CreateBooking(context.Background(), "cust-1", validCreateRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attempts != 3 {
		t.Errorf("assignment attempts = %d, want 3", attempts)
	}
	if resp.Message != PendingBookingMessage {
		t.Errorf("Message = %q, want %q", resp.Message, PendingBookingMessage)
	}
	if created == nil || created.Status != models.BookingPending {
		t.Fatalf("expected pending fallback, got %+v", created)
	}
}

func TestCreateBookingExcludesFirmlyBookedProviders(t *testing.T) {
	providers := []models.User{
		verifiedProvider("p1", "Alice"),
		verifiedProvider("p2", "Bob"),
	}
	repo := &stubBookingRepo{
		BusyProviderIDsFn: func(ctx context.Context, date, timeSlot string, statuses []string) ([]string, error) {
			if date != "2026-09-01" || timeSlot != "09:00 am - 11:00 am" {
				return nil, fmt.Errorf("unexpected exclusion query %q %q", date, timeSlot)
			}
			return []string{"p1"}, nil
		},
	}
	var created *models.Booking
	repo.CreateFn = func(ctx context.Context, b *models.Booking) error {
		created = b
		return nil
	}
	svc := assignFixture(providers, repo)

	if _, err := svc.CreateBooking(context.Background(), "cust-1", validCreateRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil || created.ProviderID != "p2" {
		t.Fatalf("expected p2 after excluding p1, got %+v", created)
	}
}

func TestCreateBookingValidation(t *testing.T) {
	svc := assignFixture([]models.User{verifiedProvider("p1", "Alice")}, &stubBookingRepo{})

	req := validCreateRequest()
	req.ServiceID = "missing"
	if _, err := svc.CreateBooking(context.Background(), "cust-1", req); !IsNotFound(err) {
		t.Errorf("unknown service: got %v, want notFound", err)
	}

	if _, err := svc.CreateBooking(context.Background(), "ghost", validCreateRequest()); !IsNotFound(err) {
		t.Errorf("unknown customer: got %v, want notFound", err)
	}

	req = validCreateRequest()
	req.Date = "September 1st"
	if _, err := svc.CreateBooking(context.Background(), "cust-1", req); !IsInvalidInput(err) {
		t.Errorf("bad date: got %v, want invalidInput", err)
	}

	req = validCreateRequest()
	req.TimeSlot = "whenever"
	if _, err := svc.CreateBooking(context.Background(), "cust-1", req); !IsInvalidInput(err) {
		t.Errorf("bad time slot: got %v, want invalidInput", err)
	}

	// A well-formed label with a reversed interval must not reach the write
	// path; it would price (the nesting bounds hold vacuously) yet never
	// block the provider's slot afterwards.
	req = validCreateRequest()
	req.TimeSlot = "10:00 am - 09:00 am"
	if _, err := svc.CreateBooking(context.Background(), "cust-1", req); !IsInvalidInput(err) {
		t.Errorf("reversed time slot: got %v, want invalidInput", err)
	}

	req = validCreateRequest()
	req.TimeSlot = "09:00 am - 09:00 am"
	if _, err := svc.CreateBooking(context.Background(), "cust-1", req); !IsInvalidInput(err) {
		t.Errorf("empty time slot: got %v, want invalidInput", err)
	}

	// A slot outside every pricing window is rejected before any write.
	req = validCreateRequest()
	req.TimeSlot = "06:00 am - 08:00 am"
	if _, err := svc.CreateBooking(context.Background(), "cust-1", req); !IsInvalidInput(err) {
		t.Errorf("unpriced slot: got %v, want invalidInput", err)
	}

	req = validCreateRequest()
	req.Lat, req.Lng = 0, 0
	if _, err := svc.CreateBooking(context.Background(), "cust-1", req); !IsInvalidInput(err) {
		t.Errorf("missing coordinates: got %v, want invalidInput", err)
	}
}
