package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"homeserve/models"
	"homeserve/utils"

	"go.uber.org/zap"
)

const availabilityCacheTTL = 30 * time.Second

// GetAvailability computes the per-service availability view: eligible
// providers fan out to per-provider slot sequences, which are merged by slot
// label. The result is advisory; a slot reported available may be taken by
// the time the booking is created.
func (s *DefaultBookingService) GetAvailability(ctx context.Context, req models.AvailabilityRequest) (*models.AvailabilityResponse, error) {
	logger := utils.GetLogger()

	svc, err := s.ServiceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve service: %w", err)
	}
	if svc == nil {
		return nil, NewNotFoundError("service %s not found", req.ServiceID)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, NewInvalidInputError("invalid date %q, expected YYYY-MM-DD", req.Date)
	}

	duration := req.DurationMinutes
	if duration <= 0 {
		duration = svc.BaseDuration
	}
	if duration <= 0 {
		return nil, NewInvalidInputError("service %s has no usable duration", svc.ID)
	}

	point, err := pointFromCoords(req.Lng, req.Lat)
	if err != nil {
		return nil, err
	}

	cacheKey := fmt.Sprintf("%s%s:%s:%d:%.4f:%.4f",
		utils.AvailabilityCachePrefix, svc.ID, req.Date, duration, req.Lat, req.Lng)
	if cached := s.cachedAvailability(ctx, cacheKey); cached != nil {
		s.trimPastSlots(cached, date)
		return cached, nil
	}

	providers, err := s.eligibleProviders(ctx, svc.Name, point, nil)
	if err != nil {
		return nil, err
	}

	perProvider := make([][]models.ProviderSlot, 0, len(providers))
	for _, p := range providers {
		active, err := s.Repo.ActiveForProviderOnDate(ctx, p.ID, req.Date)
		if err != nil {
			logger.Error("failed to load provider bookings, skipping provider",
				zap.String("providerID", p.ID), zap.Error(err))
			continue
		}
		busy := BusyIntervals(active, logger)

		slots, err := GenerateSlots(p.ID, p.WorkingHours, duration, busy, svc.PricingWindows)
		if err != nil {
			// Malformed working hours degrade to zero slots for this
			// provider instead of failing the whole aggregation.
			logger.Warn("provider contributes zero slots",
				zap.String("providerID", p.ID), zap.Error(err))
			continue
		}
		perProvider = append(perProvider, slots)
	}

	resp := &models.AvailabilityResponse{
		Service:  svc.Name,
		Date:     req.Date,
		Duration: duration,
		Slots:    AggregateSlots(perProvider),
	}

	// Cache the untrimmed view and apply the same-day cutoff on the way out,
	// so a response cached moments before a slot's start cannot keep offering
	// that slot for the rest of its TTL.
	s.cacheAvailability(ctx, cacheKey, resp)
	s.trimPastSlots(resp, date)
	return resp, nil
}

// trimPastSlots applies the same-day cutoff: queries for the current day only
// offer slots starting strictly after the current time.
func (s *DefaultBookingService) trimPastSlots(resp *models.AvailabilityResponse, date time.Time) {
	now := s.now()
	if date.Year() != now.Year() || date.YearDay() != now.YearDay() {
		return
	}
	cutoff := now.Hour()*60 + now.Minute()
	resp.Slots = dropStartedSlots(resp.Slots, cutoff)
}

// AggregateSlots merges per-provider slot sequences into one view keyed by
// the rendered label. Availability ORs across providers, remainingSpots
// counts free providers, and the price comes from whichever instance is seen
// first (pricing is service-level, so instances agree). Output is ordered by
// slot start time ascending.
func AggregateSlots(perProvider [][]models.ProviderSlot) []models.AvailabilitySlot {
	type slotAgg struct {
		slot  models.AvailabilitySlot
		start int
	}
	byLabel := make(map[string]*slotAgg)
	var order []string

	for _, slots := range perProvider {
		for _, sl := range slots {
			agg, seen := byLabel[sl.Label]
			if !seen {
				agg = &slotAgg{
					slot: models.AvailabilitySlot{
						TimeSlot: sl.Label,
						Price:    sl.Price,
					},
					start: sl.Start,
				}
				byLabel[sl.Label] = agg
				order = append(order, sl.Label)
			}
			if sl.IsAvailable {
				agg.slot.IsAvailable = true
				agg.slot.RemainingSpots++
			}
		}
	}

	result := make([]models.AvailabilitySlot, 0, len(order))
	sort.Slice(order, func(i, j int) bool {
		return byLabel[order[i]].start < byLabel[order[j]].start
	})
	for _, label := range order {
		result = append(result, byLabel[label].slot)
	}
	return result
}

// dropStartedSlots removes slots whose start is not strictly after the cutoff.
func dropStartedSlots(slots []models.AvailabilitySlot, cutoffMinutes int) []models.AvailabilitySlot {
	kept := slots[:0]
	for _, sl := range slots {
		start, _, err := ParseSlotLabel(sl.TimeSlot)
		if err == nil && start <= cutoffMinutes {
			continue
		}
		kept = append(kept, sl)
	}
	return kept
}

func pointFromCoords(lng, lat float64) (models.GeoPoint, error) {
	if lat == 0 && lng == 0 {
		return models.GeoPoint{}, NewInvalidInputError("coordinates are required")
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return models.GeoPoint{}, NewInvalidInputError("coordinates out of range")
	}
	return models.NewGeoPoint(lng, lat), nil
}

func (s *DefaultBookingService) cachedAvailability(ctx context.Context, key string) *models.AvailabilityResponse {
	if s.Cache == nil {
		return nil
	}
	data, err := s.Cache.Get(ctx, key).Result()
	if err != nil {
		return nil
	}
	var resp models.AvailabilityResponse
	if err := json.Unmarshal([]byte(data), &resp); err != nil {
		return nil
	}
	return &resp
}

func (s *DefaultBookingService) cacheAvailability(ctx context.Context, key string, resp *models.AvailabilityResponse) {
	if s.Cache == nil {
		return
	}
	data, err := json.Marshal(resp)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, key, data, availabilityCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("failed to cache availability", zap.Error(err))
	}
}
