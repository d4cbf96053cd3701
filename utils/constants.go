package utils

import "homeserve/config"

// Matching and slotting constants. These are system policy, not request parameters.
const (
	// MatchRadiusMeters is how far from the requested point providers are considered.
	MatchRadiusMeters = 40000.0

	// SlotStepMinutes is the fixed increment between candidate slot starts.
	SlotStepMinutes = 30

	// MaxSlotSteps bounds slot generation so malformed working hours cannot loop forever.
	MaxSlotSteps = 100

	// AssignMaxAttempts bounds conflict retries during provider assignment.
	AssignMaxAttempts = 3
)

// Cache key prefixes.
const (
	AuthCachePrefix         = "auth:"
	AvailabilityCachePrefix = "availability:"
)

// IsProduction reports whether the service runs with the production profile.
func IsProduction() bool {
	return config.IsProduction()
}
