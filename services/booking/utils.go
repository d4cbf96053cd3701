package booking

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// ParseTimeOfDay converts a "HH:MM" time-of-day string into minutes from
// midnight.
func ParseTimeOfDay(value string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(value), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time of day %q", value)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q", value)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q", value)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("time of day %q out of range", value)
	}
	return hours*60 + minutes, nil
}

// formatClock renders minutes from midnight in 12-hour clock form with a
// lowercase am/pm suffix, e.g. 540 -> "09:00 am".
func formatClock(minutesFromMidnight int) string {
	m := ((minutesFromMidnight % minutesPerDay) + minutesPerDay) % minutesPerDay
	hours := m / 60
	minutes := m % 60

	suffix := "am"
	if hours >= 12 {
		suffix = "pm"
	}
	h12 := hours % 12
	if h12 == 0 {
		h12 = 12
	}
	return fmt.Sprintf("%02d:%02d %s", h12, minutes, suffix)
}

// FormatSlotLabel renders the canonical slot label, e.g. "09:00 am - 11:00 am".
// This exact textual form is the conflict-matching key, so it must be
// collision-free for every interval expressible at minute granularity.
func FormatSlotLabel(start, end int) string {
	return formatClock(start) + " - " + formatClock(end)
}

var slotLabelRe = regexp.MustCompile(`(?i)^\s*(\d{1,2}):(\d{2})\s*(am|pm)\s*-\s*(\d{1,2}):(\d{2})\s*(am|pm)\s*$`)

// ParseSlotLabel recovers the structured interval from a rendered slot label.
func ParseSlotLabel(label string) (start, end int, err error) {
	m := slotLabelRe.FindStringSubmatch(label)
	if m == nil {
		return 0, 0, fmt.Errorf("unparseable time slot label %q", label)
	}
	start, err = clockToMinutes(m[1], m[2], m[3])
	if err != nil {
		return 0, 0, fmt.Errorf("unparseable time slot label %q: %w", label, err)
	}
	end, err = clockToMinutes(m[4], m[5], m[6])
	if err != nil {
		return 0, 0, fmt.Errorf("unparseable time slot label %q: %w", label, err)
	}
	return start, end, nil
}

func clockToMinutes(hourStr, minStr, suffix string) (int, error) {
	hours, _ := strconv.Atoi(hourStr)
	minutes, _ := strconv.Atoi(minStr)
	if hours < 1 || hours > 12 || minutes > 59 {
		return 0, fmt.Errorf("clock value %s:%s out of range", hourStr, minStr)
	}
	hours = hours % 12
	if strings.EqualFold(suffix, "pm") {
		hours += 12
	}
	return hours*60 + minutes, nil
}

// CategoryEquals matches two category strings exactly, ignoring case and
// surrounding whitespace. Substrings do not match.
func CategoryEquals(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// Interval is a half-open busy interval [Start, End) in minutes from midnight.
type Interval struct {
	Start int
	End   int
}

// Overlaps reports half-open interval overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.Start < other.End && i.End > other.Start
}
