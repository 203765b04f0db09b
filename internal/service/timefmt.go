package service

import (
	"strings"
	"time"
)

// pickerTimeLayout is the value format of an HTML datetime-local input.
const pickerTimeLayout = "2006-01-02T15:04"

// SlotTimeParts is the compact three-part rendering of a slot time used on
// the detail page.
type SlotTimeParts struct {
	Date string // "Friday, June 27, 2025"
	Time string // "5:58 AM"
	Zone string // "Asia Kolkata"
}

// ParsePickerTime interprets a datetime-local value in loc.
func ParsePickerTime(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(pickerTimeLayout, strings.TrimSpace(value), loc)
}

// FormatSlotSentence renders a slot time as the single human-readable
// sentence sent with a booking, e.g. "Friday, June 27, 2025 at 5:58 AM".
func FormatSlotSentence(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("Monday, January 2, 2006 at 3:04 PM")
}

// FormatSlotParts renders a slot time for the detail page slot cards.
func FormatSlotParts(t time.Time, loc *time.Location) SlotTimeParts {
	local := t.In(loc)
	return SlotTimeParts{
		Date: local.Format("Monday, January 2, 2006"),
		Time: local.Format("3:04 PM"),
		Zone: strings.ReplaceAll(loc.String(), "_", " "),
	}
}

// FormatBookingTime renders booking list timestamps, e.g. "Jun 27, 2025 5:58 AM".
func FormatBookingTime(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("Jan 2, 2006 3:04 PM")
}

// ResolveLocation loads the named zone, falling back to fallback and then
// to UTC when a name is empty or unknown.
func ResolveLocation(name, fallback string) *time.Location {
	if name != "" {
		if loc, err := time.LoadLocation(name); err == nil {
			return loc
		}
	}
	if fallback != "" {
		if loc, err := time.LoadLocation(fallback); err == nil {
			return loc
		}
	}
	return time.UTC
}
