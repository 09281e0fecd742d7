package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const minutesPerDay = 24 * 60

// ParseTimeToMinutes converts a 24-hour "HH:mm" wall clock string to
// minutes since midnight. The upstream markup is hand-entered so anything
// that does not parse to a minute offset in [0, 1440) is an error.
func ParseTimeToMinutes(hhmm string) (int, error) {
	parts := strings.Split(strings.TrimSpace(hhmm), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("time `%s` is not in HH:mm form", hhmm)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("time `%s` has a non numeric hour: %w", hhmm, err)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("time `%s` has a non numeric minute: %w", hhmm, err)
	}
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("time `%s` is outside of a single day", hhmm)
	}
	total := hours*60 + minutes
	if total >= minutesPerDay {
		return 0, fmt.Errorf("time `%s` is outside of a single day", hhmm)
	}
	return total, nil
}

// MinutesToOffset maps a minutes-since-midnight value to a vertical pixel
// offset relative to the start of the rendered day. Times before the day
// start clamp to zero so they render flush with the top of the grid.
func MinutesToOffset(minutes int, dayStartMinutes int, pixelsPerHour float64) float64 {
	delta := float64(minutes - dayStartMinutes)
	if delta < 0 {
		return 0
	}
	return delta / 60 * pixelsPerHour
}

// DurationToHeight maps a course duration to a pixel height. Inverted
// ranges collapse to zero rather than going negative.
func DurationToHeight(startMinutes, endMinutes int, pixelsPerHour float64) float64 {
	duration := float64(endMinutes - startMinutes)
	if duration < 0 {
		return 0
	}
	return duration / 60 * pixelsPerHour
}

// WorkWeek returns the Monday through Friday dates of the reference date's
// week shifted by weekOffset weeks. Sunday belongs to the week that ended
// the day before, so it maps six days back to its Monday. Each date is
// pinned to noon so formatting as an ISO date never shifts across a DST
// boundary.
func WorkWeek(weekOffset int, reference time.Time) [5]time.Time {
	shifted := reference.AddDate(0, 0, weekOffset*7)

	diffToMonday := int(time.Monday - shifted.Weekday())
	if shifted.Weekday() == time.Sunday {
		diffToMonday = -6
	}

	monday := time.Date(
		shifted.Year(), shifted.Month(), shifted.Day()+diffToMonday,
		12, 0, 0, 0,
		shifted.Location(),
	)

	var week [5]time.Time
	for i := range week {
		week[i] = monday.AddDate(0, 0, i)
	}
	return week
}

// FormatISODate renders a date as YYYY-MM-DD, the form the upstream
// service expects in its date query parameter.
func FormatISODate(t time.Time) string {
	return t.Format("2006-01-02")
}
