package timetable

// failures below the day level are absorbed into empty course lists and
// logged, only these two interrupt the caller

import "errors"

var (
	// the identifier does not match the firstname.lastname shape,
	// surfaced before any network activity
	ErrInvalidUsername = errors.New("username is not of the firstname.lastname form")

	// every day of the requested week failed to load
	ErrWeekUnavailable = errors.New("could not load schedule")

	// a navigation result arrived after a newer navigation replaced it
	ErrStaleNavigation = errors.New("navigation superseded by a newer one")
)
