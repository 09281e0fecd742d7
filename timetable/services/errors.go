package services

// the upstream client wraps everything it can produce in one of these
//    e.i. transport and status errors should be wrapped
//    so the pipeline can tell a retryable outage from a broken contract

import "errors"

var (
	// retrying later could work, the pipeline degrades the day to empty
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// retrying probably wouldn't work, the markup or query contract of
	// the timetable service no longer matches our assumptions
	ErrUpstreamChanged = errors.New("upstream contract changed")
)
