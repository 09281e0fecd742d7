package timetable

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mdelaunay/wigorview/logginghelpers"
	"github.com/mdelaunay/wigorview/timetable/timeutil"
)

// DaySource fetches one day's raw markup from the upstream service and
// parses it into course candidates. An error means the whole day is
// unavailable, a partially garbled day comes back as fewer courses.
type DaySource interface {
	FetchDay(
		ctx context.Context,
		logger *slog.Logger,
		username string,
		date time.Time,
	) ([]RawCourse, error)
}

// Fetcher orchestrates the acquisition pipeline: validate the user,
// compute the work week, collect the five days, then color the result.
type Fetcher struct {
	Source    DaySource
	Shortcuts Shortcuts
	Logger    *slog.Logger

	// per day deadline, zero disables it
	DayTimeout time.Duration
}

// FetchWeek loads the work week weekOffset weeks away from the current
// one. Offset 0 is the week containing today.
func (f *Fetcher) FetchWeek(ctx context.Context, username string, weekOffset int) (Week, error) {
	return f.fetch(ctx, username, timeutil.WorkWeek(weekOffset, time.Now()))
}

// FetchWeekAt loads the work week containing the given date.
func (f *Fetcher) FetchWeekAt(ctx context.Context, username string, reference time.Time) (Week, error) {
	return f.fetch(ctx, username, timeutil.WorkWeek(0, reference))
}

func (f *Fetcher) fetch(ctx context.Context, username string, dates [5]time.Time) (Week, error) {
	username = f.Shortcuts.Normalize(username)
	if !ValidUsername(username) {
		return nil, ErrInvalidUsername
	}

	logger := f.logger().With(
		slog.String("user", username),
		slog.String("fetchID", uuid.New().String()),
	)

	// each day writes to its own slot so the week stays Monday..Friday
	// no matter which request resolves first
	week := make(Week, len(dates))
	var failedDays atomic.Int32

	eg, egCtx := errgroup.WithContext(ctx)
	for i, date := range dates {
		i, date := i, date
		eg.Go(func() error {
			dayCtx := egCtx
			if f.DayTimeout > 0 {
				var cancel context.CancelFunc
				dayCtx, cancel = context.WithTimeout(egCtx, f.DayTimeout)
				defer cancel()
			}

			dayLogger := logger.With(
				slog.String("day", DayLabels[i]),
				slog.String("date", timeutil.FormatISODate(date)),
			)
			raw, err := f.Source.FetchDay(dayCtx, dayLogger, username, date)
			if err != nil {
				// a single bad day degrades to an empty slot, it must
				// never take the rest of the week down with it
				dayLogger.Warn("day fetch failed, rendering it empty", "error", err)
				failedDays.Add(1)
				raw = nil
			}

			courses := make([]Course, len(raw))
			for ci, rc := range raw {
				courses[ci] = Course{
					Subject: rc.Subject,
					Start:   rc.Start,
					End:     rc.End,
					Room:    rc.Room,
					Teacher: rc.Teacher,
				}
			}
			week[i] = Day{
				Day:     DayLabels[i],
				Date:    timeutil.FormatISODate(date),
				Courses: courses,
			}
			return nil
		})
	}
	// day level failures are absorbed above so the group never errors
	_ = eg.Wait()

	if int(failedDays.Load()) == len(dates) {
		logger.Log(ctx, logginghelpers.LevelBrokenWeek, "every day of the week failed")
		return nil, ErrWeekUnavailable
	}

	// strictly after the join so identical subjects on different days
	// agree on their color
	assignColors(week)

	return week, nil
}

func (f *Fetcher) logger() *slog.Logger {
	if f.Logger != nil {
		return f.Logger
	}
	return slog.Default()
}
