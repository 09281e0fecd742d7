package timetable

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mdelaunay/wigorview/timetable/timeutil"
)

type fakeSource struct {
	calls    atomic.Int32
	fetchDay func(ctx context.Context, username string, date time.Time) ([]RawCourse, error)
}

func (f *fakeSource) FetchDay(
	ctx context.Context,
	_ *slog.Logger,
	username string,
	date time.Time,
) ([]RawCourse, error) {
	f.calls.Add(1)
	return f.fetchDay(ctx, username, date)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var testReference = time.Date(2025, time.March, 5, 9, 0, 0, 0, time.UTC) // a Wednesday

func TestFetchWeekOrderIsMondayToFridayRegardlessOfCompletion(t *testing.T) {
	// later days answer sooner, the week must still come back in date order
	source := &fakeSource{
		fetchDay: func(_ context.Context, _ string, date time.Time) ([]RawCourse, error) {
			time.Sleep(time.Duration(5-date.Day()%5) * 2 * time.Millisecond)
			return []RawCourse{
				{Start: "09:00", End: "10:00", Subject: timeutil.FormatISODate(date)},
			}, nil
		},
	}
	fetcher := &Fetcher{Source: source, Logger: quietLogger()}

	week, err := fetcher.FetchWeekAt(context.Background(), "jean.dupont", testReference)
	if err != nil {
		t.Fatalf("FetchWeekAt errored: %v", err)
	}
	if len(week) != 5 {
		t.Fatalf("got %d days, want 5", len(week))
	}

	wantDates := []string{"2025-03-03", "2025-03-04", "2025-03-05", "2025-03-06", "2025-03-07"}
	for i, day := range week {
		if day.Day != DayLabels[i] {
			t.Errorf("day %d labeled %q, want %q", i, day.Day, DayLabels[i])
		}
		if day.Date != wantDates[i] {
			t.Errorf("day %d dated %q, want %q", i, day.Date, wantDates[i])
		}
		if len(day.Courses) != 1 || day.Courses[0].Subject != day.Date {
			t.Errorf("day %d holds courses of another day: %+v", i, day.Courses)
		}
	}
}

func TestFetchWeekInvalidUsernameMakesNoRequests(t *testing.T) {
	source := &fakeSource{
		fetchDay: func(context.Context, string, time.Time) ([]RawCourse, error) {
			return nil, nil
		},
	}
	fetcher := &Fetcher{Source: source, Logger: quietLogger()}

	_, err := fetcher.FetchWeekAt(context.Background(), "not-an-email", testReference)
	if !errors.Is(err, ErrInvalidUsername) {
		t.Fatalf("err = %v, want ErrInvalidUsername", err)
	}
	if source.calls.Load() != 0 {
		t.Errorf("%d day requests issued for an invalid username", source.calls.Load())
	}
}

func TestFetchWeekShortcutNormalization(t *testing.T) {
	var seenUser string
	source := &fakeSource{
		fetchDay: func(_ context.Context, username string, _ time.Time) ([]RawCourse, error) {
			seenUser = username
			return nil, nil
		},
	}
	fetcher := &Fetcher{
		Source:    source,
		Shortcuts: Shortcuts{"md": "matheo.delaunay"},
		Logger:    quietLogger(),
	}

	if _, err := fetcher.FetchWeekAt(context.Background(), "md", testReference); err != nil {
		t.Fatalf("FetchWeekAt errored: %v", err)
	}
	if seenUser != "matheo.delaunay" {
		t.Errorf("upstream saw %q, want the canonical identifier", seenUser)
	}
}

func TestFetchWeekSingleDayFailureDegradesToEmptyDay(t *testing.T) {
	source := &fakeSource{
		fetchDay: func(_ context.Context, _ string, date time.Time) ([]RawCourse, error) {
			if date.Weekday() == time.Wednesday {
				return nil, errors.New("simulated network failure")
			}
			return []RawCourse{{Start: "09:00", End: "10:00", Subject: "Maths"}}, nil
		},
	}
	fetcher := &Fetcher{Source: source, Logger: quietLogger()}

	week, err := fetcher.FetchWeekAt(context.Background(), "jean.dupont", testReference)
	if err != nil {
		t.Fatalf("a single bad day must not fail the week: %v", err)
	}
	if len(week) != 5 {
		t.Fatalf("got %d days, want 5", len(week))
	}
	for i, day := range week {
		if i == 2 {
			if day.Courses == nil || len(day.Courses) != 0 {
				t.Errorf("failed Wednesday should be an empty course list, got %+v", day.Courses)
			}
			continue
		}
		if len(day.Courses) != 1 {
			t.Errorf("day %d corrupted by Wednesday's failure: %+v", i, day.Courses)
		}
	}
}

func TestFetchWeekAllDaysFailed(t *testing.T) {
	source := &fakeSource{
		fetchDay: func(context.Context, string, time.Time) ([]RawCourse, error) {
			return nil, errors.New("simulated outage")
		},
	}
	fetcher := &Fetcher{Source: source, Logger: quietLogger()}

	_, err := fetcher.FetchWeekAt(context.Background(), "jean.dupont", testReference)
	if !errors.Is(err, ErrWeekUnavailable) {
		t.Fatalf("err = %v, want ErrWeekUnavailable", err)
	}
}

func TestFetchWeekColorsAssignedAfterJoin(t *testing.T) {
	source := &fakeSource{
		fetchDay: func(_ context.Context, _ string, date time.Time) ([]RawCourse, error) {
			return []RawCourse{
				{Start: "09:00", End: "10:00", Subject: "Maths"},
			}, nil
		},
	}
	fetcher := &Fetcher{Source: source, Logger: quietLogger()}

	week, err := fetcher.FetchWeekAt(context.Background(), "jean.dupont", testReference)
	if err != nil {
		t.Fatalf("FetchWeekAt errored: %v", err)
	}
	reference := week[0].Courses[0].Color
	if reference.Background == "" {
		t.Fatal("colors not assigned")
	}
	for i, day := range week {
		if day.Courses[0].Color != reference {
			t.Errorf("Maths on day %d colored %v, want %v", i, day.Courses[0].Color, reference)
		}
	}
}

func TestFetchWeekDayTimeoutDegradesDay(t *testing.T) {
	source := &fakeSource{
		fetchDay: func(ctx context.Context, _ string, date time.Time) ([]RawCourse, error) {
			if date.Weekday() == time.Monday {
				<-ctx.Done()
				return nil, ctx.Err()
			}
			return []RawCourse{{Start: "09:00", End: "10:00", Subject: "Maths"}}, nil
		},
	}
	fetcher := &Fetcher{
		Source:     source,
		Logger:     quietLogger(),
		DayTimeout: 20 * time.Millisecond,
	}

	week, err := fetcher.FetchWeekAt(context.Background(), "jean.dupont", testReference)
	if err != nil {
		t.Fatalf("timeout of one day must not fail the week: %v", err)
	}
	if len(week[0].Courses) != 0 {
		t.Errorf("timed out Monday should be empty, got %+v", week[0].Courses)
	}
	if len(week[1].Courses) != 1 {
		t.Errorf("Tuesday should be unaffected, got %+v", week[1].Courses)
	}
}
