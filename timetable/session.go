package timetable

import (
	"context"
	"math"
	"sync"
	"time"

	"github.com/mdelaunay/wigorview/timetable/timeutil"
)

// Session serializes week navigation for one user. Navigation actions
// replace each other: when a new one starts before the previous fetch
// resolved, the older result is discarded on arrival instead of
// overwriting the newer week. The source viewer lost this race and could
// display a stale week after fast previous/next clicks.
type Session struct {
	fetcher  *Fetcher
	username string

	mu         sync.Mutex
	generation uint64
	offset     int
	week       Week
}

func NewSession(fetcher *Fetcher, username string) *Session {
	return &Session{
		fetcher:  fetcher,
		username: username,
	}
}

// Current returns the most recently applied week and its offset.
func (s *Session) Current() (Week, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.week, s.offset
}

// Previous navigates one week back.
func (s *Session) Previous(ctx context.Context) (Week, error) {
	s.mu.Lock()
	offset := s.offset - 1
	s.mu.Unlock()
	return s.load(ctx, offset)
}

// Next navigates one week forward.
func (s *Session) Next(ctx context.Context) (Week, error) {
	s.mu.Lock()
	offset := s.offset + 1
	s.mu.Unlock()
	return s.load(ctx, offset)
}

// Today returns to the current week.
func (s *Session) Today(ctx context.Context) (Week, error) {
	return s.load(ctx, 0)
}

// GoTo jumps to the week containing the given date. The date is turned
// into a week offset so Previous/Next keep working relative to it.
func (s *Session) GoTo(ctx context.Context, date time.Time) (Week, error) {
	currentMonday := timeutil.WorkWeek(0, time.Now())[0]
	targetMonday := timeutil.WorkWeek(0, date)[0]
	// rounding absorbs the hour a DST transition adds or removes
	offset := int(math.Round(targetMonday.Sub(currentMonday).Hours() / (24 * 7)))
	return s.load(ctx, offset)
}

func (s *Session) load(ctx context.Context, offset int) (Week, error) {
	s.mu.Lock()
	s.generation++
	generation := s.generation
	s.mu.Unlock()

	week, err := s.fetcher.FetchWeek(ctx, s.username, offset)

	s.mu.Lock()
	defer s.mu.Unlock()
	if generation != s.generation {
		// a newer navigation won, this result must not be applied
		return nil, ErrStaleNavigation
	}
	if err != nil {
		return nil, err
	}
	s.week = week
	s.offset = offset
	return week, nil
}
