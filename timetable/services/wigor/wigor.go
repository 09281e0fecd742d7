// Package wigor talks to the Wigor timetable service: one GET per day
// returning an HTML fragment of course rows, parsed defensively since
// the markup is an upstream contract we do not control.
package wigor

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/mdelaunay/wigorview/timetable"
	"github.com/mdelaunay/wigorview/timetable/services"
	"github.com/mdelaunay/wigorview/timetable/timeutil"
)

// Options configure the upstream endpoint and how hard we lean on it.
type Options struct {
	Scheme string
	Host   string
	Path   string

	// fixed day start anchor the service expects in its time parameter
	TimeAnchor string

	RetryCount int
	RateEvery  time.Duration
	RateBurst  int
}

func DefaultOptions() Options {
	return Options{
		Scheme:     "https",
		Host:       "ws-edt-cd.wigorservices.net",
		Path:       "/api/wigor-proxy",
		TimeAnchor: "8:00",
		RetryCount: 2,
		RateEvery:  250 * time.Millisecond,
		RateBurst:  5,
	}
}

type Client struct {
	scheme     string
	host       string
	path       string
	timeAnchor string

	httpClient *http.Client
}

// NewClient builds the day source used by the pipeline. The logrus entry
// feeds the retry layer, the slog logger the outgoing request report.
func NewClient(logger *log.Entry, reportLogger *slog.Logger, opts Options) *Client {
	limiter := services.NewAdaptiveRateLimiter(
		rate.Every(opts.RateEvery),
		opts.RateBurst,
		rate.Every(opts.RateEvery*2),
	)
	httpClient := services.NewRetryClientWithLimiter(logger, opts.RetryCount, limiter)
	services.AddHTTPReporting(httpClient, reportLogger)

	return &Client{
		scheme:     opts.Scheme,
		host:       opts.Host,
		path:       opts.Path,
		timeAnchor: opts.TimeAnchor,
		httpClient: httpClient,
	}
}

// SetBaseURL points the client somewhere else, used by tests to swap in
// a mock upstream.
func (c *Client) SetBaseURL(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return false
	}
	c.scheme = parsed.Scheme
	c.host = parsed.Host
	return true
}

func (c *Client) dayURL(username string, date time.Time) string {
	query := url.Values{
		"tel":  {username},
		"date": {timeutil.FormatISODate(date)},
		"time": {c.timeAnchor},
	}
	u := url.URL{
		Scheme:   c.scheme,
		Host:     c.host,
		Path:     c.path,
		RawQuery: query.Encode(),
	}
	return u.String()
}

// FetchDay requests one day's markup and parses it. Transport failures
// and bad statuses come back wrapped as ErrUpstreamUnavailable, garbage
// markup parses to an empty day instead of an error.
func (c *Client) FetchDay(
	ctx context.Context,
	logger *slog.Logger,
	username string,
	date time.Time,
) ([]timetable.RawCourse, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.dayURL(username, date), nil)
	if err != nil {
		logger.Error("Error creating day request", "error", err)
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	err = services.RespOrStatusErr(resp, err)
	if err != nil {
		logger.Error("Error getting day response", "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	return ParseDay(resp.Body, logger), nil
}

// ParseDay extracts the course rows of one day's markup. A row is kept
// only when start, end and subject are all present after trimming and
// both times are well formed wall clock values, anything else is dropped
// row by row. Input that is not parseable at all yields an empty day so
// an upstream error page never fails the week.
func ParseDay(r io.Reader, logger *slog.Logger) []timetable.RawCourse {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		logger.Warn("day markup unreadable, treating the day as empty", "error", err)
		return nil
	}

	var courses []timetable.RawCourse
	doc.Find(".Ligne").Each(func(i int, row *goquery.Selection) {
		start := strings.TrimSpace(row.Find(".Debut").Text())
		end := strings.TrimSpace(row.Find(".Fin").Text())
		subject := strings.TrimSpace(row.Find(".Matiere").Text())
		room := strings.TrimSpace(row.Find(".Salle").Text())
		teacher := strings.TrimSpace(row.Find(".Prof").Text())

		if start == "" || end == "" || subject == "" {
			logger.Debug("dropping course row with missing fields",
				"row", i, "start", start, "end", end, "subject", subject)
			return
		}
		if _, err := timeutil.ParseTimeToMinutes(start); err != nil {
			logger.Debug("dropping course row with bad start time", "row", i, "start", start)
			return
		}
		if _, err := timeutil.ParseTimeToMinutes(end); err != nil {
			logger.Debug("dropping course row with bad end time", "row", i, "end", end)
			return
		}

		courses = append(courses, timetable.RawCourse{
			Start:   start,
			End:     end,
			Subject: subject,
			Room:    room,
			Teacher: teacher,
		})
	})

	return courses
}
