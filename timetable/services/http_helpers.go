package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/hashicorp/go-retryablehttp"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	decreaseFactor = 0.8 // Reduce aggressively on failure
	increaseFactor = 0.2 // Increase conservatively on success
	minLimit       = 1   // Minimum requests per second
)

// AdaptiveRateLimiter backs off hard when the timetable service starts
// answering with errors and creeps back up while it behaves.
type AdaptiveRateLimiter struct {
	mu          sync.Mutex
	limit       rate.Limit
	burst       int
	limiter     *rate.Limiter
	maxIncrease rate.Limit
}

func (a *AdaptiveRateLimiter) Fail() {
	a.mu.Lock()
	defer a.mu.Unlock()

	newLimit := max(rate.Limit(float64(a.limit)*(1-decreaseFactor)), minLimit)
	a.setLimit(newLimit)
}

func (a *AdaptiveRateLimiter) Succeed() {
	a.mu.Lock()
	defer a.mu.Unlock()

	newLimit := min(rate.Limit(float64(a.limit)*(1+increaseFactor)), a.limit+a.maxIncrease)
	a.setLimit(newLimit)
}

func (a *AdaptiveRateLimiter) Wait(ctx context.Context) error {
	return a.limiter.Wait(ctx)
}

func (a *AdaptiveRateLimiter) setLimit(newLimit rate.Limit) {
	a.limit = newLimit
	a.limiter.SetLimit(a.limit)
}

func NewAdaptiveRateLimiter(startingLimit rate.Limit, startingBurst int, maxIncrease rate.Limit) *AdaptiveRateLimiter {
	return &AdaptiveRateLimiter{
		limit:       startingLimit,
		burst:       startingBurst,
		limiter:     rate.NewLimiter(startingLimit, startingBurst),
		mu:          sync.Mutex{},
		maxIncrease: maxIncrease,
	}
}

type RateLimiter interface {
	Succeed()
	Fail()
	Wait(context.Context) error
}

type rateLimitedRoundTripper struct {
	transport http.RoundTripper
	limiter   RateLimiter
}

func (rt *rateLimitedRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := rt.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}

	resp, err := rt.transport.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		rt.limiter.Fail()
	} else {
		rt.limiter.Succeed()
	}

	return resp, nil
}

func AddRateLimiter(client *http.Client, limiter RateLimiter) {
	rt := &rateLimitedRoundTripper{
		limiter: limiter,
	}
	if client.Transport == nil {
		rt.transport = http.DefaultTransport
	} else {
		rt.transport = client.Transport
	}
	client.Transport = rt
}

type loggerRoundTripper struct {
	logger    *slog.Logger
	transport http.RoundTripper
	requestID int32
}

func (rt *loggerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if !rt.logger.Enabled(req.Context(), LevelHTTPReport.Level()) {
		return rt.transport.RoundTrip(req)
	}

	// the five day requests of one week interleave, the id keeps their
	// request and response lines matchable
	currentID := atomic.AddInt32(&rt.requestID, 1)

	rt.logger.Log(req.Context(), LevelHTTPReport, "outgoing request", "method", req.Method, "url", req.URL.String(), "id", currentID)

	resp, err := rt.transport.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	rt.logger.Log(req.Context(), LevelHTTPReport, "response received", "status", resp.Status, "url", req.URL.String(), "id", currentID)

	return resp, nil
}

func AddHTTPReporting(client *http.Client, logger *slog.Logger) {
	rt := &loggerRoundTripper{
		logger:    logger,
		requestID: 0,
	}
	if client.Transport == nil {
		rt.transport = http.DefaultTransport
	} else {
		rt.transport = client.Transport
	}
	client.Transport = rt
}

// shorthand to check if a response is within 200-299
func IsOk(r *http.Response) bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// returns a ErrUpstreamUnavailable wrapped error of either
// the respErr if not nil or status code if non "Ok"
func RespOrStatusErr(r *http.Response, respErr error) error {
	if respErr != nil {
		return errors.Join(ErrUpstreamUnavailable, respErr)
	}
	if !IsOk(r) {
		return fmt.Errorf(
			"%w got status code %d",
			ErrUpstreamUnavailable,
			r.StatusCode,
		)
	}
	return nil
}

func retryLog(l retryablehttp.Logger, req *http.Request, retryCount int) {
	if retryCount == 0 {
		return
	}
	switch v := l.(type) {
	case LogrusLogger:
		v.Get().Warnf("try %d for %s: %s", retryCount, req.Method, req.URL)
	default:
		log.Warnf("try %d for %s: %s", retryCount, req.Method, req.URL)
	}
}

func responseLog(l retryablehttp.Logger, res *http.Response) {
	switch v := l.(type) {
	case LogrusLogger:
		v.Get().Tracef("%s: %s", res.Status, res.Request.URL)
	default:
		log.Tracef("%s: %s", res.Status, res.Request.URL)
	}
}

// NewRetryClientWithLimiter builds the standard upstream client: retries
// with backoff under a shared adaptive rate limit.
func NewRetryClientWithLimiter(logger *log.Entry, retryMax int, limiter RateLimiter) *http.Client {
	client := retryablehttp.NewClient()
	client.RetryMax = retryMax
	var l retryablehttp.LeveledLogger = LogrusLogger{Entry: logger}
	client.Logger = l

	client.ResponseLogHook = responseLog
	client.RequestLogHook = retryLog
	stdClient := client.StandardClient()
	AddRateLimiter(stdClient, limiter)
	return stdClient
}

// wrapper making a logrus entry a retryablehttp LeveledLogger
type LogrusLogger struct {
	Entry *log.Entry
}

func (l LogrusLogger) Error(msg string, keysAndValues ...any) {
	l.Entry.Errorln(msg, keysAndValues)
}

func (l LogrusLogger) Info(msg string, keysAndValues ...any) {
	l.Entry.Infoln(msg, keysAndValues)
}

func (l LogrusLogger) Debug(msg string, keysAndValues ...any) {
	l.Entry.Debugln(msg, keysAndValues)
}

func (l LogrusLogger) Warn(msg string, keysAndValues ...any) {
	l.Entry.Warnln(msg, keysAndValues)
}

func (l LogrusLogger) Printf(msg string, keysAndValues ...any) {
	l.Entry.Printf(msg)
}

func (l LogrusLogger) Get() *log.Entry {
	return l.Entry
}
