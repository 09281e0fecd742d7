/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"
	"time"

	"log/slog"

	log "github.com/sirupsen/logrus"

	"github.com/mdelaunay/wigorview/config"
	"github.com/mdelaunay/wigorview/logginghelpers"
	"github.com/mdelaunay/wigorview/timetable"
	"github.com/mdelaunay/wigorview/timetable/services/wigor"
)

// shared wiring for the commands: configuration, both logging stacks,
// and the fetch pipeline

func loadConfig() (*config.Config, bool) {
	cfg, err := config.Load()
	if err != nil {
		log.Error("invalid configuration: ", err)
		return nil, false
	}
	return cfg, true
}

func slogLevel(logrusLevel log.Level) slog.Level {
	switch logrusLevel {
	case log.TraceLevel, log.DebugLevel:
		return slog.LevelDebug
	case log.WarnLevel:
		return slog.LevelWarn
	case log.ErrorLevel, log.FatalLevel, log.PanicLevel:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// setupLogging applies the configured level to logrus and builds the
// slog logger used for io reports, fanned out to stderr plus any extra
// handlers (the serve command adds the websocket hub here).
func setupLogging(cfg *config.Config, extra ...slog.Handler) *slog.Logger {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	multi := logginghelpers.NewMultiHandler(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slogLevel(level)}),
	)
	for _, h := range extra {
		multi.AddHandler(h)
	}
	return slog.New(multi)
}

func newFetcher(cfg *config.Config, job string, reportLogger *slog.Logger) *timetable.Fetcher {
	client := wigor.NewClient(
		log.WithFields(log.Fields{"job": job}),
		reportLogger,
		wigor.Options{
			Scheme:     cfg.Upstream.Scheme,
			Host:       cfg.Upstream.Host,
			Path:       cfg.Upstream.Path,
			TimeAnchor: cfg.Upstream.TimeAnchor,
			RetryCount: cfg.Upstream.RetryCount,
			RateEvery:  time.Duration(cfg.Upstream.RateEveryMS) * time.Millisecond,
			RateBurst:  cfg.Upstream.RateBurst,
		},
	)
	return &timetable.Fetcher{
		Source:     client,
		Shortcuts:  timetable.Shortcuts(cfg.Shortcuts),
		Logger:     reportLogger,
		DayTimeout: time.Duration(cfg.Upstream.DayTimeoutSeconds) * time.Second,
	}
}
