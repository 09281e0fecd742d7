// Package config holds process configuration for the viewer: where the
// upstream timetable service lives, the grid metrics, the school
// specific room rules, and the username shortcut table. School specific
// data lives here on purpose, the core packages only see the values.
package config

import "github.com/mdelaunay/wigorview/timetable/rooms"

type Config struct {
	// LogLevel controls verbosity: trace, debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr is the HTTP listen address of the serve command, e.g. ":3000".
	Addr string `koanf:"addr"`

	Upstream Upstream `koanf:"upstream"`
	Grid     Grid     `koanf:"grid"`
	Rooms    Rooms    `koanf:"rooms"`

	// Shortcuts rewrite abbreviated identifiers to the canonical
	// firstname.lastname form before validation.
	Shortcuts map[string]string `koanf:"shortcuts"`
}

// Upstream describes the timetable service endpoint and how hard the
// client may lean on it.
type Upstream struct {
	Scheme string `koanf:"scheme"`
	Host   string `koanf:"host"`
	Path   string `koanf:"path"`

	// TimeAnchor is the fixed day start the service expects in its
	// time query parameter.
	TimeAnchor string `koanf:"time_anchor"`

	// DayTimeoutSeconds bounds each of the five day requests. A timed
	// out day renders empty, it never fails the week.
	DayTimeoutSeconds int `koanf:"day_timeout_seconds"`

	RetryCount  int `koanf:"retry_count"`
	RateEveryMS int `koanf:"rate_every_ms"`
	RateBurst   int `koanf:"rate_burst"`
}

// Grid carries the calendar geometry handed to the layout engine.
type Grid struct {
	DayStartMinutes int     `koanf:"day_start_minutes"`
	PixelsPerHour   float64 `koanf:"pixels_per_hour"`
	MinBlockHeight  float64 `koanf:"min_block_height"`
	ColumnGap       float64 `koanf:"column_gap"`
}

// Rooms carries the school specific room classification rules.
type Rooms struct {
	RemotePrefixes     []string `koanf:"remote_prefixes"`
	RemoteSubstrings   []string `koanf:"remote_substrings"`
	PhysicalPrefixes   []string `koanf:"physical_prefixes"`
	PhysicalSubstrings []string `koanf:"physical_substrings"`
}

// Rules converts the configured room data into classifier rules.
func (r Rooms) Rules() rooms.Rules {
	return rooms.Rules{
		RemotePrefixes:     r.RemotePrefixes,
		RemoteSubstrings:   r.RemoteSubstrings,
		PhysicalPrefixes:   r.PhysicalPrefixes,
		PhysicalSubstrings: r.PhysicalSubstrings,
	}
}

// New returns the defaults this viewer ships with.
func New() *Config {
	defaultRules := rooms.DefaultRules()
	return &Config{
		LogLevel: "info",
		Addr:     ":3000",
		Upstream: Upstream{
			Scheme:            "https",
			Host:              "ws-edt-cd.wigorservices.net",
			Path:              "/api/wigor-proxy",
			TimeAnchor:        "8:00",
			DayTimeoutSeconds: 10,
			RetryCount:        2,
			RateEveryMS:       250,
			RateBurst:         5,
		},
		Grid: Grid{
			DayStartMinutes: 8 * 60,
			PixelsPerHour:   45,
			MinBlockHeight:  36,
			ColumnGap:       6,
		},
		Rooms: Rooms{
			RemotePrefixes:     defaultRules.RemotePrefixes,
			RemoteSubstrings:   defaultRules.RemoteSubstrings,
			PhysicalPrefixes:   defaultRules.PhysicalPrefixes,
			PhysicalSubstrings: defaultRules.PhysicalSubstrings,
		},
		Shortcuts: map[string]string{
			"md":             "matheo.delaunay",
			"mathéo.delaunay": "matheo.delaunay",
			"marius.bernard": "marius.bernard1",
			"nl":             "noa.lauvray",
			"tb":             "theo.boutroux",
		},
	}
}
