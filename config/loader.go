package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/mdelaunay/wigorview/internal/projectpath"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if WIGORVIEW_CONFIG is set
//  3. env (prefix WIGORVIEW_)
func Load() (*Config, error) {
	// a .env next to the repo root is convenient in development but a
	// viewer has to run fine without one
	envPath := filepath.Join(projectpath.Root, ".env")
	if _, err := os.Stat(envPath); err == nil {
		if err := godotenv.Load(envPath); err != nil {
			return nil, err
		}
	}

	k := koanf.New(".")

	if path := os.Getenv("WIGORVIEW_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// Environment variables: WIGORVIEW_ADDR, WIGORVIEW_LOG_LEVEL, ...
	// A double underscore descends into a section, so
	// WIGORVIEW_UPSTREAM__HOST -> upstream.host while single
	// underscores stay part of the key.
	envProvider := env.Provider("WIGORVIEW_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "wigorview_")
		return strings.ReplaceAll(s, "__", ".")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	// Unmarshal into a copy of the defaults
	cfg := *New()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.Addr == "" {
		return nil, errors.New("addr must not be empty")
	}
	if cfg.Upstream.Host == "" {
		return nil, errors.New("upstream.host must not be empty")
	}
	if cfg.Grid.PixelsPerHour <= 0 {
		return nil, errors.New("grid.pixels_per_hour must be positive")
	}
	return &cfg, nil
}
