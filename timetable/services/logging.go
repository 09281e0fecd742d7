package services

import (
	"log/slog"

	logginghelpers "github.com/mdelaunay/wigorview/logginghelpers"
)

const (
	LevelHTTPReport slog.Level = logginghelpers.LevelReportIO
)
