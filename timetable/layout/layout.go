// Package layout converts one day's course list into pixel space grid
// coordinates: vertical position and size from the time range, and a
// column assignment so temporally overlapping courses render side by
// side instead of on top of each other.
package layout

import (
	"math"
	"sort"

	"github.com/mdelaunay/wigorview/timetable"
	"github.com/mdelaunay/wigorview/timetable/timeutil"
)

// Config holds the grid metrics. Zero values are not usable, start from
// DefaultConfig.
type Config struct {
	// minutes since midnight at which the grid begins
	DayStartMinutes int `json:"dayStartMinutes"`
	// vertical scale
	PixelsPerHour float64 `json:"pixelsPerHour"`
	// very short courses are floored to this height so they stay
	// legible and clickable
	MinBlockHeight float64 `json:"minBlockHeight"`
	// horizontal separation between columns, consumers subtract it
	// from their computed width
	ColumnGap float64 `json:"columnGap"`
}

func DefaultConfig() Config {
	return Config{
		DayStartMinutes: 8 * 60,
		PixelsPerHour:   45,
		MinBlockHeight:  36,
		ColumnGap:       6,
	}
}

// PositionedCourse is the ephemeral per-render output: the course plus
// its rounded pixel geometry and horizontal slot.
type PositionedCourse struct {
	Course timetable.Course `json:"course"`
	Top    int              `json:"top"`
	Height int              `json:"height"`
	// the lane this course occupies
	ColIndex int `json:"colIndex"`
	// the divisor every overlapping course agrees on when computing
	// fractional widths
	ColCount int `json:"colCount"`
}

type placedCourse struct {
	course   timetable.Course
	startMin int
	endMin   int
	top      float64
	height   float64
	colIndex int
}

// AssignColumns lays one day out. Courses are sorted by (start, end)
// ascending and greedily placed in the first column whose previous
// occupant already ended; overlap forces a new column. A second pass
// widens ColCount to the full overlap group so all colliding courses
// split the day's width the same way.
func AssignColumns(courses []timetable.Course, cfg Config) []PositionedCourse {
	placed := make([]placedCourse, 0, len(courses))
	for _, course := range courses {
		startMin, err := timeutil.ParseTimeToMinutes(course.Start)
		if err != nil {
			// the parser drops these before they get here, but layout
			// input may come from other producers
			continue
		}
		endMin, err := timeutil.ParseTimeToMinutes(course.End)
		if err != nil {
			continue
		}
		height := timeutil.DurationToHeight(startMin, endMin, cfg.PixelsPerHour)
		if height < cfg.MinBlockHeight {
			height = cfg.MinBlockHeight
		}
		placed = append(placed, placedCourse{
			course:   course,
			startMin: startMin,
			endMin:   endMin,
			top:      timeutil.MinutesToOffset(startMin, cfg.DayStartMinutes, cfg.PixelsPerHour),
			height:   height,
		})
	}

	sort.Slice(placed, func(i, j int) bool {
		if placed[i].startMin != placed[j].startMin {
			return placed[i].startMin < placed[j].startMin
		}
		return placed[i].endMin < placed[j].endMin
	})

	// activeColumns[c] tracks when the course currently occupying
	// column c ends
	var activeColumns []int
	for i := range placed {
		item := &placed[i]
		columnFound := false
		for col, colEnd := range activeColumns {
			if item.startMin >= colEnd {
				activeColumns[col] = item.endMin
				item.colIndex = col
				columnFound = true
				break
			}
		}
		if !columnFound {
			activeColumns = append(activeColumns, item.endMin)
			item.colIndex = len(activeColumns) - 1
		}
	}

	result := make([]PositionedCourse, len(placed))
	for i, item := range placed {
		maxCol := item.colIndex
		for j, other := range placed {
			if i == j {
				continue
			}
			if overlaps(item.startMin, item.endMin, other.startMin, other.endMin) {
				maxCol = max(maxCol, other.colIndex)
			}
		}
		result[i] = PositionedCourse{
			Course:   item.course,
			Top:      int(math.Round(item.top)),
			Height:   int(math.Round(item.height)),
			ColIndex: item.colIndex,
			ColCount: maxCol + 1,
		}
	}
	return result
}

// Span converts a column assignment to percentage coordinates. The
// caller subtracts Config.ColumnGap from the width for the visual
// gutter, exposing the raw fractions keeps exporters and the grid
// agreeing on the divisor.
func Span(colIndex, colCount int) (leftPercent, widthPercent float64) {
	if colCount < 1 {
		colCount = 1
	}
	widthPercent = 100 / float64(colCount)
	leftPercent = widthPercent * float64(colIndex)
	return leftPercent, widthPercent
}

// half-open [start, end) intervals, touching courses do not overlap
func overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}
