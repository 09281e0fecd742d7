// Package timetable holds the week model and the acquisition pipeline
// turning the upstream per-day markup into a structured Monday..Friday
// week. A Week is a transient view model: every navigation action
// produces a fresh one, nothing here is persisted.
package timetable

import "github.com/mdelaunay/wigorview/timetable/colors"

// DayLabels are the five labels of the modeled work week in order.
// Weekends are not represented.
var DayLabels = [5]string{"Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi"}

// RawCourse is one course block as extracted from a day's markup, before
// color assignment. Times are guaranteed well formed "HH:mm" by the
// parser, room and teacher may be empty.
type RawCourse struct {
	Start   string
	End     string
	Subject string
	Room    string
	Teacher string
}

// Course is one scheduled class occurrence. Color is derived after the
// whole week is collected and is never authoritative.
type Course struct {
	Subject string       `json:"subject"`
	Start   string       `json:"start"`
	End     string       `json:"end"`
	Room    string       `json:"room"`
	Teacher string       `json:"teacher"`
	Color   colors.Color `json:"color"`
}

// Day is one calendar day's worth of courses. Courses keep upstream
// order, consumers sort by start time before layout.
type Day struct {
	Day     string   `json:"day"`
	Date    string   `json:"date"`
	Courses []Course `json:"courses"`
}

// Week is always five Days, Monday..Friday.
type Week []Day

// UniqueSubjects lists every subject of the week once, in order of first
// appearance scanning Monday..Friday and courses in list order.
func UniqueSubjects(week Week) []string {
	seen := make(map[string]struct{})
	var subjects []string
	for _, day := range week {
		for _, course := range day.Courses {
			if _, ok := seen[course.Subject]; ok {
				continue
			}
			seen[course.Subject] = struct{}{}
			subjects = append(subjects, course.Subject)
		}
	}
	return subjects
}

// assignColors stamps every course of the week. This runs once over the
// full week after all days resolved so the same subject gets the same
// color on every day.
func assignColors(week Week) {
	for di := range week {
		for ci := range week[di].Courses {
			course := &week[di].Courses[ci]
			course.Color = colors.ForSubject(course.Subject)
		}
	}
}
