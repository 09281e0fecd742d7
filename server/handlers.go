package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/mdelaunay/wigorview/timetable"
	"github.com/mdelaunay/wigorview/timetable/layout"
)

// weekRequest resolves the user and week selection query parameters.
// The week is picked either by a signed offset from the current week or
// by any date inside the wanted week, offset wins when both are given.
func (s *Server) weekRequest(w http.ResponseWriter, r *http.Request) (timetable.Week, bool) {
	username := r.URL.Query().Get("user")
	if username == "" {
		http.Error(w, "Missing user query param", http.StatusBadRequest)
		return nil, false
	}

	ctx := r.Context()
	var week timetable.Week
	var err error
	if queryOffset := r.URL.Query().Get("offset"); queryOffset != "" {
		offset, convErr := strconv.Atoi(queryOffset)
		if convErr != nil {
			http.Error(w, "Invalid query offset param", http.StatusBadRequest)
			return nil, false
		}
		week, err = s.fetcher.FetchWeek(ctx, username, offset)
	} else if queryDate := r.URL.Query().Get("date"); queryDate != "" {
		date, convErr := time.Parse("2006-01-02", queryDate)
		if convErr != nil {
			http.Error(w, "Invalid query date param", http.StatusBadRequest)
			return nil, false
		}
		week, err = s.fetcher.FetchWeekAt(ctx, username, date)
	} else {
		week, err = s.fetcher.FetchWeek(ctx, username, 0)
	}

	if err != nil {
		switch {
		case errors.Is(err, timetable.ErrInvalidUsername):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, timetable.ErrWeekUnavailable):
			http.Error(w, err.Error(), http.StatusBadGateway)
		default:
			s.logger.Error("Could not fetch week", "err", err)
			http.Error(w, http.StatusText(500), 500)
		}
		return nil, false
	}
	return week, true
}

func (s *Server) writeJSON(w http.ResponseWriter, value any) {
	payload, err := json.Marshal(value)
	if err != nil {
		s.logger.Error("Could not marshal response", "err", err)
		http.Error(w, http.StatusText(500), 500)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(payload)
}

func (s *Server) getWeek(w http.ResponseWriter, r *http.Request) {
	week, ok := s.weekRequest(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, week)
}

// DayLayout is one weekday with its courses positioned on the grid.
type DayLayout struct {
	Day     string                    `json:"day"`
	Date    string                    `json:"date"`
	Courses []layout.PositionedCourse `json:"courses"`
}

func (s *Server) getWeekLayout(w http.ResponseWriter, r *http.Request) {
	week, ok := s.weekRequest(w, r)
	if !ok {
		return
	}

	dayFilter := r.URL.Query().Get("day")
	days := make([]DayLayout, 0, len(week))
	for _, day := range week {
		if dayFilter != "" && day.Day != dayFilter {
			continue
		}
		days = append(days, DayLayout{
			Day:     day.Day,
			Date:    day.Date,
			Courses: layout.AssignColumns(day.Courses, s.grid),
		})
	}
	if dayFilter != "" && len(days) == 0 {
		http.Error(w, "Unknown day", http.StatusBadRequest)
		return
	}
	s.writeJSON(w, days)
}

func (s *Server) getSubjects(w http.ResponseWriter, r *http.Request) {
	week, ok := s.weekRequest(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, timetable.UniqueSubjects(week))
}

func (s *Server) classifyRoom(w http.ResponseWriter, r *http.Request) {
	room := r.URL.Query().Get("room")
	kind := s.classifier.Classify(room)
	s.writeJSON(w, map[string]string{
		"room": room,
		"kind": kind.String(),
	})
}
