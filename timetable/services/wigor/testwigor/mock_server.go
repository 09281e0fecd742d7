// Package testwigor runs a mock Wigor upstream for tests: canned day
// fragments keyed by date, fail injection per date, and a request count
// so tests can assert that validation short circuits before the network.
package testwigor

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// MockCourse is one row of a served day fragment.
type MockCourse struct {
	Start   string
	End     string
	Subject string
	Room    string
	Teacher string
}

// DayHTML renders rows the way the live service does, one .Ligne block
// per course with labeled child spans.
func DayHTML(courses []MockCourse) string {
	var b strings.Builder
	b.WriteString("<html><body><div class=\"Jour\">\n")
	for _, c := range courses {
		fmt.Fprintf(&b, `<div class="Ligne">
  <span class="Debut">%s</span>
  <span class="Fin">%s</span>
  <span class="Matiere">%s</span>
  <span class="Salle">%s</span>
  <span class="Prof">%s</span>
</div>
`, c.Start, c.End, c.Subject, c.Room, c.Teacher)
	}
	b.WriteString("</div></body></html>")
	return b.String()
}

type mockServerState struct {
	mu           sync.Mutex
	daysByDate   map[string][]MockCourse
	failingDates map[string]struct{}
	requestCount int
}

// Server wraps the httptest server with fixture management.
type Server struct {
	*httptest.Server
	state *mockServerState
}

func (m *mockServerState) handleDay(w http.ResponseWriter, r *http.Request) {
	m.mu.Lock()
	m.requestCount++
	m.mu.Unlock()

	query := r.URL.Query()
	user := query.Get("tel")
	date := query.Get("date")
	if user == "" || date == "" || query.Get("time") == "" {
		http.Error(w, "Bad Request: tel, date and time are required", http.StatusBadRequest)
		return
	}

	m.mu.Lock()
	_, failing := m.failingDates[date]
	if !failing {
		_, failing = m.failingDates["*"]
	}
	courses := m.daysByDate[date]
	m.mu.Unlock()

	if failing {
		http.Error(w, "upstream exploded", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, DayHTML(courses))
}

// NewServer starts a mock upstream which closes once the context ends.
func NewServer(ctx context.Context) *Server {
	state := &mockServerState{
		daysByDate:   make(map[string][]MockCourse),
		failingDates: make(map[string]struct{}),
	}
	mux := http.NewServeMux()
	// "GET /api/wigor-proxy" method patterns need net/http from Go 1.22;
	// this is the same GET-only route expressed for older toolchains
	mux.HandleFunc("/api/wigor-proxy", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
			return
		}
		state.handleDay(w, r)
	})

	server := httptest.NewServer(mux)
	go func() {
		<-ctx.Done()
		server.Close()
	}()

	return &Server{Server: server, state: state}
}

// SetDay installs the fixture served for an ISO date.
func (s *Server) SetDay(date string, courses []MockCourse) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	s.state.daysByDate[date] = courses
}

// FailDate makes every request for that date answer 502.
func (s *Server) FailDate(date string) {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	s.state.failingDates[date] = struct{}{}
}

// FailAll makes every known and unknown date answer 502.
func (s *Server) FailAll() {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	s.state.failingDates["*"] = struct{}{}
}

// RequestCount reports how many day requests arrived.
func (s *Server) RequestCount() int {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return s.state.requestCount
}
