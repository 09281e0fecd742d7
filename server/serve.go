package server

import (
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/mdelaunay/wigorview/config"
	"github.com/mdelaunay/wigorview/timetable"
	"github.com/mdelaunay/wigorview/timetable/layout"
	"github.com/mdelaunay/wigorview/timetable/rooms"
)

// Server exposes structured weeks over JSON. It never renders anything,
// a frontend polls these endpoints and draws the grid itself.
type Server struct {
	fetcher    *timetable.Fetcher
	grid       layout.Config
	classifier rooms.Classifier
	logHub     *LogHub
	logger     *slog.Logger
}

func New(fetcher *timetable.Fetcher, cfg *config.Config, logHub *LogHub, logger *slog.Logger) *Server {
	return &Server{
		fetcher: fetcher,
		grid: layout.Config{
			DayStartMinutes: cfg.Grid.DayStartMinutes,
			PixelsPerHour:   cfg.Grid.PixelsPerHour,
			MinBlockHeight:  cfg.Grid.MinBlockHeight,
			ColumnGap:       cfg.Grid.ColumnGap,
		},
		classifier: rooms.NewClassifier(cfg.Rooms.Rules()),
		logHub:     logHub,
		logger:     logger,
	}
}

func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	cors := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum age for preflight requests
	})
	r.Use(cors.Handler)
	r.Use(middleware.Logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/week", s.getWeek)
		r.Get("/week/layout", s.getWeekLayout)
		r.Get("/subjects", s.getSubjects)
		r.Get("/rooms/classify", s.classifyRoom)
	})

	if s.logHub != nil {
		r.Get("/manage/logs", s.logHub.loggingWebSocket)
	}

	return r
}

// Serve blocks running the API on addr.
func (s *Server) Serve(addr string) error {
	s.logger.Info("Running server on", "addr", addr)
	return http.ListenAndServe(addr, s.Router())
}
