package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/claude/ironlog/internal/draft"
	"github.com/claude/ironlog/internal/storage"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	db     *storage.DB
	drafts *draft.Store
	log    *slog.Logger
	apiKey string
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(db *storage.DB, drafts *draft.Store, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		db:     db,
		drafts: drafts,
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)
	s.router.Use(DevIdentity)

	s.router.Get("/api/v1/me", s.handleMe)

	// Read endpoints (no auth, tsnet handles access)
	s.router.Get("/api/v1/workouts", s.handleQueryWorkouts)
	s.router.Get("/api/v1/workouts/{id}", s.handleGetWorkout)
	s.router.Get("/api/v1/programs", s.handlePrograms)
	s.router.Get("/api/v1/catalog", s.handleCatalog)
	s.router.Get("/api/v1/goals", s.handleGoals)
	s.router.Get("/api/v1/goals/progress", s.handleGoalProgress)
	s.router.Get("/api/v1/exercises/last-session", s.handleLastSession)
	s.router.Get("/api/v1/exercises/rm-history", s.handleRMHistory)
	s.router.Get("/api/v1/exercises/records", s.handlePersonalRecords)
	s.router.Get("/api/v1/rm-table", s.handleRMTable)
	s.router.Get("/api/v1/warmup", s.handleWarmup)
	s.router.Post("/api/v1/pyramid/preview", s.handlePyramidPreview)
	s.router.Get("/api/v1/analytics/weekly-volume", s.handleWeeklyVolume)
	s.router.Get("/api/v1/analytics/deload", s.handleDeload)
	s.router.Get("/api/v1/analytics/streaks", s.handleStreaks)
	s.router.Get("/api/v1/analytics/calendar", s.handleCalendar)
	s.router.Get("/api/v1/analytics/week-comparison", s.handleWeekComparison)
	s.router.Get("/api/v1/analytics/progress", s.handleRecentProgress)
	s.router.Get("/api/v1/analytics/stats", s.handleGlobalStats)
	s.router.Get("/api/v1/analytics/muscle-frequency", s.handleMuscleFrequency)
	s.router.Get("/api/v1/analytics/compare", s.handleCompareSessions)
	s.router.Get("/api/v1/body/weight", s.handleQueryBodyWeight)
	s.router.Get("/api/v1/body/weight/stats", s.handleBodyWeightStats)
	s.router.Get("/api/v1/body/measurements", s.handleQueryMeasurements)
	s.router.Get("/api/v1/body/wellness", s.handleQueryWellness)
	s.router.Get("/api/v1/draft", s.handleGetDraft)

	// Write endpoints (API key required)
	s.router.Group(func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Post("/api/v1/workouts", s.handleSaveWorkout)
		r.Post("/api/v1/workouts/new", s.handleNewSession)
		r.Delete("/api/v1/workouts/{id}", s.handleDeleteWorkout)
		r.Post("/api/v1/programs", s.handleSaveProgram)
		r.Delete("/api/v1/programs/{id}", s.handleDeleteProgram)
		r.Post("/api/v1/goals", s.handleSaveGoal)
		r.Delete("/api/v1/goals/{id}", s.handleDeleteGoal)
		r.Post("/api/v1/body/weight", s.handleInsertBodyWeight)
		r.Delete("/api/v1/body/weight/{id}", s.handleDeleteBodyWeight)
		r.Post("/api/v1/body/measurements", s.handleInsertMeasurement)
		r.Post("/api/v1/body/wellness", s.handleUpsertWellness)
		r.Put("/api/v1/draft", s.handleSaveDraft)
		r.Delete("/api/v1/draft", s.handleDiscardDraft)
	})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, userInfoFromContext(r))
}
