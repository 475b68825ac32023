package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/claude/ironlog/internal/models"
	"github.com/claude/ironlog/internal/training"
)

// analyticsInput loads the user's full history, windowed by the
// optional months query parameter (0 or absent means all time). It
// writes the error response itself when the second result is false.
func (s *Server) analyticsInput(w http.ResponseWriter, r *http.Request) ([]models.Workout, bool) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return nil, false
	}

	months := 0
	if m := r.URL.Query().Get("months"); m != "" {
		parsed, err := strconv.Atoi(m)
		if err != nil || parsed < 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "months must be a non-negative integer"})
			return nil, false
		}
		months = parsed
	}

	workouts, err := s.db.ListWorkouts(r.Context(), uid)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return nil, false
	}
	return training.FilterSince(workouts, training.WindowStart(time.Now(), months)), true
}

func (s *Server) handleWeeklyVolume(w http.ResponseWriter, r *http.Request) {
	workouts, ok := s.analyticsInput(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, training.WeeklyVolume(workouts))
}

func (s *Server) handleDeload(w http.ResponseWriter, r *http.Request) {
	workouts, ok := s.analyticsInput(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, training.Deload(workouts))
}

func (s *Server) handleStreaks(w http.ResponseWriter, r *http.Request) {
	workouts, ok := s.analyticsInput(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, training.Streaks(workouts, time.Now()))
}

func (s *Server) handleCalendar(w http.ResponseWriter, r *http.Request) {
	workouts, ok := s.analyticsInput(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, training.Calendar(workouts, time.Now()))
}

func (s *Server) handleWeekComparison(w http.ResponseWriter, r *http.Request) {
	workouts, ok := s.analyticsInput(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, training.CompareWeeks(workouts, time.Now()))
}

func (s *Server) handleRecentProgress(w http.ResponseWriter, r *http.Request) {
	workouts, ok := s.analyticsInput(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, training.RecentProgress(workouts))
}

func (s *Server) handleGlobalStats(w http.ResponseWriter, r *http.Request) {
	workouts, ok := s.analyticsInput(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, training.GlobalStats(workouts))
}

func (s *Server) handleMuscleFrequency(w http.ResponseWriter, r *http.Request) {
	workouts, ok := s.analyticsInput(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, training.MuscleFrequency(workouts))
}

func (s *Server) handleCompareSessions(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}

	idA, errA := uuid.Parse(r.URL.Query().Get("a"))
	idB, errB := uuid.Parse(r.URL.Query().Get("b"))
	if errA != nil || errB != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "a and b must be workout IDs"})
		return
	}

	a, err := s.db.GetWorkout(r.Context(), idA, uid)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "workout a not found"})
		return
	}
	b, err := s.db.GetWorkout(r.Context(), idB, uid)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "workout b not found"})
		return
	}

	writeJSON(w, http.StatusOK, training.CompareSessions(*a, *b))
}
