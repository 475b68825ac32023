package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/claude/ironlog/internal/draft"
	"github.com/claude/ironlog/internal/models"
	"github.com/claude/ironlog/internal/storage"
	"github.com/claude/ironlog/internal/training"
)

func (s *Server) handleQueryWorkouts(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}

	start, end, err := parseTimeRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	workouts, err := s.db.QueryWorkouts(r.Context(), start, end, uid)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, workouts)
}

func (s *Server) handleGetWorkout(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}

	workoutID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid workout ID"})
		return
	}

	workout, err := s.db.GetWorkout(r.Context(), workoutID, uid)
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "workout not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, workout)
}

func (s *Server) handleSaveWorkout(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}

	var workout models.Workout
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if workout.ID == uuid.Nil {
		workout.ID = uuid.New()
	}
	workout.UserID = uid
	if workout.DayType == "" {
		workout.DayType = models.DayTypeFor(workout.Date)
	}
	sanitizeWorkout(&workout)

	if err := s.db.SaveWorkout(r.Context(), workout); err != nil {
		s.log.Error("saving workout", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	// A saved session supersedes any draft of it.
	if err := s.drafts.Discard(uid); err != nil {
		s.log.Warn("discarding draft after save", "error", err)
	}

	writeJSON(w, http.StatusOK, workout)
}

// sanitizeWorkout clamps set inputs and renumbers each exercise's sets.
func sanitizeWorkout(workout *models.Workout) {
	for i := range workout.Exercises {
		ex := &workout.Exercises[i]
		for j := range ex.Sets {
			set := &ex.Sets[j]
			set.Weight = training.ClampWeight(set.Weight)
			set.Reps = training.ClampReps(set.Reps)
			if set.RIR != nil {
				rir := training.ClampRIR(*set.RIR)
				set.RIR = &rir
			}
			if set.ID == uuid.Nil {
				set.ID = uuid.New()
			}
		}
		ex.Sets = training.Renumber(ex.Sets)
		if ex.ID == uuid.Nil {
			ex.ID = uuid.New()
		}
		ex.ExerciseOrder = i
	}
}

func (s *Server) handleDeleteWorkout(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}

	workoutID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid workout ID"})
		return
	}

	err = s.db.DeleteWorkout(r.Context(), workoutID, uid)
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "workout not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// newSessionRequest asks for an editable session seeded from the day's
// program. Date defaults to today.
type newSessionRequest struct {
	Date string `json:"date,omitempty"`
}

func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}

	var req newSessionRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
			return
		}
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.Parse("2006-01-02", req.Date)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid date (YYYY-MM-DD): " + err.Error()})
			return
		}
		date = parsed
	}

	programs, err := s.userPrograms(r, uid)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	day := models.DayTypeFor(date)
	workout := training.NewSession(models.ProgramForDay(day, programs), day, date, uid)
	writeJSON(w, http.StatusOK, workout)
}

// userPrograms returns custom programs first so they shadow defaults.
func (s *Server) userPrograms(r *http.Request, uid int) ([]models.DayProgram, error) {
	custom, err := s.db.ListPrograms(r.Context(), uid)
	if err != nil {
		return nil, err
	}
	return append(custom, models.DefaultPrograms...), nil
}

func (s *Server) handleGetDraft(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}

	workout, err := s.drafts.Get(uid)
	if errors.Is(err, draft.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no draft"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, workout)
}

func (s *Server) handleSaveDraft(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}

	var workout models.Workout
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if workout.ID == uuid.Nil {
		workout.ID = uuid.New()
	}
	workout.UserID = uid

	if err := s.drafts.Save(uid, workout); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, workout)
}

func (s *Server) handleDiscardDraft(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}

	if err := s.drafts.Discard(uid); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "discarded"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func parseTimeRange(r *http.Request) (start, end time.Time, err error) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	if startStr == "" {
		// Default: last 3 months of sessions
		end = time.Now()
		start = end.AddDate(0, -3, 0)
		return
	}

	start, err = time.Parse(time.RFC3339, startStr)
	if err != nil {
		start, err = time.Parse("2006-01-02", startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	}

	if endStr == "" {
		end = time.Now()
	} else {
		end, err = time.Parse(time.RFC3339, endStr)
		if err != nil {
			end, err = time.Parse("2006-01-02", endStr)
			if err != nil {
				return time.Time{}, time.Time{}, err
			}
			// End of day for date-only
			end = end.Add(24 * time.Hour)
		}
	}
	return
}
