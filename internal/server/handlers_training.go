package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/claude/ironlog/internal/models"
	"github.com/claude/ironlog/internal/storage"
	"github.com/claude/ironlog/internal/training"
)

func (s *Server) handlePrograms(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}

	programs, err := s.userPrograms(r, uid)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, programs)
}

func (s *Server) handleSaveProgram(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}

	var p models.DayProgram
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if p.DayType == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "day_type is required"})
		return
	}
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.UserID = uid
	p.Custom = true

	if err := s.db.SaveProgram(r.Context(), p); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleDeleteProgram(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}

	programID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid program ID"})
		return
	}

	err = s.db.DeleteProgram(r.Context(), programID, uid)
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "program not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		writeJSON(w, http.StatusOK, models.Catalog)
		return
	}

	var filtered []models.MovementInfo
	for _, m := range models.Catalog {
		if m.Category == category {
			filtered = append(filtered, m)
		}
	}
	writeJSON(w, http.StatusOK, filtered)
}

func (s *Server) handleGoals(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}

	goals, err := s.db.ListGoals(r.Context(), uid)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, goals)
}

func (s *Server) handleSaveGoal(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}

	var g models.Goal
	if err := json.NewDecoder(r.Body).Decode(&g); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if g.ExerciseName == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "exercise_name is required"})
		return
	}
	if g.TargetWeight < 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "target_weight_kg must not be negative"})
		return
	}
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	g.UserID = uid

	if err := s.db.SaveGoal(r.Context(), g); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (s *Server) handleDeleteGoal(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}

	goalID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid goal ID"})
		return
	}

	err = s.db.DeleteGoal(r.Context(), goalID, uid)
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "goal not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleGoalProgress(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}

	goals, err := s.db.ListGoals(r.Context(), uid)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	workouts, err := s.db.ListWorkouts(r.Context(), uid)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, training.GoalProgress(goals, workouts))
}

func (s *Server) handleLastSession(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	name := r.URL.Query().Get("name")
	if name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name parameter required"})
		return
	}

	workouts, err := s.db.ListWorkouts(r.Context(), uid)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	result := training.LastSession(name, workouts)
	if result == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no completed history for exercise"})
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleRMHistory(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	name := r.URL.Query().Get("name")
	if name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name parameter required"})
		return
	}

	workouts, err := s.db.ListWorkouts(r.Context(), uid)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, training.RMHistory(workouts, name))
}

func (s *Server) handlePersonalRecords(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}

	workouts, err := s.db.ListWorkouts(r.Context(), uid)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, training.PersonalRecords(workouts))
}

func (s *Server) handleRMTable(w http.ResponseWriter, r *http.Request) {
	rm, err := strconv.ParseFloat(r.URL.Query().Get("rm"), 64)
	if err != nil || rm <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "rm parameter must be a positive number"})
		return
	}
	writeJSON(w, http.StatusOK, training.RMReferenceTable(rm))
}

func (s *Server) handleWarmup(w http.ResponseWriter, r *http.Request) {
	target, err := strconv.ParseFloat(r.URL.Query().Get("target"), 64)
	if err != nil || target <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "target parameter must be a positive number"})
		return
	}
	writeJSON(w, http.StatusOK, training.WarmupSets(target, 1))
}

// pyramidPreviewRequest generates sets without persisting anything, so
// clients can show the rep sequence before committing. Reps overrides
// the generated sequence when present.
type pyramidPreviewRequest struct {
	training.PyramidConfig
	Reps        []int `json:"reps,omitempty"`
	StartNumber int   `json:"start_number,omitempty"`
}

func (s *Server) handlePyramidPreview(w http.ResponseWriter, r *http.Request) {
	var req pyramidPreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	reps := req.Reps
	if len(reps) == 0 {
		reps = training.GenerateReps(req.Scheme, req.TotalSets, req.MaxReps)
	}
	if len(reps) == 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "total_sets and max_reps must be positive"})
		return
	}

	start := req.StartNumber
	if start < 1 {
		start = 1
	}
	sets := training.BuildSets(reps, req.PyramidConfig, start)
	writeJSON(w, http.StatusOK, map[string]any{
		"reps": reps,
		"sets": sets,
	})
}
