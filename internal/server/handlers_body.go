package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/claude/ironlog/internal/models"
	"github.com/claude/ironlog/internal/storage"
	"github.com/claude/ironlog/internal/training"
)

func (s *Server) handleQueryBodyWeight(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	start, end, err := parseTimeRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	readings, err := s.db.QueryBodyWeight(r.Context(), start, end, uid)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, readings)
}

func (s *Server) handleBodyWeightStats(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	start, end, err := parseTimeRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	readings, err := s.db.QueryBodyWeight(r.Context(), start, end, uid)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, training.WeightStats(readings))
}

func (s *Server) handleInsertBodyWeight(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}

	var bw models.BodyWeight
	if err := json.NewDecoder(r.Body).Decode(&bw); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if bw.Weight <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "weight_kg must be positive"})
		return
	}
	if bw.ID == uuid.Nil {
		bw.ID = uuid.New()
	}
	bw.UserID = uid

	if err := s.db.InsertBodyWeight(r.Context(), bw); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, bw)
}

func (s *Server) handleDeleteBodyWeight(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid reading ID"})
		return
	}

	err = s.db.DeleteBodyWeight(r.Context(), id, uid)
	if errors.Is(err, storage.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "reading not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleQueryMeasurements(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	start, end, err := parseTimeRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	measurementType := models.MeasurementType(r.URL.Query().Get("type"))
	if measurementType != "" && !models.ValidMeasurementType(measurementType) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown measurement type"})
		return
	}

	readings, err := s.db.QueryMeasurements(r.Context(), start, end, uid, measurementType)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, readings)
}

func (s *Server) handleInsertMeasurement(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}

	var m models.Measurement
	if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	if !models.ValidMeasurementType(m.Type) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown measurement type"})
		return
	}
	if m.Value <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "value_cm must be positive"})
		return
	}
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.UserID = uid

	if err := s.db.InsertMeasurement(r.Context(), m); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, m)
}

func (s *Server) handleQueryWellness(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}
	start, end, err := parseTimeRange(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	entries, err := s.db.QueryWellness(r.Context(), start, end, uid)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleUpsertWellness(w http.ResponseWriter, r *http.Request) {
	uid, ok := mustUserID(w, r)
	if !ok {
		return
	}

	var entry models.DailyWellness
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}
	for _, score := range []int{entry.SleepQuality, entry.EnergyLevel, entry.MuscleSoreness} {
		if score < 1 || score > 5 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "scores must be between 1 and 5"})
			return
		}
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	entry.UserID = uid

	if err := s.db.UpsertWellness(r.Context(), entry); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, entry)
}
