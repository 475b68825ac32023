package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// TestHandleMeDefault verifies the /api/v1/me endpoint returns the dev user
// identity when no identity middleware is active.
func TestHandleMeDefault(t *testing.T) {
	s := &Server{}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	rec := httptest.NewRecorder()

	s.handleMe(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var info UserInfo
	if err := json.NewDecoder(rec.Body).Decode(&info); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if info.Login != "local" {
		t.Errorf("login = %q, want %q", info.Login, "local")
	}
	if info.DisplayName != "Local Dev User" {
		t.Errorf("display_name = %q, want %q", info.DisplayName, "Local Dev User")
	}
}

// TestHandleMeWithIdentity verifies the /api/v1/me endpoint returns the
// identity stored in the request context.
func TestHandleMeWithIdentity(t *testing.T) {
	s := &Server{}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	ctx := context.WithValue(req.Context(), userInfoKey, UserInfo{Login: "alice@example.com", DisplayName: "Alice"})
	req = req.WithContext(ctx)
	rec := httptest.NewRecorder()

	s.handleMe(rec, req)

	var info UserInfo
	if err := json.NewDecoder(rec.Body).Decode(&info); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if info.Login != "alice@example.com" {
		t.Errorf("login = %q, want %q", info.Login, "alice@example.com")
	}
	if info.DisplayName != "Alice" {
		t.Errorf("display_name = %q, want %q", info.DisplayName, "Alice")
	}
}

// TestHandlePyramidPreview verifies the preview endpoint generates the
// rep sequence and numbered sets without touching storage.
func TestHandlePyramidPreview(t *testing.T) {
	s := &Server{}
	body := `{"scheme":"ascending-descending","total_sets":7,"max_reps":10}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/pyramid/preview", strings.NewReader(body))
	rec := httptest.NewRecorder()

	s.handlePyramidPreview(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Reps []int `json:"reps"`
		Sets []struct {
			SetNumber int    `json:"set_number"`
			Reps      int    `json:"reps"`
			PyramidID string `json:"pyramid_id"`
		} `json:"sets"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}

	wantReps := []int{3, 5, 8, 10, 8, 5, 3}
	if len(resp.Reps) != len(wantReps) {
		t.Fatalf("reps = %v, want %v", resp.Reps, wantReps)
	}
	for i := range wantReps {
		if resp.Reps[i] != wantReps[i] {
			t.Errorf("reps[%d] = %d, want %d", i, resp.Reps[i], wantReps[i])
		}
	}
	if len(resp.Sets) != 7 {
		t.Fatalf("got %d sets, want 7", len(resp.Sets))
	}
	for i, set := range resp.Sets {
		if set.SetNumber != i+1 {
			t.Errorf("set %d numbered %d", i, set.SetNumber)
		}
		if set.PyramidID != resp.Sets[0].PyramidID {
			t.Error("sets do not share a pyramid ID")
		}
	}
}

// TestHandlePyramidPreviewEditedReps verifies that a hand-edited rep
// sequence overrides generation.
func TestHandlePyramidPreviewEditedReps(t *testing.T) {
	s := &Server{}
	body := `{"reps":[2,4,6],"rest_between_sets_sec":90}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/pyramid/preview", strings.NewReader(body))
	rec := httptest.NewRecorder()

	s.handlePyramidPreview(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Reps []int `json:"reps"`
		Sets []struct {
			Reps        int  `json:"reps"`
			RestTimeSec *int `json:"rest_time_sec"`
		} `json:"sets"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(resp.Sets) != 3 || resp.Sets[1].Reps != 4 {
		t.Errorf("sets = %+v, want the edited sequence", resp.Sets)
	}
	if resp.Sets[0].RestTimeSec == nil || *resp.Sets[0].RestTimeSec != 90 {
		t.Errorf("rest not applied: %+v", resp.Sets[0])
	}
	if resp.Sets[2].RestTimeSec != nil {
		t.Error("final set should carry no rest")
	}
}

// TestHandlePyramidPreviewInvalid verifies the 400 on an unusable config.
func TestHandlePyramidPreviewInvalid(t *testing.T) {
	s := &Server{}
	req := httptest.NewRequest(http.MethodPost, "/api/v1/pyramid/preview", strings.NewReader(`{"scheme":"ascending"}`))
	rec := httptest.NewRecorder()

	s.handlePyramidPreview(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

// TestHandleRMTable verifies the percentage ladder endpoint and its
// parameter validation.
func TestHandleRMTable(t *testing.T) {
	s := &Server{}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/rm-table?rm=100", nil)
	rec := httptest.NewRecorder()

	s.handleRMTable(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var rows []struct {
		Percent int     `json:"percent"`
		Weight  float64 `json:"weight_kg"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&rows); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(rows) != 10 || rows[0].Percent != 95 || rows[0].Weight != 95 {
		t.Errorf("rows = %+v", rows)
	}

	rec = httptest.NewRecorder()
	s.handleRMTable(rec, httptest.NewRequest(http.MethodGet, "/api/v1/rm-table?rm=abc", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad rm status = %d, want 400", rec.Code)
	}
}

// TestHandleWarmup verifies the warmup ramp endpoint.
func TestHandleWarmup(t *testing.T) {
	s := &Server{}
	req := httptest.NewRequest(http.MethodGet, "/api/v1/warmup?target=100", nil)
	rec := httptest.NewRecorder()

	s.handleWarmup(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var sets []struct {
		Weight float64 `json:"weight_kg"`
		Reps   int     `json:"reps"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&sets); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(sets) != 4 || sets[0].Weight != 40 || sets[0].Reps != 10 {
		t.Errorf("sets = %+v", sets)
	}

	rec = httptest.NewRecorder()
	s.handleWarmup(rec, httptest.NewRequest(http.MethodGet, "/api/v1/warmup?target=-5", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("negative target status = %d, want 400", rec.Code)
	}
}

// TestParseTimeRange verifies date parsing in both accepted formats and
// the inclusive end-of-day handling for date-only bounds.
func TestParseTimeRange(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/?start=2024-06-01&end=2024-06-15", nil)
	start, end, err := parseTimeRange(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start.Format("2006-01-02") != "2024-06-01" {
		t.Errorf("start = %v", start)
	}
	// Date-only end advances to the next midnight so the day is included.
	if end.Format("2006-01-02") != "2024-06-16" {
		t.Errorf("end = %v", end)
	}

	req = httptest.NewRequest(http.MethodGet, "/?start=2024-06-01T10:00:00Z", nil)
	start, _, err = parseTimeRange(req)
	if err != nil {
		t.Fatalf("RFC3339 start rejected: %v", err)
	}
	if start.Hour() != 10 {
		t.Errorf("start hour = %d, want 10", start.Hour())
	}

	req = httptest.NewRequest(http.MethodGet, "/?start=notadate", nil)
	if _, _, err := parseTimeRange(req); err == nil {
		t.Error("expected error for malformed start")
	}
}
