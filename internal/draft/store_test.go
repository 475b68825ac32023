package draft

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/claude/ironlog/internal/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// TestSaveGetDiscard exercises the draft lifecycle: save, read back,
// overwrite, discard.
func TestSaveGetDiscard(t *testing.T) {
	s := openTestStore(t)

	w := models.Workout{
		ID:          uuid.New(),
		UserID:      1,
		Date:        time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		DayType:     models.Monday,
		SessionName: "Snatch Day",
		Exercises: []models.Exercise{{
			ID:   uuid.New(),
			Name: "Muscle Snatch",
			Sets: []models.Set{{ID: uuid.New(), SetNumber: 1, Weight: 50, Reps: 3}},
		}},
	}
	if err := s.Save(1, w); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := s.Get(1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != w.ID || got.SessionName != "Snatch Day" {
		t.Errorf("got %+v, want saved draft", got)
	}
	if len(got.Exercises) != 1 || got.Exercises[0].Sets[0].Weight != 50 {
		t.Errorf("exercises did not round-trip: %+v", got.Exercises)
	}

	// A second save replaces the first.
	w.SessionName = "Snatch Day (adjusted)"
	if err := s.Save(1, w); err != nil {
		t.Fatalf("second Save: %v", err)
	}
	got, err = s.Get(1)
	if err != nil {
		t.Fatalf("Get after overwrite: %v", err)
	}
	if got.SessionName != "Snatch Day (adjusted)" {
		t.Errorf("overwrite did not take: %q", got.SessionName)
	}

	if err := s.Discard(1); err != nil {
		t.Fatalf("Discard: %v", err)
	}
	if _, err := s.Get(1); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after discard = %v, want ErrNotFound", err)
	}
}

// TestDraftsPerUser checks that drafts are isolated by user.
func TestDraftsPerUser(t *testing.T) {
	s := openTestStore(t)

	if err := s.Save(1, models.Workout{ID: uuid.New(), UserID: 1, SessionName: "Push Day"}); err != nil {
		t.Fatalf("Save user 1: %v", err)
	}
	if _, err := s.Get(2); !errors.Is(err, ErrNotFound) {
		t.Errorf("user 2 Get = %v, want ErrNotFound", err)
	}
	if err := s.Discard(2); err != nil {
		t.Errorf("Discard with no draft = %v, want nil", err)
	}
	if got, err := s.Get(1); err != nil || got.SessionName != "Push Day" {
		t.Errorf("user 1 draft disturbed: %+v, %v", got, err)
	}
}
