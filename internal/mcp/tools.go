package mcp

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/claude/ironlog/internal/models"
	"github.com/claude/ironlog/internal/training"
)

// defaultTimeRange returns start/end defaulting to the last 30 days.
func defaultTimeRange(startStr, endStr string) (time.Time, time.Time, error) {
	var start, end time.Time
	var err error

	if endStr != "" {
		end, err = parseFlexTime(endStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		end = time.Now()
	}

	if startStr != "" {
		start, err = parseFlexTime(startStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
	} else {
		start = end.AddDate(0, 0, -30)
	}

	return start, end, nil
}

func parseFlexTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse("2006-01-02", s)
	if err == nil {
		return t, nil
	}
	return time.Time{}, err
}

// workoutsInRange loads the user's full history and filters to the
// requested window. Drafts are kept so callers can see work in flight;
// the analytics functions themselves skip incomplete workouts.
func (h *handlers) workoutsInRange(ctx context.Context, start, end time.Time) ([]models.Workout, error) {
	uid := UserIDFromContext(ctx)
	workouts, err := h.ds.ListWorkouts(ctx, uid)
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Workout, 0, len(workouts))
	for _, w := range workouts {
		if w.Date.Before(start) || w.Date.After(end) {
			continue
		}
		filtered = append(filtered, w)
	}
	return filtered, nil
}

// --- Tool definitions ---

var toolGetWorkouts = mcp.NewTool("get_workouts",
	mcp.WithDescription("Query strength training workouts with exercises and sets. Each set carries weight (kg), reps, and optional RIR (reps in reserve)."),
	mcp.WithString("start", mcp.Description("Start date (ISO 8601 or YYYY-MM-DD). Defaults to 30 days ago.")),
	mcp.WithString("end", mcp.Description("End date (ISO 8601 or YYYY-MM-DD). Defaults to now.")),
)

var toolGetWeeklyVolume = mcp.NewTool("get_weekly_volume",
	mcp.WithDescription("Total training volume (weight x reps over completed sets) per ISO week, oldest first."),
	mcp.WithString("start", mcp.Description("Start date. Defaults to 30 days ago.")),
	mcp.WithString("end", mcp.Description("End date. Defaults to now.")),
)

var toolGetDeloadStatus = mcp.NewTool("get_deload_status",
	mcp.WithDescription("Whether a deload (recovery) week is due, based on sustained volume over the last four training weeks."),
)

var toolGetTrainingStreaks = mcp.NewTool("get_training_streaks",
	mcp.WithDescription("Current and best consecutive-day training streaks."),
)

var toolGetProgressionSuggestion = mcp.NewTool("get_progression_suggestion",
	mcp.WithDescription("Progression recommendation for an exercise based on its most recent completed session: add weight when every set had 2+ reps in reserve, otherwise add a rep or repeat the load."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise name (case-insensitive, e.g. 'Bench Press')")),
)

var toolCompareSessions = mcp.NewTool("compare_sessions",
	mcp.WithDescription("Compare two workouts exercise by exercise: best set and completed volume per side, plus deltas. Use get_workouts to find workout IDs."),
	mcp.WithString("workout_a", mcp.Required(), mcp.Description("First workout ID (UUID)")),
	mcp.WithString("workout_b", mcp.Required(), mcp.Description("Second workout ID (UUID)")),
)

var toolGetGoalProgress = mcp.NewTool("get_goal_progress",
	mcp.WithDescription("Progress toward each target-weight goal, measured against the heaviest completed set of the exercise."),
)

var toolGetPersonalRecords = mcp.NewTool("get_personal_records",
	mcp.WithDescription("Per-exercise personal records: heaviest completed set, estimated 1RM (Epley), and best single-session volume."),
)

var toolGeneratePyramid = mcp.NewTool("generate_pyramid",
	mcp.WithDescription("Generate a pyramid rep sequence. Ascending ramps to max reps; ascending-descending peaks at the middle set and mirrors down."),
	mcp.WithString("scheme", mcp.Description("Pyramid shape. Defaults to 'ascending-descending'."), mcp.Enum("ascending", "ascending-descending")),
	mcp.WithString("total_sets", mcp.Required(), mcp.Description("Number of sets in one round")),
	mcp.WithString("max_reps", mcp.Required(), mcp.Description("Reps at the peak set")),
)

// --- Tool handlers ---

func (h *handlers) getWorkouts(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := defaultTimeRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	workouts, err := h.workoutsInRange(ctx, start, end)
	if err != nil {
		h.log.Error("mcp get_workouts", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(workouts)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getWeeklyVolume(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	start, end, err := defaultTimeRange(req.GetString("start", ""), req.GetString("end", ""))
	if err != nil {
		return mcp.NewToolResultError("invalid date format: " + err.Error()), nil
	}

	workouts, err := h.workoutsInRange(ctx, start, end)
	if err != nil {
		h.log.Error("mcp get_weekly_volume", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(training.WeeklyVolume(workouts))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getDeloadStatus(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid := UserIDFromContext(ctx)
	workouts, err := h.ds.ListWorkouts(ctx, uid)
	if err != nil {
		h.log.Error("mcp get_deload_status", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(training.Deload(workouts))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getTrainingStreaks(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid := UserIDFromContext(ctx)
	workouts, err := h.ds.ListWorkouts(ctx, uid)
	if err != nil {
		h.log.Error("mcp get_training_streaks", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(training.Streaks(workouts, time.Now()))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getProgressionSuggestion(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercise, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}

	uid := UserIDFromContext(ctx)
	workouts, err := h.ds.ListWorkouts(ctx, uid)
	if err != nil {
		h.log.Error("mcp get_progression_suggestion", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	last := training.LastSession(exercise, workouts)
	if last == nil {
		return mcp.NewToolResultError("no completed history for exercise: " + exercise), nil
	}

	result, err := mcp.NewToolResultJSON(last)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) compareSessions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	aStr, err := req.RequireString("workout_a")
	if err != nil {
		return mcp.NewToolResultError("workout_a parameter is required"), nil
	}
	bStr, err := req.RequireString("workout_b")
	if err != nil {
		return mcp.NewToolResultError("workout_b parameter is required"), nil
	}

	aID, err := uuid.Parse(aStr)
	if err != nil {
		return mcp.NewToolResultError("workout_a is not a valid UUID"), nil
	}
	bID, err := uuid.Parse(bStr)
	if err != nil {
		return mcp.NewToolResultError("workout_b is not a valid UUID"), nil
	}

	uid := UserIDFromContext(ctx)
	workouts, err := h.ds.ListWorkouts(ctx, uid)
	if err != nil {
		h.log.Error("mcp compare_sessions", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	var a, b *models.Workout
	for i := range workouts {
		switch workouts[i].ID {
		case aID:
			a = &workouts[i]
		case bID:
			b = &workouts[i]
		}
	}
	if a == nil {
		return mcp.NewToolResultError("workout_a not found"), nil
	}
	if b == nil {
		return mcp.NewToolResultError("workout_b not found"), nil
	}

	result, err := mcp.NewToolResultJSON(training.CompareSessions(*a, *b))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getGoalProgress(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid := UserIDFromContext(ctx)

	goals, err := h.ds.ListGoals(ctx, uid)
	if err != nil {
		h.log.Error("mcp get_goal_progress goals", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	workouts, err := h.ds.ListWorkouts(ctx, uid)
	if err != nil {
		h.log.Error("mcp get_goal_progress workouts", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(training.GoalProgress(goals, workouts))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getPersonalRecords(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	uid := UserIDFromContext(ctx)
	workouts, err := h.ds.ListWorkouts(ctx, uid)
	if err != nil {
		h.log.Error("mcp get_personal_records", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(training.PersonalRecords(workouts))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) generatePyramid(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	totalSetsStr, err := req.RequireString("total_sets")
	if err != nil {
		return mcp.NewToolResultError("total_sets parameter is required"), nil
	}
	maxRepsStr, err := req.RequireString("max_reps")
	if err != nil {
		return mcp.NewToolResultError("max_reps parameter is required"), nil
	}

	totalSets, err := strconv.Atoi(totalSetsStr)
	if err != nil || totalSets <= 0 {
		return mcp.NewToolResultError("total_sets must be a positive integer"), nil
	}
	maxReps, err := strconv.Atoi(maxRepsStr)
	if err != nil || maxReps <= 0 {
		return mcp.NewToolResultError("max_reps must be a positive integer"), nil
	}

	scheme := training.Scheme(req.GetString("scheme", string(training.SchemeAscendingDescending)))
	reps := training.GenerateReps(scheme, totalSets, maxReps)
	if reps == nil {
		return mcp.NewToolResultError("unable to generate a rep sequence"), nil
	}

	result, err := mcp.NewToolResultJSON(map[string]any{
		"scheme": scheme,
		"reps":   reps,
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
