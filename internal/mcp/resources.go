package mcp

import (
	"context"
	"encoding/json"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/claude/ironlog/internal/training"
)

func (h *handlers) recentWorkouts(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -14)

	workouts, err := h.workoutsInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(workouts)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (h *handlers) trainingStatus(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uid := UserIDFromContext(ctx)

	workouts, err := h.ds.ListWorkouts(ctx, uid)
	if err != nil {
		return nil, err
	}

	goals, err := h.ds.ListGoals(ctx, uid)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	status := map[string]any{
		"streaks":         training.Streaks(workouts, now),
		"deload":          training.Deload(workouts),
		"week_comparison": training.CompareWeeks(workouts, now),
		"goal_progress":   training.GoalProgress(goals, workouts),
	}

	data, err := json.Marshal(status)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
