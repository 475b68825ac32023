package mcp

import (
	"context"

	"github.com/claude/ironlog/internal/models"
	"github.com/claude/ironlog/internal/storage"
)

// DataSource abstracts the data layer for MCP tools. Both *storage.DB
// (local) and HTTPClient (remote via REST API) satisfy this interface.
// Tools load full hydrated histories and run the training analytics
// in-process, so the surface stays small.
type DataSource interface {
	ListWorkouts(ctx context.Context, userID int) ([]models.Workout, error)
	ListGoals(ctx context.Context, userID int) ([]models.Goal, error)
}

// Compile-time check: *storage.DB satisfies DataSource.
var _ DataSource = (*storage.DB)(nil)
