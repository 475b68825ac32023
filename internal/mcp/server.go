package mcp

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type contextKey int

const userIDKey contextKey = iota

// UserIDFromContext extracts the user ID injected by the transport layer.
func UserIDFromContext(ctx context.Context) int {
	if id, ok := ctx.Value(userIDKey).(int); ok {
		return id
	}
	return 1
}

// WithUserID returns a context with the given user ID.
func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("IronLog", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("IronLog strength training server. Query workouts, weekly volume, training streaks, deload status, progression suggestions, personal records, and goals. All data is scoped to the authenticated user. Weights are kilograms."),
	)

	h := &handlers{ds: ds, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolGetWorkouts, Handler: h.getWorkouts},
		server.ServerTool{Tool: toolGetWeeklyVolume, Handler: h.getWeeklyVolume},
		server.ServerTool{Tool: toolGetDeloadStatus, Handler: h.getDeloadStatus},
		server.ServerTool{Tool: toolGetTrainingStreaks, Handler: h.getTrainingStreaks},
		server.ServerTool{Tool: toolGetProgressionSuggestion, Handler: h.getProgressionSuggestion},
		server.ServerTool{Tool: toolCompareSessions, Handler: h.compareSessions},
		server.ServerTool{Tool: toolGetGoalProgress, Handler: h.getGoalProgress},
		server.ServerTool{Tool: toolGetPersonalRecords, Handler: h.getPersonalRecords},
		server.ServerTool{Tool: toolGeneratePyramid, Handler: h.generatePyramid},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resRecentWorkouts, Handler: h.recentWorkouts},
		server.ServerResource{Resource: resTrainingStatus, Handler: h.trainingStatus},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}

// --- Resource definitions ---

var resRecentWorkouts = mcp.NewResource(
	"ironlog://recent_workouts",
	"Recent Workouts",
	mcp.WithResourceDescription("Workouts from the last 14 days with exercises and sets"),
	mcp.WithMIMEType("application/json"),
)

var resTrainingStatus = mcp.NewResource(
	"ironlog://training_status",
	"Training Status",
	mcp.WithResourceDescription("Current and best training streaks, deload status, this week versus last week, and goal progress"),
	mcp.WithMIMEType("application/json"),
)
