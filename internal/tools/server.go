// Package tools exposes the scheduling engine over the Model Context
// Protocol so an assistant can plan weeks, inspect availability, and manage
// memories on the user's behalf.
package tools

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/julianstephens/lifeos/internal/calendar"
	"github.com/julianstephens/lifeos/internal/config"
	"github.com/julianstephens/lifeos/internal/constants"
	"github.com/julianstephens/lifeos/internal/memory"
	"github.com/julianstephens/lifeos/internal/scheduler"
)

// Deps are the collaborators every tool handler closes over.
type Deps struct {
	Config    *config.Config
	Calendar  calendar.Client
	Memory    memory.Store
	Scheduler *scheduler.Scheduler
	UserID    string
}

// NewServer builds the MCP server with every tool registered.
func NewServer(deps Deps) *server.MCPServer {
	s := server.NewMCPServer(
		constants.AppName,
		constants.Version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	RegisterScheduleTools(s, deps)
	RegisterMemoryTools(s, deps)
	return s
}

// Serve runs the server over stdio until the client disconnects.
func Serve(deps Deps) error {
	return server.ServeStdio(NewServer(deps))
}
