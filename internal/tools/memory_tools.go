package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/julianstephens/lifeos/internal/models"
)

// AddMemoryArgs describe a note to remember.
type AddMemoryArgs struct {
	Content string `json:"content" jsonschema:"required,description=The note to remember"`
	Kind    string `json:"kind" jsonschema:"default=context,enum=preference,enum=fact,enum=feedback,enum=context,description=What kind of note this is"`
}

// SearchMemoryArgs describe a memory lookup.
type SearchMemoryArgs struct {
	Query string `json:"query" jsonschema:"required,description=Substring to search memory contents for"`
	Limit int    `json:"limit" jsonschema:"description=Maximum results to return,default=10"`
}

// RegisterMemoryTools registers the memory tools.
func RegisterMemoryTools(s *server.MCPServer, deps Deps) {
	s.AddTool(mcp.NewTool("add_memory",
		mcp.WithDescription("Remember a note about the user for future scheduling conversations: a preference, a fact, feedback on a past week, or free-form context."),
		mcp.WithInputSchema[AddMemoryArgs](),
	), wrapAddMemory(deps))

	s.AddTool(mcp.NewTool("search_memory",
		mcp.WithDescription("Search previously stored notes about the user, newest first."),
		mcp.WithInputSchema[SearchMemoryArgs](),
	), wrapSearchMemory(deps))
}

type memoryReport struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	Kind      string `json:"kind"`
	CreatedAt string `json:"created_at"`
}

func wrapAddMemory(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args AddMemoryArgs
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if args.Content == "" {
			return mcp.NewToolResultError("content is required"), nil
		}

		m, err := deps.Memory.Add(ctx, deps.UserID, args.Content, models.MemoryKind(args.Kind))
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to store memory: %v", err)), nil
		}
		return mcp.NewToolResultText(fmt.Sprintf("Remembered (%s): %s", m.Kind, m.Content)), nil
	}
}

func wrapSearchMemory(deps Deps) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args SearchMemoryArgs
		if err := request.BindArguments(&args); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}
		if args.Query == "" {
			return mcp.NewToolResultError("query is required"), nil
		}

		memories, err := deps.Memory.Search(ctx, deps.UserID, args.Query, args.Limit)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to search memories: %v", err)), nil
		}
		reports := make([]memoryReport, 0, len(memories))
		for _, m := range memories {
			reports = append(reports, memoryReport{
				ID:        m.ID,
				Content:   m.Content,
				Kind:      string(m.Kind),
				CreatedAt: m.CreatedAt.Format(time.RFC3339),
			})
		}
		return jsonResult(map[string]any{"memories": reports})
	}
}
