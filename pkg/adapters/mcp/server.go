package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/aretw0/cellsweep"
	"github.com/aretw0/cellsweep/pkg/grid"
	"github.com/aretw0/cellsweep/pkg/registry"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	// MaxGenerations bounds a single advance call.
	MaxGenerations = 10000

	// MaxCellUpdates bounds generations times grid cells for a single advance call.
	MaxCellUpdates = 1 << 26
)

// AdvanceResponse is the structured result of the advance tool.
type AdvanceResponse struct {
	Grid        string   `json:"grid" jsonschema_description:"Resulting grid, one row per line, '*' alive and '-' empty"`
	Rows        []string `json:"rows" jsonschema_description:"Resulting grid rows"`
	Generations int      `json:"generations" jsonschema_description:"Number of generations advanced"`
	Population  int      `json:"population" jsonschema_description:"Live cells in the resulting grid"`
}

// PatternResponse is the structured result of the get_pattern tool.
type PatternResponse struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Grid        string `json:"grid"`
	Generations int    `json:"generations"`
}

// Server exposes stateless Game of Life tools over the Model Context Protocol.
type Server struct {
	patterns  *registry.Registry
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(patterns *registry.Registry) *Server {
	if patterns == nil {
		patterns = registry.Builtin()
	}
	s := &Server{
		patterns:  patterns,
		mcpServer: server.NewMCPServer("cellsweep-mcp", strings.TrimSpace(cellsweep.Version)),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// ServeSSE starts the server on the given port using SSE and blocks until
// ctx is cancelled or the listener fails.
func (s *Server) ServeSSE(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	baseURL := fmt.Sprintf("http://localhost:%d", port)

	sseServer := server.NewSSEServer(s.mcpServer, server.WithBaseURL(baseURL))

	mux := http.NewServeMux()
	mux.Handle("/sse", corsMiddleware(sseServer.SSEHandler()))
	mux.Handle("/message", corsMiddleware(sseServer.MessageHandler()))

	httpServer := &http.Server{
		Addr:    addr,
		Handler: mux,
	}

	serverErrors := make(chan error, 1)
	go func() {
		slog.Info("MCP Server listening (SSE)", "address", addr)
		serverErrors <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		slog.Info("Shutdown signal received, stopping MCP server")
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
		return nil
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (s *Server) registerTools() {
	// TOOL: advance
	advanceTool := mcp.NewTool("advance",
		mcp.WithDescription("Advance a toroidal Game of Life grid by a number of generations."),
		mcp.WithString("grid", mcp.Required(), mcp.Description("Grid text: one row per line, '*' alive, '-' empty")),
		mcp.WithNumber("generations", mcp.Description("Generations to advance (default 1)")),
		mcp.WithOutputSchema[AdvanceResponse](),
	)
	s.mcpServer.AddTool(advanceTool, mcp.NewStructuredToolHandler(s.handleAdvance))

	// TOOL: get_pattern
	patternTool := mcp.NewTool("get_pattern",
		mcp.WithDescription("Get a built-in pattern as grid text."),
		mcp.WithString("name", mcp.Required(), mcp.Description("Pattern name, see list_patterns")),
		mcp.WithOutputSchema[PatternResponse](),
	)
	s.mcpServer.AddTool(patternTool, mcp.NewStructuredToolHandler(s.handleGetPattern))

	// TOOL: list_patterns
	s.mcpServer.AddTool(mcp.NewTool("list_patterns",
		mcp.WithDescription("List the names of the built-in patterns."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return mcp.NewToolResultText(strings.Join(s.patterns.Names(), "\n")), nil
	})
}

func (s *Server) handleAdvance(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (AdvanceResponse, error) {
	n := 1
	if raw, present := args["generations"]; present {
		v, ok := raw.(float64)
		if !ok || v != math.Trunc(v) || v < 0 || v > MaxGenerations {
			return AdvanceResponse{}, fmt.Errorf("generations must be an integer in [0, %d]", MaxGenerations)
		}
		n = int(v)
	}

	// grid.Parse enforces grid.MaxCells.
	text, _ := args["grid"].(string)
	g, err := grid.Parse(text)
	if err != nil {
		return AdvanceResponse{}, fmt.Errorf("invalid grid: %w", err)
	}
	if cells := g.Height() * g.Width(); n > MaxCellUpdates/cells {
		return AdvanceResponse{}, fmt.Errorf("%d generations of a %dx%d grid exceed %d cell updates",
			n, g.Height(), g.Width(), MaxCellUpdates)
	}

	sim, err := cellsweep.New(g)
	if err != nil {
		return AdvanceResponse{}, err
	}
	if _, err := sim.Run(ctx, n); err != nil {
		return AdvanceResponse{}, fmt.Errorf("advance failed: %w", err)
	}

	final := sim.Grid()
	return AdvanceResponse{
		Grid:        final.String(),
		Rows:        final.Rows(),
		Generations: sim.Generation(),
		Population:  final.Population(),
	}, nil
}

func (s *Server) handleGetPattern(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (PatternResponse, error) {
	name, _ := args["name"].(string)
	p, err := s.patterns.Get(name)
	if err != nil {
		return PatternResponse{}, err
	}
	g, err := p.Grid()
	if err != nil {
		return PatternResponse{}, err
	}
	return PatternResponse{
		Name:        p.Name,
		Description: p.Description,
		Grid:        g.String(),
		Generations: p.Generations,
	}, nil
}
