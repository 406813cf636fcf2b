// Package mcp exposes the splice engine as an MCP server so that agents can
// solve traces as a tool call.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aretw0/splice"
	"github.com/aretw0/splice/pkg/domain"
)

// Solver defines the engine surface required by the MCP server.
type Solver interface {
	Solve(raw string) (*domain.Completion, error)
}

// Server wraps the splice engine and exposes it as an MCP Server.
type Server struct {
	solver    Solver
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP Server instance.
func NewServer(solver Solver) *Server {
	s := &Server{
		solver:    solver,
		mcpServer: server.NewMCPServer("splice-mcp", strings.TrimSpace(splice.Version)),
	}
	s.registerTools()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	solveTool := mcp.NewTool("solve_trace",
		mcp.WithDescription("Find the minimum-cost extension of the transducer that reproduces a binary trace. "+
			"The trace is a string over {0,1}; non-binary characters are ignored and the filtered length must be a multiple of 3."),
		mcp.WithString("trace", mcp.Required(), mcp.Description("The raw trace, e.g. \"001_010_010\"")),
	)
	s.mcpServer.AddTool(solveTool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		raw, err := request.RequireString("trace")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		completion, err := s.solver.Solve(raw)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("solve failed: %v", err)), nil
		}

		jsonBytes, _ := json.Marshal(completion)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})
}
