// Podigee MCP Server - Podcast Analytics for Tool-Calling Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/podigee/mcp-server

// Package mcpserver exposes the tool registry over the Model Context Protocol.
//
// Tool definitions are derived from tools.Registry, so the MCP surface and the
// HTTP surface always list the same operations with the same parameters.
// Every tool result is a single text content block holding the Markdown report.
package mcpserver

import (
	"context"
	"fmt"
	"io"

	"github.com/goccy/go-json"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/podigee/mcp-server/internal/logging"
	"github.com/podigee/mcp-server/internal/tools"
)

// ServerName is announced to clients during initialization.
const ServerName = "podigee-mcp-server"

// Server hosts the registered tools on an MCP server.
type Server struct {
	mcp      *server.MCPServer
	registry *tools.Registry
}

// New creates an MCP server with every tool of registry.
func New(registry *tools.Registry, version string) *Server {
	s := &Server{
		mcp: server.NewMCPServer(ServerName, version,
			server.WithToolCapabilities(false),
			server.WithRecovery(),
		),
		registry: registry,
	}

	for _, t := range registry.Tools() {
		s.mcp.AddTool(toolDefinition(t), s.handler(t.Name))
	}
	return s
}

// MCP returns the underlying mcp-go server.
func (s *Server) MCP() *server.MCPServer {
	return s.mcp
}

// ServeStdio runs the protocol over in/out until ctx is canceled or in is closed.
func (s *Server) ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error {
	stdio := server.NewStdioServer(s.mcp)
	stdio.SetErrorLogger(logging.NewStdLogger("mcp-stdio"))
	return stdio.Listen(ctx, in, out)
}

// handler adapts a registry tool to an mcp-go tool handler
func (s *Server) handler(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		ctx = logging.ContextWithNewCorrelationID(ctx)

		raw, err := json.Marshal(req.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid arguments: %v", err)), nil
		}

		text, err := s.registry.Call(ctx, name, raw)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(text), nil
	}
}

// toolDefinition converts a registry tool into its MCP schema
func toolDefinition(t tools.Tool) mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(t.Description)}

	for _, p := range t.Params {
		props := []mcp.PropertyOption{mcp.Description(p.Description)}
		if p.Required {
			props = append(props, mcp.Required())
		}

		switch p.Type {
		case tools.TypeNumber:
			opts = append(opts, mcp.WithNumber(p.Name, props...))
		case tools.TypeBoolean:
			opts = append(opts, mcp.WithBoolean(p.Name, props...))
		case tools.TypeArray:
			props = append(props, mcp.Items(map[string]any{"type": "string"}))
			opts = append(opts, mcp.WithArray(p.Name, props...))
		default:
			opts = append(opts, mcp.WithString(p.Name, props...))
		}
	}

	return mcp.NewTool(t.Name, opts...)
}
