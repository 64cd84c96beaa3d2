// Podigee MCP Server - Podcast Analytics for Tool-Calling Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/podigee/mcp-server

package services

import (
	"context"
	"io"

	"github.com/thejerf/suture/v4"

	"github.com/podigee/mcp-server/internal/logging"
)

// StdioServer speaks MCP over a reader/writer pair.
// Implemented by *mcpserver.Server.
type StdioServer interface {
	ServeStdio(ctx context.Context, in io.Reader, out io.Writer) error
}

// StdioService runs the MCP stdio transport as a supervised service.
//
// The client owns the process: once it closes stdin there is nothing to
// restart, so Serve terminates the supervisor tree.
type StdioService struct {
	server StdioServer
	in     io.Reader
	out    io.Writer
}

// NewStdioService creates a stdio transport over in and out.
func NewStdioService(server StdioServer, in io.Reader, out io.Writer) *StdioService {
	return &StdioService{server: server, in: in, out: out}
}

// Serve implements suture.Service.
func (s *StdioService) Serve(ctx context.Context) error {
	logging.Info().Msg("MCP stdio transport started")

	err := s.server.ServeStdio(ctx, s.in, s.out)
	if ctx.Err() != nil {
		return ctx.Err()
	}

	if err != nil {
		logging.Error().Err(err).Msg("MCP stdio transport failed")
	} else {
		logging.Info().Msg("MCP client closed the connection")
	}
	return suture.ErrTerminateSupervisorTree
}

// String identifies the service in supervisor logs.
func (s *StdioService) String() string {
	return "mcp-stdio"
}
