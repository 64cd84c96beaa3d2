// Podigee MCP Server - Podcast Analytics for Tool-Calling Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/podigee/mcp-server

/*
Package supervisor runs the tool transport under a suture v4 supervisor tree.

The tree has a single transport layer holding exactly one service: the MCP
stdio service (default) or the HTTP server service. A crashed HTTP server is
restarted with backoff. The stdio service terminates the whole tree when the
client closes stdin, which ends the process.

Supervisor events are logged through sutureslog on top of the zerolog-backed
slog handler from internal/logging.

Usage:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	tree.AddTransportService(services.NewStdioService(mcpServer, os.Stdin, os.Stdout))
	err = tree.Serve(ctx)
*/
package supervisor
