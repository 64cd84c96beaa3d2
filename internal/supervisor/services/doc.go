// Podigee MCP Server - Podcast Analytics for Tool-Calling Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/podigee/mcp-server

/*
Package services provides suture.Service wrappers for the tool transports.

  - StdioService: MCP over stdin/stdout; terminates the tree on end of input
  - HTTPServerService: *http.Server with graceful shutdown

Both implement fmt.Stringer so suture can name them in its event log.
*/
package services
