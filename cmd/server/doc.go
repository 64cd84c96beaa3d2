// Podigee MCP Server - Podcast Analytics for Tool-Calling Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/podigee/mcp-server

/*
Package main is the entry point of the Podigee MCP server.

The server exposes Podigee podcast analytics as tool operations to
tool-calling clients. Each tool call fetches from the Podigee REST API,
aggregates the payload and answers with a Markdown report.

# Application Architecture

	config (koanf) -> logging (zerolog)
	upstream.Client [-> upstream.CircuitBreakerClient]
	report.Renderer -> tools.Service -> tools.Registry
	SupervisorTree ("podigee-mcp-server")
	└── "transport-layer"
	    └── StdioService (mcpserver) or HTTPServerService (api)

# Configuration

	PODIGEE_API_KEY            API token sent in the Token header (required for data)
	PODIGEE_BASE_URL           default https://app.podigee.com/api/v1
	PODIGEE_TIMEOUT            per-request timeout, default 30s
	PODIGEE_REQUESTS_PER_SECOND  client-side throttle, 0 disables
	PODIGEE_CIRCUIT_BREAKER    default true
	MCP_TRANSPORT              stdio (default) or http
	HTTP_HOST, HTTP_PORT       HTTP transport listen address
	LOG_LEVEL, LOG_FORMAT      zerolog level and json|console

A missing API key is logged at startup and every tool call then reports the
failure as its result text.

# Signal Handling

SIGINT and SIGTERM cancel the supervisor tree. With the stdio transport the
process also exits when the client closes stdin.

# Example Usage

	export PODIGEE_API_KEY=your-token
	./podigee-mcp-server

	MCP_TRANSPORT=http HTTP_PORT=8080 ./podigee-mcp-server
	curl -X POST localhost:8080/api/v1/tools/list_podcasts
*/
package main
