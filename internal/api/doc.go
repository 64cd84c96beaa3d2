// Podigee MCP Server - Podcast Analytics for Tool-Calling Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/podigee/mcp-server

/*
Package api provides the optional HTTP transport for the tool operations.

Endpoints:

	GET  /api/v1/tools          list tool definitions
	POST /api/v1/tools/{name}   run a tool; body is the JSON arguments object
	GET  /api/v1/health/live    liveness probe
	GET  /api/v1/health/ready   readiness: API key configured, breaker not open
	GET  /metrics               Prometheus metrics

Every JSON endpoint answers with the APIResponse envelope. A tool call that
fails upstream still answers 200: the failure is part of the returned Markdown,
exactly as over MCP.

Middleware (go-chi ecosystem):
  - RequestIDWithLogging: X-Request-ID plus request and correlation IDs in logs
  - RealIP and Recoverer from chi/middleware
  - CORS via go-chi/cors, origins from security.cors_origins
  - Per-IP rate limiting via go-chi/httprate
  - PrometheusMetrics on the tool routes

Usage:

	handler := api.NewHandler(api.HandlerConfig{Registry: registry, Version: version})
	router := api.NewRouter(handler, api.NewChiMiddleware(api.NewChiMiddlewareConfig(cfg.Security)))
	srv := &http.Server{Addr: addr, Handler: router.SetupChi()}
*/
package api
