// Podigee MCP Server - Podcast Analytics for Tool-Calling Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/podigee/mcp-server

package main

import (
	"fmt"
	"io"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/podigee/mcp-server/internal/api"
	"github.com/podigee/mcp-server/internal/config"
	"github.com/podigee/mcp-server/internal/mcpserver"
	"github.com/podigee/mcp-server/internal/report"
	"github.com/podigee/mcp-server/internal/supervisor/services"
	"github.com/podigee/mcp-server/internal/tools"
	"github.com/podigee/mcp-server/internal/upstream"
)

// app holds the transport-independent components.
type app struct {
	version  string
	apiKey   bool
	breaker  *upstream.CircuitBreakerClient // nil when disabled
	registry *tools.Registry
}

// newApp builds the upstream client, renderer, service and registry.
func newApp(cfg *config.Config, version string) (*app, error) {
	client := upstream.NewClient(&cfg.Podigee)

	a := &app{version: version, apiKey: cfg.HasAPIKey()}

	var podigeeAPI upstream.API = client
	if cfg.Podigee.CircuitBreaker {
		a.breaker = upstream.NewCircuitBreakerClient(client)
		podigeeAPI = a.breaker
	}

	renderer, err := report.NewRenderer(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load report templates: %w", err)
	}

	a.registry = tools.NewRegistry(tools.NewService(podigeeAPI, renderer, nil))
	return a, nil
}

// transportService returns the supervised service for the configured transport.
func (a *app) transportService(cfg *config.Config, in io.Reader, out io.Writer) suture.Service {
	if cfg.IsHTTPTransport() {
		server := a.httpServer(cfg)
		return services.NewHTTPServerService(server, server.Addr, 10*time.Second)
	}
	return services.NewStdioService(mcpserver.New(a.registry, a.version), in, out)
}

// httpServer builds the HTTP transport server.
func (a *app) httpServer(cfg *config.Config) *http.Server {
	handlerCfg := api.HandlerConfig{
		Registry:         a.registry,
		Version:          a.version,
		APIKeyConfigured: a.apiKey,
	}
	if a.breaker != nil {
		handlerCfg.Breaker = a.breaker
	}

	router := api.NewRouter(
		api.NewHandler(handlerCfg),
		api.NewChiMiddleware(api.NewChiMiddlewareConfig(cfg.Security)),
	)

	return &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}
}
