// Podigee MCP Server - Podcast Analytics for Tool-Calling Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/podigee/mcp-server

package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/thejerf/suture/v4"

	"github.com/podigee/mcp-server/internal/config"
	"github.com/podigee/mcp-server/internal/logging"
	"github.com/podigee/mcp-server/internal/metrics"
	"github.com/podigee/mcp-server/internal/supervisor"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Logs go to stderr; stdout carries the MCP stdio protocol.
	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})

	logging.Info().
		Str("version", version).
		Str("transport", cfg.Server.Transport).
		Str("base_url", cfg.Podigee.BaseURL).
		Str("api_key", logging.SanitizeToken(cfg.Podigee.APIKey)).
		Bool("circuit_breaker", cfg.Podigee.CircuitBreaker).
		Msg("Starting Podigee MCP server")

	for _, warning := range cfg.Warnings() {
		logging.Warn().Msg(warning)
	}
	metrics.SetAppInfo(version, cfg.Server.Transport)

	app, err := newApp(cfg, version)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize server")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}
	tree.AddTransportService(app.transportService(cfg, os.Stdin, os.Stdout))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	if err := <-tree.ServeBackground(ctx); err != nil && !isCleanShutdown(err) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Server stopped")
}

// isCleanShutdown reports whether the tree stopped by signal or end of input.
func isCleanShutdown(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, suture.ErrTerminateSupervisorTree)
}
