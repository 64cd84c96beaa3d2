// Podigee MCP Server - Podcast Analytics for Tool-Calling Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/podigee/mcp-server

package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/thejerf/suture/v4"

	"github.com/podigee/mcp-server/internal/config"
	"github.com/podigee/mcp-server/internal/supervisor/services"
)

func testConfig(transport string) *config.Config {
	return &config.Config{
		Podigee: config.PodigeeConfig{
			APIKey:         "secret",
			BaseURL:        config.DefaultPodigeeBaseURL,
			Timeout:        5 * time.Second,
			CircuitBreaker: true,
		},
		Server: config.ServerConfig{
			Transport: transport,
			Host:      "127.0.0.1",
			Port:      9090,
			Timeout:   30 * time.Second,
		},
		Security: config.SecurityConfig{
			CORSOrigins:     []string{"*"},
			RateLimitReqs:   60,
			RateLimitWindow: time.Minute,
		},
	}
}

func TestNewApp_RegistersTools(t *testing.T) {
	a, err := newApp(testConfig(config.TransportStdio), "test")
	if err != nil {
		t.Fatalf("newApp() error: %v", err)
	}
	if got := len(a.registry.Tools()); got != 6 {
		t.Errorf("registered tools = %d, want 6", got)
	}
	if a.breaker == nil {
		t.Error("expected circuit breaker when enabled")
	}
	if !a.apiKey {
		t.Error("expected API key to be reported as configured")
	}
}

func TestNewApp_WithoutBreaker(t *testing.T) {
	cfg := testConfig(config.TransportStdio)
	cfg.Podigee.CircuitBreaker = false

	a, err := newApp(cfg, "test")
	if err != nil {
		t.Fatalf("newApp() error: %v", err)
	}
	if a.breaker != nil {
		t.Error("expected no circuit breaker when disabled")
	}
}

func TestTransportService(t *testing.T) {
	tests := []struct {
		transport string
		wantName  string
	}{
		{config.TransportStdio, "mcp-stdio"},
		{config.TransportHTTP, "http-transport"},
	}

	for _, tt := range tests {
		t.Run(tt.transport, func(t *testing.T) {
			cfg := testConfig(tt.transport)
			a, err := newApp(cfg, "test")
			if err != nil {
				t.Fatalf("newApp() error: %v", err)
			}
			svc := a.transportService(cfg, strings.NewReader(""), &bytes.Buffer{})
			if got := fmt.Sprint(svc); got != tt.wantName {
				t.Errorf("service = %q, want %q", got, tt.wantName)
			}
		})
	}
}

func TestTransportService_StdioType(t *testing.T) {
	cfg := testConfig(config.TransportStdio)
	a, err := newApp(cfg, "test")
	if err != nil {
		t.Fatalf("newApp() error: %v", err)
	}
	if _, ok := a.transportService(cfg, strings.NewReader(""), &bytes.Buffer{}).(*services.StdioService); !ok {
		t.Error("expected *services.StdioService for stdio transport")
	}
}

func TestHTTPServer(t *testing.T) {
	cfg := testConfig(config.TransportHTTP)
	a, err := newApp(cfg, "test")
	if err != nil {
		t.Fatalf("newApp() error: %v", err)
	}

	srv := a.httpServer(cfg)
	if srv.Addr != "127.0.0.1:9090" {
		t.Errorf("Addr = %q, want 127.0.0.1:9090", srv.Addr)
	}
	if srv.WriteTimeout != 30*time.Second {
		t.Errorf("WriteTimeout = %v, want 30s", srv.WriteTimeout)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil)
	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("live status = %d, want 200", rec.Code)
	}
}

func TestIsCleanShutdown(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"canceled", context.Canceled, true},
		{"wrapped canceled", fmt.Errorf("serve: %w", context.Canceled), true},
		{"end of input", suture.ErrTerminateSupervisorTree, true},
		{"other", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isCleanShutdown(tt.err); got != tt.want {
				t.Errorf("isCleanShutdown(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
