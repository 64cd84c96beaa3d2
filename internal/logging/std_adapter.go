// Podigee MCP Server - Podcast Analytics for Tool-Calling Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/podigee/mcp-server

package logging

import (
	stdlog "log"
	"strings"

	"github.com/rs/zerolog"
)

// stdWriter forwards standard library log lines to zerolog at warn level.
type stdWriter struct {
	logger zerolog.Logger
}

func (w stdWriter) Write(p []byte) (int, error) {
	w.logger.Warn().Msg(strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

// NewStdLogger returns a *log.Logger for libraries that only accept the
// standard logger (the mcp-go stdio server). Lines are logged as warnings
// tagged with component.
func NewStdLogger(component string) *stdlog.Logger {
	return NewStdLoggerWithLogger(WithComponent(component))
}

// NewStdLoggerWithLogger is NewStdLogger with an explicit zerolog logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewStdLoggerWithLogger(logger zerolog.Logger) *stdlog.Logger {
	return stdlog.New(stdWriter{logger: logger}, "", 0)
}
