// Podigee MCP Server - Podcast Analytics for Tool-Calling Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/podigee/mcp-server

package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/tidwall/gjson"

	"github.com/podigee/mcp-server/internal/logging"
	"github.com/podigee/mcp-server/internal/tools"
)

// maxArgumentsBytes bounds a tool call request body.
const maxArgumentsBytes = 1 << 20

// ToolResult is the data of a successful tool call.
type ToolResult struct {
	Tool string `json:"tool"`
	Text string `json:"text"`
}

// ListTools handles GET /api/v1/tools.
func (h *Handler) ListTools(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(h.registry.Tools())
}

// CallTool handles POST /api/v1/tools/{name}.
//
// The body is the JSON arguments object; an empty body means no arguments.
// Operation failures are part of the Markdown text and still answer 200.
func (h *Handler) CallTool(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	name := chi.URLParam(r, "name")

	if _, ok := h.registry.Lookup(name); !ok {
		rw.NotFound("unknown tool: " + name)
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxArgumentsBytes))
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			rw.Error(http.StatusRequestEntityTooLarge, ErrCodeBadRequest, "arguments too large")
			return
		}
		rw.BadRequest("failed to read request body")
		return
	}

	if len(body) > 0 {
		if !gjson.ValidBytes(body) || !gjson.ParseBytes(body).IsObject() {
			rw.BadRequest("arguments must be a JSON object")
			return
		}
	}

	ctx := logging.ContextWithTool(r.Context(), name)
	text, err := h.registry.Call(ctx, name, body)
	if err != nil {
		if errors.Is(err, tools.ErrUnknownTool) {
			rw.NotFound(err.Error())
			return
		}
		rw.BadRequest(err.Error())
		return
	}

	rw.Success(ToolResult{Tool: name, Text: text})
}
