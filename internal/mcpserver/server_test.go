// Podigee MCP Server - Podcast Analytics for Tool-Calling Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/podigee/mcp-server

package mcpserver

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/podigee/mcp-server/internal/config"
	"github.com/podigee/mcp-server/internal/report"
	"github.com/podigee/mcp-server/internal/tools"
	"github.com/podigee/mcp-server/internal/upstream"
)

// newTestServer wires the MCP server to an upstream serving fixed bodies by path
func newTestServer(t *testing.T, bodies map[string]string) *Server {
	t.Helper()

	upstreamSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := bodies[strings.TrimPrefix(r.URL.Path, "/")]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(upstreamSrv.Close)

	now := func() time.Time { return time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC) }
	client := upstream.NewClient(&config.PodigeeConfig{APIKey: "test-key", BaseURL: upstreamSrv.URL})
	client.SetClock(now)
	renderer, err := report.NewRenderer(now)
	require.NoError(t, err)

	return New(tools.NewRegistry(tools.NewService(client, renderer, now)), "test")
}

// call sends one JSON-RPC message and returns the encoded response
func call(t *testing.T, s *Server, method string, params any) gjson.Result {
	t.Helper()

	msg, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      1,
		"method":  method,
		"params":  params,
	})
	require.NoError(t, err)

	resp := s.MCP().HandleMessage(context.Background(), msg)
	require.NotNil(t, resp)

	out, err := json.Marshal(resp)
	require.NoError(t, err)
	return gjson.ParseBytes(out)
}

func TestToolsList_MatchesRegistry(t *testing.T) {
	s := newTestServer(t, nil)

	res := call(t, s, "tools/list", map[string]any{})

	names := res.Get("result.tools.#.name").Array()
	require.Len(t, names, 6)

	listed := make(map[string]gjson.Result, len(names))
	for _, tool := range res.Get("result.tools").Array() {
		listed[tool.Get("name").String()] = tool
	}

	for _, name := range []string{
		tools.ToolPodcastAnalyticsSummary,
		tools.ToolListPodcasts,
		tools.ToolListEpisodes,
		tools.ToolEpisodeAnalytics,
		tools.ToolPodcastDetails,
		tools.ToolBatchEpisodeAnalytics,
	} {
		assert.Contains(t, listed, name)
	}

	episode := listed[tools.ToolEpisodeAnalytics]
	assert.Equal(t, "number", episode.Get("inputSchema.properties.episode_id.type").String())
	assert.Equal(t, []any{"episode_id"}, episode.Get("inputSchema.required").Value())

	details := listed[tools.ToolPodcastDetails]
	assert.Equal(t, "array", details.Get("inputSchema.properties.fields_filter.type").String())
	assert.Equal(t, "string", details.Get("inputSchema.properties.fields_filter.items.type").String())

	episodes := listed[tools.ToolListEpisodes]
	assert.Equal(t, "boolean", episodes.Get("inputSchema.properties.published.type").String())
}

func TestToolsCall_ReturnsMarkdownText(t *testing.T) {
	s := newTestServer(t, map[string]string{
		"podcasts": `[{"id": 1, "title": "First", "language": "en", "created_at": "2023-01-01"}]`,
	})

	res := call(t, s, "tools/call", map[string]any{"name": tools.ToolListPodcasts, "arguments": map[string]any{}})

	assert.Equal(t, "text", res.Get("result.content.0.type").String())
	assert.True(t, strings.HasPrefix(res.Get("result.content.0.text").String(), "# Your Podcasts\n\n## First\n"))
	assert.False(t, res.Get("result.isError").Bool())
}

func TestToolsCall_NumericArgumentsDecode(t *testing.T) {
	s := newTestServer(t, map[string]string{
		"podcasts/42/analytics/episodes": `{"objects": [{"id": 7, "title": "Ep", "published_at": "2024-01-02T00:00:00Z", "downloads": 12}]}`,
	})

	res := call(t, s, "tools/call", map[string]any{
		"name":      tools.ToolBatchEpisodeAnalytics,
		"arguments": map[string]any{"podcast_id": 42, "limit": 5},
	})

	text := res.Get("result.content.0.text").String()
	assert.Contains(t, text, "**Podcast ID:** 42\n")
	assert.Contains(t, text, "| 7 | Ep | 2024-01-02 | 12 |\n")
}

func TestToolsCall_OperationErrorIsText(t *testing.T) {
	s := newTestServer(t, nil)

	res := call(t, s, "tools/call", map[string]any{
		"name": tools.ToolEpisodeAnalytics,
		"arguments": map[string]any{
			"episode_id":           7,
			"from_date":            "2024-01-01",
			"to_date":              "2024-01-31",
			"days_since_published": 10,
		},
	})

	assert.False(t, res.Get("result.isError").Bool())
	assert.Equal(t,
		"Error fetching episode analytics: Cannot use 'from_date'/'to_date' and 'days_since_published' together.",
		res.Get("result.content.0.text").String())
}

func TestServeStdio_ReturnsWhenInputCloses(t *testing.T) {
	s := newTestServer(t, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	done := make(chan struct{})
	go func() {
		_ = s.ServeStdio(ctx, strings.NewReader(""), io.Discard)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("ServeStdio did not return after end of input")
	}
}
