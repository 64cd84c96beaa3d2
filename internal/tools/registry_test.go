// Podigee MCP Server - Podcast Analytics for Tool-Calling Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/podigee/mcp-server

package tools

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tidwall/gjson"
)

func TestRegistry_ToolsInOrder(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, nil)
	reg := NewRegistry(svc)

	want := []string{
		ToolPodcastAnalyticsSummary,
		ToolListPodcasts,
		ToolListEpisodes,
		ToolEpisodeAnalytics,
		ToolPodcastDetails,
		ToolBatchEpisodeAnalytics,
	}
	got := reg.Tools()
	if len(got) != len(want) {
		t.Fatalf("Tools() returned %d tools, want %d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("Tools()[%d].Name = %q, want %q", i, got[i].Name, name)
		}
		if got[i].Handler == nil {
			t.Errorf("tool %q has no handler", name)
		}
	}
}

func TestRegistry_RequiredParams(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, nil)
	reg := NewRegistry(svc)

	tests := []struct {
		tool     string
		required []string
	}{
		{ToolPodcastAnalyticsSummary, nil},
		{ToolListPodcasts, nil},
		{ToolListEpisodes, nil},
		{ToolEpisodeAnalytics, []string{"episode_id"}},
		{ToolPodcastDetails, nil},
		{ToolBatchEpisodeAnalytics, []string{"podcast_id"}},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			tool, ok := reg.Lookup(tt.tool)
			if !ok {
				t.Fatalf("Lookup(%q) not found", tt.tool)
			}
			var required []string
			for _, p := range tool.Params {
				if p.Required {
					required = append(required, p.Name)
				}
			}
			if strings.Join(required, ",") != strings.Join(tt.required, ",") {
				t.Errorf("required params = %v, want %v", required, tt.required)
			}
		})
	}
}

func TestRegistry_CallDecodesArguments(t *testing.T) {
	t.Parallel()

	svc, fake := newTestService(t, map[string]route{
		"podcasts/42/analytics/episodes": {body: `{"objects": []}`},
	})
	reg := NewRegistry(svc)

	got, err := reg.Call(context.Background(), ToolBatchEpisodeAnalytics,
		[]byte(`{"podcast_id": 42, "from_date": "2024-01-01", "to_date": "2024-01-31"}`))
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	if got != "No episode analytics data found for podcast ID 42 in the specified time range." {
		t.Errorf("Call() = %q", got)
	}

	req := fake.request("podcasts/42/analytics/episodes")
	if req == nil {
		t.Fatal("expected batch request")
	}
	if req.Query().Get("from") != "2024-01-01" || req.Query().Get("to") != "2024-01-31" {
		t.Errorf("unexpected query %q", req.RawQuery)
	}
}

func TestRegistry_CallWithoutArguments(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, map[string]route{"podcasts": {body: `[]`}})
	reg := NewRegistry(svc)

	for _, raw := range [][]byte{nil, []byte(`{}`)} {
		got, err := reg.Call(context.Background(), ToolListPodcasts, raw)
		if err != nil {
			t.Fatalf("Call() error = %v", err)
		}
		if got != "No podcasts found associated with this API key." {
			t.Errorf("Call() = %q", got)
		}
	}
}

func TestRegistry_CallInvalidJSON(t *testing.T) {
	t.Parallel()

	svc, fake := newTestService(t, nil)
	reg := NewRegistry(svc)

	got, err := reg.Call(context.Background(), ToolEpisodeAnalytics, []byte(`{"episode_id": "seven"`))
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	if !strings.HasPrefix(got, "Error fetching episode analytics: invalid arguments: ") {
		t.Errorf("Call() = %q", got)
	}
	if fake.count() != 0 {
		t.Errorf("expected no upstream request, got %d", fake.count())
	}
}

func TestRegistry_CallUnknownTool(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, nil)
	reg := NewRegistry(svc)

	_, err := reg.Call(context.Background(), "delete_podcast", nil)
	if !errors.Is(err, ErrUnknownTool) {
		t.Fatalf("Call() error = %v, want ErrUnknownTool", err)
	}
	if !strings.Contains(err.Error(), "delete_podcast") {
		t.Errorf("error %q should name the tool", err)
	}
}

func TestRegistry_CallCoercesLooseScalars(t *testing.T) {
	t.Parallel()

	svc, fake := newTestService(t, map[string]route{
		"episodes": {body: `[]`},
	})
	reg := NewRegistry(svc)

	_, err := reg.Call(context.Background(), ToolListEpisodes,
		[]byte(`{"podcast_id": "5678", "limit": 5.0, "offset": " 10 ", "published": "true", "search": "2024"}`))
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}

	req := fake.request("episodes")
	if req == nil {
		t.Fatal("expected episodes request")
	}
	want := map[string]string{
		"podcast_id": "5678",
		"limit":      "5",
		"offset":     "10",
		"published":  "true",
		"search":     "2024",
	}
	for key, value := range want {
		if got := req.Query().Get(key); got != value {
			t.Errorf("query %s = %q, want %q", key, got, value)
		}
	}
}

func TestRegistry_CallRejectsNonIntegralNumbers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args string
	}{
		{"fractional id", `{"episode_id": 42.5}`},
		{"word id", `{"episode_id": "forty-two"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, fake := newTestService(t, nil)
			reg := NewRegistry(svc)

			got, err := reg.Call(context.Background(), ToolEpisodeAnalytics, []byte(tt.args))
			if err != nil {
				t.Fatalf("Call() error = %v", err)
			}
			if !strings.HasPrefix(got, "Error fetching episode analytics: invalid arguments: ") {
				t.Errorf("Call() = %q", got)
			}
			if fake.count() != 0 {
				t.Errorf("expected no upstream request, got %d", fake.count())
			}
		})
	}
}

func TestRegistry_CallMalformedJSONMessage(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, nil)
	reg := NewRegistry(svc)

	got, err := reg.Call(context.Background(), ToolPodcastDetails, []byte(`{"podcast_id": 5678.0.1}`))
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	want := "Error fetching podcast details: invalid arguments: not a valid JSON object"
	if got != want {
		t.Errorf("Call() = %q, want %q", got, want)
	}
}

func TestCoerceRaw(t *testing.T) {
	t.Parallel()

	params := []Param{
		{Name: "podcast_id", Type: TypeNumber},
		{Name: "published", Type: TypeBoolean},
		{Name: "search", Type: TypeString},
	}

	tests := []struct {
		name string
		raw  string
		want map[string]string
	}{
		{"integer untouched", `{"podcast_id": 7}`, map[string]string{"podcast_id": "7"}},
		{"integral float", `{"podcast_id": 5678.0}`, map[string]string{"podcast_id": "5678"}},
		{"numeric string", `{"podcast_id": "5678"}`, map[string]string{"podcast_id": "5678"}},
		{"fraction kept", `{"podcast_id": 1.5}`, map[string]string{"podcast_id": "1.5"}},
		{"null kept", `{"podcast_id": null}`, map[string]string{"podcast_id": "null"}},
		{"bool string", `{"published": "false"}`, map[string]string{"published": "false"}},
		{"string param kept", `{"search": "42"}`, map[string]string{"search": `"42"`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := gjson.ParseBytes(coerceRaw(params, []byte(tt.raw)))
			for key, want := range tt.want {
				if raw := got.Get(key).Raw; raw != want {
					t.Errorf("%s = %s, want %s", key, raw, want)
				}
			}
		})
	}
}
