// Podigee MCP Server - Podcast Analytics for Tool-Calling Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/podigee/mcp-server

package tools

import (
	"context"
	"errors"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// ErrUnknownTool is returned by Registry.Call for an unregistered name.
var ErrUnknownTool = errors.New("unknown tool")

var errMalformedArgs = errors.New("invalid arguments: not a valid JSON object")

// Parameter types, named after their JSON Schema types.
const (
	TypeString  = "string"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeArray   = "array"
)

// Param describes one named tool argument.
type Param struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Required    bool   `json:"required,omitempty"`
}

// Handler runs a tool with its arguments as a raw JSON object.
type Handler func(ctx context.Context, rawArgs []byte) string

// Tool is one registered operation.
type Tool struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Params      []Param `json:"parameters"`
	Handler     Handler `json:"-"`
}

// Registry holds the tool definitions shared by every transport.
type Registry struct {
	tools  []Tool
	byName map[string]int
}

// bind decodes raw JSON arguments into T before calling run
func bind[T any](errContext string, run func(context.Context, T) string) Handler {
	return func(ctx context.Context, rawArgs []byte) string {
		var args T
		if len(rawArgs) > 0 {
			if !gjson.ValidBytes(rawArgs) {
				return errorText(errContext, errMalformedArgs)
			}
			if err := json.Unmarshal(rawArgs, &args); err != nil {
				return errorText(errContext, fmt.Errorf("invalid arguments: %w", err))
			}
		}
		return run(ctx, args)
	}
}

const attributionNote = " All reports include attribution to the Podigee Analytics API in the footer."

// NewRegistry registers every operation of s.
func NewRegistry(s *Service) *Registry {
	tools := []Tool{
		{
			Name: ToolPodcastAnalyticsSummary,
			Description: "Get a summary of podcast analytics: total downloads, listener statistics, top episodes " +
				"and top formats, platforms, countries and clients. Defaults to the first podcast of the account " +
				"and the last 30 days." + attributionNote,
			Params: []Param{
				{Name: "podcast_id", Type: TypeNumber, Description: "ID of the podcast. Defaults to the first podcast associated with the API key."},
				{Name: "days_offset", Type: TypeNumber, Description: "Number of days to look back (default: 30)."},
				{Name: "from_date", Type: TypeString, Description: "Start date in YYYY-MM-DD format. With to_date, overrides days_offset."},
				{Name: "to_date", Type: TypeString, Description: "End date in YYYY-MM-DD format. With from_date, overrides days_offset."},
			},
			Handler: bind(contextPodcastAnalytics, s.PodcastAnalyticsSummary),
		},
		{
			Name:        ToolListPodcasts,
			Description: "List all podcasts associated with the Podigee API key.",
			Handler: func(ctx context.Context, _ []byte) string {
				return s.ListPodcasts(ctx)
			},
		},
		{
			Name: ToolListEpisodes,
			Description: "List episodes, optionally filtered by podcast, publication status and type, " +
				"sorted, and searched by title.",
			Params: []Param{
				{Name: "podcast_id", Type: TypeNumber, Description: "Filter episodes by this podcast ID."},
				{Name: "limit", Type: TypeNumber, Description: "Maximum number of episodes to return (default 10, max 50)."},
				{Name: "offset", Type: TypeNumber, Description: "Skip the first N episodes (for pagination)."},
				{Name: "published", Type: TypeBoolean, Description: "true for published episodes only, false for unpublished."},
				{Name: "publication_type", Type: TypeString, Description: "Filter by type: full, trailer or bonus."},
				{Name: "sort_by", Type: TypeString, Description: "Field to sort by, e.g. published_at, created_at, title."},
				{Name: "sort_direction", Type: TypeString, Description: "Sort order: asc or desc."},
				{Name: "search", Type: TypeString, Description: "Search term matched against episode titles."},
			},
			Handler: bind(contextEpisodes, s.ListEpisodes),
		},
		{
			Name:        ToolEpisodeAnalytics,
			Description: "Get analytics for a single episode with breakdowns by format, platform, country and client." + attributionNote,
			Params: []Param{
				{Name: "episode_id", Type: TypeNumber, Description: "ID of the episode.", Required: true},
				{Name: "from_date", Type: TypeString, Description: "Start date in YYYY-MM-DD format. Must be used with to_date."},
				{Name: "to_date", Type: TypeString, Description: "End date in YYYY-MM-DD format. Must be used with from_date."},
				{Name: "days_since_published", Type: TypeNumber, Description: "Days since publication to include. Cannot be combined with from_date/to_date."},
				{Name: "granularity", Type: TypeString, Description: "Aggregation granularity: hour, day, week or month. Derived from the interval when omitted."},
			},
			Handler: bind(contextEpisodeAnalytics, s.EpisodeAnalytics),
		},
		{
			Name:        ToolPodcastDetails,
			Description: "Get detailed metadata for a podcast: artwork, description, keywords, feeds and social links." + attributionNote,
			Params: []Param{
				{Name: "podcast_id", Type: TypeNumber, Description: "ID of the podcast. Defaults to the first podcast associated with the API key."},
				{Name: "fields_filter", Type: TypeArray, Description: "Only return these fields."},
			},
			Handler: bind(contextPodcastDetails, s.PodcastDetails),
		},
		{
			Name: ToolBatchEpisodeAnalytics,
			Description: "Get download counts for many episodes of a podcast in one request. Lighter than " +
				"get_episode_analytics per episode; use that tool for detailed breakdowns." + attributionNote,
			Params: []Param{
				{Name: "podcast_id", Type: TypeNumber, Description: "ID of the podcast.", Required: true},
				{Name: "from_date", Type: TypeString, Description: "Start date in YYYY-MM-DD format (default: 30 days ago)."},
				{Name: "to_date", Type: TypeString, Description: "End date in YYYY-MM-DD format (default: today)."},
				{Name: "limit", Type: TypeNumber, Description: "Maximum number of episodes to return (max 50)."},
				{Name: "offset", Type: TypeNumber, Description: "Skip the first N episodes (for pagination)."},
			},
			Handler: bind(contextBatchAnalytics, s.BatchEpisodeAnalytics),
		},
	}

	r := &Registry{tools: tools, byName: make(map[string]int, len(tools))}
	for i, t := range tools {
		r.tools[i].Handler = coerceArgs(t.Params, t.Handler)
		r.byName[t.Name] = i
	}
	return r
}

// Tools returns the registered tools in registration order.
func (r *Registry) Tools() []Tool {
	out := make([]Tool, len(r.tools))
	copy(out, r.tools)
	return out
}

// Lookup returns the tool registered under name.
func (r *Registry) Lookup(name string) (Tool, bool) {
	i, ok := r.byName[name]
	if !ok {
		return Tool{}, false
	}
	return r.tools[i], true
}

// Call runs the named tool with raw JSON arguments.
func (r *Registry) Call(ctx context.Context, name string, rawArgs []byte) (string, error) {
	tool, ok := r.Lookup(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	return tool.Handler(ctx, rawArgs), nil
}
