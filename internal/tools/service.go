// Podigee MCP Server - Podcast Analytics for Tool-Calling Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/podigee/mcp-server

// Package tools implements the tool operations exposed to clients.
//
// Each operation takes typed arguments and returns one Markdown string. No
// operation returns an error: every failure, from argument validation to an
// upstream outage, is rendered as "Error <context>: <message>".
//
// Operations:
//   - get_podcast_analytics_summary
//   - list_podcasts
//   - list_episodes
//   - get_episode_analytics
//   - get_podcast_details
//   - get_podcast_episodes_batch_analytics
//
// Registry describes the same operations for the MCP and HTTP transports.
package tools

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/podigee/mcp-server/internal/analytics"
	"github.com/podigee/mcp-server/internal/logging"
	"github.com/podigee/mcp-server/internal/metrics"
	"github.com/podigee/mcp-server/internal/report"
	"github.com/podigee/mcp-server/internal/upstream"
	"github.com/podigee/mcp-server/internal/validation"
	"github.com/podigee/mcp-server/internal/window"
)

// Tool names.
const (
	ToolPodcastAnalyticsSummary = "get_podcast_analytics_summary"
	ToolListPodcasts            = "list_podcasts"
	ToolListEpisodes            = "list_episodes"
	ToolEpisodeAnalytics        = "get_episode_analytics"
	ToolPodcastDetails          = "get_podcast_details"
	ToolBatchEpisodeAnalytics   = "get_podcast_episodes_batch_analytics"
)

// Error contexts, rendered as "Error <context>: <message>".
const (
	contextPodcastAnalytics = "fetching podcast analytics"
	contextPodcasts         = "fetching podcasts"
	contextEpisodes         = "listing episodes"
	contextEpisodeAnalytics = "fetching episode analytics"
	contextPodcastDetails   = "fetching podcast details"
	contextBatchAnalytics   = "fetching batch episode analytics"
)

// DefaultEpisodeLimit is the list_episodes page size when none is given.
const DefaultEpisodeLimit = 10

// Invocation outcomes recorded in metrics.
const (
	outcomeSuccess = "success"
	outcomeError   = "error"
	outcomeEmpty   = "empty"
)

// Service runs the tool operations against an upstream API.
type Service struct {
	api      upstream.API
	renderer *report.Renderer
	now      func() time.Time
}

// NewService creates a Service. now drives default date windows; nil means time.Now.
func NewService(api upstream.API, renderer *report.Renderer, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{api: api, renderer: renderer, now: now}
}

// run wraps one invocation with logging context and metrics
func (s *Service) run(ctx context.Context, tool string, fn func(ctx context.Context) (string, string)) string {
	start := time.Now()
	ctx = logging.ContextWithTool(ctx, tool)
	if logging.CorrelationIDFromContext(ctx) == "" {
		ctx = logging.ContextWithNewCorrelationID(ctx)
	}

	text, outcome := fn(ctx)

	metrics.RecordToolInvocation(tool, outcome, time.Since(start))
	logging.CtxDebug(ctx).
		Str("outcome", outcome).
		Dur("duration", time.Since(start)).
		Msg("Tool invocation completed")
	return text
}

// fail converts err into the operation's error text
func (s *Service) fail(ctx context.Context, errContext string, err error) (string, string) {
	event := logging.CtxWarn(ctx).Err(err)

	var reqErr *validation.RequestValidationError
	if errors.As(err, &reqErr) {
		rejected := zerolog.Arr()
		for _, fieldErr := range reqErr.Errors() {
			rejected.Dict(zerolog.Dict().
				Str("field", fieldErr.Field()).
				Str("rule", fieldErr.Tag()).
				Str("param", fieldErr.Param()).
				Interface("value", fieldErr.Value()))
		}
		event = event.Array("rejected", rejected)
	}

	event.Msgf("Error %s", errContext)
	return errorText(errContext, err), outcomeError
}

// errorText formats the one-line error result of an operation
func errorText(errContext string, err error) string {
	return fmt.Sprintf("Error %s: %v", errContext, err)
}

// rendered maps a render result to an invocation result
func (s *Service) rendered(ctx context.Context, errContext string, text string, err error) (string, string) {
	if err != nil {
		return s.fail(ctx, errContext, err)
	}
	return text, outcomeSuccess
}

// clampLimit applies the page size cap and records a clamp
func clampLimit(ctx context.Context, tool string, limit int) int {
	clamped, reduced := window.ClampLimit(limit)
	if reduced {
		metrics.RecordLimitClamp(tool)
		logging.CtxWarn(ctx).Int("requested", limit).Msgf("Limit parameter capped at %d.", window.MaxLimit)
	}
	return clamped
}

// reportSkipped logs and counts values the aggregator left out
func reportSkipped(ctx context.Context, result *analytics.Result) {
	for dim, n := range result.SkippedByDimension() {
		metrics.RecordMalformedValues(string(dim), n)
		logging.CtxWarn(ctx).Str("dimension", string(dim)).Int("count", n).Msg("Skipped non-integer breakdown values")
	}
	if result.SkippedDownloads > 0 {
		metrics.RecordMalformedValues("downloads", result.SkippedDownloads)
		logging.CtxWarn(ctx).Int("count", result.SkippedDownloads).Msg("Skipped non-integer download counts")
	}
}

// PodcastAnalyticsSummary renders the analytics summary of a podcast,
// defaulting to the account's first podcast.
func (s *Service) PodcastAnalyticsSummary(ctx context.Context, args PodcastAnalyticsSummaryArgs) string {
	return s.run(ctx, ToolPodcastAnalyticsSummary, func(ctx context.Context) (string, string) {
		if err := validation.ValidateStruct(&args); err != nil {
			return s.fail(ctx, contextPodcastAnalytics, err)
		}

		w := window.Resolve(s.now(), args.FromDate, args.ToDate, args.DaysOffset)
		if args.DaysOffset != nil && args.FromDate != "" && args.ToDate != "" {
			logging.CtxDebug(ctx).Int("days_offset", *args.DaysOffset).Msg("Explicit date range given, ignoring days_offset")
		}

		summary, err := upstream.PodcastAnalyticsSummary(ctx, s.api, args.PodcastID, w.From, w.To)
		if err != nil {
			return s.fail(ctx, contextPodcastAnalytics, err)
		}

		result := analytics.Aggregate(summary.Analytics)
		reportSkipped(ctx, result)

		text, err := s.renderer.PodcastSummary(summary.Analytics, summary.Overview, result)
		return s.rendered(ctx, contextPodcastAnalytics, text, err)
	})
}

// ListPodcasts renders every podcast of the account.
func (s *Service) ListPodcasts(ctx context.Context) string {
	return s.run(ctx, ToolListPodcasts, func(ctx context.Context) (string, string) {
		podcasts, err := s.api.ListPodcasts(ctx)
		if err != nil {
			return s.fail(ctx, contextPodcasts, err)
		}
		if len(podcasts) == 0 {
			return report.NoPodcastsMessage, outcomeEmpty
		}

		text, err := s.renderer.PodcastList(podcasts)
		return s.rendered(ctx, contextPodcasts, text, err)
	})
}

// ListEpisodes renders episodes matching the filters. The limit defaults to
// DefaultEpisodeLimit and is capped at window.MaxLimit.
func (s *Service) ListEpisodes(ctx context.Context, args ListEpisodesArgs) string {
	return s.run(ctx, ToolListEpisodes, func(ctx context.Context) (string, string) {
		if err := validation.ValidateStruct(&args); err != nil {
			return s.fail(ctx, contextEpisodes, err)
		}

		limit := DefaultEpisodeLimit
		if args.Limit != nil {
			limit = *args.Limit
		}
		limit = clampLimit(ctx, ToolListEpisodes, limit)

		episodes, err := s.api.ListEpisodes(ctx, upstream.EpisodeQuery{
			PodcastID:       args.PodcastID,
			Limit:           &limit,
			Offset:          args.Offset,
			Published:       args.Published,
			PublicationType: args.PublicationType,
			SortBy:          args.SortBy,
			SortDirection:   args.SortDirection,
			Search:          args.Search,
		})
		if err != nil {
			return s.fail(ctx, contextEpisodes, err)
		}
		if len(episodes) == 0 {
			return report.NoEpisodesMessage, outcomeEmpty
		}

		text, err := s.renderer.EpisodeList(episodes, limit)
		return s.rendered(ctx, contextEpisodes, text, err)
	})
}

// EpisodeAnalytics renders the analytics summary of one episode.
func (s *Service) EpisodeAnalytics(ctx context.Context, args EpisodeAnalyticsArgs) string {
	return s.run(ctx, ToolEpisodeAnalytics, func(ctx context.Context) (string, string) {
		if err := validation.ValidateStruct(&args); err != nil {
			return s.fail(ctx, contextEpisodeAnalytics, err)
		}

		series, err := s.api.EpisodeAnalytics(ctx, upstream.EpisodeAnalyticsQuery{
			EpisodeID:          args.EpisodeID,
			From:               args.FromDate,
			To:                 args.ToDate,
			DaysSincePublished: args.DaysSincePublished,
			Granularity:        args.Granularity,
		})
		if err != nil {
			return s.fail(ctx, contextEpisodeAnalytics, err)
		}

		result := analytics.Aggregate(series)
		reportSkipped(ctx, result)

		text, err := s.renderer.EpisodeSummary(series, result)
		return s.rendered(ctx, contextEpisodeAnalytics, text, err)
	})
}

// PodcastDetails renders the metadata of a podcast, defaulting to the
// account's first podcast.
func (s *Service) PodcastDetails(ctx context.Context, args PodcastDetailsArgs) string {
	return s.run(ctx, ToolPodcastDetails, func(ctx context.Context) (string, string) {
		if err := validation.ValidateStruct(&args); err != nil {
			return s.fail(ctx, contextPodcastDetails, err)
		}

		podcastID, err := upstream.ResolvePodcastID(ctx, s.api, args.PodcastID)
		if errors.Is(err, upstream.ErrNoPodcastsFound) {
			return report.NoPodcastIDMessage, outcomeEmpty
		}
		if err != nil {
			return s.fail(ctx, contextPodcastDetails, err)
		}

		details, err := s.api.PodcastDetails(ctx, podcastID, args.FieldsFilter)
		if err != nil {
			return s.fail(ctx, contextPodcastDetails, err)
		}
		if details == nil || details.IsEmpty() {
			return report.NoPodcastFound(podcastID), outcomeEmpty
		}

		text, err := s.renderer.PodcastDetails(podcastID, details)
		return s.rendered(ctx, contextPodcastDetails, text, err)
	})
}

// BatchEpisodeAnalytics renders per-episode download counts of a podcast.
func (s *Service) BatchEpisodeAnalytics(ctx context.Context, args BatchEpisodeAnalyticsArgs) string {
	return s.run(ctx, ToolBatchEpisodeAnalytics, func(ctx context.Context) (string, string) {
		if err := validation.ValidateStruct(&args); err != nil {
			return s.fail(ctx, contextBatchAnalytics, err)
		}

		w := window.OrDefault(s.now(), args.FromDate, args.ToDate)
		limit := args.Limit
		if limit != nil {
			clamped := clampLimit(ctx, ToolBatchEpisodeAnalytics, *limit)
			limit = &clamped
		}

		batch, err := s.api.PodcastEpisodesAnalytics(ctx, upstream.BatchQuery{
			PodcastID: args.PodcastID,
			From:      w.From,
			To:        w.To,
			Limit:     limit,
			Offset:    args.Offset,
		})
		if err != nil {
			return s.fail(ctx, contextBatchAnalytics, err)
		}
		if batch == nil || len(batch.Objects) == 0 {
			return report.NoBatchData(args.PodcastID), outcomeEmpty
		}

		text, err := s.renderer.BatchAnalytics(args.PodcastID, w, batch.Objects)
		return s.rendered(ctx, contextBatchAnalytics, text, err)
	})
}
