// Podigee MCP Server - Podcast Analytics for Tool-Calling Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/podigee/mcp-server

/*
Package upstream is the Podigee REST API access layer.

Every accessor is built on one primitive, Client.get, which builds the URL,
attaches the Token header, performs the request and decodes the JSON payload
into the typed models of internal/models/podigee. Any failure on that path is
returned as an *UpstreamError; callers above this package never see a raw
transport error.

Accessors:
  - ListPodcasts: GET podcasts
  - PodcastAnalytics: GET podcasts/{id}/analytics
  - PodcastOverview: GET podcasts/{id}/overview
  - EpisodeAnalytics: GET episodes/{id}/analytics
  - ListEpisodes: GET episodes
  - PodcastDetails: GET podcasts/{id}
  - PodcastEpisodesAnalytics: GET podcasts/{id}/analytics/episodes

PodcastAnalyticsSummary composes ListPodcasts (when no id is given),
PodcastAnalytics and PodcastOverview as sequential dependent calls.

Resilience:
  - Optional client-side throttle (golang.org/x/time/rate)
  - Optional circuit breaker (sony/gobreaker), see CircuitBreakerClient
  - No retries; one failed request fails the operation
*/
package upstream

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/podigee/mcp-server/internal/config"
	"github.com/podigee/mcp-server/internal/logging"
	"github.com/podigee/mcp-server/internal/metrics"
	"github.com/podigee/mcp-server/internal/models/podigee"
	"github.com/podigee/mcp-server/internal/window"
)

// API is the set of Podigee accessors used by the tool operations.
//
// Implemented by Client for production use, by CircuitBreakerClient as a
// decorator, and by fakes in tests. Empty date strings mean "not given".
type API interface {
	PodcastLister
	PodcastAnalytics(ctx context.Context, podcastID int64, from, to string) (*podigee.AnalyticsSeries, error)
	PodcastOverview(ctx context.Context, podcastID int64, from, to string) (*podigee.Overview, error)
	EpisodeAnalytics(ctx context.Context, q EpisodeAnalyticsQuery) (*podigee.AnalyticsSeries, error)
	ListEpisodes(ctx context.Context, q EpisodeQuery) ([]podigee.Episode, error)
	PodcastDetails(ctx context.Context, podcastID int64, fieldsFilter []string) (*podigee.PodcastDetails, error)
	PodcastEpisodesAnalytics(ctx context.Context, q BatchQuery) (*podigee.BatchAnalytics, error)
}

// PodcastLister lists the podcasts of the configured account.
type PodcastLister interface {
	ListPodcasts(ctx context.Context) ([]podigee.Podcast, error)
}

// EpisodeAnalyticsQuery selects the series returned by episodes/{id}/analytics.
// The date pair and DaysSincePublished are mutually exclusive.
type EpisodeAnalyticsQuery struct {
	EpisodeID          int64
	From               string
	To                 string
	DaysSincePublished *int
	Granularity        string // hour, day, week, month
}

// EpisodeQuery filters the episodes listing. Nil and empty fields are not sent.
type EpisodeQuery struct {
	PodcastID       *int64
	PodcastIDs      []int64
	LimitPerPodcast *int
	Limit           *int
	Offset          *int
	Published       *bool
	PublicationType string
	SortBy          string
	SortDirection   string
	Search          string
	FieldsFilter    []string
}

// BatchQuery selects podcasts/{id}/analytics/episodes.
type BatchQuery struct {
	PodcastID int64
	From      string
	To        string
	Limit     *int
	Offset    *int
}

// Client handles communication with the Podigee HTTP API.
//
// Thread Safety: Safe for concurrent use. Each call creates its own request.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	limiter *rate.Limiter // nil when throttling is disabled
	now     func() time.Time
}

// NewClient creates a Podigee API client from configuration.
func NewClient(cfg *config.PodigeeConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = config.DefaultPodigeeBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	c := &Client{
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		client:  &http.Client{Timeout: timeout},
		now:     time.Now,
	}
	if cfg.RequestsPerSecond > 0 {
		burst := int(cfg.RequestsPerSecond)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}
	return c
}

// SetClock replaces the clock used for default date windows.
func (c *Client) SetClock(now func() time.Time) {
	c.now = now
}

// fail records and logs an upstream failure
func (c *Client) fail(ctx context.Context, req *apiRequest, status int, kind ErrorKind, cause error) error {
	metrics.RecordUpstreamError(req.resource, string(kind))
	err := &UpstreamError{Resource: req.resource, StatusCode: status, Kind: kind, Err: cause}
	logging.CtxErr(ctx, err).
		Str("resource", req.resource).
		Int("status_code", status).
		Str("error_type", string(kind)).
		Msg("Podigee API request failed")
	return err
}

// get performs one GET request and decodes the JSON body into out
func (c *Client) get(ctx context.Context, req *apiRequest, out any) error {
	if c.apiKey == "" {
		return c.fail(ctx, req, 0, ErrorKindCredentials, ErrMissingAPIKey)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return c.fail(ctx, req, 0, ErrorKindTransport, fmt.Errorf("rate limiter: %w", err))
		}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, req.buildURL(c.baseURL), http.NoBody)
	if err != nil {
		return c.fail(ctx, req, 0, ErrorKindTransport, fmt.Errorf("create request failed: %w", err))
	}
	httpReq.Header.Set("Token", c.apiKey)
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.client.Do(httpReq)
	if err != nil {
		metrics.RecordUpstreamRequest(req.resource, 0, time.Since(start))
		return c.fail(ctx, req, 0, ErrorKindTransport, fmt.Errorf("request failed: %w", err))
	}
	defer resp.Body.Close()
	metrics.RecordUpstreamRequest(req.resource, resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body := readBodyForError(resp.Body)
		return c.fail(ctx, req, resp.StatusCode, ErrorKindStatus,
			fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return c.fail(ctx, req, resp.StatusCode, ErrorKindDecode, fmt.Errorf("failed to decode response: %w", err))
	}

	logging.Ctx(ctx).Debug().
		Str("resource", req.resource).
		Dur("duration", time.Since(start)).
		Msg("Podigee API request completed")
	return nil
}

// ListPodcasts retrieves every podcast of the account.
func (c *Client) ListPodcasts(ctx context.Context) ([]podigee.Podcast, error) {
	var podcasts podigee.List[podigee.Podcast]
	if err := c.get(ctx, newAPIRequest("podcasts"), &podcasts); err != nil {
		return nil, err
	}
	return podcasts, nil
}

// PodcastAnalytics retrieves the daily analytics series of a podcast.
// If either date is empty both default to the trailing 30-day window.
func (c *Client) PodcastAnalytics(ctx context.Context, podcastID int64, from, to string) (*podigee.AnalyticsSeries, error) {
	w := window.OrDefault(c.now(), from, to)
	req := newResourceRequest("podcasts/{id}/analytics", podcastID).addDateRange(w.From, w.To)

	var series podigee.AnalyticsSeries
	if err := c.get(ctx, req, &series); err != nil {
		return nil, err
	}
	return &series, nil
}

// PodcastOverview retrieves the overview statistics of a podcast.
func (c *Client) PodcastOverview(ctx context.Context, podcastID int64, from, to string) (*podigee.Overview, error) {
	w := window.OrDefault(c.now(), from, to)
	req := newResourceRequest("podcasts/{id}/overview", podcastID).addDateRange(w.From, w.To)

	var overview podigee.Overview
	if err := c.get(ctx, req, &overview); err != nil {
		return nil, err
	}
	return &overview, nil
}

// EpisodeAnalytics retrieves the analytics series of one episode.
func (c *Client) EpisodeAnalytics(ctx context.Context, q EpisodeAnalyticsQuery) (*podigee.AnalyticsSeries, error) {
	req, err := episodeAnalyticsRequest(q)
	if err != nil {
		return nil, err
	}

	var series podigee.AnalyticsSeries
	if err := c.get(ctx, req, &series); err != nil {
		return nil, err
	}
	return &series, nil
}

// episodeAnalyticsRequest sends either the date pair or days_since_published, never both
func episodeAnalyticsRequest(q EpisodeAnalyticsQuery) (*apiRequest, error) {
	if (q.From != "" || q.To != "") && q.DaysSincePublished != nil {
		return nil, ErrInvalidParameterCombination
	}

	req := newResourceRequest("episodes/{id}/analytics", q.EpisodeID)
	switch {
	case q.From != "" && q.To != "":
		req.addDateRange(q.From, q.To)
	case q.DaysSincePublished != nil:
		req.addIntParam("days_since_published", q.DaysSincePublished)
	}
	req.addParam("granularity", q.Granularity)
	return req, nil
}

// ListEpisodes retrieves episodes matching the query.
func (c *Client) ListEpisodes(ctx context.Context, q EpisodeQuery) ([]podigee.Episode, error) {
	var episodes podigee.List[podigee.Episode]
	if err := c.get(ctx, episodesRequest(q), &episodes); err != nil {
		return nil, err
	}
	return episodes, nil
}

// episodesRequest forwards every set filter under its query key
func episodesRequest(q EpisodeQuery) *apiRequest {
	ids := make([]string, 0, len(q.PodcastIDs))
	for _, id := range q.PodcastIDs {
		ids = append(ids, fmt.Sprintf("%d", id))
	}

	return newAPIRequest("episodes").
		addInt64Param("podcast_id", q.PodcastID).
		addListParam("podcast_ids", ids).
		addIntParam("limit_per_podcast", q.LimitPerPodcast).
		addIntParam("limit", q.Limit).
		addIntParam("offset", q.Offset).
		addBoolParam("published", q.Published).
		addParam("publication_type", q.PublicationType).
		addParam("sort_by", q.SortBy).
		addParam("sort_direction", q.SortDirection).
		addParam("search", q.Search).
		addListParam("fields_filter", q.FieldsFilter)
}

// PodcastDetails retrieves the metadata of one podcast.
func (c *Client) PodcastDetails(ctx context.Context, podcastID int64, fieldsFilter []string) (*podigee.PodcastDetails, error) {
	req := newResourceRequest("podcasts/{id}", podcastID).addListParam("fields_filter", fieldsFilter)

	var details podigee.PodcastDetails
	if err := c.get(ctx, req, &details); err != nil {
		return nil, err
	}
	return &details, nil
}

// PodcastEpisodesAnalytics retrieves per-episode download counts of a podcast.
// If either date is empty both default to the trailing 30-day window.
func (c *Client) PodcastEpisodesAnalytics(ctx context.Context, q BatchQuery) (*podigee.BatchAnalytics, error) {
	w := window.OrDefault(c.now(), q.From, q.To)
	req := newResourceRequest("podcasts/{id}/analytics/episodes", q.PodcastID).
		addDateRange(w.From, w.To).
		addIntParam("limit", q.Limit).
		addIntParam("offset", q.Offset)

	var batch podigee.BatchAnalytics
	if err := c.get(ctx, req, &batch); err != nil {
		return nil, err
	}
	return &batch, nil
}

// Ensure Client implements API
var _ API = (*Client)(nil)
