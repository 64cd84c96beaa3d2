// Podigee MCP Server - Podcast Analytics for Tool-Calling Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/podigee/mcp-server

package tools

// PodcastAnalyticsSummaryArgs are the arguments of get_podcast_analytics_summary.
type PodcastAnalyticsSummaryArgs struct {
	PodcastID  *int64 `json:"podcast_id" validate:"omitempty,gt=0"`
	DaysOffset *int   `json:"days_offset" validate:"omitempty,gte=0"`
	FromDate   string `json:"from_date" validate:"omitempty,datetime=2006-01-02"`
	ToDate     string `json:"to_date" validate:"omitempty,datetime=2006-01-02"`
}

// ListEpisodesArgs are the arguments of list_episodes.
type ListEpisodesArgs struct {
	PodcastID       *int64 `json:"podcast_id" validate:"omitempty,gt=0"`
	Limit           *int   `json:"limit" validate:"omitempty,gte=0"`
	Offset          *int   `json:"offset" validate:"omitempty,gte=0"`
	Published       *bool  `json:"published"`
	PublicationType string `json:"publication_type" validate:"omitempty,oneof=full trailer bonus"`
	SortBy          string `json:"sort_by" validate:"max=64"`
	SortDirection   string `json:"sort_direction" validate:"omitempty,oneof=asc desc"`
	Search          string `json:"search" validate:"max=256"`
}

// EpisodeAnalyticsArgs are the arguments of get_episode_analytics.
type EpisodeAnalyticsArgs struct {
	EpisodeID          int64  `json:"episode_id" validate:"required,gt=0"`
	FromDate           string `json:"from_date" validate:"omitempty,datetime=2006-01-02"`
	ToDate             string `json:"to_date" validate:"omitempty,datetime=2006-01-02"`
	DaysSincePublished *int   `json:"days_since_published" validate:"omitempty,gte=0"`
	Granularity        string `json:"granularity" validate:"omitempty,oneof=hour day week month"`
}

// PodcastDetailsArgs are the arguments of get_podcast_details.
type PodcastDetailsArgs struct {
	PodcastID    *int64   `json:"podcast_id" validate:"omitempty,gt=0"`
	FieldsFilter []string `json:"fields_filter" validate:"omitempty,dive,required"`
}

// BatchEpisodeAnalyticsArgs are the arguments of get_podcast_episodes_batch_analytics.
type BatchEpisodeAnalyticsArgs struct {
	PodcastID int64  `json:"podcast_id" validate:"required,gt=0"`
	FromDate  string `json:"from_date" validate:"omitempty,datetime=2006-01-02"`
	ToDate    string `json:"to_date" validate:"omitempty,datetime=2006-01-02"`
	Limit     *int   `json:"limit" validate:"omitempty,gte=1"`
	Offset    *int   `json:"offset" validate:"omitempty,gte=0"`
}
