// Podigee MCP Server - Podcast Analytics for Tool-Calling Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/podigee/mcp-server

package upstream

import (
	"context"
	"fmt"

	"github.com/podigee/mcp-server/internal/logging"
	"github.com/podigee/mcp-server/internal/models/podigee"
)

// Summary pairs the analytics series and overview of one podcast.
type Summary struct {
	PodcastID int64
	Analytics *podigee.AnalyticsSeries
	Overview  *podigee.Overview
}

// ResolvePodcastID returns *id when given, otherwise the id of the first
// podcast the account lists.
func ResolvePodcastID(ctx context.Context, lister PodcastLister, id *int64) (int64, error) {
	if id != nil && *id != 0 {
		return *id, nil
	}

	podcasts, err := lister.ListPodcasts(ctx)
	if err != nil {
		return 0, err
	}
	if len(podcasts) == 0 {
		return 0, ErrNoPodcastsFound
	}

	first, ok := podcasts[0].ID.ID()
	if !ok {
		return 0, fmt.Errorf("first podcast has no usable id (%q)", podcasts[0].ID.String())
	}

	logging.CtxInfo(ctx).Int64("podcast_id", first).Msg("No podcast ID provided, using first podcast from account")
	return first, nil
}

// PodcastAnalyticsSummary fetches analytics then overview for a podcast,
// resolving the default podcast first when id is nil.
func PodcastAnalyticsSummary(ctx context.Context, api API, id *int64, from, to string) (*Summary, error) {
	podcastID, err := ResolvePodcastID(ctx, api, id)
	if err != nil {
		return nil, err
	}

	analytics, err := api.PodcastAnalytics(ctx, podcastID, from, to)
	if err != nil {
		return nil, err
	}

	overview, err := api.PodcastOverview(ctx, podcastID, from, to)
	if err != nil {
		return nil, err
	}

	return &Summary{PodcastID: podcastID, Analytics: analytics, Overview: overview}, nil
}
