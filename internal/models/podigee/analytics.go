// Podigee MCP Server - Podcast Analytics for Tool-Calling Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/podigee/mcp-server

package podigee

import (
	"github.com/tidwall/gjson"
)

// AnalyticsSeries is the response of podcasts/{id}/analytics and
// episodes/{id}/analytics.
//
//	{
//	  "meta": {
//	    "timerange": {"start_datetime": "2024-01-01T00:00:00Z", "end_datetime": "2024-01-31T23:59:59Z"},
//	    "aggregation_granularity": "day"
//	  },
//	  "objects": [{"downloaded_on": "2024-01-01T00:00:00Z", "downloads": {"complete": 100}, "formats": {"mp3": 80}}]
//	}
type AnalyticsSeries struct {
	StartDatetime          Value
	EndDatetime            Value
	AggregationGranularity Value // episode series only
	Objects                []TimeBucket
}

// TimeBucket is one time-sliced analytics record.
type TimeBucket struct {
	DownloadedOn       Value
	Complete           Value // downloads.complete
	Formats            Breakdown
	Platforms          Breakdown
	Countries          Breakdown
	Clients            Breakdown
	ClientsOnPlatforms Breakdown
}

// Breakdown returns the bucket's map for dimension d.
func (b *TimeBucket) Breakdown(d Dimension) Breakdown {
	switch d {
	case DimensionFormats:
		return b.Formats
	case DimensionPlatforms:
		return b.Platforms
	case DimensionCountries:
		return b.Countries
	case DimensionClients:
		return b.Clients
	case DimensionClientsOnPlatforms:
		return b.ClientsOnPlatforms
	default:
		return Breakdown{}
	}
}

// UnmarshalJSON decodes an analytics payload; malformed sections decode as absent.
func (s *AnalyticsSeries) UnmarshalJSON(data []byte) error {
	res := gjson.ParseBytes(data)

	*s = AnalyticsSeries{
		StartDatetime:          valueFromResult(res.Get("meta.timerange.start_datetime")),
		EndDatetime:            valueFromResult(res.Get("meta.timerange.end_datetime")),
		AggregationGranularity: valueFromResult(res.Get("meta.aggregation_granularity")),
	}

	objects := res.Get("objects")
	if !objects.IsArray() {
		return nil
	}
	for _, obj := range objects.Array() {
		if !obj.IsObject() {
			continue
		}
		s.Objects = append(s.Objects, timeBucketFromResult(obj))
	}
	return nil
}

// UnmarshalJSON decodes a single bucket.
func (b *TimeBucket) UnmarshalJSON(data []byte) error {
	*b = timeBucketFromResult(gjson.ParseBytes(data))
	return nil
}

func timeBucketFromResult(obj gjson.Result) TimeBucket {
	return TimeBucket{
		DownloadedOn:       valueFromResult(obj.Get("downloaded_on")),
		Complete:           valueFromResult(obj.Get("downloads.complete")),
		Formats:            breakdownFromResult(obj.Get("formats")),
		Platforms:          breakdownFromResult(obj.Get("platforms")),
		Countries:          breakdownFromResult(obj.Get("countries")),
		Clients:            breakdownFromResult(obj.Get("clients")),
		ClientsOnPlatforms: breakdownFromResult(obj.Get("clients_on_platforms")),
	}
}

// Overview is the response of podcasts/{id}/overview.
type Overview struct {
	UniqueListeners     Value            `json:"unique_listeners_number"`
	UniqueSubscribers   Value            `json:"unique_subscribers_number"`
	PublishedEpisodes   Value            `json:"published_episodes_count"`
	MeanEpisodeDownload Value            `json:"mean_episode_download"`
	TopEpisodes         List[TopEpisode] `json:"top_episodes"`
}

// TopEpisode is one entry of Overview.TopEpisodes, ordered by the API.
type TopEpisode struct {
	ID        Value `json:"id"`
	Title     Value `json:"title"`
	Downloads Value `json:"downloads"`
}

// BatchAnalytics is the response of podcasts/{id}/analytics/episodes.
type BatchAnalytics struct {
	Objects List[EpisodeDownloads] `json:"objects"`
}

// EpisodeDownloads is one row of BatchAnalytics.
type EpisodeDownloads struct {
	ID          Value `json:"id"`
	Title       Value `json:"title"`
	PublishedAt Value `json:"published_at"`
	Downloads   Value `json:"downloads"`
}
