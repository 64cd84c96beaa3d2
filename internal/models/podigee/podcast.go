// Podigee MCP Server - Podcast Analytics for Tool-Calling Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/podigee/mcp-server

package podigee

import (
	"strings"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// Podcast is one entry of the podcasts listing.
type Podcast struct {
	ID        Value `json:"id"`
	Title     Value `json:"title"`
	Language  Value `json:"language"`
	CreatedAt Value `json:"created_at"`
}

// Feed is one RSS feed of a podcast.
type Feed struct {
	Format Value `json:"format"`
	URL    Value `json:"url"`
}

// PodcastDetails is the response of podcasts/{id}.
type PodcastDetails struct {
	Title               Value       `json:"title"`
	Subtitle            Value       `json:"subtitle"`
	Description         Value       `json:"description"`
	Language            Value       `json:"language"`
	EpisodesCount       Value       `json:"episodes_count"`
	PublicationType     Value       `json:"publication_type"`
	Explicit            Value       `json:"explicit"`
	CreatedAt           Value       `json:"created_at"`
	PublishedAt         Value       `json:"published_at"`
	CoverImage          Value       `json:"cover_image"`
	AnalyticsCoverImage Value       `json:"analytics_cover_image"`
	Feeds               List[Feed]  `json:"feeds"`
	Keywords            List[Value] `json:"keywords"`
	Twitter             Value       `json:"twitter"`
	Facebook            Value       `json:"facebook"`
	WebsiteURL          Value       `json:"website_url"`
	SpotifyURL          Value       `json:"spotify_url"`
	DeezerURL           Value       `json:"deezer_url"`
	AlexaURL            Value       `json:"alexa_url"`
	ItunesID            Value       `json:"itunes_id"`

	fields int
}

// podcastDetailsAlias prevents UnmarshalJSON recursion.
type podcastDetailsAlias PodcastDetails

// UnmarshalJSON decodes the details object and remembers how many top-level
// fields it carried. A non-object payload decodes as empty.
func (d *PodcastDetails) UnmarshalJSON(data []byte) error {
	res := gjson.ParseBytes(data)
	if !res.IsObject() {
		*d = PodcastDetails{}
		return nil
	}

	var alias podcastDetailsAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}
	*d = PodcastDetails(alias)

	res.ForEach(func(_, _ gjson.Result) bool {
		d.fields++
		return true
	})
	return nil
}

// IsEmpty reports whether the API returned no podcast fields at all.
func (d *PodcastDetails) IsEmpty() bool {
	return d.fields == 0
}

// KeywordList returns the present keywords in payload order.
func (d *PodcastDetails) KeywordList() []string {
	out := make([]string, 0, len(d.Keywords))
	for _, k := range d.Keywords {
		if k.Valid() {
			out = append(out, k.String())
		}
	}
	return out
}

// Episode is one entry of the episodes listing.
type Episode struct {
	ID          Value `json:"id"`
	PodcastID   Value `json:"podcast_id"`
	Title       Value `json:"title"`
	PublishedAt Value `json:"published_at"`
}

// DateOnly returns the calendar-date part of an ISO 8601 timestamp.
// Strings without a 'T' separator are returned unchanged.
func DateOnly(s string) string {
	if before, _, found := strings.Cut(s, "T"); found {
		return before
	}
	return s
}
