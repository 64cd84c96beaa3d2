// Podigee MCP Server - Podcast Analytics for Tool-Calling Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/podigee/mcp-server

package analytics

import (
	"sort"

	"github.com/podigee/mcp-server/internal/models/podigee"
)

const (
	// DefaultTopN is the ranking length for most dimensions.
	DefaultTopN = 5

	// ClientsOnPlatformsTopN is the ranking length for clients_on_platforms.
	ClientsOnPlatformsTopN = 10
)

// TopN returns the ranking length for dimension d.
func TopN(d podigee.Dimension) int {
	if d == podigee.DimensionClientsOnPlatforms {
		return ClientsOnPlatformsTopN
	}
	return DefaultTopN
}

// Rank returns the topN entries of agg by count descending. Equal counts
// keep first-seen order.
func Rank(agg *CategoryAggregate, topN int) []podigee.Entry {
	if agg == nil || topN <= 0 {
		return nil
	}

	entries := agg.Entries()
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Count > entries[j].Count
	})

	if len(entries) > topN {
		entries = entries[:topN]
	}
	return entries
}

// Ranking is the ranked list of one dimension.
type Ranking struct {
	Dimension podigee.Dimension
	Entries   []podigee.Entry
}

// RankAll ranks every dimension of r in report order.
func RankAll(r *Result) []Ranking {
	out := make([]Ranking, 0, len(podigee.Dimensions))
	for _, d := range podigee.Dimensions {
		out = append(out, Ranking{Dimension: d, Entries: Rank(r.Dimension(d), TopN(d))})
	}
	return out
}
