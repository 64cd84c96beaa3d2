// Podigee MCP Server - Podcast Analytics for Tool-Calling Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/podigee/mcp-server

package podigee

import (
	"strconv"

	"github.com/tidwall/gjson"
)

// Dimension is one categorical breakdown axis of a TimeBucket.
type Dimension string

const (
	DimensionFormats            Dimension = "formats"
	DimensionPlatforms          Dimension = "platforms"
	DimensionCountries          Dimension = "countries"
	DimensionClients            Dimension = "clients"
	DimensionClientsOnPlatforms Dimension = "clients_on_platforms"
)

// Dimensions lists every breakdown axis in report order.
var Dimensions = []Dimension{
	DimensionFormats,
	DimensionPlatforms,
	DimensionCountries,
	DimensionClients,
	DimensionClientsOnPlatforms,
}

// Title returns the section title used in reports ("Clients on Platforms").
func (d Dimension) Title() string {
	switch d {
	case DimensionFormats:
		return "Formats"
	case DimensionPlatforms:
		return "Platforms"
	case DimensionCountries:
		return "Countries"
	case DimensionClients:
		return "Clients"
	case DimensionClientsOnPlatforms:
		return "Clients on Platforms"
	default:
		return string(d)
	}
}

// Entry is one label and its download count.
type Entry struct {
	Label string
	Count int64
}

// Breakdown is a label to count map in payload order.
// Pairs whose count is not a JSON integer are kept out of Entries and their
// labels recorded in Skipped.
type Breakdown struct {
	Entries []Entry
	Skipped []string
}

// UnmarshalJSON decodes a JSON object preserving key order.
// A missing, null or non-object breakdown decodes as empty.
func (b *Breakdown) UnmarshalJSON(data []byte) error {
	*b = breakdownFromResult(gjson.ParseBytes(data))
	return nil
}

// breakdownFromResult converts a gjson object into a Breakdown.
func breakdownFromResult(res gjson.Result) Breakdown {
	var b Breakdown
	if !res.IsObject() {
		return b
	}

	res.ForEach(func(key, value gjson.Result) bool {
		if value.Type == gjson.Number {
			if n, err := strconv.ParseInt(value.Raw, 10, 64); err == nil {
				b.Entries = append(b.Entries, Entry{Label: key.String(), Count: n})
				return true
			}
		}
		b.Skipped = append(b.Skipped, key.String())
		return true
	})
	return b
}

// Len returns the number of valid entries.
func (b Breakdown) Len() int {
	return len(b.Entries)
}
