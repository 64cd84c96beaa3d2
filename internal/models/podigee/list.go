// Podigee MCP Server - Podcast Analytics for Tool-Calling Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/podigee/mcp-server

package podigee

import (
	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// List is a JSON array that tolerates a malformed payload: a non-array decodes
// as an empty list and elements that do not decode into T are dropped.
type List[T any] []T

// UnmarshalJSON decodes each array element independently.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	res := gjson.ParseBytes(data)
	if !res.IsArray() {
		*l = nil
		return nil
	}

	elems := res.Array()
	items := make(List[T], 0, len(elems))
	for _, elem := range elems {
		var item T
		if err := json.Unmarshal([]byte(elem.Raw), &item); err != nil {
			continue
		}
		items = append(items, item)
	}

	*l = items
	return nil
}
