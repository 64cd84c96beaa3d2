// Podigee MCP Server - Podcast Analytics for Tool-Calling Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/podigee/mcp-server

package upstream

import (
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"
)

// maxErrorBodySize limits how much of an error response is kept for the message
const maxErrorBodySize = 64 * 1024 // 64KB

// readBodyForError reads the response body for error reporting (max 64KB)
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("\n... (truncated)")...)
	}
	return body
}

// apiRequest holds the path and query of one Podigee API call
type apiRequest struct {
	resource string // metrics label, ids replaced by {id}
	path     string
	params   url.Values
}

// newAPIRequest creates a request for a path without ids
func newAPIRequest(path string) *apiRequest {
	return &apiRequest{
		resource: path,
		path:     path,
		params:   url.Values{},
	}
}

// newResourceRequest fills {id} in the template with id
func newResourceRequest(template string, id int64) *apiRequest {
	return &apiRequest{
		resource: template,
		path:     strings.Replace(template, "{id}", strconv.FormatInt(id, 10), 1),
		params:   url.Values{},
	}
}

// addParam adds a string parameter (only if non-empty)
func (r *apiRequest) addParam(key, value string) *apiRequest {
	if value != "" {
		r.params.Set(key, value)
	}
	return r
}

// addIntParam adds an integer parameter (only if non-nil, zero included)
func (r *apiRequest) addIntParam(key string, value *int) *apiRequest {
	if value != nil {
		r.params.Set(key, strconv.Itoa(*value))
	}
	return r
}

// addInt64Param adds an id parameter (only if non-nil)
func (r *apiRequest) addInt64Param(key string, value *int64) *apiRequest {
	if value != nil {
		r.params.Set(key, strconv.FormatInt(*value, 10))
	}
	return r
}

// addBoolParam adds a boolean parameter (only if non-nil)
func (r *apiRequest) addBoolParam(key string, value *bool) *apiRequest {
	if value != nil {
		r.params.Set(key, strconv.FormatBool(*value))
	}
	return r
}

// addListParam repeats key[] once per value
func (r *apiRequest) addListParam(key string, values []string) *apiRequest {
	for _, v := range values {
		r.params.Add(key+"[]", v)
	}
	return r
}

// addDateRange adds from and to
func (r *apiRequest) addDateRange(from, to string) *apiRequest {
	return r.addParam("from", from).addParam("to", to)
}

// buildURL joins the base URL, the path and the encoded query
func (r *apiRequest) buildURL(baseURL string) string {
	u := fmt.Sprintf("%s/%s", strings.TrimRight(baseURL, "/"), r.path)
	if len(r.params) > 0 {
		u += "?" + r.params.Encode()
	}
	return u
}
