// Podigee MCP Server - Podcast Analytics for Tool-Calling Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/podigee/mcp-server

// Package podigee provides data models for Podigee API responses.
//
// The Podigee API is loosely typed: counts sometimes arrive as strings, optional
// fields are null or missing, and breakdown maps can carry non-numeric values.
// Every payload is decoded into these types at the access layer boundary, and
// type mismatches are treated as "field absent" instead of failing the decode.
//
// Scalars:
//   - Value: a loosely typed scalar that remembers whether it was present
//
// Analytics:
//   - AnalyticsSeries: time-bucketed podcast or episode analytics
//   - TimeBucket: one day/period with download counts and breakdowns
//   - Breakdown: ordered label to count map (first-seen order preserved)
//   - Overview: podcast overview statistics and top episodes
//   - BatchAnalytics: lightweight per-episode download counts
//
// Metadata:
//   - Podcast, PodcastDetails, Feed
//   - Episode
package podigee

import (
	"strconv"

	"github.com/tidwall/gjson"
)

// Kind describes the JSON type a Value was decoded from.
type Kind int

const (
	// KindAbsent marks a missing field, a JSON null, or an object/array where a scalar was expected.
	KindAbsent Kind = iota
	KindString
	KindNumber
	KindBool
)

// Value is a loosely typed scalar from the Podigee API.
type Value struct {
	kind Kind
	text string
}

// StringValue returns a present string Value.
func StringValue(s string) Value {
	return Value{kind: KindString, text: s}
}

// IntValue returns a present numeric Value.
func IntValue(n int64) Value {
	return Value{kind: KindNumber, text: strconv.FormatInt(n, 10)}
}

// NumberValue returns a present numeric Value with the given literal text.
func NumberValue(raw string) Value {
	return Value{kind: KindNumber, text: raw}
}

// BoolValue returns a present boolean Value.
func BoolValue(b bool) Value {
	return Value{kind: KindBool, text: strconv.FormatBool(b)}
}

// valueFromResult converts a gjson result into a Value.
func valueFromResult(r gjson.Result) Value {
	if !r.Exists() {
		return Value{}
	}
	switch r.Type {
	case gjson.String:
		return Value{kind: KindString, text: r.Str}
	case gjson.Number:
		return Value{kind: KindNumber, text: r.Raw}
	case gjson.True, gjson.False:
		return BoolValue(r.Bool())
	default:
		return Value{}
	}
}

// UnmarshalJSON accepts any JSON value. Non-scalars decode as absent.
func (v *Value) UnmarshalJSON(data []byte) error {
	*v = valueFromResult(gjson.ParseBytes(data))
	return nil
}

// Kind returns the JSON type the value was decoded from.
func (v Value) Kind() Kind {
	return v.kind
}

// Valid reports whether the field was present with a scalar value.
func (v Value) Valid() bool {
	return v.kind != KindAbsent
}

// IsString reports whether the value was a JSON string.
func (v Value) IsString() bool {
	return v.kind == KindString
}

// String returns the literal text of the value, or "" when absent.
// Numbers keep their JSON spelling ("75", "75.5").
func (v Value) String() string {
	return v.text
}

// Or returns the value's text, or fallback when the value is absent.
func (v Value) Or(fallback string) string {
	if !v.Valid() {
		return fallback
	}
	return v.text
}

// Int returns the value as an integer. Only JSON integers qualify;
// strings, floats and booleans report false.
func (v Value) Int() (int64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	n, err := strconv.ParseInt(v.text, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ID returns the value as a resource id. Integer numbers and strings of
// decimal digits qualify.
func (v Value) ID() (int64, bool) {
	switch v.kind {
	case KindNumber:
		return v.Int()
	case KindString:
		n, err := strconv.ParseInt(v.text, 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// Truthy reports whether the value is present and not false, zero, or empty.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindString:
		return v.text != ""
	case KindBool:
		return v.text == "true"
	case KindNumber:
		f, err := strconv.ParseFloat(v.text, 64)
		return err == nil && f != 0
	default:
		return false
	}
}
