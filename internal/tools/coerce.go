// Podigee MCP Server - Podcast Analytics for Tool-Calling Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/podigee/mcp-server

package tools

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// coerceArgs rewrites loosely typed scalars into the types the parameters
// declare: "5678" and 5678.0 become 5678 for number parameters, "true" and
// "false" become booleans for boolean parameters. Anything else is left for
// the decoder to report.
func coerceArgs(params []Param, next Handler) Handler {
	return func(ctx context.Context, rawArgs []byte) string {
		return next(ctx, coerceRaw(params, rawArgs))
	}
}

func coerceRaw(params []Param, rawArgs []byte) []byte {
	if len(rawArgs) == 0 || !gjson.ValidBytes(rawArgs) {
		return rawArgs
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(rawArgs, &fields); err != nil {
		return rawArgs
	}

	changed := false
	for _, p := range params {
		raw, ok := fields[p.Name]
		if !ok {
			continue
		}
		value := gjson.ParseBytes(raw)

		var literal string
		switch p.Type {
		case TypeNumber:
			if n, ok := integralValue(value); ok {
				literal = strconv.FormatInt(n, 10)
			}
		case TypeBoolean:
			if b, ok := boolValue(value); ok {
				literal = strconv.FormatBool(b)
			}
		}
		if literal != "" && literal != value.Raw {
			fields[p.Name] = json.RawMessage(literal)
			changed = true
		}
	}
	if !changed {
		return rawArgs
	}

	out, err := json.Marshal(fields)
	if err != nil {
		return rawArgs
	}
	return out
}

// integralValue accepts integers, integral floats and decimal strings.
func integralValue(v gjson.Result) (int64, bool) {
	switch v.Type {
	case gjson.Number:
		if n, err := strconv.ParseInt(v.Raw, 10, 64); err == nil {
			return n, true
		}
		f := v.Float()
		if f != math.Trunc(f) || math.Abs(f) > 1<<53 {
			return 0, false
		}
		return int64(f), true
	case gjson.String:
		n, err := strconv.ParseInt(strings.TrimSpace(v.Str), 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}

func boolValue(v gjson.Result) (bool, bool) {
	switch v.Type {
	case gjson.True, gjson.False:
		return v.Bool(), true
	case gjson.String:
		b, err := strconv.ParseBool(strings.TrimSpace(v.Str))
		return b, err == nil
	default:
		return false, false
	}
}
