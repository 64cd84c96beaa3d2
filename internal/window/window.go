// Podigee MCP Server - Podcast Analytics for Tool-Calling Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/podigee/mcp-server

// Package window resolves the effective request parameters of an analytics
// query: the date window and the pagination limit.
//
// Precedence for the date window:
//  1. explicit from/to pair, used verbatim (overrides any offset)
//  2. offset in days counted back from today
//  3. DefaultLookbackDays
//
// All functions are pure; the caller supplies the clock.
package window

import (
	"time"
)

const (
	// DateLayout is the YYYY-MM-DD format used for every query date.
	DateLayout = "2006-01-02"

	// DefaultLookbackDays is the trailing window used when no range is given.
	DefaultLookbackDays = 30

	// MaxLimit is the largest page size forwarded upstream.
	MaxLimit = 50
)

// Window is a resolved date range in DateLayout form.
type Window struct {
	From string
	To   string
}

// Resolve returns the effective window. Both from and to must be non-empty
// for the explicit pair to win; daysOffset nil means DefaultLookbackDays.
func Resolve(now time.Time, from, to string, daysOffset *int) Window {
	if from != "" && to != "" {
		return Window{From: from, To: to}
	}

	days := DefaultLookbackDays
	if daysOffset != nil {
		days = *daysOffset
	}
	return lookback(now, days)
}

// Default returns the DefaultLookbackDays window ending today.
func Default(now time.Time) Window {
	return lookback(now, DefaultLookbackDays)
}

// OrDefault keeps an explicit pair and otherwise falls back to Default.
func OrDefault(now time.Time, from, to string) Window {
	return Resolve(now, from, to, nil)
}

func lookback(now time.Time, days int) Window {
	return Window{
		From: now.AddDate(0, 0, -days).Format(DateLayout),
		To:   now.Format(DateLayout),
	}
}

// ClampLimit caps limit at MaxLimit and reports whether it was reduced.
func ClampLimit(limit int) (int, bool) {
	if limit > MaxLimit {
		return MaxLimit, true
	}
	return limit, false
}
