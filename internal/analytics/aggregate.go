// Podigee MCP Server - Podcast Analytics for Tool-Calling Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/podigee/mcp-server

// Package analytics reduces a time-bucketed analytics series into totals,
// per-day counts and per-dimension category aggregates, and ranks those
// aggregates into top-N lists.
//
// Everything here is pure. Values the decoder could not read as integers are
// reported back in Result.Skipped so the caller can log and count them.
package analytics

import (
	"github.com/podigee/mcp-server/internal/models/podigee"
)

// UnknownDate is the label of a bucket without a date.
const UnknownDate = "unknown"

// CategoryAggregate maps category labels to summed counts and remembers the
// order labels were first seen in the series.
type CategoryAggregate struct {
	labels []string
	counts map[string]int64
}

// NewCategoryAggregate returns an empty aggregate.
func NewCategoryAggregate() *CategoryAggregate {
	return &CategoryAggregate{counts: make(map[string]int64)}
}

// Add adds count to label.
func (a *CategoryAggregate) Add(label string, count int64) {
	if _, ok := a.counts[label]; !ok {
		a.labels = append(a.labels, label)
	}
	a.counts[label] += count
}

// Count returns the summed count of label.
func (a *CategoryAggregate) Count(label string) int64 {
	return a.counts[label]
}

// Len returns the number of distinct labels.
func (a *CategoryAggregate) Len() int {
	return len(a.labels)
}

// Entries returns the aggregate in first-seen order.
func (a *CategoryAggregate) Entries() []podigee.Entry {
	out := make([]podigee.Entry, len(a.labels))
	for i, label := range a.labels {
		out[i] = podigee.Entry{Label: label, Count: a.counts[label]}
	}
	return out
}

// SkippedValue identifies one breakdown pair left out of the aggregates.
type SkippedValue struct {
	Dimension podigee.Dimension
	Label     string
}

// Result is the reduction of one analytics series.
type Result struct {
	TotalDownloads int64
	PerDay         map[string]int64
	Dimensions     map[podigee.Dimension]*CategoryAggregate
	Skipped        []SkippedValue

	// SkippedDownloads counts buckets whose downloads.complete was present
	// but not an integer.
	SkippedDownloads int
}

// Dimension returns the aggregate of d, never nil.
func (r *Result) Dimension(d podigee.Dimension) *CategoryAggregate {
	if agg, ok := r.Dimensions[d]; ok {
		return agg
	}
	return NewCategoryAggregate()
}

// SkippedByDimension counts skipped values per dimension.
func (r *Result) SkippedByDimension() map[podigee.Dimension]int {
	out := make(map[podigee.Dimension]int)
	for _, s := range r.Skipped {
		out[s.Dimension]++
	}
	return out
}

// Aggregate folds every bucket of series in order.
func Aggregate(series *podigee.AnalyticsSeries) *Result {
	result := &Result{
		PerDay:     make(map[string]int64),
		Dimensions: make(map[podigee.Dimension]*CategoryAggregate, len(podigee.Dimensions)),
	}
	for _, d := range podigee.Dimensions {
		result.Dimensions[d] = NewCategoryAggregate()
	}
	if series == nil {
		return result
	}

	for i := range series.Objects {
		bucket := &series.Objects[i]

		daily, ok := bucket.Complete.Int()
		if !ok && bucket.Complete.Valid() {
			result.SkippedDownloads++
		}
		result.TotalDownloads += daily
		result.PerDay[NormalizeDate(bucket.DownloadedOn)] = daily

		for _, d := range podigee.Dimensions {
			breakdown := bucket.Breakdown(d)
			agg := result.Dimensions[d]
			for _, e := range breakdown.Entries {
				agg.Add(e.Label, e.Count)
			}
			for _, label := range breakdown.Skipped {
				result.Skipped = append(result.Skipped, SkippedValue{Dimension: d, Label: label})
			}
		}
	}
	return result
}

// NormalizeDate truncates a date-time to its calendar date. Non-string values
// keep their literal text and absent values become UnknownDate.
func NormalizeDate(v podigee.Value) string {
	if !v.Valid() {
		return UnknownDate
	}
	if v.IsString() {
		return podigee.DateOnly(v.String())
	}
	return v.String()
}
