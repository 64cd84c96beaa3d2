// Podigee MCP Server - Podcast Analytics for Tool-Calling Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/podigee/mcp-server

package validation

import (
	"errors"
	"strings"
	"testing"
)

type testArgs struct {
	PodcastID   *int64   `json:"podcast_id" validate:"omitempty,gt=0"`
	EpisodeID   int64    `json:"episode_id" validate:"required,gt=0"`
	FromDate    *string  `json:"from_date" validate:"omitempty,datetime=2006-01-02"`
	Granularity *string  `json:"granularity" validate:"omitempty,oneof=hour day week month"`
	Limit       *int     `json:"limit" validate:"omitempty,gte=1"`
	Search      string   `json:"search" validate:"max=10"`
	Fields      []string `json:"fields_filter" validate:"omitempty,dive,required"`
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name      string
		args      testArgs
		wantField string
		wantMsg   string
	}{
		{
			name: "valid arguments",
			args: testArgs{EpisodeID: 1, FromDate: strPtr("2024-01-31"), Granularity: strPtr("week")},
		},
		{
			name:      "missing required episode id",
			args:      testArgs{},
			wantField: "episode_id",
			wantMsg:   "episode_id is required",
		},
		{
			name:      "bad date format",
			args:      testArgs{EpisodeID: 1, FromDate: strPtr("31.01.2024")},
			wantField: "from_date",
			wantMsg:   "from_date must be a valid date in YYYY-MM-DD format",
		},
		{
			name:      "unknown granularity",
			args:      testArgs{EpisodeID: 1, Granularity: strPtr("year")},
			wantField: "granularity",
			wantMsg:   "granularity must be one of: hour day week month",
		},
		{
			name:      "zero limit",
			args:      testArgs{EpisodeID: 1, Limit: intPtr(0)},
			wantField: "limit",
			wantMsg:   "limit must be greater than or equal to 1",
		},
		{
			name:      "search too long",
			args:      testArgs{EpisodeID: 1, Search: "a very long search"},
			wantField: "search",
			wantMsg:   "search must be at most 10 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(&tt.args)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("ValidateStruct() unexpected error: %v", err)
				}
				return
			}

			var reqErr *RequestValidationError
			if !errors.As(err, &reqErr) {
				t.Fatalf("expected *RequestValidationError, got %T (%v)", err, err)
			}
			if len(reqErr.Errors()) != 1 {
				t.Fatalf("expected 1 field error, got %d: %v", len(reqErr.Errors()), err)
			}
			fieldErr := reqErr.Errors()[0]
			if fieldErr.Field() != tt.wantField {
				t.Errorf("Field() = %q, want %q", fieldErr.Field(), tt.wantField)
			}
			if fieldErr.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", fieldErr.Error(), tt.wantMsg)
			}
		})
	}
}

func TestRequestValidationError_JoinsMessages(t *testing.T) {
	err := ValidateStruct(&testArgs{Granularity: strPtr("year")})
	if err == nil {
		t.Fatal("expected validation error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "episode_id is required") || !strings.Contains(msg, "granularity must be one of") {
		t.Errorf("combined message missing parts: %q", msg)
	}
	if !strings.Contains(msg, "; ") {
		t.Errorf("expected messages joined with '; ', got %q", msg)
	}
}

func TestGetValidator_Singleton(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("GetValidator should return the same instance")
	}
}
