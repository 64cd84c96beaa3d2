// Podigee MCP Server - Podcast Analytics for Tool-Calling Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/podigee/mcp-server

package upstream

import (
	"context"
	"errors"
	"testing"

	"github.com/podigee/mcp-server/internal/models/podigee"
)

// stubAPI is a scriptable API for tests in this package
type stubAPI struct {
	podcasts    []podigee.Podcast
	listErr     error
	err         error // returned by every other accessor
	calls       []string
	analyticsID int64
	overviewID  int64
}

func (s *stubAPI) ListPodcasts(context.Context) ([]podigee.Podcast, error) {
	s.calls = append(s.calls, "podcasts")
	return s.podcasts, s.listErr
}

func (s *stubAPI) PodcastAnalytics(_ context.Context, id int64, _, _ string) (*podigee.AnalyticsSeries, error) {
	s.calls = append(s.calls, "analytics")
	s.analyticsID = id
	if s.err != nil {
		return nil, s.err
	}
	return &podigee.AnalyticsSeries{}, nil
}

func (s *stubAPI) PodcastOverview(_ context.Context, id int64, _, _ string) (*podigee.Overview, error) {
	s.calls = append(s.calls, "overview")
	s.overviewID = id
	if s.err != nil {
		return nil, s.err
	}
	return &podigee.Overview{}, nil
}

func (s *stubAPI) EpisodeAnalytics(context.Context, EpisodeAnalyticsQuery) (*podigee.AnalyticsSeries, error) {
	s.calls = append(s.calls, "episode")
	if s.err != nil {
		return nil, s.err
	}
	return &podigee.AnalyticsSeries{}, nil
}

func (s *stubAPI) ListEpisodes(context.Context, EpisodeQuery) ([]podigee.Episode, error) {
	s.calls = append(s.calls, "episodes")
	return nil, s.err
}

func (s *stubAPI) PodcastDetails(context.Context, int64, []string) (*podigee.PodcastDetails, error) {
	s.calls = append(s.calls, "details")
	if s.err != nil {
		return nil, s.err
	}
	return &podigee.PodcastDetails{}, nil
}

func (s *stubAPI) PodcastEpisodesAnalytics(context.Context, BatchQuery) (*podigee.BatchAnalytics, error) {
	s.calls = append(s.calls, "batch")
	if s.err != nil {
		return nil, s.err
	}
	return &podigee.BatchAnalytics{}, nil
}

func TestResolvePodcastID(t *testing.T) {
	t.Run("explicit id skips listing", func(t *testing.T) {
		api := &stubAPI{}
		id, err := ResolvePodcastID(context.Background(), api, int64Ptr(42))
		if err != nil || id != 42 {
			t.Fatalf("ResolvePodcastID() = (%d, %v), want (42, nil)", id, err)
		}
		if len(api.calls) != 0 {
			t.Errorf("expected no calls, got %v", api.calls)
		}
	})

	t.Run("first listed podcast", func(t *testing.T) {
		api := &stubAPI{podcasts: []podigee.Podcast{{ID: podigee.IntValue(5678)}, {ID: podigee.IntValue(1)}}}
		id, err := ResolvePodcastID(context.Background(), api, nil)
		if err != nil || id != 5678 {
			t.Fatalf("ResolvePodcastID() = (%d, %v), want (5678, nil)", id, err)
		}
	})

	t.Run("string id", func(t *testing.T) {
		api := &stubAPI{podcasts: []podigee.Podcast{{ID: podigee.StringValue("77")}}}
		id, err := ResolvePodcastID(context.Background(), api, nil)
		if err != nil || id != 77 {
			t.Fatalf("ResolvePodcastID() = (%d, %v), want (77, nil)", id, err)
		}
	})

	t.Run("no podcasts", func(t *testing.T) {
		_, err := ResolvePodcastID(context.Background(), &stubAPI{}, nil)
		if !errors.Is(err, ErrNoPodcastsFound) {
			t.Fatalf("expected ErrNoPodcastsFound, got %v", err)
		}
	})

	t.Run("unusable id", func(t *testing.T) {
		api := &stubAPI{podcasts: []podigee.Podcast{{Title: podigee.StringValue("no id")}}}
		if _, err := ResolvePodcastID(context.Background(), api, nil); err == nil {
			t.Fatal("expected error for podcast without id")
		}
	})

	t.Run("listing error propagates", func(t *testing.T) {
		listErr := &UpstreamError{Kind: ErrorKindStatus, StatusCode: 500, Err: errors.New("boom")}
		_, err := ResolvePodcastID(context.Background(), &stubAPI{listErr: listErr}, nil)
		if !errors.Is(err, listErr) {
			t.Fatalf("expected listing error, got %v", err)
		}
	})
}

func TestPodcastAnalyticsSummary_SequentialCalls(t *testing.T) {
	api := &stubAPI{podcasts: []podigee.Podcast{{ID: podigee.IntValue(5678)}}}

	summary, err := PodcastAnalyticsSummary(context.Background(), api, nil, "2024-01-01", "2024-01-31")
	if err != nil {
		t.Fatalf("PodcastAnalyticsSummary() error = %v", err)
	}
	if summary.PodcastID != 5678 || api.analyticsID != 5678 || api.overviewID != 5678 {
		t.Errorf("resolved id not used everywhere: %+v %d %d", summary, api.analyticsID, api.overviewID)
	}
	want := []string{"podcasts", "analytics", "overview"}
	if len(api.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", api.calls, want)
	}
	for i := range want {
		if api.calls[i] != want[i] {
			t.Errorf("calls[%d] = %q, want %q", i, api.calls[i], want[i])
		}
	}
}

func TestPodcastAnalyticsSummary_StopsOnFirstFailure(t *testing.T) {
	api := &stubAPI{err: &UpstreamError{Kind: ErrorKindTransport, Err: errors.New("down")}}

	if _, err := PodcastAnalyticsSummary(context.Background(), api, int64Ptr(1), "", ""); err == nil {
		t.Fatal("expected error")
	}
	if len(api.calls) != 1 || api.calls[0] != "analytics" {
		t.Errorf("expected only the analytics call, got %v", api.calls)
	}
}
