// Podigee MCP Server - Podcast Analytics for Tool-Calling Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/podigee/mcp-server

package report

import (
	"fmt"
	"strconv"
	"time"

	"github.com/podigee/mcp-server/internal/analytics"
	"github.com/podigee/mcp-server/internal/models/podigee"
	"github.com/podigee/mcp-server/internal/window"
)

// FooterDateLayout formats the generation date in the attribution footer.
const FooterDateLayout = "January 02, 2006"

// notAvailable is the placeholder for a missing statistic.
const notAvailable = "N/A"

// maxTopEpisodes caps the overview's top episode list.
const maxTopEpisodes = 5

// Plain sentences returned instead of a report when there is nothing to show.
const (
	NoPodcastsMessage    = "No podcasts found associated with this API key."
	NoEpisodesMessage    = "No episodes found matching the criteria."
	NoPodcastIDMessage   = "Error: No podcast ID provided and no podcasts found in your account."
	noPodcastFoundFormat = "No podcast found with ID %d."
	noBatchDataFormat    = "No episode analytics data found for podcast ID %d in the specified time range."
)

// NoPodcastFound returns the sentence for an empty podcast details payload.
func NoPodcastFound(podcastID int64) string {
	return fmt.Sprintf(noPodcastFoundFormat, podcastID)
}

// NoBatchData returns the sentence for a batch query without rows.
func NoBatchData(podcastID int64) string {
	return fmt.Sprintf(noBatchDataFormat, podcastID)
}

// Renderer turns decoded payloads and aggregates into Markdown reports.
type Renderer struct {
	engine *TemplateEngine
	now    func() time.Time
}

// NewRenderer creates a renderer. now supplies the footer date.
func NewRenderer(now func() time.Time) (*Renderer, error) {
	engine, err := NewTemplateEngine()
	if err != nil {
		return nil, err
	}
	if now == nil {
		now = time.Now
	}
	return &Renderer{engine: engine, now: now}, nil
}

// Footer returns the attribution footer required on every analytics report.
func (r *Renderer) Footer() string {
	return fmt.Sprintf("\n\n---\n*Data Source: Podigee Analytics API | Generated on %s*", r.now().Format(FooterDateLayout))
}

// renderWithFooter renders a template and appends the footer
func (r *Renderer) renderWithFooter(name string, data any) (string, error) {
	body, err := r.engine.Render(name, data)
	if err != nil {
		return "", err
	}
	return body + r.Footer(), nil
}

type topEpisodeView struct {
	Title     string
	Downloads string
}

type podcastSummaryView struct {
	StartDate         string
	EndDate           string
	TotalDownloads    int64
	UniqueListeners   string
	UniqueSubscribers string
	PublishedEpisodes string
	MeanDownloads     string
	TopEpisodes       []topEpisodeView
	Rankings          []analytics.Ranking
}

// PodcastSummary renders the podcast analytics summary. Top episodes come
// from the overview verbatim, capped at five.
func (r *Renderer) PodcastSummary(series *podigee.AnalyticsSeries, overview *podigee.Overview, result *analytics.Result) (string, error) {
	if series == nil {
		series = &podigee.AnalyticsSeries{}
	}
	if overview == nil {
		overview = &podigee.Overview{}
	}

	view := podcastSummaryView{
		StartDate:         analytics.NormalizeDate(series.StartDatetime),
		EndDate:           analytics.NormalizeDate(series.EndDatetime),
		TotalDownloads:    result.TotalDownloads,
		UniqueListeners:   overview.UniqueListeners.Or(notAvailable),
		UniqueSubscribers: overview.UniqueSubscribers.Or(notAvailable),
		PublishedEpisodes: overview.PublishedEpisodes.Or(notAvailable),
		MeanDownloads:     overview.MeanEpisodeDownload.Or(notAvailable),
		Rankings:          analytics.RankAll(result),
	}
	for i, ep := range overview.TopEpisodes {
		if i == maxTopEpisodes {
			break
		}
		view.TopEpisodes = append(view.TopEpisodes, topEpisodeView{
			Title:     ep.Title.Or("Unknown"),
			Downloads: ep.Downloads.Or("0"),
		})
	}

	return r.renderWithFooter(TemplatePodcastSummary, view)
}

type episodeSummaryView struct {
	StartDate      string
	EndDate        string
	Granularity    string
	TotalDownloads int64
	Rankings       []analytics.Ranking
}

// EpisodeSummary renders the episode analytics summary. The time period and
// granularity are shown as reported by the API.
func (r *Renderer) EpisodeSummary(series *podigee.AnalyticsSeries, result *analytics.Result) (string, error) {
	if series == nil {
		series = &podigee.AnalyticsSeries{}
	}

	view := episodeSummaryView{
		StartDate:      series.StartDatetime.Or(notAvailable),
		EndDate:        series.EndDatetime.Or(notAvailable),
		Granularity:    series.AggregationGranularity.Or(notAvailable),
		TotalDownloads: result.TotalDownloads,
		Rankings:       analytics.RankAll(result),
	}
	return r.renderWithFooter(TemplateEpisodeSummary, view)
}

type feedView struct {
	Format string
	URL    string
}

type socialView struct {
	Label string
	Value string
}

type podcastDetailsView struct {
	ID                  int64
	Title               string
	Subtitle            string
	Description         string
	Language            string
	EpisodesCount       string
	PublicationType     string
	Explicit            string
	CreatedAt           string
	PublishedAt         string
	CoverImage          string
	AnalyticsCoverImage string
	Keywords            []string
	Feeds               []feedView
	Social              []socialView
}

// PodcastDetails renders podcast metadata. Keywords, feeds and social links
// only appear when present.
func (r *Renderer) PodcastDetails(podcastID int64, d *podigee.PodcastDetails) (string, error) {
	explicit := "No"
	if d.Explicit.Truthy() {
		explicit = "Yes"
	}

	view := podcastDetailsView{
		ID:                  podcastID,
		Title:               d.Title.Or("Untitled"),
		Subtitle:            d.Subtitle.Or(""),
		Description:         d.Description.Or("No description available."),
		Language:            d.Language.Or("Not specified"),
		EpisodesCount:       d.EpisodesCount.Or(notAvailable),
		PublicationType:     d.PublicationType.Or("Not specified"),
		Explicit:            explicit,
		CreatedAt:           d.CreatedAt.Or("Unknown"),
		PublishedAt:         d.PublishedAt.Or("Not published"),
		CoverImage:          d.CoverImage.Or("Not available"),
		AnalyticsCoverImage: d.AnalyticsCoverImage.Or("Not available"),
		Keywords:            d.KeywordList(),
	}

	for _, f := range d.Feeds {
		view.Feeds = append(view.Feeds, feedView{
			Format: f.Format.Or("Unknown"),
			URL:    f.URL.Or("No URL available"),
		})
	}

	social := []struct {
		label string
		value podigee.Value
	}{
		{"Twitter", d.Twitter},
		{"Facebook", d.Facebook},
		{"Website", d.WebsiteURL},
		{"Spotify", d.SpotifyURL},
		{"Deezer", d.DeezerURL},
		{"Amazon/Alexa", d.AlexaURL},
		{"iTunes ID", d.ItunesID},
	}
	for _, s := range social {
		if s.value.Truthy() {
			view.Social = append(view.Social, socialView{Label: s.label, Value: s.value.String()})
		}
	}

	return r.renderWithFooter(TemplatePodcastDetails, view)
}

type podcastView struct {
	ID        string
	Title     string
	Language  string
	CreatedAt string
}

// PodcastList renders the podcasts of the account.
func (r *Renderer) PodcastList(podcasts []podigee.Podcast) (string, error) {
	views := make([]podcastView, 0, len(podcasts))
	for _, p := range podcasts {
		views = append(views, podcastView{
			ID:        p.ID.Or("Unknown"),
			Title:     p.Title.Or("Untitled"),
			Language:  p.Language.Or("Unknown"),
			CreatedAt: p.CreatedAt.Or("Unknown"),
		})
	}
	return r.engine.Render(TemplatePodcastList, views)
}

type episodeView struct {
	ID            string
	Title         string
	Status        string
	PublishedDate string
}

type episodeListView struct {
	Limit    string
	Episodes []episodeView
}

// EpisodeList renders an episode listing. A limit of 0 is shown as "all".
func (r *Renderer) EpisodeList(episodes []podigee.Episode, limit int) (string, error) {
	view := episodeListView{Limit: "all"}
	if limit > 0 {
		view.Limit = strconv.Itoa(limit)
	}

	for _, ep := range episodes {
		status := "Unpublished"
		if ep.PublishedAt.Truthy() {
			status = "Published"
		}
		view.Episodes = append(view.Episodes, episodeView{
			ID:            ep.ID.Or(notAvailable),
			Title:         ep.Title.Or("Untitled"),
			Status:        status,
			PublishedDate: publishedDate(ep.PublishedAt),
		})
	}
	return r.engine.Render(TemplateEpisodeList, view)
}

type batchRowView struct {
	ID            string
	Title         string
	PublishedDate string
	Downloads     string
}

type batchView struct {
	From      string
	To        string
	PodcastID int64
	Rows      []batchRowView
}

// BatchAnalytics renders the per-episode download table.
func (r *Renderer) BatchAnalytics(podcastID int64, w window.Window, rows []podigee.EpisodeDownloads) (string, error) {
	view := batchView{From: w.From, To: w.To, PodcastID: podcastID}
	for _, row := range rows {
		view.Rows = append(view.Rows, batchRowView{
			ID:            row.ID.Or(notAvailable),
			Title:         row.Title.Or("Untitled"),
			PublishedDate: publishedDate(row.PublishedAt),
			Downloads:     row.Downloads.Or("0"),
		})
	}
	return r.renderWithFooter(TemplateBatchAnalytics, view)
}

// publishedDate shows the date part of a publish timestamp, or N/A
func publishedDate(v podigee.Value) string {
	if !v.Valid() {
		return notAvailable
	}
	if v.IsString() {
		return podigee.DateOnly(v.String())
	}
	return v.String()
}
