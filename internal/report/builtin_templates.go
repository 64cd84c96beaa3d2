// Podigee MCP Server - Podcast Analytics for Tool-Calling Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/podigee/mcp-server

package report

// Template names.
const (
	TemplatePodcastSummary = "podcast_summary"
	TemplateEpisodeSummary = "episode_summary"
	TemplatePodcastDetails = "podcast_details"
	TemplatePodcastList    = "podcast_list"
	TemplateEpisodeList    = "episode_list"
	TemplateBatchAnalytics = "batch_analytics"

	templateRankings = "rankings"
)

// rankingsTemplate renders one "## Top <Dimension>" section per ranking.
const rankingsTemplate = `{{range .}}## Top {{.Dimension.Title}}
{{if .Entries}}{{range $i, $e := .Entries}}{{rank $i}}. {{$e.Label}}: {{$e.Count}} downloads
{{end}}{{else}}No data available.
{{end}}
{{end}}`

const podcastSummaryTemplate = `
# Podcast Analytics Summary
**Time Period:** {{.StartDate}} to {{.EndDate}}

## Overview Stats
- Total Downloads: {{.TotalDownloads}}
- Unique Listeners: {{.UniqueListeners}}
- Unique Subscribers: {{.UniqueSubscribers}}
- Published Episodes: {{.PublishedEpisodes}}
- Average Downloads per Episode: {{.MeanDownloads}}

## Top Episodes
{{range $i, $e := .TopEpisodes}}{{rank $i}}. {{$e.Title}}: {{$e.Downloads}} downloads
{{end}}
{{template "rankings" .Rankings}}
`

const episodeSummaryTemplate = `
# Episode Analytics Summary
**Time Period:** {{.StartDate}} to {{.EndDate}}
**Granularity:** {{.Granularity}}

## Overview Stats
- Total Downloads: {{.TotalDownloads}}

{{template "rankings" .Rankings}}
`

const podcastDetailsTemplate = `
# Podcast Details: {{.Title}}

## Cover Artwork
- Full Cover Image: {{.CoverImage}}
- Analytics Cover Image (128x128): {{.AnalyticsCoverImage}}

## General Information
- ID: {{.ID}}
- Subtitle: {{.Subtitle}}
- Language: {{.Language}}
- Episodes Count: {{.EpisodesCount}}
- Publication Type: {{.PublicationType}}
- Explicit Content: {{.Explicit}}
- Created: {{.CreatedAt}}
- Published: {{.PublishedAt}}

## Description
{{.Description}}
{{if .Keywords}}
## Keywords
{{join .Keywords ", "}}
{{end}}{{if .Feeds}}
## Feed Information
{{range $i, $f := .Feeds}}{{rank $i}}. {{upper $f.Format}}: {{$f.URL}}
{{end}}{{end}}{{if .Social}}
## Social Media
{{range .Social}}- {{.Label}}: {{.Value}}
{{end}}{{end}}
`

const podcastListTemplate = `# Your Podcasts

{{range .}}## {{.Title}}
- ID: {{.ID}}
- Language: {{.Language}}
- Created: {{.CreatedAt}}

{{end}}`

const episodeListTemplate = `# Episodes Found (showing up to {{.Limit}})

{{range .Episodes}}## {{.Title}} (ID: {{.ID}})
- Status: {{.Status}}
- Published Date: {{.PublishedDate}}

{{end}}`

const batchAnalyticsTemplate = `
# Batch Episode Analytics Summary
**Time Period:** {{.From}} to {{.To}}
**Podcast ID:** {{.PodcastID}}

## Episode Downloads
| ID | Title | Published Date | Downloads |
|---|---|---|---|
{{range .Rows}}| {{cell .ID}} | {{cell .Title}} | {{cell .PublishedDate}} | {{cell .Downloads}} |
{{end}}
## Note
This is lightweight download data intended for quick comparison across multiple episodes.
For detailed analytics breakdowns (e.g., by country, client, platform), use the ` + "`get_episode_analytics`" + `
tool on individual episodes.
`

// builtinTemplates maps template names to their source.
var builtinTemplates = map[string]string{
	templateRankings:       rankingsTemplate,
	TemplatePodcastSummary: podcastSummaryTemplate,
	TemplateEpisodeSummary: episodeSummaryTemplate,
	TemplatePodcastDetails: podcastDetailsTemplate,
	TemplatePodcastList:    podcastListTemplate,
	TemplateEpisodeList:    episodeListTemplate,
	TemplateBatchAnalytics: batchAnalyticsTemplate,
}
