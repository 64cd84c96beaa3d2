// Podigee MCP Server - Podcast Analytics for Tool-Calling Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/podigee/mcp-server

// Package report renders analytics results into Markdown reports.
//
// template_engine.go - Report Template Engine
//
// All reports are text/template templates parsed once at startup:
//   - one template per tool operation (builtin_templates.go)
//   - a shared "rankings" template for the top-N sections
//   - a small function map for numbering, joining and table cells
//
// Every analytics-bearing report ends with the attribution footer, see Footer.
package report

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// TemplateEngine holds the parsed report templates.
type TemplateEngine struct {
	// funcMap provides custom template functions.
	funcMap template.FuncMap
	root    *template.Template
}

// NewTemplateEngine parses every builtin template.
func NewTemplateEngine() (*TemplateEngine, error) {
	te := &TemplateEngine{}
	te.funcMap = te.buildFuncMap()

	root := template.New("report").Funcs(te.funcMap)
	for name, text := range builtinTemplates {
		if _, err := root.New(name).Parse(text); err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
	}
	te.root = root
	return te, nil
}

// buildFuncMap creates the template function map.
func (te *TemplateEngine) buildFuncMap() template.FuncMap {
	return template.FuncMap{
		// rank turns a zero-based range index into a list number
		"rank": func(i int) int {
			return i + 1
		},
		"join":  strings.Join,
		"upper": strings.ToUpper,
		// cell keeps a value from breaking a Markdown table row
		"cell": func(s string) string {
			s = strings.ReplaceAll(s, "|", `\|`)
			return strings.ReplaceAll(s, "\n", " ")
		},
	}
}

// Render executes the named template with data.
func (te *TemplateEngine) Render(name string, data any) (string, error) {
	tmpl := te.root.Lookup(name)
	if tmpl == nil {
		return "", fmt.Errorf("unknown template %q", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}
	return buf.String(), nil
}
