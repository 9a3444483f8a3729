// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package render converts blog markdown to sanitized HTML for public
// responses.
package render

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	markdown = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
	)

	// UGC policy: common formatting allowed, scripts and event handlers stripped.
	sanitizer = bluemonday.UGCPolicy()
)

// MarkdownToHTML converts markdown to sanitized HTML.
func MarkdownToHTML(content string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return sanitizer.Sanitize(buf.String()), nil
}
