// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package util

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripAccents decomposes Unicode characters and drops combining marks,
// so "Café" becomes "Cafe".
var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var (
	invalidSlugChars = regexp.MustCompile(`[^a-z0-9-]+`)
	repeatedHyphens  = regexp.MustCompile(`-{2,}`)
)

// Slugify derives a URL-friendly slug from a title: lowercase,
// accents stripped, spaces turned into hyphens, everything else
// removed. The result may be empty for input with no usable characters.
func Slugify(s string) string {
	out, _, _ := transform.String(stripAccents, s)
	out = strings.ToLower(out)
	out = strings.ReplaceAll(out, " ", "-")
	out = invalidSlugChars.ReplaceAllString(out, "")
	out = repeatedHyphens.ReplaceAllString(out, "-")
	return strings.Trim(out, "-")
}

// IsValidSlug reports whether s is a well-formed slug: non-empty,
// lowercase alphanumerics and hyphens only, no leading, trailing or
// doubled hyphens.
func IsValidSlug(s string) bool {
	if s == "" || s[0] == '-' || s[len(s)-1] == '-' {
		return false
	}
	for _, r := range s {
		if !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-') {
			return false
		}
	}
	return !strings.Contains(s, "--")
}
