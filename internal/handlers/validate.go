// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// Validation limits for pipeline inputs.
const (
	maxKeywords       = 10
	maxCompetitorURLs = 3
	maxToneSampleURLs = 3
	maxKeywordLen     = 200
	maxMessageLen     = 10_000
	maxToneSampleLen  = 50_000
)

// validateKeywords checks the keyword list and returns the first error found.
func validateKeywords(keywords []string) string {
	if len(keywords) == 0 {
		return "At least one keyword is required."
	}
	if len(keywords) > maxKeywords {
		return "Too many keywords (max 10)."
	}
	for _, kw := range keywords {
		if strings.TrimSpace(kw) == "" {
			return "Keywords must not be empty."
		}
		if utf8.RuneCountInString(kw) > maxKeywordLen {
			return "Keyword is too long (max 200 characters)."
		}
	}
	return ""
}

// validateCompetitorURLs checks the optional competitor URL list.
func validateCompetitorURLs(urls []string) string {
	if len(urls) > maxCompetitorURLs {
		return "Too many competitor URLs (max 3)."
	}
	for _, u := range urls {
		if !isHTTPURL(u) {
			return "Competitor URLs must be absolute http(s) URLs."
		}
	}
	return ""
}

// validateToneSampleURLs checks the optional tone sample URL list.
func validateToneSampleURLs(urls []string) string {
	if len(urls) > maxToneSampleURLs {
		return "Too many tone sample URLs (max 3)."
	}
	for _, u := range urls {
		if !isHTTPURL(u) {
			return "Tone sample URLs must be absolute http(s) URLs."
		}
	}
	return ""
}

// isHTTPURL reports whether s parses as an absolute http or https URL.
func isHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
