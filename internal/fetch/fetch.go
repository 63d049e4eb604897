// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package fetch retrieves competitor and tone-sample web pages and
// reduces them to readable text suitable for inclusion in a generation
// prompt. Markup, scripts, and navigation chrome are stripped; the
// result is whitespace-collapsed and truncated.
package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

const (
	// DefaultMaxChars bounds how much of a page ends up in a prompt.
	DefaultMaxChars = 4000

	defaultTimeout = 20 * time.Second

	userAgent = "seoscribe/1.0 (content research bot)"
)

// Fetcher performs single page fetches with an explicit per-call timeout.
// One client is shared across requests so connections are pooled.
type Fetcher struct {
	client   *http.Client
	maxChars int
}

// New creates a Fetcher. Zero values select the package defaults.
func New(timeout time.Duration, maxChars int) *Fetcher {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}
	return &Fetcher{
		client:   &http.Client{Timeout: timeout},
		maxChars: maxChars,
	}
}

// PageText fetches the target URL and returns its readable text content,
// truncated to the configured limit. Transport errors, timeouts, and
// non-2xx responses all return an error; the caller decides whether the
// failure is fatal or isolated.
func (f *Fetcher) PageText(ctx context.Context, target string) (string, error) {
	u, err := url.Parse(target)
	if err != nil || !u.IsAbs() {
		return "", fmt.Errorf("fetch: invalid url %q", target)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("fetch request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch http: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetch %s: status %d", target, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("fetch parse: %w", err)
	}

	return f.extract(doc), nil
}

// extract pulls readable text out of a parsed document. Script, style,
// and navigation elements carry no prose and are removed first.
func (f *Fetcher) extract(doc *goquery.Document) string {
	doc.Find("script, style, noscript, svg, iframe, nav, aside").Remove()

	root := doc.Find("body")
	if root.Length() == 0 {
		root = doc.Selection
	}

	text := collapseWhitespace(root.Text())
	if len(text) > f.maxChars {
		cut := f.maxChars
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut]
	}
	return text
}

// collapseWhitespace folds runs of whitespace (including newlines left
// behind by block elements) into single spaces.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
