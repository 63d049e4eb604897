// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package extract recovers structured blog drafts from free-form LLM
// output. Models asked for a JSON object frequently wrap it in markdown
// fences, surround it with prose, or emit something that is not JSON at
// all, so recovery runs an ordered chain of strategies, each a pure
// function over the raw text. The final strategy always succeeds: a
// parse failure is never surfaced to the caller.
package extract

import (
	"encoding/json"
	"regexp"
	"strings"
)

// Draft is the structured result recovered from a generation reply.
type Draft struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Strategy attempts to recover a Draft from raw model output. It returns
// false when the text does not match the strategy's shape.
type Strategy func(text string) (Draft, bool)

var (
	// fenceRe matches a markdown code fence with an optional "json" tag
	// and lazily captures its interior.
	fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*\\n?(.*?)\\n?```")

	// titleRe and contentRe pull the fields out of almost-JSON text where
	// a full parse fails (unbalanced braces, trailing prose, bad commas).
	titleRe   = regexp.MustCompile(`"title"\s*:\s*"((?:[^"\\]|\\.)*)"`)
	contentRe = regexp.MustCompile(`"content"\s*:\s*"((?:[^"\\]|\\.)*)"`)
)

// FencedBlock returns the interior of the first markdown code fence in
// text, or false if there is none.
func FencedBlock(text string) (string, bool) {
	m := fenceRe.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// FencedJSON parses the interior of the first fenced code block as a
// JSON draft.
func FencedJSON(text string) (Draft, bool) {
	inner, ok := FencedBlock(text)
	if !ok {
		return Draft{}, false
	}
	return parseDraft(inner)
}

// BraceJSON parses the substring between the first '{' and the last '}'
// as a JSON draft. This recovers objects surrounded by prose such as
// "Here you go: {...} thanks!".
func BraceJSON(text string) (Draft, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return Draft{}, false
	}
	return parseDraft(text[start : end+1])
}

// FieldRegex extracts the title and content fields independently via
// pattern matching, resolving \n and \" escape sequences. It succeeds
// when at least one field is found.
func FieldRegex(text string) (Draft, bool) {
	var d Draft
	if m := titleRe.FindStringSubmatch(text); m != nil {
		d.Title = unescape(m[1])
	}
	if m := contentRe.FindStringSubmatch(text); m != nil {
		d.Content = unescape(m[1])
	}
	if d.Title == "" && d.Content == "" {
		return Draft{}, false
	}
	return d, true
}

// Recover runs the strategy chain over a raw generation reply and always
// returns a usable draft: fenced JSON, then brace-bounded JSON, then
// per-field regex extraction, then a total fallback that uses the reply
// verbatim as content. Missing fields are filled from the fallback so
// the returned draft never has an empty title or content.
func Recover(text string, keywords []string) Draft {
	d, ok := FencedJSON(text)
	if !ok {
		d, ok = BraceJSON(text)
	}
	if !ok {
		d, ok = FieldRegex(text)
	}
	if !ok {
		d = Draft{}
	}

	if d.Title == "" {
		d.Title = FallbackTitle(keywords)
	}
	if d.Content == "" {
		d.Content = strings.TrimSpace(text)
	}
	if d.Content == "" {
		// Empty vendor reply; a draft still needs a body.
		d.Content = d.Title
	}
	return d
}

// FallbackTitle builds a draft title from the first keyword, or a
// generic one when no keywords are available.
func FallbackTitle(keywords []string) string {
	if len(keywords) > 0 && strings.TrimSpace(keywords[0]) != "" {
		return "How to Master " + strings.TrimSpace(keywords[0])
	}
	return "Your SEO-Optimized Blog"
}

// parseDraft unmarshals candidate JSON and accepts it when at least one
// of the two expected fields came through.
func parseDraft(s string) (Draft, bool) {
	var d Draft
	if err := json.Unmarshal([]byte(s), &d); err != nil {
		return Draft{}, false
	}
	if d.Title == "" && d.Content == "" {
		return Draft{}, false
	}
	return d, true
}

// unescape resolves the escape sequences regex extraction leaves behind
// inside JSON string literals. A single left-to-right scan keeps pairs
// like `\\n` (an escaped backslash followed by a plain n) intact.
func unescape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case 'n':
				b.WriteByte('\n')
				i++
				continue
			case 't':
				b.WriteByte('\t')
				i++
				continue
			case '"':
				b.WriteByte('"')
				i++
				continue
			case '\\':
				b.WriteByte('\\')
				i++
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
