// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package compose assembles the blog generation prompt and turns the
// model's reply into a {title, content} draft. Prompt sections are appended
// in a fixed order so identical input always yields an identical prompt;
// reply parsing never fails thanks to the recovery chain in internal/extract.
package compose

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"unicode/utf8"

	"seoscribe/internal/ai"
	"seoscribe/internal/extract"
)

// toneSampleLimit caps how much of the tone sample is embedded in the
// prompt. Long samples add cost without adding signal.
const toneSampleLimit = 1000

// Request carries everything the composer folds into the prompt.
type Request struct {
	Keywords       []string
	CompetitorURLs []string
	ToneSample     string

	// Readable text of competitor pages keyed by URL. Entries are optional;
	// a URL without text is still listed in the prompt.
	CompetitorPages map[string]string

	// Optional brand grounding. Empty fields are omitted from the prompt.
	BrandName           string
	BusinessDescription string
	TargetAudience      string

	// Findings keyed by keyword, from the researcher. May be nil.
	Findings map[string]string

	Language string
}

// Composer generates blog drafts through a completion provider.
type Composer struct {
	provider ai.Provider
}

// New creates a Composer backed by the given provider.
func New(provider ai.Provider) *Composer {
	return &Composer{provider: provider}
}

// Compose builds the prompt, runs one generation call, and recovers a
// draft from the reply. Vendor failure is fatal for the whole request;
// malformed output is not.
func (c *Composer) Compose(ctx context.Context, req Request) (extract.Draft, error) {
	prompt := BuildPrompt(req)

	slog.Info("generating blog",
		"keywords", len(req.Keywords),
		"competitors", len(req.CompetitorURLs),
		"provider", c.provider.Name(),
	)

	reply, err := c.provider.Generate(ctx, "", prompt)
	if err != nil {
		return extract.Draft{}, fmt.Errorf("blog generation: %w", err)
	}

	draft := extract.Recover(reply, req.Keywords)
	slog.Debug("blog draft recovered", "title", draft.Title, "content_len", len(draft.Content))
	return draft, nil
}

// BuildPrompt renders the generation prompt. Section order is fixed:
// role and keywords, brand context, research findings, competitor URLs,
// tone sample, then the output-shape instructions.
func BuildPrompt(req Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, `You are an expert SEO content writer. Generate a high-quality, SEO-optimized blog post with the following requirements:

Target Keywords: %s

`, strings.Join(req.Keywords, ", "))

	if req.Language != "" && req.Language != "English" {
		fmt.Fprintf(&b, "\nWrite the blog post in %s.\n", req.Language)
	}

	if req.BrandName != "" || req.BusinessDescription != "" {
		b.WriteString("\nWrite on behalf of this business:\n")
		if req.BrandName != "" {
			fmt.Fprintf(&b, "- Brand: %s\n", req.BrandName)
		}
		if req.BusinessDescription != "" {
			fmt.Fprintf(&b, "- About: %s\n", req.BusinessDescription)
		}
		if req.TargetAudience != "" {
			fmt.Fprintf(&b, "- Audience: %s\n", req.TargetAudience)
		}
	}

	if len(req.Findings) > 0 {
		b.WriteString("\nIncorporate these research findings:\n")
		// Findings follow the keyword order; extra keys go last in sorted
		// order so the prompt stays deterministic.
		seen := make(map[string]bool, len(req.Keywords))
		for _, kw := range req.Keywords {
			if f, ok := req.Findings[kw]; ok {
				fmt.Fprintf(&b, "\n### %s\n%s\n", kw, f)
				seen[kw] = true
			}
		}
		var rest []string
		for k := range req.Findings {
			if !seen[k] {
				rest = append(rest, k)
			}
		}
		sort.Strings(rest)
		for _, k := range rest {
			fmt.Fprintf(&b, "\n### %s\n%s\n", k, req.Findings[k])
		}
	}

	if len(req.CompetitorURLs) > 0 {
		b.WriteString("\nAnalyze and improve upon these competitor blogs:\n")
		for i, u := range req.CompetitorURLs {
			fmt.Fprintf(&b, "%d. %s\n", i+1, u)
			if text := req.CompetitorPages[u]; text != "" {
				fmt.Fprintf(&b, "Excerpt: %s\n", text)
			}
		}
	}

	if req.ToneSample != "" {
		sample := truncate(req.ToneSample, toneSampleLimit)
		fmt.Fprintf(&b, "\nMatch the tone and writing style of this example:\n%s...\n", sample)
	}

	b.WriteString(`
Generate a comprehensive blog post that:
1. Naturally incorporates the target keywords
2. Provides unique insights and value
3. Uses engaging headings and subheadings
4. Includes actionable takeaways
5. Is approximately 1500-2000 words
6. Has a compelling introduction and conclusion

Return ONLY a JSON object with this structure:
{
  "title": "The blog title (incorporate primary keyword)",
  "content": "The full blog content in markdown format"
}`)

	return b.String()
}

// truncate cuts s to at most n bytes without splitting a multi-byte rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
