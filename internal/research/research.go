// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package research gathers per-keyword findings from a search-augmented
// vendor. Each keyword gets one independent research call; a failing call
// marks that keyword with a sentinel instead of aborting the batch, so the
// output map always carries exactly one entry per requested keyword.
package research

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"seoscribe/internal/ai"
	"seoscribe/internal/cache"
)

// Unavailable marks a keyword whose research call failed.
const Unavailable = "Research unavailable"

const researchSystemPrompt = "You are an SEO research assistant. Research topics thoroughly and return structured markdown."

// Researcher issues research calls through a search-augmented provider.
type Researcher struct {
	provider    ai.Provider
	cache       *cache.ResearchCache
	concurrency int
}

// New creates a Researcher. concurrency bounds parallel vendor calls;
// 1 keeps the calls strictly sequential. cache may be nil.
func New(provider ai.Provider, researchCache *cache.ResearchCache, concurrency int) *Researcher {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Researcher{
		provider:    provider,
		cache:       researchCache,
		concurrency: concurrency,
	}
}

// Research issues one research call per keyword and returns the complete
// keyword→findings map. Every requested keyword is present in the result;
// failed calls carry the Unavailable sentinel. The batch itself only fails
// when the context is cancelled.
func (r *Researcher) Research(ctx context.Context, keywords []string, language string) (map[string]string, error) {
	if language == "" {
		language = "English"
	}

	findings := make([]string, len(keywords))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, kw := range keywords {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			findings[i] = r.researchOne(gctx, kw, language)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("keyword research: %w", err)
	}

	out := make(map[string]string, len(keywords))
	for i, kw := range keywords {
		out[kw] = findings[i]
	}
	return out, nil
}

// researchOne resolves findings for a single keyword, consulting the cache
// first. Vendor errors degrade to the sentinel; they never propagate.
func (r *Researcher) researchOne(ctx context.Context, keyword, language string) string {
	if found, ok := r.cache.Get(ctx, keyword, language); ok {
		return found
	}

	reply, err := r.provider.Generate(ctx, researchSystemPrompt, buildPrompt(keyword, language))
	if err != nil {
		slog.Warn("keyword research failed", "keyword", keyword, "error", err)
		return Unavailable
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		return Unavailable
	}

	r.cache.Set(ctx, keyword, language, reply)
	return reply
}

func buildPrompt(keyword, language string) string {
	return fmt.Sprintf(`Research the topic "%s" for an SEO blog post written in %s. Provide a structured markdown breakdown covering:

1. Key Features: The main capabilities, aspects, or components people search for around this topic
2. Ideal Customer Profile: Who searches for this and what problem they are trying to solve
3. Differentiators: What separates the leading products, services, or approaches in this space
4. Pricing Tiers: Typical pricing models and ranges, if applicable
5. Frequently Asked Questions: The most common questions searchers ask, with concise answers

Use markdown headings for each section. Be specific and factual; cite concrete examples where possible.`, keyword, language)
}
