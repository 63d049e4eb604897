// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the JSON API handlers. Every endpoint speaks
// JSON in and out and reports failures through the {"error": message}
// envelope; the blog pipeline endpoints front the analyze, research,
// compose, and chatedit services.
package handlers

import (
	"seoscribe/internal/ai"
	"seoscribe/internal/analyze"
	"seoscribe/internal/chatedit"
	"seoscribe/internal/compose"
	"seoscribe/internal/config"
	"seoscribe/internal/fetch"
	"seoscribe/internal/research"
	"seoscribe/internal/store"
)

// API bundles the pipeline services and stores the handlers depend on.
// Analyzer or Researcher are nil when the research credential is absent;
// Composer and Editor are nil when the generation credential is absent.
// The handlers surface those as configuration errors per request instead
// of refusing to start.
type API struct {
	Analyzer   *analyze.Analyzer
	Researcher *research.Researcher
	Composer   *compose.Composer
	Editor     *chatedit.Editor
	Fetcher    *fetch.Fetcher

	// Registry provides prompt moderation when a moderation-capable
	// provider is configured. May be nil.
	Registry *ai.Registry

	Blogs       *store.BlogStore
	Profiles    *store.BrandProfileStore
	ToneSamples *store.ToneSampleStore
	Competitors *store.CompetitorURLStore

	// Environment key names for per-request configuration errors.
	ResearchKey   string
	GenerationKey string
}

// NewAPI creates the handler set. researchKey and generationKey are the
// environment variable names reported when the matching service is nil.
func NewAPI(researchKey, generationKey string) *API {
	if researchKey == "" {
		researchKey = config.EnvPerplexityKey
	}
	if generationKey == "" {
		generationKey = config.EnvOpenAIKey
	}
	return &API{
		ResearchKey:   researchKey,
		GenerationKey: generationKey,
	}
}

// requireResearch returns a configuration error when the research side of
// the pipeline is not wired.
func (a *API) requireResearch() error {
	if a.Analyzer == nil || a.Researcher == nil {
		return &ConfigurationError{Key: a.ResearchKey}
	}
	return nil
}

// requireGeneration returns a configuration error when the generation side
// of the pipeline is not wired.
func (a *API) requireGeneration() error {
	if a.Composer == nil || a.Editor == nil {
		return &ConfigurationError{Key: a.GenerationKey}
	}
	return nil
}
