// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package analyze turns a website URL into a structured business profile
// using a search-augmented research vendor. The vendor reads the site and
// returns JSON; when the reply is malformed, a placeholder profile is
// assembled instead so the caller always receives all six fields.
package analyze

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"seoscribe/internal/ai"
	"seoscribe/internal/extract"
)

// Profile is the six-field business analysis of a website.
type Profile struct {
	BrandName           string `json:"brandName"`
	BusinessDescription string `json:"businessDescription"`
	TargetAudience      string `json:"targetAudience"`
	Benefits            string `json:"benefits"`
	Industry            string `json:"industry"`
	ToneOfVoice         string `json:"toneOfVoice"`
}

const analyzeSystemPrompt = "You are a business analyst. Analyze websites and return structured JSON data only."

// Analyzer produces website profiles through a research provider.
type Analyzer struct {
	provider ai.Provider
}

// New creates an Analyzer backed by the given provider. The provider should
// be search-augmented; a plain completion model will guess instead of read.
func New(provider ai.Provider) *Analyzer {
	return &Analyzer{provider: provider}
}

// Analyze asks the research vendor to profile the website at websiteURL.
// The reply is parsed leniently: a fenced JSON block, then the raw reply as
// JSON, then a placeholder profile built from the reply text. All six fields
// are always populated.
func (a *Analyzer) Analyze(ctx context.Context, websiteURL string) (*Profile, error) {
	prompt := buildPrompt(websiteURL)

	slog.Info("analyzing website", "url", websiteURL, "provider", a.provider.Name())

	reply, err := a.provider.Generate(ctx, analyzeSystemPrompt, prompt)
	if err != nil {
		return nil, fmt.Errorf("website analysis: %w", err)
	}

	profile := parseProfile(reply)
	slog.Debug("website analysis parsed", "brand", profile.BrandName, "industry", profile.Industry)
	return profile, nil
}

func buildPrompt(websiteURL string) string {
	return fmt.Sprintf(`Analyze the website %s and provide a structured analysis with the following information:

1. Brand Name: The company or brand name
2. Business Description: A 2-3 sentence summary of what the business does
3. Target Audience: Who are their primary customers/users
4. Key Benefits: Main value propositions or benefits they offer
5. Industry: The primary industry or sector they operate in
6. Tone of Voice: Describe their communication style (e.g., professional, casual, technical, friendly)

Format your response as a JSON object with these exact keys: brandName, businessDescription, targetAudience, benefits, industry, toneOfVoice

Only return the JSON object, no additional text.`, websiteURL)
}

// parseProfile recovers a Profile from the vendor reply. Tries a fenced
// block first, then the whole reply as JSON, then falls back to
// placeholders. Individually missing fields get their placeholder too, so
// a partially valid JSON reply still yields a complete profile.
func parseProfile(reply string) *Profile {
	candidate := reply
	if fenced, ok := extract.FencedBlock(reply); ok {
		candidate = fenced
	}

	p := &Profile{}
	if err := json.Unmarshal([]byte(strings.TrimSpace(candidate)), p); err != nil {
		slog.Warn("analysis reply is not JSON, using placeholder profile")
		return placeholderProfile(reply)
	}

	fillPlaceholders(p, reply)
	return p
}

// placeholderProfile is the recovery shape when the reply is not JSON at
// all. The description carries the start of the raw reply so the operator
// still sees what the vendor said.
func placeholderProfile(reply string) *Profile {
	desc := reply
	if len(desc) > 200 {
		cut := 200
		for cut > 0 && !utf8.RuneStart(desc[cut]) {
			cut--
		}
		desc = desc[:cut]
	}
	return &Profile{
		BrandName:           "Unknown",
		BusinessDescription: desc,
		TargetAudience:      "General audience",
		Benefits:            "To be determined",
		Industry:            "General",
		ToneOfVoice:         "Professional",
	}
}

func fillPlaceholders(p *Profile, reply string) {
	fallback := placeholderProfile(reply)
	if p.BrandName == "" {
		p.BrandName = fallback.BrandName
	}
	if p.BusinessDescription == "" {
		p.BusinessDescription = fallback.BusinessDescription
	}
	if p.TargetAudience == "" {
		p.TargetAudience = fallback.TargetAudience
	}
	if p.Benefits == "" {
		p.Benefits = fallback.Benefits
	}
	if p.Industry == "" {
		p.Industry = fallback.Industry
	}
	if p.ToneOfVoice == "" {
		p.ToneOfVoice = fallback.ToneOfVoice
	}
}
