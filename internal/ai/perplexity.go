// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"net/http"
	"time"
)

// perplexityProvider implements the Provider interface using Perplexity's
// chat completions API, which is OpenAI-compatible. Perplexity models are
// search-augmented: replies are grounded in live web results, which is what
// the website analysis and keyword research pipelines rely on.
type perplexityProvider struct {
	inner *openAIProvider
}

// newPerplexity creates a new Perplexity provider. The default model is
// "sonar", Perplexity's search-grounded chat model.
func newPerplexity(cfg ProviderConfig) *perplexityProvider {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.perplexity.ai"
	}
	if cfg.Model == "" {
		cfg.Model = "sonar"
	}
	return &perplexityProvider{
		inner: &openAIProvider{
			name:   "perplexity",
			config: cfg,
			client: &http.Client{Timeout: 60 * time.Second},
		},
	}
}

func (p *perplexityProvider) Name() string { return "perplexity" }

// Generate sends a one-turn chat completion request to Perplexity.
func (p *perplexityProvider) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	return p.Chat(ctx, systemPrompt, []Message{{Role: "user", Content: userPrompt}})
}

// Chat sends a multi-turn chat completion request to Perplexity.
func (p *perplexityProvider) Chat(ctx context.Context, systemPrompt string, messages []Message) (string, error) {
	msgs := make([]openAIMessage, 0, len(messages)+1)
	if systemPrompt != "" {
		msgs = append(msgs, openAIMessage{Role: "system", Content: systemPrompt})
	}
	for _, m := range messages {
		msgs = append(msgs, openAIMessage{Role: m.Role, Content: m.Content})
	}

	body := openAIRequest{
		Model:       p.inner.config.Model,
		Messages:    msgs,
		Temperature: p.inner.config.Temperature,
		MaxTokens:   p.inner.config.MaxTokens,
	}

	return p.inner.doChat(ctx, body)
}
