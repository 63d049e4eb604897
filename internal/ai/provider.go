// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package ai provides a unified interface for the external LLM vendors the
// pipeline talks to: Perplexity for search-augmented research and an
// OpenAI-compatible gateway (or Gemini, Claude, Mistral) for generation.
// Each provider implements the Provider interface, and the Registry selects
// the active generation provider by name.
package ai

import (
	"context"
	"fmt"
	"sync"
)

// Message is a single turn in a chat conversation.
type Message struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// Provider defines the interface that all AI providers must implement.
// Each provider handles its own HTTP communication and response parsing.
type Provider interface {
	// Generate sends a one-turn prompt to the LLM and returns the
	// generated text. systemPrompt sets the model's behaviour; userPrompt
	// is the request itself.
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)

	// Chat sends a multi-turn conversation and returns the assistant's
	// reply. The system prompt is carried separately because providers
	// differ in how they encode it.
	Chat(ctx context.Context, systemPrompt string, messages []Message) (string, error)

	// Name returns the provider identifier (e.g., "perplexity", "openai").
	Name() string
}

// ProviderConfig holds the credentials and settings for a single provider.
// Credentials are injected here at startup; providers never read the
// process environment at call time.
type ProviderConfig struct {
	APIKey      string
	Model       string
	BaseURL     string
	KeyEnvVar   string  // environment variable the key was loaded from, for error messages
	Temperature float64 // 0 means the vendor default
	MaxTokens   int     // 0 means the vendor default
}

// Registry manages available AI providers and selects the active generation
// provider. All methods are safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
	active    string
	moderator Moderator // may be nil if no moderation API is available
}

// NewRegistry creates a registry and initialises providers for every config
// that has a non-empty API key. Providers without keys are silently skipped.
// A Moderator is automatically configured: OpenAI's free moderation API is
// preferred; Mistral's paid endpoint is used as fallback.
func NewRegistry(active string, configs map[string]ProviderConfig) *Registry {
	r := &Registry{
		providers: make(map[string]Provider),
		active:    active,
	}

	for name, cfg := range configs {
		if cfg.APIKey == "" {
			continue
		}
		switch name {
		case "perplexity":
			r.providers[name] = newPerplexity(cfg)
		case "openai":
			r.providers[name] = newOpenAI(cfg)
		case "gemini":
			r.providers[name] = newGemini(cfg)
		case "claude":
			r.providers[name] = newClaude(cfg)
		case "mistral":
			r.providers[name] = newMistral(cfg)
		}
	}

	// Set up prompt moderation: prefer OpenAI (free), fall back to Mistral.
	// When both keys are available, use a fallback moderator that switches
	// from OpenAI to Mistral on auth errors (e.g. project-scoped keys).
	openaiCfg, hasOpenAI := configs["openai"]
	hasOpenAI = hasOpenAI && openaiCfg.APIKey != ""
	mistralCfg, hasMistral := configs["mistral"]
	hasMistral = hasMistral && mistralCfg.APIKey != ""

	if hasOpenAI && hasMistral {
		r.moderator = newFallbackModerator(
			newOpenAIModerator(openaiCfg.APIKey, openaiCfg.BaseURL),
			newMistralModerator(mistralCfg.APIKey, mistralCfg.BaseURL),
		)
	} else if hasOpenAI {
		r.moderator = newOpenAIModerator(openaiCfg.APIKey, openaiCfg.BaseURL)
	} else if hasMistral {
		r.moderator = newMistralModerator(mistralCfg.APIKey, mistralCfg.BaseURL)
	}

	return r
}

// Generate calls the active provider's Generate method.
func (r *Registry) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	p, err := r.Active()
	if err != nil {
		return "", err
	}
	return p.Generate(ctx, systemPrompt, userPrompt)
}

// Chat calls the active provider's Chat method.
func (r *Registry) Chat(ctx context.Context, systemPrompt string, messages []Message) (string, error) {
	p, err := r.Active()
	if err != nil {
		return "", err
	}
	return p.Chat(ctx, systemPrompt, messages)
}

// Active returns the currently active generation provider.
func (r *Registry) Active() (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[r.active]
	if !ok {
		return nil, fmt.Errorf("ai: no provider configured for %q", r.active)
	}
	return p, nil
}

// Provider returns a named provider regardless of which one is active.
// The research pipeline uses this to reach Perplexity while generation
// runs on a different vendor.
func (r *Registry) Provider(name string) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("ai: provider %q is not available (no API key?)", name)
	}
	return p, nil
}

// SetActive switches the active generation provider at runtime. Returns an
// error if the named provider has no API key configured.
func (r *Registry) SetActive(name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.providers[name]; !ok {
		return fmt.Errorf("ai: provider %q is not available (no API key?)", name)
	}
	r.active = name
	return nil
}

// ActiveName returns the name of the currently active provider.
func (r *Registry) ActiveName() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.active
}

// Available returns the names of all providers that have valid API keys.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var names []string
	for name := range r.providers {
		names = append(names, name)
	}
	return names
}

// Register adds or replaces a provider in the registry. This allows injecting
// custom providers at runtime (e.g. for testing).
func (r *Registry) Register(name string, p Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[name] = p
}

// HasProvider checks whether a named provider is configured and available.
func (r *Registry) HasProvider(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.providers[name]
	return ok
}

// CheckPrompt runs user-supplied text through the moderation API before
// generation. When no moderator is configured the text is reported safe,
// leaving filtering to the providers' own built-in checks. Returns a
// *ModerationResult with Safe=false and flagged Categories if the text
// violates policies.
func (r *Registry) CheckPrompt(ctx context.Context, prompt string) (*ModerationResult, error) {
	if r.moderator == nil {
		return &ModerationResult{Safe: true}, nil
	}
	return r.moderator.CheckSafety(ctx, prompt)
}
