// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package research

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"seoscribe/internal/ai"
)

// scriptedProvider fails for keywords listed in failFor and otherwise
// echoes findings for the keyword it sees in the prompt.
type scriptedProvider struct {
	mu      sync.Mutex
	failFor map[string]bool
	calls   int
	active  atomic.Int32
	peak    atomic.Int32
}

func (s *scriptedProvider) Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	cur := s.active.Add(1)
	defer s.active.Add(-1)
	for {
		p := s.peak.Load()
		if cur <= p || s.peak.CompareAndSwap(p, cur) {
			break
		}
	}

	s.mu.Lock()
	s.calls++
	s.mu.Unlock()

	for kw := range s.failFor {
		if strings.Contains(userPrompt, `"`+kw+`"`) {
			return "", &ai.StatusError{Provider: "perplexity", Status: 500, Body: "upstream down"}
		}
	}
	return "findings for: " + userPrompt, nil
}

func (s *scriptedProvider) Chat(ctx context.Context, systemPrompt string, messages []ai.Message) (string, error) {
	return "", errors.New("not used")
}

func (s *scriptedProvider) Name() string { return "scripted" }

func TestResearchAllSucceed(t *testing.T) {
	p := &scriptedProvider{}
	r := New(p, nil, 1)

	keywords := []string{"technical seo", "crawl budget", "link building"}
	out, err := r.Research(context.Background(), keywords, "English")
	if err != nil {
		t.Fatalf("Research: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(out))
	}
	for _, kw := range keywords {
		if out[kw] == "" || out[kw] == Unavailable {
			t.Errorf("keyword %q: got %q", kw, out[kw])
		}
		if !strings.Contains(out[kw], kw) {
			t.Errorf("findings for %q should mention the keyword", kw)
		}
	}
}

func TestResearchSingleFailureIsolated(t *testing.T) {
	p := &scriptedProvider{failFor: map[string]bool{"crawl budget": true}}
	r := New(p, nil, 1)

	keywords := []string{"technical seo", "crawl budget", "link building"}
	out, err := r.Research(context.Background(), keywords, "English")
	if err != nil {
		t.Fatalf("Research: %v", err)
	}
	if len(out) != len(keywords) {
		t.Fatalf("expected %d entries, got %d", len(keywords), len(out))
	}
	if out["crawl budget"] != Unavailable {
		t.Errorf("failed keyword: got %q, want sentinel", out["crawl budget"])
	}
	if out["technical seo"] == Unavailable || out["link building"] == Unavailable {
		t.Error("healthy keywords must keep real findings")
	}
}

func TestResearchAllFail(t *testing.T) {
	p := &scriptedProvider{failFor: map[string]bool{"a": true, "b": true}}
	r := New(p, nil, 1)

	out, err := r.Research(context.Background(), []string{"a", "b"}, "English")
	if err != nil {
		t.Fatalf("Research: %v", err)
	}
	for kw, v := range out {
		if v != Unavailable {
			t.Errorf("keyword %q: got %q, want sentinel", kw, v)
		}
	}
}

func TestResearchSequentialByDefault(t *testing.T) {
	p := &scriptedProvider{}
	r := New(p, nil, 1)

	kws := make([]string, 8)
	for i := range kws {
		kws[i] = fmt.Sprintf("keyword-%d", i)
	}
	if _, err := r.Research(context.Background(), kws, "English"); err != nil {
		t.Fatalf("Research: %v", err)
	}
	if p.peak.Load() != 1 {
		t.Errorf("peak concurrency: got %d, want 1", p.peak.Load())
	}
	if p.calls != 8 {
		t.Errorf("calls: got %d, want 8", p.calls)
	}
}

func TestResearchBoundedFanOut(t *testing.T) {
	p := &scriptedProvider{}
	r := New(p, nil, 3)

	kws := make([]string, 10)
	for i := range kws {
		kws[i] = fmt.Sprintf("keyword-%d", i)
	}
	out, err := r.Research(context.Background(), kws, "English")
	if err != nil {
		t.Fatalf("Research: %v", err)
	}
	if len(out) != 10 {
		t.Errorf("expected 10 entries, got %d", len(out))
	}
	if p.peak.Load() > 3 {
		t.Errorf("peak concurrency: got %d, want <= 3", p.peak.Load())
	}
}

func TestResearchPromptMentionsLanguage(t *testing.T) {
	prompt := buildPrompt("seo tools", "Spanish")
	if !strings.Contains(prompt, "Spanish") {
		t.Error("prompt should carry the target language")
	}
	if !strings.Contains(prompt, `"seo tools"`) {
		t.Error("prompt should carry the quoted keyword")
	}
	for _, section := range []string{"Key Features", "Ideal Customer Profile", "Differentiators", "Pricing Tiers", "Frequently Asked Questions"} {
		if !strings.Contains(prompt, section) {
			t.Errorf("prompt missing section %q", section)
		}
	}
}

// stubFetcher implements PageFetcher with canned responses.
type stubFetcher struct {
	failFor map[string]bool
}

func (s *stubFetcher) PageText(ctx context.Context, rawURL string) (string, error) {
	if s.failFor[rawURL] {
		return "", errors.New("connection refused")
	}
	return "page text of " + rawURL, nil
}

func TestPagesFailureIsolated(t *testing.T) {
	r := New(&scriptedProvider{}, nil, 2)
	f := &stubFetcher{failFor: map[string]bool{"https://down.example": true}}

	urls := []string{"https://up.example", "https://down.example"}
	out, err := r.Pages(context.Background(), f, urls)
	if err != nil {
		t.Fatalf("Pages: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(out))
	}
	if out["https://down.example"] != Unavailable {
		t.Errorf("failed url: got %q, want sentinel", out["https://down.example"])
	}
	if out["https://up.example"] != "page text of https://up.example" {
		t.Errorf("healthy url: got %q", out["https://up.example"])
	}
}
