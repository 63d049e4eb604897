// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package chatedit runs the multi-turn editing conversation over a blog
// draft. The live document state travels in the system prompt on every
// turn so the model always edits the current version, not the one the
// conversation started with.
package chatedit

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"seoscribe/internal/ai"
)

// Request is one editing turn: the user message plus the document snapshot
// and the prior conversation.
type Request struct {
	Message     string
	BlogTitle   string
	BlogContent string
	Keywords    []string
	History     []ai.Message
}

// Editor answers editing requests through a completion provider.
type Editor struct {
	provider ai.Provider
}

// New creates an Editor backed by the given provider.
func New(provider ai.Provider) *Editor {
	return &Editor{provider: provider}
}

// Edit sends the conversation to the model and returns its reply verbatim.
// The reply is free text; no shape recovery applies here.
func (e *Editor) Edit(ctx context.Context, req Request) (string, error) {
	messages := make([]ai.Message, 0, len(req.History)+1)
	messages = append(messages, req.History...)
	messages = append(messages, ai.Message{Role: "user", Content: req.Message})

	slog.Info("processing blog edit request",
		"history_turns", len(req.History),
		"provider", e.provider.Name(),
	)

	reply, err := e.provider.Chat(ctx, SystemPrompt(req), messages)
	if err != nil {
		return "", fmt.Errorf("blog edit chat: %w", err)
	}
	return reply, nil
}

// SystemPrompt renders the editorial instruction with the current document
// embedded. Missing fields get readable stand-ins rather than empty gaps.
func SystemPrompt(req Request) string {
	title := req.BlogTitle
	if title == "" {
		title = "Untitled"
	}
	content := req.BlogContent
	if content == "" {
		content = "No content yet"
	}
	keywords := "none specified"
	if len(req.Keywords) > 0 {
		keywords = strings.Join(req.Keywords, ", ")
	}

	return fmt.Sprintf(`You are an expert blog editor and SEO specialist. Help the user edit and improve their blog content.

Current Blog Context:
- Title: %s
- Target Keywords: %s
- Content: %s

Your role:
- Provide specific, actionable suggestions for improvements
- Help with SEO optimization and keyword integration
- Improve readability, structure, and engagement
- Suggest better headlines, transitions, and conclusions
- When suggesting edits, show the improved version using markdown code blocks
- Be concise but helpful

Remember: The blog is written in Markdown format. When suggesting text changes, provide the complete improved section.`, title, keywords, content)
}
