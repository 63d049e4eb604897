// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// --- Blog Pipeline Endpoints ---
//
// These handlers front the AI pipeline: website analysis, keyword
// research, blog generation, and the editing chat. All of them accept a
// JSON body, call the matching service, and reply with JSON or the error
// envelope.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"seoscribe/internal/ai"
	"seoscribe/internal/chatedit"
	"seoscribe/internal/compose"
	"seoscribe/internal/models"
	"seoscribe/internal/research"
	"seoscribe/internal/slug"
)

// AnalyzeWebsite profiles the business behind a website URL and saves the
// result as the brand profile.
func (a *API) AnalyzeWebsite(w http.ResponseWriter, r *http.Request) {
	var req struct {
		WebsiteURL string `json:"websiteUrl"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if strings.TrimSpace(req.WebsiteURL) == "" {
		writeError(w, &ValidationError{Msg: "Website URL is required"})
		return
	}
	if err := a.requireResearch(); err != nil {
		writeError(w, err)
		return
	}

	profile, err := a.Analyzer.Analyze(r.Context(), req.WebsiteURL)
	if err != nil {
		writeError(w, err)
		return
	}

	// Persist as the brand profile so generation picks it up. Failure to
	// save is logged but does not fail the analysis itself.
	if a.Profiles != nil {
		_, err := a.Profiles.Save(&models.BrandProfile{
			BrandName:           profile.BrandName,
			BusinessDescription: profile.BusinessDescription,
			TargetAudience:      profile.TargetAudience,
			Benefits:            profile.Benefits,
			Industry:            profile.Industry,
			ToneOfVoice:         profile.ToneOfVoice,
			WebsiteURL:          req.WebsiteURL,
		})
		if err != nil {
			slog.Error("save analyzed brand profile", "error", err)
		}
	}

	writeJSON(w, http.StatusOK, profile)
}

// ResearchKeywords runs per-keyword research and returns the findings map.
// One entry per requested keyword, failed items carry the sentinel value.
func (a *API) ResearchKeywords(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Keywords []string `json:"keywords"`
		Language string   `json:"language"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if msg := validateKeywords(req.Keywords); msg != "" {
		writeError(w, &ValidationError{Msg: msg})
		return
	}
	if err := a.requireResearch(); err != nil {
		writeError(w, err)
		return
	}

	findings, err := a.Researcher.Research(r.Context(), req.Keywords, req.Language)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"findings": findings})
}

// GenerateBlog runs the full pipeline: keyword research, competitor page
// fetch, prompt assembly, one generation call, and draft recovery. The
// draft is stored and returned with its id and slug.
func (a *API) GenerateBlog(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Keywords       []string `json:"keywords"`
		CompetitorURLs []string `json:"competitorUrls"`
		ToneSample     string   `json:"toneSample"`
		ToneSampleURLs []string `json:"toneSampleUrls"`
		Language       string   `json:"language"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if msg := validateKeywords(req.Keywords); msg != "" {
		writeError(w, &ValidationError{Msg: msg})
		return
	}
	if msg := validateCompetitorURLs(req.CompetitorURLs); msg != "" {
		writeError(w, &ValidationError{Msg: msg})
		return
	}
	if msg := validateToneSampleURLs(req.ToneSampleURLs); msg != "" {
		writeError(w, &ValidationError{Msg: msg})
		return
	}
	if len(req.ToneSample) > maxToneSampleLen {
		writeError(w, &ValidationError{Msg: "Tone sample is too long."})
		return
	}
	if err := a.requireGeneration(); err != nil {
		writeError(w, err)
		return
	}

	// Moderation fails open, as in the editing chat. Only user-authored
	// text is checked; fetched page content is not.
	if a.Registry != nil {
		userText := strings.Join(req.Keywords, "\n")
		if req.ToneSample != "" {
			userText += "\n" + req.ToneSample
		}
		result, err := a.Registry.CheckPrompt(r.Context(), userText)
		if err != nil {
			slog.Warn("prompt moderation unavailable", "error", err)
		} else if !result.Safe {
			writeError(w, &ValidationError{Msg: "Request was flagged by content moderation."})
			return
		}
	}

	composeReq := compose.Request{
		Keywords:       req.Keywords,
		CompetitorURLs: req.CompetitorURLs,
		ToneSample:     req.ToneSample,
		Language:       req.Language,
	}

	// Brand grounding is optional; a missing profile just means a generic
	// prompt.
	if a.Profiles != nil {
		if profile, err := a.Profiles.Get(); err != nil {
			slog.Error("load brand profile", "error", err)
		} else if profile != nil {
			composeReq.BrandName = profile.BrandName
			composeReq.BusinessDescription = profile.BusinessDescription
			composeReq.TargetAudience = profile.TargetAudience
		}
	}

	// Research is best-effort: without the research credential the blog is
	// generated from keywords alone, matching the degraded findings path.
	if a.Researcher != nil {
		findings, err := a.Researcher.Research(r.Context(), req.Keywords, req.Language)
		if err != nil {
			writeError(w, err)
			return
		}
		composeReq.Findings = findings

		if a.Fetcher != nil && len(req.CompetitorURLs) > 0 {
			pages, err := a.Researcher.Pages(r.Context(), a.Fetcher, req.CompetitorURLs)
			if err != nil {
				writeError(w, err)
				return
			}
			// Unreachable pages stay listed by URL only.
			for u, text := range pages {
				if text == research.Unavailable {
					delete(pages, u)
				}
			}
			composeReq.CompetitorPages = pages
		}

		// An inline tone sample wins; tone URLs are fetched only when no
		// sample was supplied. Unreachable pages are skipped.
		if a.Fetcher != nil && composeReq.ToneSample == "" && len(req.ToneSampleURLs) > 0 {
			pages, err := a.Researcher.Pages(r.Context(), a.Fetcher, req.ToneSampleURLs)
			if err != nil {
				writeError(w, err)
				return
			}
			var parts []string
			for _, u := range req.ToneSampleURLs {
				if text := pages[u]; text != "" && text != research.Unavailable {
					parts = append(parts, text)
				}
			}
			composeReq.ToneSample = strings.Join(parts, "\n\n")
		}
	}

	draft, err := a.Composer.Compose(r.Context(), composeReq)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := map[string]any{
		"title":   draft.Title,
		"content": draft.Content,
	}

	if a.Blogs != nil {
		blog, err := a.Blogs.Create(&models.Blog{
			Title:    draft.Title,
			Slug:     a.uniqueSlug(draft.Title),
			Content:  draft.Content,
			Keywords: req.Keywords,
			Language: composeReq.Language,
			Status:   models.BlogStatusDraft,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		if a.Competitors != nil && len(req.CompetitorURLs) > 0 {
			if err := a.Competitors.Record(blog.ID, req.CompetitorURLs); err != nil {
				slog.Error("record competitor urls", "error", err)
			}
		}
		resp["id"] = blog.ID
		resp["slug"] = blog.Slug
	}

	writeJSON(w, http.StatusOK, resp)
}

// ChatEditBlog answers one turn of the blog editing conversation.
func (a *API) ChatEditBlog(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Message             string       `json:"message"`
		BlogContent         string       `json:"blogContent"`
		BlogTitle           string       `json:"blogTitle"`
		Keywords            []string     `json:"keywords"`
		ConversationHistory []ai.Message `json:"conversationHistory"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		writeError(w, &ValidationError{Msg: "Message is required"})
		return
	}
	if len(req.Message) > maxMessageLen {
		writeError(w, &ValidationError{Msg: "Message is too long."})
		return
	}
	if err := a.requireGeneration(); err != nil {
		writeError(w, err)
		return
	}

	// Moderation fails open: a broken moderation endpoint must not take
	// down the editor.
	if a.Registry != nil {
		result, err := a.Registry.CheckPrompt(r.Context(), req.Message)
		if err != nil {
			slog.Warn("prompt moderation unavailable", "error", err)
		} else if !result.Safe {
			writeError(w, &ValidationError{Msg: "Message was flagged by content moderation."})
			return
		}
	}

	reply, err := a.Editor.Edit(r.Context(), chatedit.Request{
		Message:     req.Message,
		BlogTitle:   req.BlogTitle,
		BlogContent: req.BlogContent,
		Keywords:    req.Keywords,
		History:     req.ConversationHistory,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"reply": reply})
}

// uniqueSlug derives a slug from the title, suffixing a counter when the
// plain slug is already taken.
func (a *API) uniqueSlug(title string) string {
	base := slug.Generate(title)
	if base == "" {
		base = "blog"
	}
	candidate := base
	for i := 2; i <= 50; i++ {
		exists, err := a.Blogs.SlugExists(candidate)
		if err != nil || !exists {
			return candidate
		}
		candidate = base + "-" + strconv.Itoa(i)
	}
	return candidate
}
