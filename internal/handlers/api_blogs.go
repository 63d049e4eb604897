// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"seoscribe/internal/markdown"
	"seoscribe/internal/models"
)

// blogID parses the {id} route parameter.
func blogID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, &ValidationError{Msg: "invalid blog id"}
	}
	return id, nil
}

// ListBlogs returns all stored blogs, newest first.
func (a *API) ListBlogs(w http.ResponseWriter, r *http.Request) {
	blogs, err := a.Blogs.List()
	if err != nil {
		writeError(w, err)
		return
	}
	if blogs == nil {
		blogs = []models.Blog{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"blogs": blogs})
}

// GetBlog returns a single blog by id.
func (a *API) GetBlog(w http.ResponseWriter, r *http.Request) {
	id, err := blogID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	blog, err := a.Blogs.FindByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if blog == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "blog not found"})
		return
	}
	writeJSON(w, http.StatusOK, blog)
}

// UpdateBlog modifies a blog's title, content, keywords, or status.
func (a *API) UpdateBlog(w http.ResponseWriter, r *http.Request) {
	id, err := blogID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req struct {
		Title    *string  `json:"title"`
		Content  *string  `json:"content"`
		Keywords []string `json:"keywords"`
		Status   *string  `json:"status"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	blog, err := a.Blogs.FindByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if blog == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "blog not found"})
		return
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			writeError(w, &ValidationError{Msg: "Title must not be empty."})
			return
		}
		if title != blog.Title {
			blog.Title = title
			blog.Slug = a.uniqueSlug(title)
		}
	}
	if req.Content != nil {
		blog.Content = *req.Content
	}
	if req.Keywords != nil {
		if msg := validateKeywords(req.Keywords); msg != "" {
			writeError(w, &ValidationError{Msg: msg})
			return
		}
		blog.Keywords = req.Keywords
	}
	if req.Status != nil {
		switch models.BlogStatus(*req.Status) {
		case models.BlogStatusDraft, models.BlogStatusPublished:
			blog.Status = models.BlogStatus(*req.Status)
		default:
			writeError(w, &ValidationError{Msg: "Status must be draft or published."})
			return
		}
	}

	updated, err := a.Blogs.Update(blog)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteBlog removes a blog and its recorded competitor URLs.
func (a *API) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	id, err := blogID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := a.Blogs.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "blog not found"})
			return
		}
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PreviewBlog renders the blog's Markdown content as HTML.
func (a *API) PreviewBlog(w http.ResponseWriter, r *http.Request) {
	id, err := blogID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	blog, err := a.Blogs.FindByID(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if blog == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "blog not found"})
		return
	}

	html, err := markdown.ToHTML(blog.Content)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"title": blog.Title,
		"html":  html,
	})
}
