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

	"seoscribe/internal/models"
)

// GetBrandProfile returns the stored brand profile.
func (a *API) GetBrandProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := a.Profiles.Get()
	if err != nil {
		writeError(w, err)
		return
	}
	if profile == nil {
		profile = &models.BrandProfile{}
	}
	writeJSON(w, http.StatusOK, profile)
}

// PutBrandProfile replaces the brand profile with the submitted fields.
func (a *API) PutBrandProfile(w http.ResponseWriter, r *http.Request) {
	var req models.BrandProfile
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	saved, err := a.Profiles.Save(&req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

// ListToneSamples returns all stored tone samples.
func (a *API) ListToneSamples(w http.ResponseWriter, r *http.Request) {
	samples, err := a.ToneSamples.List()
	if err != nil {
		writeError(w, err)
		return
	}
	if samples == nil {
		samples = []models.ToneSample{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"toneSamples": samples})
}

// CreateToneSample stores a new tone sample. When sourceUrl is given and
// content is empty, the page text is fetched and used as the content.
func (a *API) CreateToneSample(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name      string `json:"name"`
		Content   string `json:"content"`
		SourceURL string `json:"sourceUrl"`
	}
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, &ValidationError{Msg: "Name is required."})
		return
	}
	if req.Content == "" && req.SourceURL == "" {
		writeError(w, &ValidationError{Msg: "Either content or sourceUrl is required."})
		return
	}
	if len(req.Content) > maxToneSampleLen {
		writeError(w, &ValidationError{Msg: "Tone sample is too long."})
		return
	}

	if req.Content == "" {
		if !isHTTPURL(req.SourceURL) {
			writeError(w, &ValidationError{Msg: "sourceUrl must be an absolute http(s) URL."})
			return
		}
		if a.Fetcher == nil {
			writeError(w, errors.New("page fetching is not available"))
			return
		}
		text, err := a.Fetcher.PageText(r.Context(), req.SourceURL)
		if err != nil {
			writeError(w, err)
			return
		}
		req.Content = text
	}

	created, err := a.ToneSamples.Create(&models.ToneSample{
		Name:      req.Name,
		Content:   req.Content,
		SourceURL: req.SourceURL,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// DeleteToneSample removes a tone sample by id.
func (a *API) DeleteToneSample(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, &ValidationError{Msg: "invalid tone sample id"})
		return
	}
	if err := a.ToneSamples.Delete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "tone sample not found"})
			return
		}
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
