// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ToneSample is a reference text whose writing style the composer imitates.
// Samples longer than the composer's excerpt window are truncated at prompt
// assembly time, not here.
type ToneSample struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Content   string    `json:"content"`
	SourceURL string    `json:"sourceUrl,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CompetitorURL records a competitor page consulted while generating a blog,
// kept for traceability of what shaped the draft.
type CompetitorURL struct {
	ID        uuid.UUID `json:"id"`
	BlogID    uuid.UUID `json:"blog_id"`
	URL       string    `json:"url"`
	CreatedAt time.Time `json:"created_at"`
}
