// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// BrandProfile holds the business identity used to ground blog generation.
// It is produced by the website analyzer and editable afterwards. The
// installation keeps a single profile row.
type BrandProfile struct {
	ID                  uuid.UUID `json:"id"`
	BrandName           string    `json:"brandName"`
	BusinessDescription string    `json:"businessDescription"`
	TargetAudience      string    `json:"targetAudience"`
	Benefits            string    `json:"benefits"`
	Industry            string    `json:"industry"`
	ToneOfVoice         string    `json:"toneOfVoice"`
	WebsiteURL          string    `json:"websiteUrl"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// IsComplete reports whether every analyzer field carries a real value
// rather than a placeholder. Used to decide whether re-analysis is worth
// suggesting to the operator.
func (p *BrandProfile) IsComplete() bool {
	return p.BrandName != "" && p.BrandName != "Unknown" &&
		p.BusinessDescription != "" &&
		p.TargetAudience != "" &&
		p.Benefits != "" && p.Benefits != "To be determined" &&
		p.Industry != "" &&
		p.ToneOfVoice != ""
}
