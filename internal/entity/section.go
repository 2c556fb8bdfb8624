package entity

import (
	"time"

	"github.com/google/uuid"
)

// SectionType identifies the kind of content block a page section holds.
type SectionType string

// Known section types. Anything else is treated as custom.
const (
	SectionAbout    SectionType = "about"
	SectionCulture  SectionType = "culture"
	SectionBenefits SectionType = "benefits"
	SectionTeam     SectionType = "team"
	SectionValues   SectionType = "values"
	SectionCustom   SectionType = "custom"
)

// Valid reports whether the type is one of the known section types.
func (t SectionType) Valid() bool {
	switch t {
	case SectionAbout, SectionCulture, SectionBenefits, SectionTeam, SectionValues, SectionCustom:
		return true
	}
	return false
}

// PageSection is one ordered content block on a career page. Order values
// for the sections of a page never collide, but deletions may leave gaps;
// readers sort ascending and must not assume contiguity.
type PageSection struct {
	ID           uuid.UUID   `json:"id"`
	CareerPageID uuid.UUID   `json:"career_page_id"`
	Type         SectionType `json:"type"`
	Title        string      `json:"title"`
	Content      string      `json:"content"`
	Order        int         `json:"order"`
	Visible      bool        `json:"visible"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
