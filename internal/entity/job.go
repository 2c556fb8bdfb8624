package entity

import (
	"time"

	"github.com/google/uuid"
)

// Job is a posting attached to a company. A job is externally reachable
// only when it is published, carries a non-empty slug, and its company's
// career page is itself published.
type Job struct {
	ID          uuid.UUID `json:"id"`
	CompanyID   uuid.UUID `json:"company_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	JobSlug     string    `json:"job_slug"`
	JobType     string    `json:"job_type"`
	Location    string    `json:"location"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
