package entity

import (
	"time"

	"github.com/google/uuid"
)

// Application is a candidate submission against a published job.
type Application struct {
	ID        uuid.UUID `json:"id"`
	JobID     uuid.UUID `json:"job_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	ResumeURL *string   `json:"resume_url,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
