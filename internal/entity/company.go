package entity

import (
	"time"

	"github.com/google/uuid"
)

// Company is a tenant that publishes a career page. The slug is part of
// every public URL and is immutable after creation.
type Company struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug"`
	OwnerID   uuid.UUID `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// CareerPage is the single public page belonging to a company. Exactly one
// row exists per company; it is created in the same transaction as the
// company itself, starting as a draft.
type CareerPage struct {
	ID        uuid.UUID `json:"id"`
	CompanyID uuid.UUID `json:"company_id"`
	Theme     string    `json:"theme"`
	Published bool      `json:"published"`
	UpdatedAt time.Time `json:"updated_at"`
}
