package dto

// CreateCompanyRequest captures the payload for company creation.
type CreateCompanyRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// UpdatePageRequest captures a partial career page update.
type UpdatePageRequest struct {
	Theme *string `json:"theme,omitempty"`
}
