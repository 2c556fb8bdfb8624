package dto

// CreateSectionRequest captures the payload for appending a section.
type CreateSectionRequest struct {
	Type  string  `json:"type"`
	Title *string `json:"title,omitempty"`
}

// UpdateSectionRequest captures a partial section update. Only supplied
// fields are written.
type UpdateSectionRequest struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
	Order   *int    `json:"order,omitempty"`
	Visible *bool   `json:"visible,omitempty"`
}

// ReorderSectionsRequest carries the complete new ordering for a page's
// sections, first to last.
type ReorderSectionsRequest struct {
	SectionIDs []string `json:"section_ids"`
}
