package dto

// ApplyRequest is a public candidate submission.
type ApplyRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	ResumeURL string `json:"resume_url,omitempty"`
}
