package dto

// CreateJobRequest captures the payload for creating a job posting.
type CreateJobRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	JobSlug     string `json:"job_slug"`
	JobType     string `json:"job_type"`
	Location    string `json:"location"`
}

// UpdateJobRequest captures a partial job update.
type UpdateJobRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	JobSlug     *string `json:"job_slug,omitempty"`
	JobType     *string `json:"job_type,omitempty"`
	Location    *string `json:"location,omitempty"`
	Published   *bool   `json:"published,omitempty"`
}

// BulkJobActionRequest applies one action to a set of jobs.
type BulkJobActionRequest struct {
	JobIDs []string `json:"job_ids"`
	Action string   `json:"action"`
}

// BulkJobActionResponse reports the batch outcome. Affected counts rows
// the statement touched; on error callers must re-fetch rather than
// assume nothing changed.
type BulkJobActionResponse struct {
	Action   string `json:"action"`
	Affected int64  `json:"affected"`
}
