package dto

// UploadResponse returns the public URL assigned by the object store.
// The URL is opaque to the rest of the system.
type UploadResponse struct {
	URL string `json:"url"`
}
