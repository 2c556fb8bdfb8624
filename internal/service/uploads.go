package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hireloft/career-pages-api/internal/storage"
)

// AssetKind distinguishes upload constraint sets.
type AssetKind string

// Supported asset kinds.
const (
	AssetImage AssetKind = "image"
	AssetVideo AssetKind = "video"
)

// Size ceilings per asset kind.
const (
	maxImageBytes = 5 << 20
	maxVideoBytes = 100 << 20
)

var allowedImageMIMEs = map[string]struct{}{
	"image/jpeg":    {},
	"image/png":     {},
	"image/gif":     {},
	"image/webp":    {},
	"image/svg+xml": {},
}

var allowedVideoMIMEs = map[string]struct{}{
	"video/mp4":  {},
	"video/webm": {},
	"video/ogg":  {},
}

// UploadsService rejects invalid assets before they reach the object
// store and assigns collision-resistant storage keys.
type UploadsService struct {
	store storage.ObjectStore
	now   func() time.Time
}

// NewUploadsService creates a new instance of UploadsService.
func NewUploadsService(store storage.ObjectStore) *UploadsService {
	return &UploadsService{store: store, now: time.Now}
}

// Upload validates size and MIME constraints for the asset kind, then
// hands the bytes to the object store under a generated key. A rejected
// asset never reaches the store.
func (s *UploadsService) Upload(ctx context.Context, kind AssetKind, filename, contentType string, size int64, body io.Reader, bucket string) (string, error) {
	contentType = strings.ToLower(strings.TrimSpace(contentType))
	if idx := strings.Index(contentType, ";"); idx >= 0 {
		contentType = strings.TrimSpace(contentType[:idx])
	}

	switch kind {
	case AssetImage:
		if size > maxImageBytes {
			return "", ValidationError{Field: "file", Message: "image exceeds 5 MiB limit"}
		}
		if _, ok := allowedImageMIMEs[contentType]; !ok {
			return "", ValidationError{Field: "file", Message: fmt.Sprintf("unsupported image type %q", contentType)}
		}
	case AssetVideo:
		if size > maxVideoBytes {
			return "", ValidationError{Field: "file", Message: "video exceeds 100 MiB limit"}
		}
		if _, ok := allowedVideoMIMEs[contentType]; !ok {
			return "", ValidationError{Field: "file", Message: fmt.Sprintf("unsupported video type %q", contentType)}
		}
	default:
		return "", ValidationError{Field: "kind", Message: "must be image or video"}
	}

	if size <= 0 {
		return "", ValidationError{Field: "file", Message: "file is empty"}
	}

	key := s.storageKey(filename)
	publicURL, err := s.store.Put(ctx, bucket, key, contentType, body, size)
	if err != nil {
		return "", fmt.Errorf("store asset: %w", err)
	}
	return publicURL, nil
}

// storageKey builds a collision-resistant key from a random token, a
// timestamp and the original extension. The caller-supplied filename is
// never used directly as a durable key.
func (s *UploadsService) storageKey(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	return fmt.Sprintf("%s-%d%s", uuid.NewString(), s.now().Unix(), ext)
}
