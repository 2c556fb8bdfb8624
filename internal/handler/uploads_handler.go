package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/hireloft/career-pages-api/internal/dto"
	"github.com/hireloft/career-pages-api/internal/service"
)

// UploadsHandler accepts multipart asset uploads for page media.
type UploadsHandler struct {
	uploads *service.UploadsService
	bucket  string
}

// NewUploadsHandler creates a new handler instance.
func NewUploadsHandler(uploads *service.UploadsService, bucket string) *UploadsHandler {
	return &UploadsHandler{uploads: uploads, bucket: bucket}
}

// Upload handles POST /uploads requests. The multipart form carries the
// asset under "file" and its kind (image or video) under "kind".
func (h *UploadsHandler) Upload(c echo.Context) error {
	if _, ok := ownerID(c); !ok {
		return Error(c, http.StatusUnauthorized, "missing principal")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return Error(c, http.StatusBadRequest, "file is required")
	}

	kind := service.AssetKind(strings.ToLower(strings.TrimSpace(c.FormValue("kind"))))
	if kind != service.AssetImage && kind != service.AssetVideo {
		return Error(c, http.StatusBadRequest, "kind must be image or video")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to read upload")
	}
	defer file.Close()

	url, err := h.uploads.Upload(
		c.Request().Context(),
		kind,
		fileHeader.Filename,
		fileHeader.Header.Get("Content-Type"),
		fileHeader.Size,
		file,
		h.bucket,
	)
	if err != nil {
		return respondError(c, err, "failed to store upload")
	}

	return Success(c, http.StatusCreated, "upload stored", dto.UploadResponse{URL: url})
}
