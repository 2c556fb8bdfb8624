package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hireloft/career-pages-api/internal/cache"
	"github.com/hireloft/career-pages-api/internal/dto"
	"github.com/hireloft/career-pages-api/internal/repository"
	"github.com/hireloft/career-pages-api/internal/service"
)

// PagesHandler exposes owner-facing career page endpoints.
type PagesHandler struct {
	service *service.PagesService
	cache   *cache.Cache
}

// NewPagesHandler creates a new handler instance.
func NewPagesHandler(service *service.PagesService, cache *cache.Cache) *PagesHandler {
	return &PagesHandler{service: service, cache: cache}
}

// Get handles GET /companies/:id/page requests. A company without a page
// yet is a valid empty state, answered with a null payload rather than
// an error.
func (h *PagesHandler) Get(c echo.Context) error {
	owner, ok := ownerID(c)
	if !ok {
		return Error(c, http.StatusUnauthorized, "missing principal")
	}
	companyID, err := paramUUID(c, "id")
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid company id")
	}

	page, err := h.service.GetPage(c.Request().Context(), companyID, owner)
	if err != nil {
		if errors.Is(err, repository.ErrCareerPageNotFound) {
			return Success(c, http.StatusOK, "career page not created yet", nil)
		}
		return respondError(c, err, "failed to fetch career page")
	}

	return Success(c, http.StatusOK, "career page retrieved", page)
}

// Update handles PATCH /companies/:id/page requests.
func (h *PagesHandler) Update(c echo.Context) error {
	owner, ok := ownerID(c)
	if !ok {
		return Error(c, http.StatusUnauthorized, "missing principal")
	}
	companyID, err := paramUUID(c, "id")
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid company id")
	}

	var req dto.UpdatePageRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}
	if req.Theme == nil {
		return Error(c, http.StatusBadRequest, "no fields to update")
	}

	page, err := h.service.UpdateTheme(c.Request().Context(), companyID, owner, *req.Theme)
	if err != nil {
		return respondError(c, err, "failed to update career page")
	}

	h.cache.Delete(c.Request().Context(), cache.PublicPageKey(companyID))
	return Success(c, http.StatusOK, "career page updated", page)
}

// Publish handles POST /companies/:id/page/publish requests.
func (h *PagesHandler) Publish(c echo.Context) error {
	return h.setPublished(c, true)
}

// Unpublish handles POST /companies/:id/page/unpublish requests.
func (h *PagesHandler) Unpublish(c echo.Context) error {
	return h.setPublished(c, false)
}

func (h *PagesHandler) setPublished(c echo.Context, published bool) error {
	owner, ok := ownerID(c)
	if !ok {
		return Error(c, http.StatusUnauthorized, "missing principal")
	}
	companyID, err := paramUUID(c, "id")
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid company id")
	}

	page, err := h.service.SetPublished(c.Request().Context(), companyID, owner, published)
	if err != nil {
		return respondError(c, err, "failed to change publish state")
	}

	h.cache.Delete(c.Request().Context(), cache.PublicPageKey(companyID), cache.SitemapKey)

	message := "career page unpublished"
	if published {
		message = "career page published"
	}
	return Success(c, http.StatusOK, message, page)
}
