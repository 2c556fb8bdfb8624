package handler

import (
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/hireloft/career-pages-api/internal/cache"
	"github.com/hireloft/career-pages-api/internal/dto"
	"github.com/hireloft/career-pages-api/internal/entity"
	"github.com/hireloft/career-pages-api/internal/repository"
	"github.com/hireloft/career-pages-api/internal/service"
)

// SectionsHandler exposes section composition endpoints.
type SectionsHandler struct {
	sections  *service.SectionsService
	companies repository.CompaniesRepository
	cache     *cache.Cache
}

// NewSectionsHandler creates a new handler instance.
func NewSectionsHandler(sections *service.SectionsService, companies repository.CompaniesRepository, cache *cache.Cache) *SectionsHandler {
	return &SectionsHandler{sections: sections, companies: companies, cache: cache}
}

// resolvePage loads the page and checks the caller owns its company.
func (h *SectionsHandler) resolvePage(c echo.Context, pageID uuid.UUID) (*entity.CareerPage, error) {
	owner, ok := ownerID(c)
	if !ok {
		return nil, errUnauthorized
	}
	page, err := h.companies.FindPageByID(c.Request().Context(), pageID)
	if err != nil {
		return nil, err
	}
	if _, err := h.companies.FindByID(c.Request().Context(), page.CompanyID, owner); err != nil {
		return nil, err
	}
	return page, nil
}

// Create handles POST /pages/:pageId/sections requests.
func (h *SectionsHandler) Create(c echo.Context) error {
	pageID, err := paramUUID(c, "pageId")
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid page id")
	}
	page, err := h.resolvePage(c, pageID)
	if err != nil {
		return respondError(c, err, "failed to resolve page")
	}

	var req dto.CreateSectionRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	section, err := h.sections.CreateSection(c.Request().Context(), pageID, req.Type, req.Title)
	if err != nil {
		return respondError(c, err, "failed to create section")
	}

	h.cache.Delete(c.Request().Context(), cache.PublicPageKey(page.CompanyID))
	return Success(c, http.StatusCreated, "section created", section)
}

// List handles GET /pages/:pageId/sections requests. Sections come back
// sorted by order ascending; order values may contain gaps after
// deletions.
func (h *SectionsHandler) List(c echo.Context) error {
	pageID, err := paramUUID(c, "pageId")
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid page id")
	}
	if _, err := h.resolvePage(c, pageID); err != nil {
		return respondError(c, err, "failed to resolve page")
	}

	// A failed read and a page with no sections look the same to the
	// composer: an empty sequence.
	sections, err := h.sections.ListSections(c.Request().Context(), pageID)
	if err != nil {
		log.Printf("list sections %s: %v", pageID, err)
		sections = nil
	}
	if sections == nil {
		sections = []entity.PageSection{}
	}

	return Success(c, http.StatusOK, "sections retrieved", sections)
}

// resolveSection loads the section and checks the caller owns the page
// it belongs to. Returns the page so callers can invalidate its public
// view.
func (h *SectionsHandler) resolveSection(c echo.Context, sectionID uuid.UUID) (*entity.CareerPage, error) {
	section, err := h.sections.GetSection(c.Request().Context(), sectionID)
	if err != nil {
		return nil, err
	}
	return h.resolvePage(c, section.CareerPageID)
}

// Update handles PATCH /sections/:id requests.
func (h *SectionsHandler) Update(c echo.Context) error {
	sectionID, err := paramUUID(c, "id")
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid section id")
	}
	page, err := h.resolveSection(c, sectionID)
	if err != nil {
		return respondError(c, err, "failed to resolve section")
	}

	var req dto.UpdateSectionRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	section, err := h.sections.UpdateSection(c.Request().Context(), sectionID, req.Title, req.Content, req.Order, req.Visible)
	if err != nil {
		return respondError(c, err, "failed to update section")
	}

	h.cache.Delete(c.Request().Context(), cache.PublicPageKey(page.CompanyID))
	return Success(c, http.StatusOK, "section updated", section)
}

// Delete handles DELETE /sections/:id requests. Remaining sections keep
// their order values; the gap is tolerated by readers.
func (h *SectionsHandler) Delete(c echo.Context) error {
	sectionID, err := paramUUID(c, "id")
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid section id")
	}
	page, err := h.resolveSection(c, sectionID)
	if err != nil {
		return respondError(c, err, "failed to resolve section")
	}

	if err := h.sections.DeleteSection(c.Request().Context(), sectionID); err != nil {
		return respondError(c, err, "failed to delete section")
	}

	h.cache.Delete(c.Request().Context(), cache.PublicPageKey(page.CompanyID))
	return Success(c, http.StatusOK, "section deleted", nil)
}

// Reorder handles PUT /pages/:pageId/sections/order requests, rewriting
// the whole order in one transaction.
func (h *SectionsHandler) Reorder(c echo.Context) error {
	pageID, err := paramUUID(c, "pageId")
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid page id")
	}
	page, err := h.resolvePage(c, pageID)
	if err != nil {
		return respondError(c, err, "failed to resolve page")
	}

	var req dto.ReorderSectionsRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	ids := make([]uuid.UUID, 0, len(req.SectionIDs))
	for _, raw := range req.SectionIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return Error(c, http.StatusBadRequest, "invalid section id in list")
		}
		ids = append(ids, id)
	}

	if err := h.sections.ReorderSections(c.Request().Context(), pageID, ids); err != nil {
		return respondError(c, err, "failed to reorder sections")
	}

	h.cache.Delete(c.Request().Context(), cache.PublicPageKey(page.CompanyID))
	return Success(c, http.StatusOK, "sections reordered", nil)
}
