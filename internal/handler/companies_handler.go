package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hireloft/career-pages-api/internal/dto"
	"github.com/hireloft/career-pages-api/internal/service"
)

// CompaniesHandler exposes company lifecycle endpoints.
type CompaniesHandler struct {
	service *service.CompaniesService
}

// NewCompaniesHandler creates a new handler instance.
func NewCompaniesHandler(service *service.CompaniesService) *CompaniesHandler {
	return &CompaniesHandler{service: service}
}

// Create handles POST /companies requests. The company's draft career
// page is created alongside it.
func (h *CompaniesHandler) Create(c echo.Context) error {
	owner, ok := ownerID(c)
	if !ok {
		return Error(c, http.StatusUnauthorized, "missing principal")
	}

	var req dto.CreateCompanyRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	company, page, err := h.service.CreateCompany(c.Request().Context(), req.Name, req.Slug, owner)
	if err != nil {
		return respondError(c, err, "failed to create company")
	}

	return Success(c, http.StatusCreated, "company created", map[string]any{
		"company": company,
		"page":    page,
	})
}

// List handles GET /companies requests.
func (h *CompaniesHandler) List(c echo.Context) error {
	owner, ok := ownerID(c)
	if !ok {
		return Error(c, http.StatusUnauthorized, "missing principal")
	}

	companies, err := h.service.ListCompanies(c.Request().Context(), owner)
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to list companies")
	}

	return Success(c, http.StatusOK, "companies retrieved", companies)
}
