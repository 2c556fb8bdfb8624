package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/hireloft/career-pages-api/internal/middleware"
	"github.com/hireloft/career-pages-api/internal/repository"
	"github.com/hireloft/career-pages-api/internal/service"
)

// errUnauthorized marks requests without a usable principal.
var errUnauthorized = errors.New("missing principal")

// respondError maps the domain error taxonomy onto HTTP statuses:
// validation failures to 400 with field detail, slug collisions to 409,
// absent entities to 404, anything else to 500 with a generic message.
func respondError(c echo.Context, err error, fallback string) error {
	var valErr service.ValidationError
	if errors.As(err, &valErr) {
		return ErrorWithDetails(c, http.StatusBadRequest, valErr.Message, map[string]string{"field": valErr.Field})
	}

	switch {
	case errors.Is(err, errUnauthorized):
		return Error(c, http.StatusUnauthorized, "missing principal")
	case errors.Is(err, repository.ErrSlugTaken):
		return Error(c, http.StatusConflict, "slug already taken")
	case errors.Is(err, repository.ErrCompanyNotFound),
		errors.Is(err, repository.ErrCareerPageNotFound),
		errors.Is(err, repository.ErrSectionNotFound),
		errors.Is(err, repository.ErrJobNotFound):
		return Error(c, http.StatusNotFound, err.Error())
	default:
		return Error(c, http.StatusInternalServerError, fallback)
	}
}

// ownerID extracts the authenticated principal id stored by the JWT
// middleware.
func ownerID(c echo.Context) (uuid.UUID, bool) {
	raw := middleware.UserIDFromContext(c)
	if raw == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// paramUUID parses a path parameter as a UUID.
func paramUUID(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}
