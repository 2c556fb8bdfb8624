package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hireloft/career-pages-api/internal/auth"
	"github.com/hireloft/career-pages-api/internal/config"
	"github.com/hireloft/career-pages-api/internal/handler"
	middlewarepkg "github.com/hireloft/career-pages-api/internal/middleware"
)

// Handlers aggregates HTTP handlers used by the router.
type Handlers struct {
	Auth      *handler.AuthHandler
	Companies *handler.CompaniesHandler
	Pages     *handler.PagesHandler
	Sections  *handler.SectionsHandler
	Jobs      *handler.JobsHandler
	Public    *handler.PublicHandler
	Sitemap   *handler.SitemapHandler
	Uploads   *handler.UploadsHandler
}

// Register wires all HTTP routes for the API.
func Register(e *echo.Echo, cfg *config.Config, jwtManager *auth.JWTManager, handlers Handlers) {
	e.GET("/healthz", func(c echo.Context) error {
		return handler.Success(c, http.StatusOK, "service healthy", map[string]any{"status": "ok"})
	})

	e.POST("/auth/register", handlers.Auth.Register)
	e.POST("/auth/login", handlers.Auth.Login)

	e.GET("/careers/:slug", handlers.Public.Page)
	e.GET("/careers/:slug/jobs/:jobSlug", handlers.Public.Job)
	e.POST("/careers/:slug/jobs/:jobSlug/apply", handlers.Public.Apply)

	e.GET("/sitemap.xml", handlers.Sitemap.Sitemap)
	e.GET("/discovery/index", handlers.Sitemap.Index)

	secured := e.Group("")
	secured.Use(middlewarepkg.JWT(jwtManager))

	secured.POST("/companies", handlers.Companies.Create)
	secured.GET("/companies", handlers.Companies.List)

	secured.GET("/companies/:id/page", handlers.Pages.Get)
	secured.PATCH("/companies/:id/page", handlers.Pages.Update)
	secured.POST("/companies/:id/page/publish", handlers.Pages.Publish)
	secured.POST("/companies/:id/page/unpublish", handlers.Pages.Unpublish)

	secured.POST("/pages/:pageId/sections", handlers.Sections.Create)
	secured.GET("/pages/:pageId/sections", handlers.Sections.List)
	secured.PUT("/pages/:pageId/sections/order", handlers.Sections.Reorder)
	secured.PATCH("/sections/:id", handlers.Sections.Update)
	secured.DELETE("/sections/:id", handlers.Sections.Delete)

	secured.POST("/companies/:id/jobs", handlers.Jobs.Create)
	secured.GET("/companies/:id/jobs", handlers.Jobs.List)
	secured.PATCH("/jobs/:id", handlers.Jobs.Update)
	secured.POST("/companies/:id/jobs/bulk", handlers.Jobs.Bulk, middlewarepkg.MutationRateLimiter(cfg.RateLimitBulk))
	secured.GET("/jobs/:id/applications", handlers.Jobs.Applications)

	secured.POST("/uploads", handlers.Uploads.Upload, middlewarepkg.MutationRateLimiter(cfg.RateLimitUpload))
}
