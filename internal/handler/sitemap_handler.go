package handler

import (
	"encoding/xml"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hireloft/career-pages-api/internal/cache"
	"github.com/hireloft/career-pages-api/internal/service"
)

type sitemapURL struct {
	Loc      string `xml:"loc"`
	LastMod  string `xml:"lastmod"`
	Priority string `xml:"priority"`
}

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

const sitemapXmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

// SitemapHandler exposes the discoverability index as both sitemap XML
// and a JSON listing. Both views render the same entries.
type SitemapHandler struct {
	sitemap  *service.SitemapService
	cache    *cache.Cache
	cacheTTL time.Duration
}

// NewSitemapHandler creates a new handler instance.
func NewSitemapHandler(sitemap *service.SitemapService, cache *cache.Cache, cacheTTL time.Duration) *SitemapHandler {
	return &SitemapHandler{sitemap: sitemap, cache: cache, cacheTTL: cacheTTL}
}

func (h *SitemapHandler) entries(c echo.Context) ([]service.IndexEntry, error) {
	ctx := c.Request().Context()

	var cached []service.IndexEntry
	if h.cache.GetJSON(ctx, cache.SitemapKey, &cached) == nil {
		return cached, nil
	}

	entries, err := h.sitemap.BuildIndex(ctx)
	if err != nil {
		return nil, err
	}
	h.cache.SetJSON(ctx, cache.SitemapKey, entries, h.cacheTTL)

	return entries, nil
}

// Sitemap handles GET /sitemap.xml requests.
func (h *SitemapHandler) Sitemap(c echo.Context) error {
	entries, err := h.entries(c)
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to build sitemap")
	}

	urlset := sitemapURLSet{Xmlns: sitemapXmlns, URLs: make([]sitemapURL, 0, len(entries))}
	for _, entry := range entries {
		urlset.URLs = append(urlset.URLs, sitemapURL{
			Loc:      entry.URL,
			LastMod:  entry.LastModified.UTC().Format("2006-01-02"),
			Priority: strconv.FormatFloat(entry.Priority, 'f', 1, 64),
		})
	}

	return c.XML(http.StatusOK, urlset)
}

// Index handles GET /discovery/index requests.
func (h *SitemapHandler) Index(c echo.Context) error {
	entries, err := h.entries(c)
	if err != nil {
		return Error(c, http.StatusInternalServerError, "failed to build discovery index")
	}

	return Success(c, http.StatusOK, "discovery index retrieved", entries)
}
