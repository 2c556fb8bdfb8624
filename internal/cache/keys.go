package cache

import "github.com/google/uuid"

// SitemapKey caches the derived discoverability index.
const SitemapKey = "discovery:index"

// PublicPageKey caches the assembled public page for a company.
func PublicPageKey(companyID uuid.UUID) string {
	return "public:page:" + companyID.String()
}
