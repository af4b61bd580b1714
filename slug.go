package flexcms

import (
	"net/url"
	"strings"
)

// SlugFromURL derives a document slug from a page's canonical URL.
// The last meaningful path segment becomes the slug; the conventional
// "pricing/details" prefix of the legacy site is stripped.
// Example: https://example.com/pricing/details/api-management/ → api-management
func SlugFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	path := strings.Trim(u.Path, "/")
	if path == "" {
		return ""
	}

	segments := strings.Split(path, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		seg := segments[i]
		// Skip file-ish segments like index.html
		if seg == "" || strings.HasPrefix(seg, "index.") {
			continue
		}
		seg = strings.TrimSuffix(seg, ".html")
		if seg != "" {
			return seg
		}
	}
	return ""
}
