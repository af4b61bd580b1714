package fs

import (
	"strings"

	"github.com/beevik/etree"
	"github.com/flexcms/flexcms"
)

// Ensure Sitemap implements flexcms.SitemapReader at compile time.
var _ flexcms.SitemapReader = (*Sitemap)(nil)

// Sitemap reads page URLs out of a saved sitemap.xml. The legacy site
// ships both plain urlsets and sitemap indexes; indexes are not
// followed since the archive is local.
type Sitemap struct{}

// NewSitemap creates a new Sitemap reader.
func NewSitemap() *Sitemap {
	return &Sitemap{}
}

// URLs returns the <loc> values of the sitemap's url entries, in
// document order.
func (s *Sitemap) URLs(path string) ([]string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, flexcms.Errorf(flexcms.EINVALID, "reading sitemap %s: %v", path, err)
	}

	root := doc.Root()
	if root == nil {
		return nil, flexcms.Errorf(flexcms.EINVALID, "sitemap %s has no root element", path)
	}

	var urls []string
	for _, entry := range root.SelectElements("url") {
		loc := entry.SelectElement("loc")
		if loc == nil {
			continue
		}
		if u := strings.TrimSpace(loc.Text()); u != "" {
			urls = append(urls, u)
		}
	}
	return urls, nil
}
