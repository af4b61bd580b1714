package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/flexcms/flexcms"
)

// Ensure MetadataExtractor implements flexcms.MetadataExtractor at compile time.
var _ flexcms.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor reads base page metadata: title, meta tags, the
// ms.service tag, and the canonical-URL slug.
type MetadataExtractor struct{}

// NewMetadataExtractor creates a new MetadataExtractor.
func NewMetadataExtractor() *MetadataExtractor {
	return &MetadataExtractor{}
}

// ExtractMetadata reads the page head and service tags.
func (e *MetadataExtractor) ExtractMetadata(html string) (flexcms.PageMeta, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return flexcms.PageMeta{}, flexcms.Errorf(flexcms.EINVALID, "failed to parse HTML: %v", err)
	}

	meta := flexcms.PageMeta{
		Title:           strings.TrimSpace(doc.Find("title").First().Text()),
		MetaTitle:       metaContent(doc, "title"),
		MetaDescription: metaContent(doc, "description"),
		MetaKeywords:    metaContent(doc, "keywords"),
		ServiceName:     strings.TrimSpace(doc.Find("tags[ms\\.service]").First().AttrOr("ms.service", "")),
		Language:        strings.TrimSpace(doc.Find("html").First().AttrOr("lang", "")),
		CanonicalURL:    strings.TrimSpace(doc.Find("link[rel='canonical']").First().AttrOr("href", "")),
	}
	if meta.Language == "" {
		meta.Language = "zh-cn"
	}
	meta.Slug = flexcms.SlugFromURL(meta.CanonicalURL)

	return meta, nil
}

func metaContent(doc *goquery.Document, name string) string {
	return strings.TrimSpace(doc.Find("meta[name='" + name + "']").First().AttrOr("content", ""))
}
