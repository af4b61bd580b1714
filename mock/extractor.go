package mock

import "github.com/flexcms/flexcms"

var _ flexcms.DocumentExtractor = (*DocumentExtractor)(nil)

// DocumentExtractor is a mock implementation of flexcms.DocumentExtractor.
type DocumentExtractor struct {
	ExtractDocumentFn func(html string, product *flexcms.Product) (*flexcms.FlexibleDocument, error)
}

func (e *DocumentExtractor) ExtractDocument(html string, product *flexcms.Product) (*flexcms.FlexibleDocument, error) {
	return e.ExtractDocumentFn(html, product)
}

var _ flexcms.MetadataExtractor = (*MetadataExtractor)(nil)

// MetadataExtractor is a mock implementation of flexcms.MetadataExtractor.
type MetadataExtractor struct {
	ExtractMetadataFn func(html string) (flexcms.PageMeta, error)
}

func (e *MetadataExtractor) ExtractMetadata(html string) (flexcms.PageMeta, error) {
	return e.ExtractMetadataFn(html)
}

var _ flexcms.SectionExtractor = (*SectionExtractor)(nil)

// SectionExtractor is a mock implementation of flexcms.SectionExtractor.
type SectionExtractor struct {
	ExtractSectionsFn func(html string) ([]flexcms.CommonSection, error)
}

func (e *SectionExtractor) ExtractSections(html string) ([]flexcms.CommonSection, error) {
	return e.ExtractSectionsFn(html)
}

var _ flexcms.ContentFallback = (*ContentFallback)(nil)

// ContentFallback is a mock implementation of flexcms.ContentFallback.
type ContentFallback struct {
	ExtractMainContentFn func(html string) (string, error)
}

func (f *ContentFallback) ExtractMainContent(html string) (string, error) {
	return f.ExtractMainContentFn(html)
}
