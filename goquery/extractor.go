package goquery

import (
	"github.com/flexcms/flexcms"
)

// maxDocumentBytes is the large-document cutoff. Pages past it come
// from a different publishing pipeline and need their own handling.
const maxDocumentBytes = 5 << 20

// Ensure FlexibleExtractor implements flexcms.DocumentExtractor at
// compile time.
var _ flexcms.DocumentExtractor = (*FlexibleExtractor)(nil)

// FlexibleExtractor composes the full pipeline: metadata and section
// extraction, page analysis, strategy selection, and document assembly.
type FlexibleExtractor struct {
	metadata flexcms.MetadataExtractor
	sections flexcms.SectionExtractor
	analyzer flexcms.PageAnalyzer
	factory  flexcms.StrategyFactory
	builder  *flexcms.FlexibleBuilder
}

// NewFlexibleExtractor wires a FlexibleExtractor over the given rule
// lookup and content fallback.
func NewFlexibleExtractor(rules flexcms.RuleLookup, fallback flexcms.ContentFallback) *FlexibleExtractor {
	cleaner := NewCleaner()
	return &FlexibleExtractor{
		metadata: NewMetadataExtractor(),
		sections: NewSectionExtractor(cleaner),
		analyzer: NewAnalyzer(NewFilterDetector(), NewTabDetector()),
		factory:  NewFactory(NewRegionProcessor(rules), cleaner, fallback),
		builder:  flexcms.NewFlexibleBuilder(),
	}
}

// ExtractDocument runs the pipeline for one page.
func (e *FlexibleExtractor) ExtractDocument(html string, product *flexcms.Product) (*flexcms.FlexibleDocument, error) {
	if html == "" {
		return nil, flexcms.Errorf(flexcms.EINVALID, "empty document")
	}
	if len(html) > maxDocumentBytes {
		return nil, flexcms.Errorf(flexcms.EUNIMPLEMENTED, "document exceeds %d bytes, large-page handling is not implemented", maxDocumentBytes)
	}

	meta, err := e.metadata.ExtractMetadata(html)
	if err != nil {
		return nil, err
	}

	sections, err := e.sections.ExtractSections(html)
	if err != nil {
		return nil, err
	}

	classification, err := e.analyzer.Analyze(html)
	if err != nil {
		return nil, err
	}

	strategy, err := e.factory.StrategyFor(classification.PageType)
	if err != nil {
		return nil, err
	}

	result, err := strategy.Extract(html, classification, product)
	if err != nil {
		return nil, err
	}

	return e.builder.Build(meta, product, sections, classification, result)
}
