package flexcms

// DocumentExtractor turns one page's markup into a flexible content
// document. Implementations are pure functions of (markup, product,
// rule table): no I/O, no locks, no cross-call state. The same input
// yields byte-identical output, which batch processing relies on for
// hash-based skipping.
type DocumentExtractor interface {
	// ExtractDocument classifies the page, runs the matching strategy,
	// and assembles the result. Returns EUNIMPLEMENTED when the page
	// exceeds the large-document threshold, EINVALID when the markup
	// cannot be parsed at all.
	ExtractDocument(html string, product *Product) (*FlexibleDocument, error)
}
