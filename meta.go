package flexcms

// PageMeta holds the base metadata read from a page's head and tags.
type PageMeta struct {
	Title           string `json:"title"`
	Slug            string `json:"slug"`
	MetaTitle       string `json:"metaTitle"`
	MetaDescription string `json:"metaDescription"`
	MetaKeywords    string `json:"metaKeywords"`
	ServiceName     string `json:"serviceName"`
	Language        string `json:"language"`
	CanonicalURL    string `json:"canonicalUrl"`
}

// MetadataExtractor reads page metadata out of raw markup.
type MetadataExtractor interface {
	ExtractMetadata(html string) (PageMeta, error)
}

// SectionExtractor extracts the common sections (banner, product
// description, FAQ) shared by all page classifications.
type SectionExtractor interface {
	ExtractSections(html string) ([]CommonSection, error)
}

// Cleaner normalizes extracted markup fragments: scripts, styles,
// comments, and inline event handlers are removed, whitespace is
// collapsed. Placeholders embedded in fragments pass through verbatim.
type Cleaner interface {
	Clean(fragment string) (string, error)
}

// ContentFallback extracts a page's main content when the structural
// markers the strategies rely on are absent. Used as the last-resort
// path of the simple-static strategy.
type ContentFallback interface {
	ExtractMainContent(html string) (string, error)
}
