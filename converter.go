package flexcms

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown. The input should
	// be cleaned HTML (e.g., a content group's fragment).
	Convert(html string) (string, error)
}
