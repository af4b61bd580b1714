package flexcms

import "context"

// ArchivePage is one saved page of the legacy site archive.
type ArchivePage struct {
	// Slug identifies the page and keys the product catalog and run
	// cache.
	Slug string

	// Path locates the saved markup within the archive.
	Path string
}

// PageSource lists and reads archived pages.
type PageSource interface {
	// Pages returns the archive's pages in a stable order.
	Pages(ctx context.Context) ([]ArchivePage, error)

	// ReadPage returns a page's raw markup.
	ReadPage(ctx context.Context, path string) (string, error)
}

// DocumentWriter persists extracted documents.
type DocumentWriter interface {
	WriteDocument(ctx context.Context, doc *FlexibleDocument) error
}

// RunCache records input and output content hashes per slug so batch
// runs can skip pages whose markup has not changed since the last run.
type RunCache interface {
	// Unchanged reports whether the slug was last processed with the
	// same input hash.
	Unchanged(ctx context.Context, slug string, inputHash uint64) (bool, error)

	// Record stores the hashes for a processed slug.
	Record(ctx context.Context, slug string, inputHash, outputHash uint64) error
}

// SitemapReader reads page URLs out of a saved sitemap file.
type SitemapReader interface {
	URLs(path string) ([]string, error)
}
