package mock

import (
	"context"

	"github.com/flexcms/flexcms"
)

var _ flexcms.PageSource = (*PageSource)(nil)

// PageSource is a mock implementation of flexcms.PageSource.
type PageSource struct {
	PagesFn    func(ctx context.Context) ([]flexcms.ArchivePage, error)
	ReadPageFn func(ctx context.Context, path string) (string, error)
}

func (s *PageSource) Pages(ctx context.Context) ([]flexcms.ArchivePage, error) {
	return s.PagesFn(ctx)
}

func (s *PageSource) ReadPage(ctx context.Context, path string) (string, error) {
	return s.ReadPageFn(ctx, path)
}

var _ flexcms.DocumentWriter = (*DocumentWriter)(nil)

// DocumentWriter is a mock implementation of flexcms.DocumentWriter.
type DocumentWriter struct {
	WriteDocumentFn func(ctx context.Context, doc *flexcms.FlexibleDocument) error
}

func (w *DocumentWriter) WriteDocument(ctx context.Context, doc *flexcms.FlexibleDocument) error {
	return w.WriteDocumentFn(ctx, doc)
}

var _ flexcms.RunCache = (*RunCache)(nil)

// RunCache is a mock implementation of flexcms.RunCache.
type RunCache struct {
	UnchangedFn func(ctx context.Context, slug string, inputHash uint64) (bool, error)
	RecordFn    func(ctx context.Context, slug string, inputHash, outputHash uint64) error
}

func (c *RunCache) Unchanged(ctx context.Context, slug string, inputHash uint64) (bool, error) {
	return c.UnchangedFn(ctx, slug, inputHash)
}

func (c *RunCache) Record(ctx context.Context, slug string, inputHash, outputHash uint64) error {
	return c.RecordFn(ctx, slug, inputHash, outputHash)
}

var _ flexcms.SitemapReader = (*SitemapReader)(nil)

// SitemapReader is a mock implementation of flexcms.SitemapReader.
type SitemapReader struct {
	URLsFn func(path string) ([]string, error)
}

func (r *SitemapReader) URLs(path string) ([]string, error) {
	return r.URLsFn(path)
}
