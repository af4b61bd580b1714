package main

import (
	"context"
	"fmt"

	"github.com/flexcms/flexcms"
	"github.com/flexcms/flexcms/batch"
	"github.com/flexcms/flexcms/fs"
)

// Run executes the batch command.
func (c *BatchCmd) Run(deps *Dependencies) error {
	var source flexcms.PageSource = fs.NewArchive(c.Archive)

	if c.Sitemap != "" {
		urls, err := fs.NewSitemap().URLs(c.Sitemap)
		if err != nil {
			return err
		}
		source = &sitemapFilteredSource{next: source, slugs: slugSet(urls)}
	}

	var catalog flexcms.Catalog
	if deps.Catalog != nil {
		catalog = deps.Catalog
	}

	p := &batch.Processor{
		Pages:       source,
		Catalog:     catalog,
		Extractor:   deps.Extractor,
		Writer:      fs.NewWriter(c.Out),
		Cache:       deps.Cache,
		Concurrency: c.Concurrency,
	}

	res, err := p.Run(deps.Ctx, func(e batch.ProgressEvent) {
		switch e.Type {
		case batch.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "processing %d pages\n", e.Total)
		case batch.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "[%d/%d] %s: %s\n", e.Completed, e.Total, e.Slug, flexcms.ErrorMessage(e.Error))
		}
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "extracted %d, skipped %d, failed %d\n", res.Extracted, res.Skipped, res.Failed)
	if res.Failed > 0 {
		return fmt.Errorf("%d pages failed", res.Failed)
	}
	return nil
}

// sitemapFilteredSource restricts an archive to the pages a sitemap
// names.
type sitemapFilteredSource struct {
	next  flexcms.PageSource
	slugs map[string]bool
}

func (s *sitemapFilteredSource) Pages(ctx context.Context) ([]flexcms.ArchivePage, error) {
	pages, err := s.next.Pages(ctx)
	if err != nil {
		return nil, err
	}
	var out []flexcms.ArchivePage
	for _, page := range pages {
		if s.slugs[page.Slug] {
			out = append(out, page)
		}
	}
	return out, nil
}

func (s *sitemapFilteredSource) ReadPage(ctx context.Context, path string) (string, error) {
	return s.next.ReadPage(ctx, path)
}

// slugSet maps sitemap URLs to their page slugs.
func slugSet(urls []string) map[string]bool {
	slugs := make(map[string]bool, len(urls))
	for _, u := range urls {
		if slug := flexcms.SlugFromURL(u); slug != "" {
			slugs[slug] = true
		}
	}
	return slugs
}
