// Package batch provides archive-wide extraction orchestration. It
// coordinates page listing, hash-based skip detection, concurrent
// extraction, and document storage.
package batch

import (
	"context"
	"encoding/json"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"
	"github.com/flexcms/flexcms"
	"github.com/flexcms/flexcms/bloom"
	"golang.org/x/sync/errgroup"
)

// Processor orchestrates extraction over a page archive.
type Processor struct {
	Pages       flexcms.PageSource
	Catalog     flexcms.Catalog
	Extractor   flexcms.DocumentExtractor
	Writer      flexcms.DocumentWriter
	Cache       flexcms.RunCache
	Concurrency int
}

// Result holds the outcome of a batch run.
type Result struct {
	Extracted int
	Skipped   int
	Failed    int
}

// ProgressEvent reports progress during a batch run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Slug      string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressExtracted
	ProgressSkipped
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting batch progress.
type ProgressFunc func(event ProgressEvent)

// pageResult holds the outcome of processing a single page.
type pageResult struct {
	position  int
	slug      string
	skipped   bool
	inputHash uint64
	doc       *flexcms.FlexibleDocument
	err       error
}

// Run processes every page of the archive and writes the extracted
// documents. A failing page never aborts the run; it is counted and
// reported through the progress callback. The progress callback, if
// provided, receives events as processing proceeds.
func (p *Processor) Run(ctx context.Context, progress ProgressFunc) (*Result, error) {
	pages, err := p.Pages.Pages(ctx)
	if err != nil {
		return nil, err
	}
	pages = dedupe(pages)

	concurrency := p.Concurrency
	if concurrency <= 0 {
		concurrency = 8
	}

	resultCh := make(chan pageResult, len(pages))

	var completed atomic.Int64
	total := len(pages)

	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, page := range pages {
			i, page := i, page
			g.Go(func() error {
				resultCh <- p.processPage(gctx, i, page)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect out of order, store in position order below.
	results := make([]pageResult, len(pages))
	for result := range resultCh {
		completed.Add(1)
		results[result.position] = result

		if progress == nil {
			continue
		}
		event := ProgressEvent{
			Completed: int(completed.Load()),
			Total:     total,
			Slug:      result.slug,
		}
		switch {
		case result.err != nil:
			event.Type = ProgressFailed
			event.Error = result.err
		case result.skipped:
			event.Type = ProgressSkipped
		default:
			event.Type = ProgressExtracted
		}
		progress(event)
	}

	// Writes and cache records run serially: the writer targets one
	// directory and the cache holds a single connection.
	res := &Result{}
	for _, result := range results {
		switch {
		case result.err != nil:
			res.Failed++
		case result.skipped:
			res.Skipped++
		default:
			if err := p.store(ctx, result); err != nil {
				res.Failed++
				if progress != nil {
					progress(ProgressEvent{
						Type:  ProgressFailed,
						Total: total,
						Slug:  result.slug,
						Error: err,
					})
				}
				continue
			}
			res.Extracted++
		}
	}

	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}

	return res, nil
}

// processPage reads and extracts a single page.
func (p *Processor) processPage(ctx context.Context, position int, page flexcms.ArchivePage) pageResult {
	result := pageResult{
		position: position,
		slug:     page.Slug,
	}

	html, err := p.Pages.ReadPage(ctx, page.Path)
	if err != nil {
		result.err = err
		return result
	}

	result.inputHash = xxhash.Sum64String(html)
	if p.Cache != nil {
		unchanged, err := p.Cache.Unchanged(ctx, page.Slug, result.inputHash)
		if err != nil {
			result.err = err
			return result
		}
		if unchanged {
			result.skipped = true
			return result
		}
	}

	product := p.product(page.Slug)

	doc, err := p.Extractor.ExtractDocument(html, product)
	if err != nil {
		result.err = err
		return result
	}
	result.doc = doc
	return result
}

// store writes one extracted document and records its hashes.
func (p *Processor) store(ctx context.Context, result pageResult) error {
	if err := p.Writer.WriteDocument(ctx, result.doc); err != nil {
		return err
	}
	if p.Cache == nil {
		return nil
	}
	return p.Cache.Record(ctx, result.slug, result.inputHash, outputHash(result.doc))
}

// product resolves the page's product configuration. Pages without one
// extract fine; the product only supplies fallbacks.
func (p *Processor) product(slug string) *flexcms.Product {
	if p.Catalog == nil {
		return nil
	}
	product, err := p.Catalog.Product(slug)
	if err != nil {
		return nil
	}
	return product
}

// outputHash hashes a document's serialized form.
func outputHash(doc *flexcms.FlexibleDocument) uint64 {
	data, err := json.Marshal(doc)
	if err != nil {
		return 0
	}
	return xxhash.Sum64(data)
}

// dedupe drops pages whose path was already listed. Mirrored archives
// repeat pages under directory copies; the first listing wins.
func dedupe(pages []flexcms.ArchivePage) []flexcms.ArchivePage {
	seen := bloom.NewSeenFilter(uint(len(pages))+1, 0.001)
	paths := make(map[string]bool, len(pages))
	slugs := make(map[string]bool, len(pages))

	var out []flexcms.ArchivePage
	for _, page := range pages {
		// A filter hit is only a maybe: the exact path set decides, so
		// a false positive never drops a distinct page.
		if !seen.Claim(page.Path) && paths[page.Path] {
			continue
		}
		if slugs[page.Slug] {
			continue
		}
		paths[page.Path] = true
		slugs[page.Slug] = true
		out = append(out, page)
	}
	return out
}
