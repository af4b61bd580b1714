package slog

import (
	"log/slog"
	"time"

	"github.com/flexcms/flexcms"
)

// Ensure LoggingExtractor implements flexcms.DocumentExtractor.
var _ flexcms.DocumentExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a DocumentExtractor with per-page logging,
// including the warnings the document absorbed.
type LoggingExtractor struct {
	next   flexcms.DocumentExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next flexcms.DocumentExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// ExtractDocument delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) ExtractDocument(html string, product *flexcms.Product) (*flexcms.FlexibleDocument, error) {
	begin := time.Now()

	doc, err := e.next.ExtractDocument(html, product)
	if err != nil {
		e.logger.Error("document extraction failed",
			"duration", time.Since(begin),
			"err", err,
		)
		return nil, err
	}

	e.logger.Info("document extraction",
		"slug", doc.Slug,
		"pageType", string(doc.PageConfig.PageType),
		"groups", len(doc.ContentGroups),
		"sections", len(doc.CommonSections),
		"warnings", len(doc.Warnings),
		"duration", time.Since(begin),
	)
	for _, w := range doc.Warnings {
		e.logger.Warn("extraction warning",
			"slug", doc.Slug,
			"code", w.Code,
			"message", w.Message,
		)
	}
	return doc, nil
}
