// Package slog provides logging decorators for flexcms services.
package slog

import (
	"log/slog"
	"time"

	"github.com/flexcms/flexcms"
)

// Ensure LoggingAnalyzer implements flexcms.PageAnalyzer.
var _ flexcms.PageAnalyzer = (*LoggingAnalyzer)(nil)

// LoggingAnalyzer wraps a PageAnalyzer with classification logging.
type LoggingAnalyzer struct {
	next   flexcms.PageAnalyzer
	logger *slog.Logger
}

// NewLoggingAnalyzer creates a new LoggingAnalyzer.
func NewLoggingAnalyzer(next flexcms.PageAnalyzer, logger *slog.Logger) *LoggingAnalyzer {
	return &LoggingAnalyzer{next: next, logger: logger}
}

// Analyze delegates to the wrapped analyzer and logs the classification.
func (a *LoggingAnalyzer) Analyze(html string) (c flexcms.PageClassification, err error) {
	defer func(begin time.Time) {
		a.logger.Info("page classification",
			"pageType", string(c.PageType),
			"mainContainer", c.HasMainContainer,
			"complexTabs", c.HasComplexTabs,
			"complexityScore", c.ComplexityScore,
			"warnings", len(c.Warnings),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Analyze(html)
}
