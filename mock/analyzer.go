package mock

import "github.com/flexcms/flexcms"

var _ flexcms.PageAnalyzer = (*PageAnalyzer)(nil)

// PageAnalyzer is a mock implementation of flexcms.PageAnalyzer.
type PageAnalyzer struct {
	AnalyzeFn func(html string) (flexcms.PageClassification, error)
}

func (a *PageAnalyzer) Analyze(html string) (flexcms.PageClassification, error) {
	return a.AnalyzeFn(html)
}
