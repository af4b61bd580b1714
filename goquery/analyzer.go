package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/flexcms/flexcms"
)

// Ensure Analyzer implements flexcms.PageAnalyzer at compile time.
var _ flexcms.PageAnalyzer = (*Analyzer)(nil)

// Analyzer combines filter and tab detection into a page
// classification. Detector ambiguity never aborts analysis; it degrades
// toward the Simple classification so extraction always produces some
// output.
type Analyzer struct {
	filters flexcms.FilterDetector
	tabs    flexcms.TabDetector
}

// NewAnalyzer creates an Analyzer with the given detectors.
func NewAnalyzer(filters flexcms.FilterDetector, tabs flexcms.TabDetector) *Analyzer {
	return &Analyzer{filters: filters, tabs: tabs}
}

// Analyze runs both detectors and classifies the page.
func (a *Analyzer) Analyze(html string) (flexcms.PageClassification, error) {
	filters, err := a.filters.DetectFilters(html)
	if err != nil {
		return flexcms.PageClassification{}, err
	}

	tabs, err := a.tabs.DetectTabs(html, filters)
	if err != nil {
		return flexcms.PageClassification{}, err
	}

	c := flexcms.PageClassification{
		PageType:         flexcms.Classify(filters, tabs),
		HasMainContainer: tabs.HasMainContainer,
		Filters:          filters,
		TabGroups:        tabs.TabGroups,
		HasComplexTabs:   tabs.HasComplexTabs,
		ComplexityScore:  flexcms.ComplexityScore(filters, tabs, countInteractiveElements(html)),
	}
	c.Warnings = append(c.Warnings, filters.Warnings...)
	c.Warnings = append(c.Warnings, tabs.Warnings...)

	return c, nil
}

// countInteractiveElements counts buttons, inputs, dropdowns, and other
// interactive components. Feeds the diagnostic complexity score only.
func countInteractiveElements(html string) int {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return 0
	}
	return doc.Find("button, input, select, textarea").Length() +
		doc.Find("[onclick], [data-toggle]").Length()
}
