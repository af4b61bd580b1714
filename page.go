package flexcms

// PageType is one of the three page classifications. It determines the
// extraction strategy and nothing else.
type PageType string

// Page classifications, from least to most structured.
const (
	PageSimple       PageType = "Simple"
	PageRegionFilter PageType = "RegionFilter"
	PageComplex      PageType = "ComplexFilter"
)

// PageClassification combines filter and tab detection into a page
// classification. It is derived per extraction call and never persisted.
type PageClassification struct {
	PageType         PageType
	HasMainContainer bool
	Filters          FilterDetection
	TabGroups        []TabGroup
	HasComplexTabs   bool

	// ComplexityScore is a diagnostic weighted sum retained for
	// observability and tuning. It does not participate in
	// classification.
	ComplexityScore float64

	// Warnings aggregates the non-fatal issues from both detectors.
	Warnings []Warning
}

// Classify maps detector output to a page type. The procedure is
// deterministic and order-sensitive; ambiguity degrades toward Simple so
// extraction always produces some output.
func Classify(filters FilterDetection, tabs TabDetection) PageType {
	if !tabs.HasMainContainer {
		return PageSimple
	}
	if !filters.RegionVisible() && !filters.SoftwareVisible() {
		return PageSimple
	}
	if filters.RegionVisible() && !filters.SoftwareVisible() && !tabs.HasComplexTabs {
		return PageRegionFilter
	}
	return PageComplex
}

// ComplexityScore computes the diagnostic score from filter count, true
// tab count, and the page's interactive-element count.
func ComplexityScore(filters FilterDetection, tabs TabDetection, interactiveElements int) float64 {
	var filterCount int
	if filters.Region != nil {
		filterCount++
	}
	if filters.Software != nil {
		filterCount++
	}
	return float64(filterCount)*2.0 +
		float64(len(tabs.TrueTabs()))*1.5 +
		float64(interactiveElements)*0.1
}

// PageAnalyzer runs both detectors and classifies a page.
type PageAnalyzer interface {
	Analyze(html string) (PageClassification, error)
}
