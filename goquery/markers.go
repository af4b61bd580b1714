// Package goquery implements flexcms detection and extraction on top of
// the goquery HTML library. It contains the filter and tab detectors,
// the page analyzer, the three extraction strategies, the region table
// processor, and the section/metadata extractors.
package goquery

// Structural markers of the legacy pricing site. Detection matches on
// attribute-set containment, so extra classes on the same element do
// not break it.
const (
	// Root selector container. Both classes must be present; the
	// tab-dropdown variant adds a third.
	classMainSelector    = "technical-azure-selector"
	classMainDetailTab   = "pricing-detail-tab"
	classRegionContainer = "region-container"
	classSoftwareKind    = "software-kind"
	classRegionSelect    = "region-selector"
	classSoftwareSelect  = "software-box"
	classTabContent      = "tab-content"
	classTabPanel        = "tab-panel"
	classTabNav          = "os-tab-nav"
	classCategoryTabs    = "category-tabs"
	classPricingSection  = "pricing-page-section"
	classTabControl      = "tab-control-container"
	attrTargetHref       = "data-href"
)
