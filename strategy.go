package flexcms

// StrategyResult is the content produced by one extraction strategy.
// Exactly one of BaseContent and ContentGroups is populated, matching
// the document-level invariant.
type StrategyResult struct {
	BaseContent       string
	ContentGroups     []ContentGroup
	FilterDefinitions []FilterDefinition
	EnableFilters     bool
	Warnings          []Warning
}

// Strategy extracts a classified page's content. Implementations are
// stateless; the classification and product carry everything
// page-specific. The product, when non-nil, supplies the page-default
// os parameter and region display names.
type Strategy interface {
	Extract(html string, c PageClassification, product *Product) (StrategyResult, error)
}

// StrategyFactory maps a page classification to its extraction strategy.
// Selection is a static table keyed by PageType; there is no
// reflection-based registration.
type StrategyFactory interface {
	// StrategyFor returns the strategy for a page type. Unknown page
	// types return ENOTFOUND.
	StrategyFor(t PageType) (Strategy, error)
}
