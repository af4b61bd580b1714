package goquery

import (
	"github.com/flexcms/flexcms"
)

// Ensure Factory implements flexcms.StrategyFactory at compile time.
var _ flexcms.StrategyFactory = (*Factory)(nil)

// Factory maps page types to their extraction strategies. The mapping
// is fixed at construction and safe for concurrent use.
type Factory struct {
	strategies map[flexcms.PageType]flexcms.Strategy
}

// NewFactory wires the three strategies over a shared processor and
// cleaner.
func NewFactory(processor flexcms.RegionProcessor, cleaner flexcms.Cleaner, fallback flexcms.ContentFallback) *Factory {
	return &Factory{
		strategies: map[flexcms.PageType]flexcms.Strategy{
			flexcms.PageSimple:       NewSimpleStaticStrategy(cleaner, fallback),
			flexcms.PageRegionFilter: NewRegionFilterStrategy(processor, cleaner),
			flexcms.PageComplex:      NewComplexContentStrategy(processor, cleaner),
		},
	}
}

// StrategyFor returns the strategy for a page type.
func (f *Factory) StrategyFor(t flexcms.PageType) (flexcms.Strategy, error) {
	s, ok := f.strategies[t]
	if !ok {
		return nil, flexcms.Errorf(flexcms.ENOTFOUND, "no strategy for page type %q", t)
	}
	return s, nil
}
