package mock

import "github.com/flexcms/flexcms"

var _ flexcms.Strategy = (*Strategy)(nil)

// Strategy is a mock implementation of flexcms.Strategy.
type Strategy struct {
	ExtractFn func(html string, c flexcms.PageClassification, product *flexcms.Product) (flexcms.StrategyResult, error)
}

func (s *Strategy) Extract(html string, c flexcms.PageClassification, product *flexcms.Product) (flexcms.StrategyResult, error) {
	return s.ExtractFn(html, c, product)
}

var _ flexcms.StrategyFactory = (*StrategyFactory)(nil)

// StrategyFactory is a mock implementation of flexcms.StrategyFactory.
type StrategyFactory struct {
	StrategyForFn func(t flexcms.PageType) (flexcms.Strategy, error)
}

func (f *StrategyFactory) StrategyFor(t flexcms.PageType) (flexcms.Strategy, error) {
	return f.StrategyForFn(t)
}
