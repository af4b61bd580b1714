package mock

import "github.com/flexcms/flexcms"

var _ flexcms.RegionProcessor = (*RegionProcessor)(nil)

// RegionProcessor is a mock implementation of flexcms.RegionProcessor.
type RegionProcessor struct {
	FilterFragmentFn func(fragment, os, region string) (string, bool, error)
}

func (p *RegionProcessor) FilterFragment(fragment, os, region string) (string, bool, error) {
	return p.FilterFragmentFn(fragment, os, region)
}

var _ flexcms.RuleLookup = (*RuleLookup)(nil)

// RuleLookup is a mock implementation of flexcms.RuleLookup.
type RuleLookup struct {
	RuleFn func(os, region string) *flexcms.RegionRule
}

func (l *RuleLookup) Rule(os, region string) *flexcms.RegionRule {
	return l.RuleFn(os, region)
}
