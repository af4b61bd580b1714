package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/flexcms/flexcms"
)

// Ensure RegionProcessor implements flexcms.RegionProcessor at compile time.
var _ flexcms.RegionProcessor = (*RegionProcessor)(nil)

// RegionProcessor applies configured table rules to content fragments.
// The rule table is injected at construction and never mutates.
type RegionProcessor struct {
	rules flexcms.RuleLookup
}

// NewRegionProcessor creates a RegionProcessor backed by the given rule
// lookup.
func NewRegionProcessor(rules flexcms.RuleLookup) *RegionProcessor {
	return &RegionProcessor{rules: rules}
}

// FilterFragment removes the tables the (os, region) rule excludes from
// the fragment. When no rule is configured for the pair, the fragment
// is returned unchanged and applied is false; missing rules are
// expected for most pages, not an error.
func (p *RegionProcessor) FilterFragment(fragment, os, region string) (string, bool, error) {
	rule := p.rules.Rule(os, region)
	if rule == nil {
		return fragment, false, nil
	}
	if rule.Empty() {
		return fragment, true, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", false, flexcms.Errorf(flexcms.EINVALID, "failed to parse fragment: %v", err)
	}

	// Explicit exclusions remove any identified element.
	doc.Find("[id]").Each(func(_ int, sel *goquery.Selection) {
		id := sel.AttrOr("id", "")
		for _, excluded := range rule.ExcludeTableIDs {
			if strings.TrimPrefix(excluded, "#") == id {
				sel.Remove()
				return
			}
		}
	})

	// A non-empty include list keeps only the tables it names.
	if len(rule.IncludeTableIDs) > 0 {
		doc.Find("table[id]").Each(func(_ int, sel *goquery.Selection) {
			if rule.Excludes(sel.AttrOr("id", "")) {
				sel.Remove()
			}
		})
	}

	filtered, err := doc.Find("body").Html()
	if err != nil {
		return "", false, flexcms.Errorf(flexcms.EINTERNAL, "failed to render filtered fragment: %v", err)
	}
	return filtered, true, nil
}
