package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/flexcms/flexcms"
)

// Ensure ComplexContentStrategy implements flexcms.Strategy at compile time.
var _ flexcms.Strategy = (*ComplexContentStrategy)(nil)

// ComplexContentStrategy handles multi-filter pages: the Cartesian
// product of region options, software options, and true tabs, one
// content group per combination.
type ComplexContentStrategy struct {
	processor flexcms.RegionProcessor
	cleaner   flexcms.Cleaner
}

// NewComplexContentStrategy creates a ComplexContentStrategy.
func NewComplexContentStrategy(processor flexcms.RegionProcessor, cleaner flexcms.Cleaner) *ComplexContentStrategy {
	return &ComplexContentStrategy{processor: processor, cleaner: cleaner}
}

// Extract walks the {region} x {software} x {true tab} product. Each
// combination resolves the tab's target fragment, applies that
// (software, region) pair's table rule, and emits a three-criteria
// content group. A combination whose fragment cannot be located is
// emitted empty with a warning rather than failing the run.
func (s *ComplexContentStrategy) Extract(html string, c flexcms.PageClassification, product *flexcms.Product) (flexcms.StrategyResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return flexcms.StrategyResult{}, flexcms.Errorf(flexcms.EINVALID, "failed to parse HTML: %v", err)
	}

	result := flexcms.StrategyResult{EnableFilters: true}

	regions := regionDimension(c.Filters)
	software := softwareDimension(c.Filters, product)
	tabs := flexcms.TabDetection{TabGroups: c.TabGroups}.TrueTabs()

	for _, region := range regions {
		for _, sw := range software {
			targets := tabTargets(tabs, sw)
			for _, target := range targets {
				group, warnings, err := s.extractGroup(doc, region, sw, target, product)
				if err != nil {
					return flexcms.StrategyResult{}, err
				}
				result.ContentGroups = append(result.ContentGroups, group)
				result.Warnings = append(result.Warnings, warnings...)
			}
		}
	}

	result.FilterDefinitions = filterDefinitions(c, true)

	return result, nil
}

// extractGroup produces the content group for one (region, software,
// tab) combination.
func (s *ComplexContentStrategy) extractGroup(doc *goquery.Document, region, sw flexcms.FilterOption, tab flexcms.TabEntry, product *flexcms.Product) (flexcms.ContentGroup, []flexcms.Warning, error) {
	var warnings []flexcms.Warning

	fragment := fragmentByID(doc, tab.TargetID)
	if fragment == "" {
		warnings = append(warnings, flexcms.Warning{
			Code:    flexcms.WarnMissingContent,
			Message: "no fragment for target " + tab.TargetID,
		})
	}

	content := ""
	if fragment != "" {
		filtered, applied, err := s.processor.FilterFragment(fragment, sw.Value, region.Value)
		if err != nil {
			return flexcms.ContentGroup{}, nil, err
		}
		if !applied {
			warnings = append(warnings, flexcms.Warning{
				Code:    flexcms.WarnConfigLookupMiss,
				Message: "no table rule for os=" + sw.Value + " region=" + region.Value + ", content passed through",
			})
		}
		if content, err = s.cleaner.Clean(filtered); err != nil {
			return flexcms.ContentGroup{}, nil, err
		}
	}

	criteria, err := flexcms.EncodeFilterCriteria([]flexcms.FilterCriterion{
		{FilterKey: "region", MatchValues: []string{region.Value}},
		{FilterKey: "software", MatchValues: []string{sw.Value}},
		{FilterKey: "category", MatchValues: []string{tab.TargetID}},
	})
	if err != nil {
		return flexcms.ContentGroup{}, nil, err
	}

	return flexcms.ContentGroup{
		GroupName:          regionGroupName(region, product) + " - " + sw.Label + " - " + tab.Label,
		FilterCriteriaJson: criteria,
		Content:            content,
	}, warnings, nil
}

// regionDimension returns the region options, or a single implicit
// region when the page has none.
func regionDimension(filters flexcms.FilterDetection) []flexcms.FilterOption {
	if filters.Region != nil && len(filters.Region.Options) > 0 {
		return filters.Region.Options
	}
	return []flexcms.FilterOption{{Value: "default", Label: "默认"}}
}

// softwareDimension returns the software options, or a single implicit
// option carrying the product's os key when the page has no software
// filter at all.
func softwareDimension(filters flexcms.FilterDetection, product *flexcms.Product) []flexcms.FilterOption {
	if filters.Software != nil && len(filters.Software.Options) > 0 {
		return filters.Software.Options
	}
	key := "default"
	if product != nil && product.Key != "" {
		key = product.Key
	}
	return []flexcms.FilterOption{{Value: key, Label: key}}
}

// tabTargets returns the page's full true-tab set, shared by every
// software option: the group grid is the product over all regions, all
// software options, and all true tabs regardless of which panel owns
// them. A page with no true tabs at all falls back to the option's own
// panel as a single pseudo-tab, so every combination still produces a
// group.
func tabTargets(tabs []flexcms.TabEntry, sw flexcms.FilterOption) []flexcms.TabEntry {
	if len(tabs) > 0 {
		return tabs
	}
	return []flexcms.TabEntry{{TargetID: sw.TargetID, Label: sw.Label, GroupID: sw.TargetID}}
}

// fragmentByID renders the element with the given id, or "" when the id
// is empty or unresolved.
func fragmentByID(doc *goquery.Document, id string) string {
	if id == "" {
		return ""
	}
	sel := doc.Find("#" + id).First()
	if sel.Length() == 0 {
		return ""
	}
	return outerHTML(sel)
}
