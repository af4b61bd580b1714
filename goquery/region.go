package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/flexcms/flexcms"
)

// Ensure RegionFilterStrategy implements flexcms.Strategy at compile time.
var _ flexcms.Strategy = (*RegionFilterStrategy)(nil)

// RegionFilterStrategy handles pages whose only visible filter is the
// region selector: one content group per region option, each carrying
// the page's tab content with that region's table rule applied.
type RegionFilterStrategy struct {
	processor flexcms.RegionProcessor
	cleaner   flexcms.Cleaner
}

// NewRegionFilterStrategy creates a RegionFilterStrategy.
func NewRegionFilterStrategy(processor flexcms.RegionProcessor, cleaner flexcms.Cleaner) *RegionFilterStrategy {
	return &RegionFilterStrategy{processor: processor, cleaner: cleaner}
}

// Extract emits one content group per region option. The os parameter
// for rule lookups comes from the software filter even when that filter
// is hidden; a hidden filter's option value is still the categorical
// parameter that differentiates region content.
func (s *RegionFilterStrategy) Extract(html string, c flexcms.PageClassification, product *flexcms.Product) (flexcms.StrategyResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return flexcms.StrategyResult{}, flexcms.Errorf(flexcms.EINVALID, "failed to parse HTML: %v", err)
	}

	result := flexcms.StrategyResult{EnableFilters: true}

	fragment := tabContentFragment(doc)
	os := osParameter(c.Filters, product)

	var regionOptions []flexcms.FilterOption
	if c.Filters.Region != nil {
		regionOptions = c.Filters.Region.Options
	}

	for _, region := range regionOptions {
		filtered, applied, err := s.processor.FilterFragment(fragment, os, region.Value)
		if err != nil {
			return flexcms.StrategyResult{}, err
		}
		if !applied {
			result.Warnings = append(result.Warnings, flexcms.Warning{
				Code:    flexcms.WarnConfigLookupMiss,
				Message: "no table rule for os=" + os + " region=" + region.Value + ", content passed through",
			})
		}

		cleaned, err := s.cleaner.Clean(filtered)
		if err != nil {
			return flexcms.StrategyResult{}, err
		}
		if cleaned == "" {
			result.Warnings = append(result.Warnings, flexcms.Warning{
				Code:    flexcms.WarnMissingContent,
				Message: "no content for region " + region.Value,
			})
		}

		criteria, err := flexcms.EncodeFilterCriteria([]flexcms.FilterCriterion{
			{FilterKey: "region", MatchValues: []string{region.Value}},
		})
		if err != nil {
			return flexcms.StrategyResult{}, err
		}

		result.ContentGroups = append(result.ContentGroups, flexcms.ContentGroup{
			GroupName:          regionGroupName(region, product),
			FilterCriteriaJson: criteria,
			Content:            cleaned,
		})
	}

	result.FilterDefinitions = filterDefinitions(c, false)

	return result, nil
}

// tabContentFragment returns the root container's tab content, degrading
// to the container itself.
func tabContentFragment(doc *goquery.Document) string {
	container := doc.Find("div." + classMainSelector + "." + classMainDetailTab).First()
	if container.Length() == 0 {
		return ""
	}
	if content := container.Find("div." + classTabContent).First(); content.Length() > 0 {
		return outerHTML(content)
	}
	return outerHTML(container)
}

// osParameter derives the categorical os value for rule lookups: the
// software filter's default option when the descriptor exists (hidden
// or not), otherwise the product's configured key.
func osParameter(filters flexcms.FilterDetection, product *flexcms.Product) string {
	if opt, ok := filters.Software.DefaultOption(); ok {
		return opt.Value
	}
	if product != nil {
		return product.Key
	}
	return ""
}

// regionGroupName resolves a region option's display name, preferring
// the page's own label over the product catalog mapping.
func regionGroupName(region flexcms.FilterOption, product *flexcms.Product) string {
	if region.Label != "" {
		return region.Label
	}
	return product.RegionName(region.Value)
}
