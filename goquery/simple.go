package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/flexcms/flexcms"
)

// Ensure SimpleStaticStrategy implements flexcms.Strategy at compile time.
var _ flexcms.Strategy = (*SimpleStaticStrategy)(nil)

// SimpleStaticStrategy handles pages without usable filters: the page's
// single primary content block becomes the document's base content and
// filtering stays disabled.
type SimpleStaticStrategy struct {
	cleaner  flexcms.Cleaner
	fallback flexcms.ContentFallback
}

// NewSimpleStaticStrategy creates a SimpleStaticStrategy. The fallback
// extractor, when non-nil, is the last resort for pages with none of
// the expected structural markers.
func NewSimpleStaticStrategy(cleaner flexcms.Cleaner, fallback flexcms.ContentFallback) *SimpleStaticStrategy {
	return &SimpleStaticStrategy{cleaner: cleaner, fallback: fallback}
}

// Extract locates the primary content block, preferring the canonical
// pricing-section markers and degrading to root-container contents,
// then to readability extraction.
func (s *SimpleStaticStrategy) Extract(html string, c flexcms.PageClassification, product *flexcms.Product) (flexcms.StrategyResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return flexcms.StrategyResult{}, flexcms.Errorf(flexcms.EINVALID, "failed to parse HTML: %v", err)
	}

	var result flexcms.StrategyResult
	result.ContentGroups = []flexcms.ContentGroup{}

	content := s.primaryBlock(doc)
	if content == "" && s.fallback != nil {
		extracted, err := s.fallback.ExtractMainContent(html)
		if err != nil {
			result.Warnings = append(result.Warnings, flexcms.Warning{
				Code:    flexcms.WarnMissingContent,
				Message: "fallback content extraction failed: " + err.Error(),
			})
		} else {
			content = extracted
		}
	}

	cleaned, err := s.cleaner.Clean(content)
	if err != nil {
		return flexcms.StrategyResult{}, err
	}
	result.BaseContent = cleaned

	return result, nil
}

// primaryBlock finds the page's main content block from the canonical
// markers.
func (s *SimpleStaticStrategy) primaryBlock(doc *goquery.Document) string {
	if sel := doc.Find("div." + classTabControl).First(); sel.Length() > 0 {
		return outerHTML(sel)
	}

	// Pricing sections minus the ones the common-section extraction
	// already claims (banner-adjacent description, FAQ/support).
	var parts []string
	doc.Find("div." + classPricingSection).Each(func(_ int, sel *goquery.Selection) {
		if isQaSection(sel) {
			return
		}
		parts = append(parts, outerHTML(sel))
	})
	if len(parts) > 1 {
		// First section after the banner is the product description.
		parts = parts[1:]
	}
	if len(parts) > 0 {
		return strings.Join(parts, "\n")
	}

	if sel := doc.Find("div." + classMainSelector + "." + classMainDetailTab).First(); sel.Length() > 0 {
		return outerHTML(sel)
	}
	return ""
}
