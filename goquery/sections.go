package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/flexcms/flexcms"
)

// Ensure SectionExtractor implements flexcms.SectionExtractor at compile time.
var _ flexcms.SectionExtractor = (*SectionExtractor)(nil)

// Markers of FAQ and support content, used to keep the product
// description and the Qa section apart.
var qaTextMarkers = []string{"支持和服务级别协议", "常见问题"}

// SectionExtractor extracts the common sections shared by every page
// classification: banner, product description, and FAQ/support content.
type SectionExtractor struct {
	cleaner flexcms.Cleaner
}

// NewSectionExtractor creates a SectionExtractor that cleans each
// section with the given cleaner.
func NewSectionExtractor(cleaner flexcms.Cleaner) *SectionExtractor {
	return &SectionExtractor{cleaner: cleaner}
}

// ExtractSections returns the page's common sections in banner,
// description, Qa order with 1-based sort orders. Absent sections are
// skipped, not emitted empty.
func (e *SectionExtractor) ExtractSections(html string) ([]flexcms.CommonSection, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, flexcms.Errorf(flexcms.EINVALID, "failed to parse HTML: %v", err)
	}

	sections := []flexcms.CommonSection{}
	order := 1

	add := func(sectionType, content string) error {
		cleaned, err := e.cleaner.Clean(content)
		if err != nil {
			return err
		}
		if cleaned == "" {
			return nil
		}
		sections = append(sections, flexcms.CommonSection{
			SectionType: sectionType,
			Content:     cleaned,
			SortOrder:   order,
			IsActive:    true,
		})
		order++
		return nil
	}

	if err := add(flexcms.SectionBanner, e.banner(doc)); err != nil {
		return nil, err
	}
	if err := add(flexcms.SectionDescription, e.description(doc)); err != nil {
		return nil, err
	}
	if err := add(flexcms.SectionQa, e.qa(doc)); err != nil {
		return nil, err
	}

	return sections, nil
}

// banner returns the page banner markup.
func (e *SectionExtractor) banner(doc *goquery.Document) string {
	for _, selector := range []string{
		"div.common-banner",
		"div.common-banner-image",
		".banner",
		".hero",
		".page-banner",
		".product-banner",
	} {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return outerHTML(sel)
		}
	}
	return ""
}

// description returns the first pricing section after the banner that
// is not FAQ or support content, falling back to conventional
// description selectors.
func (e *SectionExtractor) description(doc *goquery.Document) string {
	banner := doc.Find("div.common-banner, div.col-top-banner").First()
	if banner.Length() > 0 {
		for sibling := banner.Next(); sibling.Length() > 0; sibling = sibling.Next() {
			if !sibling.HasClass(classPricingSection) {
				continue
			}
			if isQaSection(sibling) {
				continue
			}
			return outerHTML(sibling)
		}
	}

	for _, selector := range []string{
		".description",
		".product-description",
		".intro",
		".summary",
		"section.overview",
	} {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return outerHTML(sel)
		}
	}
	return ""
}

// qa returns FAQ and support/SLA content.
func (e *SectionExtractor) qa(doc *goquery.Document) string {
	var parts []string

	for _, selector := range []string{
		"div.faq", "div.qa", "section.faq", "section.qa",
		"div.more-detail", "ul.faq-list",
	} {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			parts = append(parts, outerHTML(sel))
		})
		if len(parts) > 0 {
			break
		}
	}

	doc.Find("div." + classPricingSection).Each(func(_ int, sel *goquery.Selection) {
		if isQaSection(sel) && sel.Find("div.more-detail, ul.faq-list").Length() == 0 {
			parts = append(parts, outerHTML(sel))
		}
	})

	return strings.Join(parts, "\n")
}

// isQaSection reports whether the section holds FAQ or support content
// rather than a product description.
func isQaSection(sel *goquery.Selection) bool {
	if sel.Find("div.more-detail, ul.faq-list").Length() > 0 {
		return true
	}
	text := sel.Text()
	for _, marker := range qaTextMarkers {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

// outerHTML renders a selection's first node including the node itself.
func outerHTML(sel *goquery.Selection) string {
	out, err := goquery.OuterHtml(sel.First())
	if err != nil {
		return ""
	}
	return out
}
