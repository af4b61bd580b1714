package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/flexcms/flexcms"
)

// Ensure FilterDetector implements flexcms.FilterDetector at compile time.
var _ flexcms.FilterDetector = (*FilterDetector)(nil)

// FilterDetector reads the region and software-kind filter widgets out
// of pricing-page markup.
type FilterDetector struct{}

// NewFilterDetector creates a new FilterDetector.
func NewFilterDetector() *FilterDetector {
	return &FilterDetector{}
}

// DetectFilters scans the markup for the two known filter containers.
// A missing container yields a nil descriptor. A hidden container still
// yields a full descriptor with its options: the hidden software
// filter's option value is the os parameter region filtering depends on.
func (d *FilterDetector) DetectFilters(html string) (flexcms.FilterDetection, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return flexcms.FilterDetection{}, flexcms.Errorf(flexcms.EINVALID, "failed to parse HTML: %v", err)
	}

	var detection flexcms.FilterDetection

	region, warnings := detectDescriptor(doc, flexcms.FilterRegion, classRegionContainer, classRegionSelect)
	detection.Region = region
	detection.Warnings = append(detection.Warnings, warnings...)

	software, warnings := detectDescriptor(doc, flexcms.FilterSoftware, classSoftwareKind, classSoftwareSelect)
	detection.Software = software
	detection.Warnings = append(detection.Warnings, warnings...)

	return detection, nil
}

// detectDescriptor locates one filter container by marker class and
// reads its selection control.
func detectDescriptor(doc *goquery.Document, kind flexcms.FilterKind, containerClass, selectClass string) (*flexcms.FilterDescriptor, []flexcms.Warning) {
	var warnings []flexcms.Warning

	containers := doc.Find("div." + containerClass)
	if containers.Length() == 0 {
		return nil, nil
	}
	if containers.Length() > 1 {
		warnings = append(warnings, flexcms.Warning{
			Code:    flexcms.WarnStructuralAmbiguity,
			Message: "multiple " + containerClass + " containers, using the first",
		})
	}
	container := containers.First()

	// The marked control is preferred; a bare select inside the
	// container is accepted as a degraded match.
	control := container.Find("select." + selectClass)
	if control.Length() == 0 {
		control = container.Find("select")
	}

	descriptor := &flexcms.FilterDescriptor{
		Kind:    kind,
		Visible: !isHidden(container),
	}

	control.First().Find("option").Each(func(_ int, opt *goquery.Selection) {
		value := strings.TrimSpace(opt.AttrOr("value", ""))
		target := strings.TrimSpace(opt.AttrOr(attrTargetHref, ""))
		label := strings.TrimSpace(opt.Text())

		if value == "" || target == "" {
			warnings = append(warnings, flexcms.Warning{
				Code:    flexcms.WarnMalformedFilterOption,
				Message: string(kind) + " option " + label + " missing value or target attribute",
			})
			return
		}

		descriptor.Options = append(descriptor.Options, flexcms.FilterOption{
			Value:    value,
			TargetID: strings.TrimPrefix(target, "#"),
			Label:    label,
		})
	})

	return descriptor, warnings
}

// isHidden reports whether the element carries an inline display:none
// style directive.
func isHidden(sel *goquery.Selection) bool {
	style := strings.ToLower(sel.AttrOr("style", ""))
	style = strings.ReplaceAll(style, " ", "")
	return strings.Contains(style, "display:none")
}
