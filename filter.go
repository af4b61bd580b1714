package flexcms

// FilterKind identifies one of the two structural filter widgets a
// pricing page may carry.
type FilterKind string

// Filter kinds recognized by the detectors.
const (
	FilterRegion   FilterKind = "region"
	FilterSoftware FilterKind = "software"
)

// FilterOption is one selectable entry of a filter widget.
type FilterOption struct {
	// Value is the option's submit value (e.g. "north-china" or
	// "Cloud Services").
	Value string `json:"value"`

	// TargetID is the id of the content element this option routes to,
	// read from the option's data-href attribute (leading "#" stripped).
	TargetID string `json:"targetId"`

	// Label is the user-visible option text.
	Label string `json:"label"`
}

// FilterDescriptor describes a detected filter widget.
//
// A hidden filter is not an inapplicable filter: its sole or default
// option value remains a required downstream input. In particular, a
// hidden software filter's option value is the categorical "os"
// parameter that differentiates region content during table filtering.
type FilterDescriptor struct {
	Kind    FilterKind     `json:"kind"`
	Visible bool           `json:"visible"`
	Options []FilterOption `json:"options"`
}

// DefaultOption returns the descriptor's first option, which is the
// widget's default selection. ok is false when the descriptor is nil or
// has no options.
func (d *FilterDescriptor) DefaultOption() (FilterOption, bool) {
	if d == nil || len(d.Options) == 0 {
		return FilterOption{}, false
	}
	return d.Options[0], true
}

// FilterDetection holds the outcome of scanning a page for filter
// widgets. A nil descriptor means the widget is absent, which is an
// expected page shape rather than an error.
type FilterDetection struct {
	Region   *FilterDescriptor
	Software *FilterDescriptor

	// Warnings collects non-fatal structural issues found during
	// detection (duplicate containers, malformed options).
	Warnings []Warning
}

// RegionVisible reports whether a visible region filter was detected.
func (d FilterDetection) RegionVisible() bool {
	return d.Region != nil && d.Region.Visible
}

// SoftwareVisible reports whether a visible software filter was detected.
func (d FilterDetection) SoftwareVisible() bool {
	return d.Software != nil && d.Software.Visible
}

// FilterDetector reads the page's filter widgets out of raw markup.
type FilterDetector interface {
	// DetectFilters scans the markup for the region and software-kind
	// filter containers. Missing widgets yield nil descriptors; only a
	// completely unparseable input is an error.
	DetectFilters(html string) (FilterDetection, error)
}
