package mock

import "github.com/flexcms/flexcms"

var _ flexcms.FilterDetector = (*FilterDetector)(nil)

// FilterDetector is a mock implementation of flexcms.FilterDetector.
type FilterDetector struct {
	DetectFiltersFn func(html string) (flexcms.FilterDetection, error)
}

func (d *FilterDetector) DetectFilters(html string) (flexcms.FilterDetection, error) {
	return d.DetectFiltersFn(html)
}

var _ flexcms.TabDetector = (*TabDetector)(nil)

// TabDetector is a mock implementation of flexcms.TabDetector.
type TabDetector struct {
	DetectTabsFn func(html string, filters flexcms.FilterDetection) (flexcms.TabDetection, error)
}

func (d *TabDetector) DetectTabs(html string, filters flexcms.FilterDetection) (flexcms.TabDetection, error) {
	return d.DetectTabsFn(html, filters)
}
