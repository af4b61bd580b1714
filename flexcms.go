// Package flexcms reconstructs archived pricing-page snapshots as
// normalized, filterable content documents for a downstream CMS. It
// classifies each page's structure (simple, region-filtered, or complex
// multi-filter), decomposes the page into content groups keyed by
// filter-value combinations, and assembles the result into a flexible
// content document.
//
// This package contains domain types, interfaces, and pure algorithms
// following Ben Johnson's Standard Package Layout. Implementations live
// in subdirectories named after their primary dependency (e.g.,
// goquery/, sqlite/, fs/).
package flexcms
