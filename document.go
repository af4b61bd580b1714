package flexcms

import "encoding/json"

// Section types for common page sections shared by all classifications.
const (
	SectionBanner      = "Banner"
	SectionDescription = "ProductDescription"
	SectionQa          = "Qa"
)

// CommonSection is a reusable page section (banner, product description,
// FAQ) extracted independently of the page's classification.
type CommonSection struct {
	SectionType string `json:"sectionType"`
	Content     string `json:"content"`
	SortOrder   int    `json:"sortOrder"`
	IsActive    bool   `json:"isActive"`
}

// FilterCriterion selects the filter values a content group matches.
type FilterCriterion struct {
	FilterKey   string   `json:"filterKey"`
	MatchValues []string `json:"matchValues"`
}

// ContentGroup is one filter-value-combination's worth of extracted
// content plus the JSON-encoded criteria that select it.
type ContentGroup struct {
	GroupName          string `json:"groupName"`
	FilterCriteriaJson string `json:"filterCriteriaJson"`
	Content            string `json:"content"`
	SortOrder          int    `json:"sortOrder"`
	IsActive           bool   `json:"isActive"`
}

// Filter definition types understood by the downstream content system.
const (
	FilterTypeDropdown = "Dropdown"
	FilterTypeTab      = "Tab"
)

// FilterDefOption is one output-facing option of a filter definition.
type FilterDefOption struct {
	Value     string `json:"value"`
	Label     string `json:"label"`
	IsDefault bool   `json:"isDefault"`
	Order     int    `json:"order"`
}

// FilterDefinition is the output-facing description of one filter.
type FilterDefinition struct {
	FilterKey  string            `json:"filterKey"`
	FilterName string            `json:"filterName"`
	FilterType string            `json:"filterType"`
	Options    []FilterDefOption `json:"options"`
}

// PageConfig carries the page's type and filter configuration. The
// filter definitions are double-encoded: FiltersJsonConfig is itself a
// JSON document embedded as a string.
type PageConfig struct {
	PageType          PageType `json:"pageType"`
	EnableFilters     bool     `json:"enableFilters"`
	FiltersJsonConfig string   `json:"filtersJsonConfig,omitempty"`
}

// FlexibleDocument is the normalized output consumed by the downstream
// content system. Exactly one of BaseContent and ContentGroups is
// populated: Simple pages fill BaseContent, RegionFilter and Complex
// pages fill ContentGroups.
type FlexibleDocument struct {
	Title           string          `json:"title"`
	Slug            string          `json:"slug"`
	MetaTitle       string          `json:"metaTitle,omitempty"`
	MetaDescription string          `json:"metaDescription,omitempty"`
	MetaKeywords    string          `json:"metaKeywords,omitempty"`
	PageConfig      PageConfig      `json:"pageConfig"`
	CommonSections  []CommonSection `json:"commonSections"`
	BaseContent     string          `json:"baseContent"`
	ContentGroups   []ContentGroup  `json:"contentGroups"`

	// Warnings holds the non-fatal issues absorbed while producing this
	// document. Excluded from serialization so that output bytes depend
	// only on extracted content.
	Warnings []Warning `json:"-"`
}

// Validate returns an error if the document violates the output
// contract.
func (d *FlexibleDocument) Validate() error {
	if d.Slug == "" {
		return Errorf(EINVALID, "document slug required")
	}
	switch d.PageConfig.PageType {
	case PageSimple, PageRegionFilter, PageComplex:
	default:
		return Errorf(EINVALID, "unknown page type %q", d.PageConfig.PageType)
	}
	if d.BaseContent != "" && len(d.ContentGroups) > 0 {
		return Errorf(EINVALID, "baseContent and contentGroups are mutually exclusive")
	}
	if d.BaseContent == "" && len(d.ContentGroups) == 0 {
		return Errorf(EINVALID, "document has neither baseContent nor contentGroups")
	}
	return nil
}

// filtersConfig is the wire shape of the double-encoded filter payload.
type filtersConfig struct {
	FilterDefinitions []FilterDefinition `json:"filterDefinitions"`
}

// EncodeFiltersConfig encodes filter definitions into the string payload
// embedded in PageConfig.FiltersJsonConfig.
func EncodeFiltersConfig(defs []FilterDefinition) (string, error) {
	b, err := json.Marshal(filtersConfig{FilterDefinitions: defs})
	if err != nil {
		return "", Errorf(EINTERNAL, "encoding filters config: %v", err)
	}
	return string(b), nil
}

// DecodeFiltersConfig decodes a FiltersJsonConfig payload back into
// filter definitions.
func DecodeFiltersConfig(s string) ([]FilterDefinition, error) {
	var cfg filtersConfig
	if err := json.Unmarshal([]byte(s), &cfg); err != nil {
		return nil, Errorf(EINVALID, "decoding filters config: %v", err)
	}
	return cfg.FilterDefinitions, nil
}

// EncodeFilterCriteria encodes a criteria list into the string payload
// embedded in ContentGroup.FilterCriteriaJson.
func EncodeFilterCriteria(criteria []FilterCriterion) (string, error) {
	b, err := json.Marshal(criteria)
	if err != nil {
		return "", Errorf(EINTERNAL, "encoding filter criteria: %v", err)
	}
	return string(b), nil
}

// DecodeFilterCriteria decodes a FilterCriteriaJson payload back into
// the criteria list used to construct it.
func DecodeFilterCriteria(s string) ([]FilterCriterion, error) {
	var criteria []FilterCriterion
	if err := json.Unmarshal([]byte(s), &criteria); err != nil {
		return nil, Errorf(EINVALID, "decoding filter criteria: %v", err)
	}
	return criteria, nil
}
