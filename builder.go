package flexcms

// FlexibleBuilder assembles the final document from base metadata,
// common sections, and strategy output. Assembly is pure: input order
// determines output order, and nothing is timestamped.
type FlexibleBuilder struct{}

// NewFlexibleBuilder creates a new FlexibleBuilder.
func NewFlexibleBuilder() *FlexibleBuilder {
	return &FlexibleBuilder{}
}

// Build assembles a FlexibleDocument. The product, when non-nil,
// supplies fallback slug and title. Warnings from detection and
// strategy execution are carried on the document's validation metadata,
// not in its serialized form.
func (b *FlexibleBuilder) Build(meta PageMeta, product *Product, sections []CommonSection, c PageClassification, res StrategyResult) (*FlexibleDocument, error) {
	doc := &FlexibleDocument{
		Title:           meta.Title,
		Slug:            meta.Slug,
		MetaTitle:       meta.MetaTitle,
		MetaDescription: meta.MetaDescription,
		MetaKeywords:    meta.MetaKeywords,
		CommonSections:  sections,
		BaseContent:     res.BaseContent,
		PageConfig: PageConfig{
			PageType:      c.PageType,
			EnableFilters: res.EnableFilters,
		},
	}

	if product != nil {
		if doc.Slug == "" {
			doc.Slug = product.Slug
		}
		if product.Title != "" {
			doc.Title = product.Title
		}
	}

	if doc.CommonSections == nil {
		doc.CommonSections = []CommonSection{}
	}

	// Groups arrive in strategy order; sort order is 1-based and stable.
	doc.ContentGroups = make([]ContentGroup, len(res.ContentGroups))
	for i, g := range res.ContentGroups {
		g.SortOrder = i + 1
		g.IsActive = true
		doc.ContentGroups[i] = g
	}

	if res.EnableFilters && len(res.FilterDefinitions) > 0 {
		cfg, err := EncodeFiltersConfig(res.FilterDefinitions)
		if err != nil {
			return nil, err
		}
		doc.PageConfig.FiltersJsonConfig = cfg
	}

	doc.Warnings = append(doc.Warnings, c.Warnings...)
	doc.Warnings = append(doc.Warnings, res.Warnings...)

	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}
