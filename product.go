package flexcms

// Product describes one pricing page's product configuration: the key
// used in the rule table, the output slug, and display-name mappings.
type Product struct {
	// Key is the os value used for rule lookups (e.g. "Azure Database
	// for MySQL"). It backs the page-default os when a page has no
	// software filter at all.
	Key string `yaml:"key" json:"key"`

	// Slug is the document slug when the page carries no canonical URL.
	Slug string `yaml:"slug" json:"slug"`

	// Title overrides the extracted page title when non-empty.
	Title string `yaml:"title" json:"title"`

	// RegionNames maps region option values to display names used as
	// group names when the page's own labels are empty.
	RegionNames map[string]string `yaml:"regionNames" json:"regionNames"`
}

// Validate returns an error if the product contains invalid fields.
func (p *Product) Validate() error {
	if p.Key == "" {
		return Errorf(EINVALID, "product key required")
	}
	if p.Slug == "" {
		return Errorf(EINVALID, "product slug required")
	}
	return nil
}

// RegionName resolves a region value to its display name, falling back
// to the value itself.
func (p *Product) RegionName(value string) string {
	if p == nil {
		return value
	}
	if name, ok := p.RegionNames[value]; ok && name != "" {
		return name
	}
	return value
}

// Catalog resolves products by key or slug.
type Catalog interface {
	// Product returns the product for a key. Returns ENOTFOUND if no
	// product is configured for the key.
	Product(key string) (*Product, error)

	// Products returns all configured products.
	Products() []*Product
}
