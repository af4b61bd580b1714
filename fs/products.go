package fs

import (
	"os"

	"github.com/flexcms/flexcms"
	"gopkg.in/yaml.v3"
)

// Ensure Catalog implements flexcms.Catalog at compile time.
var _ flexcms.Catalog = (*Catalog)(nil)

// Catalog is an immutable product catalog loaded from a YAML file.
// Products are resolvable by key and by slug.
type Catalog struct {
	products []*flexcms.Product
	byKey    map[string]*flexcms.Product
	bySlug   map[string]*flexcms.Product
}

// catalogFile is the wire shape of the products file.
type catalogFile struct {
	Products []*flexcms.Product `yaml:"products"`
}

// LoadCatalog reads a product catalog from a YAML file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, flexcms.Errorf(flexcms.ENOTFOUND, "product catalog %s not found", path)
		}
		return nil, err
	}
	return ParseCatalog(data)
}

// ParseCatalog parses catalog bytes into a Catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, flexcms.Errorf(flexcms.EINVALID, "parsing product catalog: %v", err)
	}

	c := &Catalog{
		byKey:  make(map[string]*flexcms.Product, len(file.Products)),
		bySlug: make(map[string]*flexcms.Product, len(file.Products)),
	}
	for _, p := range file.Products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		c.products = append(c.products, p)
		c.byKey[p.Key] = p
		c.bySlug[p.Slug] = p
	}
	return c, nil
}

// Product returns the product for a key, falling back to slug lookup.
func (c *Catalog) Product(key string) (*flexcms.Product, error) {
	if p, ok := c.byKey[key]; ok {
		return p, nil
	}
	if p, ok := c.bySlug[key]; ok {
		return p, nil
	}
	return nil, flexcms.Errorf(flexcms.ENOTFOUND, "no product configured for %q", key)
}

// Products returns all configured products in file order.
func (c *Catalog) Products() []*flexcms.Product {
	return c.products
}
