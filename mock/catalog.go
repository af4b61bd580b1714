package mock

import "github.com/flexcms/flexcms"

var _ flexcms.Catalog = (*Catalog)(nil)

// Catalog is a mock implementation of flexcms.Catalog.
type Catalog struct {
	ProductFn  func(key string) (*flexcms.Product, error)
	ProductsFn func() []*flexcms.Product
}

func (c *Catalog) Product(key string) (*flexcms.Product, error) {
	return c.ProductFn(key)
}

func (c *Catalog) Products() []*flexcms.Product {
	return c.ProductsFn()
}
