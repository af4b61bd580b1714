package mock

import "github.com/flexcms/flexcms"

var _ flexcms.Cleaner = (*Cleaner)(nil)

// Cleaner is a mock implementation of flexcms.Cleaner.
type Cleaner struct {
	CleanFn func(fragment string) (string, error)
}

func (c *Cleaner) Clean(fragment string) (string, error) {
	return c.CleanFn(fragment)
}

var _ flexcms.Converter = (*Converter)(nil)

// Converter is a mock implementation of flexcms.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
