package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/flexcms/flexcms"
	"github.com/flexcms/flexcms/fs"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.Page)
	if err != nil {
		return err
	}

	doc, err := deps.Extractor.ExtractDocument(string(data), c.product(deps))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", flexcms.ErrorMessage(err))
		return err
	}

	for _, w := range doc.Warnings {
		fmt.Fprintf(deps.Stderr, "warning: %s: %s\n", w.Code, w.Message)
	}

	if c.Out != "" {
		if err := fs.NewWriter(c.Out).WriteDocument(deps.Ctx, doc); err != nil {
			return err
		}
		fmt.Fprintf(deps.Stdout, "wrote %s\n", filepath.Join(c.Out, doc.Slug+".json"))
		return nil
	}

	out, err := fs.MarshalDocument(doc)
	if err != nil {
		return err
	}
	_, err = deps.Stdout.Write(out)
	return err
}

// product resolves the product configuration for the page, trying the
// explicit flag first and the file name second.
func (c *ExtractCmd) product(deps *Dependencies) *flexcms.Product {
	if deps.Catalog == nil {
		return nil
	}

	key := c.Product
	if key == "" {
		key = strings.TrimSuffix(filepath.Base(c.Page), ".html")
	}

	product, err := deps.Catalog.Product(key)
	if err != nil {
		return nil
	}
	return product
}
