package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/flexcms/flexcms"
	"github.com/flexcms/flexcms/htmltomarkdown"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	data, err := os.ReadFile(c.Document)
	if err != nil {
		if os.IsNotExist(err) {
			return flexcms.Errorf(flexcms.ENOTFOUND, "document not found: %s", c.Document)
		}
		return err
	}

	var doc flexcms.FlexibleDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return flexcms.Errorf(flexcms.EINVALID, "parse document %s: %v", c.Document, err)
	}

	markdown, err := htmltomarkdown.NewConverter().RenderDocument(&doc)
	if err != nil {
		return err
	}

	if c.Out == "" {
		fmt.Fprintln(deps.Stdout, markdown)
		return nil
	}
	if err := os.WriteFile(c.Out, []byte(markdown+"\n"), 0644); err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "wrote %s\n", c.Out)
	return nil
}
