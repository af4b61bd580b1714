package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/flexcms/flexcms"
)

// Ensure Converter implements flexcms.Converter at compile time.
var _ flexcms.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert extracted pricing content
// to Markdown. The table plugin matters here: pricing pages are mostly
// tables.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", flexcms.Errorf(flexcms.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return result, nil
}

// RenderDocument renders a whole flexible document as one Markdown
// file: common sections first, then either the base content or every
// content group under its own heading. Used by the export command for
// human review of extraction output.
func (c *Converter) RenderDocument(doc *flexcms.FlexibleDocument) (string, error) {
	if doc == nil {
		return "", flexcms.Errorf(flexcms.EINVALID, "nil document")
	}

	var b strings.Builder
	b.WriteString("# " + doc.Title + "\n")

	for _, section := range doc.CommonSections {
		md, err := c.Convert(section.Content)
		if err != nil {
			return "", err
		}
		b.WriteString("\n## " + section.SectionType + "\n\n")
		b.WriteString(strings.TrimSpace(md) + "\n")
	}

	if doc.BaseContent != "" {
		md, err := c.Convert(doc.BaseContent)
		if err != nil {
			return "", err
		}
		b.WriteString("\n" + strings.TrimSpace(md) + "\n")
		return b.String(), nil
	}

	for _, group := range doc.ContentGroups {
		b.WriteString("\n## " + group.GroupName + "\n\n")
		if group.Content == "" {
			continue
		}
		md, err := c.Convert(group.Content)
		if err != nil {
			return "", err
		}
		b.WriteString(strings.TrimSpace(md) + "\n")
	}

	return b.String(), nil
}
