package trafilatura

import (
	"bytes"
	"strings"

	"github.com/flexcms/flexcms"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements flexcms.ContentFallback at compile time.
var _ flexcms.ContentFallback = (*Extractor)(nil)

// Extractor wraps go-trafilatura as the last-resort content path for
// pages that carry none of the legacy structural markers.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractMainContent processes raw HTML and returns the main content
// markup.
func (e *Extractor) ExtractMainContent(rawHTML string) (string, error) {
	if rawHTML == "" {
		return "", flexcms.Errorf(flexcms.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return "", flexcms.Errorf(flexcms.EINTERNAL, "readability extraction failed: %v", err)
	}

	if result.ContentNode == nil {
		return "", flexcms.Errorf(flexcms.ENOTFOUND, "no main content found")
	}
	return renderNode(result.ContentNode)
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", flexcms.Errorf(flexcms.EINTERNAL, "rendering extracted content: %v", err)
	}
	return buf.String(), nil
}
