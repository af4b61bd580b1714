package goquery

import (
	"bytes"
	"strings"

	"github.com/flexcms/flexcms"
	"golang.org/x/net/html"
)

// Ensure Cleaner implements flexcms.Cleaner at compile time.
var _ flexcms.Cleaner = (*Cleaner)(nil)

// Cleaner normalizes extracted fragments before they enter content
// groups: scripts, styles, and comments are removed, inline event
// handlers are stripped. Text content, including placeholder tokens, is
// preserved verbatim.
type Cleaner struct{}

// NewCleaner creates a new Cleaner.
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// Clean returns the cleaned fragment. Empty input is returned as is.
func (c *Cleaner) Clean(fragment string) (string, error) {
	if strings.TrimSpace(fragment) == "" {
		return "", nil
	}

	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return "", flexcms.Errorf(flexcms.EINVALID, "failed to parse fragment: %v", err)
	}

	body := findElement(doc, "body")
	if body == nil {
		return "", flexcms.Errorf(flexcms.EINTERNAL, "parsed fragment has no body")
	}

	var buf bytes.Buffer
	for child := body.FirstChild; child != nil; child = child.NextSibling {
		cleanNode(child)
		if child.Type == html.TextNode && strings.TrimSpace(child.Data) == "" {
			continue
		}
		if err := html.Render(&buf, child); err != nil {
			return "", flexcms.Errorf(flexcms.EINTERNAL, "failed to render fragment: %v", err)
		}
	}
	return strings.TrimSpace(buf.String()), nil
}

// cleanNode prunes script/style/comment nodes and event-handler
// attributes in place.
func cleanNode(n *html.Node) {
	if n.Type == html.ElementNode {
		attrs := n.Attr[:0]
		for _, a := range n.Attr {
			if strings.HasPrefix(strings.ToLower(a.Key), "on") {
				continue
			}
			attrs = append(attrs, a)
		}
		n.Attr = attrs
	}

	var next *html.Node
	for child := n.FirstChild; child != nil; child = next {
		next = child.NextSibling
		switch {
		case child.Type == html.CommentNode:
			n.RemoveChild(child)
		case child.Type == html.ElementNode && (child.Data == "script" || child.Data == "style" || child.Data == "noscript"):
			n.RemoveChild(child)
		default:
			cleanNode(child)
		}
	}
}

// findElement returns the first element with the given tag in a
// depth-first walk.
func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if found := findElement(child, tag); found != nil {
			return found
		}
	}
	return nil
}
