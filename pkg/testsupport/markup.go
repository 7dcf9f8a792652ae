package testsupport

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// MustParseFragment parses rendered markup and returns the document node.
func MustParseFragment(t *testing.T, markup []byte) *html.Node {
	t.Helper()

	doc, err := html.Parse(strings.NewReader(string(markup)))
	if err != nil {
		t.Fatalf("parse markup: %v", err)
	}
	return doc
}

// FindAll returns every element named tag below root, in document order.
func FindAll(root *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}

// FindByID returns the element carrying id, or nil.
func FindByID(root *html.Node, id string) *html.Node {
	var found *html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode {
			if value, ok := Attr(n, "id"); ok && value == id {
				found = n
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return found
}

// Attr returns the value of attribute key on n.
func Attr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val, true
		}
	}
	return "", false
}

// HasClass reports whether n's class attribute contains class.
func HasClass(n *html.Node, class string) bool {
	value, _ := Attr(n, "class")
	for _, token := range strings.Fields(value) {
		if token == class {
			return true
		}
	}
	return false
}

// Text returns the trimmed text content of n.
func Text(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
		for child := c.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	if n != nil {
		walk(n)
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
