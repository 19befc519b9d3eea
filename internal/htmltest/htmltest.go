// Package htmltest queries rendered markup in tests.
package htmltest

import (
	"slices"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

// Parse parses a document or fragment, failing tb on error.
func Parse(tb testing.TB, markup string) *html.Node {
	tb.Helper()
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		tb.Fatalf("parsing html: %v", err)
	}
	return doc
}

// FindAll returns the element nodes under n, in document order, for which
// match is true.
func FindAll(n *html.Node, match func(*html.Node) bool) []*html.Node {
	var found []*html.Node
	for d := range n.Descendants() {
		if d.Type == html.ElementNode && match(d) {
			found = append(found, d)
		}
	}
	return found
}

// Tag matches elements by tag name.
func Tag(name string) func(*html.Node) bool {
	return func(n *html.Node) bool { return n.Data == name }
}

// HasAttr matches elements carrying attribute key.
func HasAttr(key string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		_, ok := Attr(n, key)
		return ok
	}
}

// ByID returns the element with id, or nil.
func ByID(n *html.Node, id string) *html.Node {
	found := FindAll(n, func(n *html.Node) bool {
		v, _ := Attr(n, "id")
		return v == id
	})
	if len(found) == 0 {
		return nil
	}
	return found[0]
}

func Attr(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func HasClass(n *html.Node, class string) bool {
	v, _ := Attr(n, "class")
	return slices.Contains(strings.Fields(v), class)
}

// Text returns the text content of n with whitespace collapsed.
func Text(n *html.Node) string {
	var sb strings.Builder
	for d := range n.Descendants() {
		if d.Type == html.TextNode {
			sb.WriteString(d.Data)
			sb.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}
