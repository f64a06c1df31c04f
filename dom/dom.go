package dom

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/hasbyte1/go-blocks-utils/value"
)

// IsElement reports whether v is a single DOM element node: a non-nil
// *html.Node (or html.Node) of type html.ElementNode. Text, comment and
// document nodes are not elements, and neither are tag names such as "div".
func IsElement(v any) bool {
	switch n := v.(type) {
	case *html.Node:
		return n != nil && n.Type == html.ElementNode
	case html.Node:
		return n.Type == html.ElementNode
	}
	return false
}

// IsElements reports whether v is a non-empty collection made up entirely of
// element nodes. Collections are slices, arrays, [value.Arguments], and
// array-likes such as [NodeList]. Undefined, null, single nodes and empty
// collections are not elements.
func IsElements(v any) bool {
	if v == nil {
		return false
	}
	found, all := false, true
	ok := value.Iterate(v, func(e any) bool {
		if !IsElement(e) {
			all = false
			return false
		}
		found = true
		return true
	})
	return ok && found && all
}

// CreateElement returns a new, detached element node for tag.
func CreateElement(tag string) *html.Node {
	tag = strings.ToLower(tag)
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
}

// Parse parses an HTML document and returns its document node.
func Parse(r io.Reader) (*html.Node, error) {
	return html.Parse(r)
}

// ParseFragment parses an HTML fragment as if it appeared inside an element
// named context, e.g. "body" or "ul".
func ParseFragment(r io.Reader, context string) ([]*html.Node, error) {
	return html.ParseFragment(r, CreateElement(context))
}

// Find returns the first element named tag in a depth-first walk of root,
// root included, or nil when there is none.
func Find(root *html.Node, tag string) *html.Node {
	if root == nil {
		return nil
	}
	tag = strings.ToLower(tag)
	if root.Type == html.ElementNode && root.Data == tag {
		return root
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if n := Find(c, tag); n != nil {
			return n
		}
	}
	return nil
}
