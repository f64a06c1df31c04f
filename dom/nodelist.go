package dom

import "golang.org/x/net/html"

// NodeList is a live, array-like view of the children of a node. It reads
// the current children on every call, so it reflects later tree changes.
//
// A NodeList is not an array; convert it with arr.ToArray.
type NodeList struct {
	parent *html.Node
}

// ChildNodes returns the live child list of n. A nil n yields an empty list.
func ChildNodes(n *html.Node) NodeList {
	return NodeList{parent: n}
}

// Len returns the current number of children.
func (l NodeList) Len() int {
	n := 0
	for c := l.first(); c != nil; c = c.NextSibling {
		n++
	}
	return n
}

// Index returns the i-th child as an any, or nil when i is out of range.
func (l NodeList) Index(i int) any {
	if n := l.Item(i); n != nil {
		return n
	}
	return nil
}

// Item returns the i-th child, or nil when i is out of range.
func (l NodeList) Item(i int) *html.Node {
	if i < 0 {
		return nil
	}
	for c := l.first(); c != nil; c = c.NextSibling {
		if i == 0 {
			return c
		}
		i--
	}
	return nil
}

// Elements returns the children that are element nodes.
func (l NodeList) Elements() []*html.Node {
	var out []*html.Node
	for c := l.first(); c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

func (l NodeList) first() *html.Node {
	if l.parent == nil {
		return nil
	}
	return l.parent.FirstChild
}
