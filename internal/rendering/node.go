package rendering

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// el builds an element node with an optional class and children. Nil children are skipped.
func el(a atom.Atom, class string, children ...*html.Node) *html.Node {
	n := &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
	if class != "" {
		n.Attr = append(n.Attr, html.Attribute{Key: "class", Val: class})
	}
	for _, c := range children {
		if c != nil {
			n.AppendChild(c)
		}
	}
	return n
}

// txt builds a text node
func txt(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// textEl builds an element holding a single text node, or nil when s is blank
func textEl(a atom.Atom, class, s string) *html.Node {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return el(a, class, txt(s))
}

// attr sets an attribute on n and returns n
func attr(n *html.Node, key, val string) *html.Node {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return n
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
	return n
}

// anchor builds an external link
func anchor(class, href, label string) *html.Node {
	a := el(atom.A, class, txt(label))
	attr(a, "href", href)
	attr(a, "target", "_blank")
	attr(a, "rel", "noopener noreferrer")
	return a
}

// block builds a section element tagged with its kind for outline extraction
func block(kind, id, class string, children ...*html.Node) *html.Node {
	n := el(atom.Section, class, children...)
	attr(n, "data-section", kind)
	if id != "" {
		attr(n, "id", id)
	}
	return n
}

// nonNil filters nil nodes, used when an optional element decides the parent's existence
func nonNil(nodes ...*html.Node) []*html.Node {
	out := nodes[:0:0]
	for _, n := range nodes {
		if n != nil {
			out = append(out, n)
		}
	}
	return out
}
