package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Predicate matches nodes of a parse tree. It is intended to be used with Walk.
type Predicate func(*html.Node) bool

// NodeIsText is a predicate to match non-blank text-nodes of a DOM.
var NodeIsText Predicate = func(n *html.Node) bool {
	return n.Type == html.TextNode && strings.TrimSpace(n.Data) != ""
}

// NodeIsElement is a predicate to match element-nodes of a DOM.
var NodeIsElement Predicate = func(n *html.Node) bool {
	return n.Type == html.ElementNode
}

// Walk visits the parse tree below and including n in document order and calls
// visit for every node matching pred. The walk stops as soon as visit
// returns false; Walk then returns false as well.
func Walk(n *html.Node, pred Predicate, visit func(*html.Node) bool) bool {
	if n == nil {
		return true
	}
	if pred(n) && !visit(n) {
		return false
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if !Walk(ch, pred, visit) {
			return false
		}
	}
	return true
}

// Elements returns all elements of the document in document order.
func (doc *Document) Elements() ElementList {
	var l ElementList
	Walk(doc.root, NodeIsElement, func(n *html.Node) bool {
		l = append(l, doc.Element(n))
		return true
	})
	return l
}
