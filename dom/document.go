package dom

import (
	"fmt"
	"io"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/animsync/dom/style"
	"github.com/npillmayer/animsync/dom/w3cdom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Document is a parsed HTML document.
type Document struct {
	root     *html.Node
	cascade  *style.Cascade
	user     *style.StyleSheet // added by AddStyleSheet, after all <style>s
	elements map[*html.Node]*Element
}

var _ w3cdom.Document = &Document{}

// Parse reads an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("cannot parse HTML document: %w", err)
	}
	return FromHTML(root), nil
}

// ParseString reads an HTML document from a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// FromHTML wraps an existing parse tree. Stylesheets embedded in <style>
// elements are compiled immediately; see RefreshStyles.
func FromHTML(root *html.Node) *Document {
	doc := &Document{
		root:     root,
		elements: make(map[*html.Node]*Element),
	}
	doc.RefreshStyles()
	return doc
}

// RefreshStyles re-reads all <style> elements of the document. Clients call it
// after modifying stylesheets.
func (doc *Document) RefreshStyles() {
	sheets := style.ExtractStyleElements(doc.root)
	if !doc.user.Empty() {
		sheets = append(sheets, doc.user)
	}
	doc.cascade = style.NewCascade(sheets...)
	tracer().Debugf("document has %d stylesheet(s), %d selector rule(s)", len(sheets), doc.cascade.Size())
}

// AddStyleSheet adds CSS rules from outside the document. They take
// precedence over embedded <style> elements of equal specificity, and rules
// of later calls over those of earlier ones.
func (doc *Document) AddStyleSheet(text string) error {
	sheet, err := style.ParseStyleSheet(text)
	if err != nil {
		return err
	}
	if doc.user == nil {
		doc.user = style.NewStyleSheet()
	}
	doc.user.AppendRules(sheet)
	doc.RefreshStyles()
	return nil
}

// HTMLNode returns the root node of the parse tree.
func (doc *Document) HTMLNode() *html.Node {
	return doc.root
}

// Element returns the unique element wrapper for an element node,
// or nil for nodes which are not elements.
func (doc *Document) Element(n *html.Node) *Element {
	if n == nil || n.Type != html.ElementNode {
		return nil
	}
	if e, ok := doc.elements[n]; ok {
		return e
	}
	e := &Element{doc: doc, node: n}
	doc.elements[n] = e
	return e
}

// DocumentElement returns the <html> element.
func (doc *Document) DocumentElement() w3cdom.Element {
	if e := doc.Root(); e != nil {
		return e
	}
	return nil
}

// Root returns the <html> element, or nil for an empty parse tree.
func (doc *Document) Root() *Element {
	for ch := doc.root.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode && ch.DataAtom == atom.Html {
			return doc.Element(ch)
		}
	}
	return nil
}

// Body returns the <body> element, if present.
func (doc *Document) Body() *Element {
	elems, _ := doc.Query("body")
	if len(elems) == 0 {
		return nil
	}
	return elems[0]
}

// Query returns all elements matching a CSS selector, in document order.
func (doc *Document) Query(selector string) ([]*Element, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}
	nodes := sel.MatchAll(doc.root)
	elems := make([]*Element, len(nodes))
	for i, n := range nodes {
		elems[i] = doc.Element(n)
	}
	return elems, nil
}

// QuerySelectorAll returns all elements matching a CSS selector, in document order.
func (doc *Document) QuerySelectorAll(selector string) (w3cdom.NodeList, error) {
	elems, err := doc.Query(selector)
	if err != nil {
		return nil, err
	}
	return ElementList(elems), nil
}

// SetVar sets a global CSS custom property on the root element, e.g.
//
//	doc.SetVar("--accent", "#4cddca")
func (doc *Document) SetVar(property, value string) {
	if root := doc.Root(); root != nil {
		root.Style().SetProperty(property, value)
	}
}

// GetVar returns the value of a global CSS custom property, or "" if it is not set.
func (doc *Document) GetVar(property string) string {
	if root := doc.Root(); root != nil {
		return root.ComputedStyle(property)
	}
	return ""
}

// Render writes the document as HTML.
func (doc *Document) Render(w io.Writer) error {
	return html.Render(w, doc.root)
}

// String renders the document into a string.
func (doc *Document) String() string {
	var b strings.Builder
	if err := doc.Render(&b); err != nil {
		tracer().Errorf("cannot render document: %v", err)
	}
	return b.String()
}

// ElementList is a list of elements, implementing w3cdom.NodeList.
type ElementList []*Element

var _ w3cdom.NodeList = ElementList{}

// Length returns the number of elements.
func (l ElementList) Length() int {
	return len(l)
}

// Item returns the i-th element or nil, if i is out of range.
func (l ElementList) Item(i int) w3cdom.Element {
	if i < 0 || i >= len(l) || l[i] == nil {
		return nil
	}
	return l[i]
}
