package dom

import (
	"strings"

	"github.com/npillmayer/animsync/dom/style"
	"github.com/npillmayer/animsync/dom/w3cdom"
	"golang.org/x/net/html"
)

// Element wraps an element node of an HTML parse tree.
type Element struct {
	doc       *Document
	node      *html.Node
	listeners map[string][]w3cdom.Handler
}

var _ w3cdom.Element = &Element{}

// HTMLNode returns the underlying node of the parse tree.
func (e *Element) HTMLNode() *html.Node {
	return e.node
}

// Document returns the document the element belongs to.
func (e *Element) Document() *Document {
	return e.doc
}

// TagName returns the lowercase tag name.
func (e *Element) TagName() string {
	return e.node.Data
}

// ID returns the value of attribute "id".
func (e *Element) ID() string {
	v, _ := e.Attribute("id")
	return v
}

func (e *Element) String() string {
	var b strings.Builder
	b.WriteString("<" + e.node.Data)
	if id := e.ID(); id != "" {
		b.WriteString("#" + id)
	}
	for _, c := range e.ClassList().Values() {
		b.WriteString("." + c)
	}
	b.WriteString(">")
	return b.String()
}

// Attribute returns the value of an attribute.
func (e *Element) Attribute(key string) (string, bool) {
	for _, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttribute sets or replaces the value of an attribute.
func (e *Element) SetAttribute(key, value string) {
	for i, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			e.node.Attr[i].Val = value
			return
		}
	}
	e.node.Attr = append(e.node.Attr, html.Attribute{Key: key, Val: value})
}

// RemoveAttribute deletes an attribute, if present.
func (e *Element) RemoveAttribute(key string) {
	for i, a := range e.node.Attr {
		if a.Namespace == "" && a.Key == key {
			e.node.Attr = append(e.node.Attr[:i], e.node.Attr[i+1:]...)
			return
		}
	}
}

// Parent returns the parent element, or nil for the root element.
func (e *Element) Parent() *Element {
	return e.doc.Element(e.node.Parent)
}

// FirstElementChild returns the first child element, or nil.
func (e *Element) FirstElementChild() w3cdom.Element {
	for ch := e.node.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode {
			return e.doc.Element(ch)
		}
	}
	return nil
}

// Children returns the child elements.
func (e *Element) Children() ElementList {
	var l ElementList
	for ch := e.node.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode {
			l = append(l, e.doc.Element(ch))
		}
	}
	return l
}

// TextContent returns the text of the element and all its descendents.
func (e *Element) TextContent() string {
	var b strings.Builder
	collectText(e.node, &b)
	return b.String()
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		collectText(ch, b)
	}
}

// SetTextContent replaces all children of the element by a single text node.
// An empty text removes all children.
func (e *Element) SetTextContent(text string) {
	for ch := e.node.FirstChild; ch != nil; ch = e.node.FirstChild {
		e.node.RemoveChild(ch)
		delete(e.doc.elements, ch)
	}
	if text != "" {
		e.node.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	}
}

// --- Styles -----------------------------------------------------------

// Style returns the inline style of the element.
func (e *Element) Style() w3cdom.Style {
	return InlineStyle{e: e}
}

// InlineStyle reads and writes the `style` attribute of an element.
type InlineStyle struct {
	e *Element
}

var _ w3cdom.Style = InlineStyle{}

// Declarations parses the style attribute. A malformed attribute is traced
// and treated as empty.
func (s InlineStyle) Declarations() *style.Declarations {
	attr, _ := s.e.Attribute("style")
	decls, err := style.ParseDeclarations(attr)
	if err != nil {
		tracer().Errorf("%s: %v", s.e, err)
		return &style.Declarations{}
	}
	return decls
}

func (s InlineStyle) store(decls *style.Declarations) {
	if decls.Len() == 0 {
		s.e.RemoveAttribute("style")
		return
	}
	s.e.SetAttribute("style", decls.String())
}

// GetPropertyValue returns an inline property or "".
func (s InlineStyle) GetPropertyValue(property string) string {
	p, _ := s.Declarations().Get(property)
	return p.String()
}

// SetProperty sets an inline property. An empty value removes it.
func (s InlineStyle) SetProperty(property, value string) {
	decls := s.Declarations()
	decls.Set(property, style.Property(strings.TrimSpace(value)))
	s.store(decls)
}

// RemoveProperty removes an inline property, returning its old value.
func (s InlineStyle) RemoveProperty(property string) string {
	decls := s.Declarations()
	old, _ := decls.Get(property)
	if decls.Remove(property) {
		s.store(decls)
	}
	return old.String()
}

// CSSText returns the serialized inline style.
func (s InlineStyle) CSSText() string {
	return s.Declarations().String()
}

// ComputedStyle resolves the value of a property for the element.
// Important declarations win over normal ones, and for equal importance
// the inline style wins over stylesheet rules. Inherited properties and
// custom properties cascade to the parent element. Finally the user-agent
// default is returned.
func (e *Element) ComputedStyle(property string) string {
	property = style.PropertyKey(property)
	for el := e; el != nil; el = el.Parent() {
		if p, ok := el.specifiedStyle(property); ok {
			return p.String()
		}
		if !style.IsCascading(property) {
			break
		}
	}
	return style.UserAgentDefault(e.node, property).String()
}

func (e *Element) specifiedStyle(property string) (style.Property, bool) {
	decls := InlineStyle{e: e}.Declarations()
	var inline style.KeyValue
	inlineFound := false
	for _, kv := range decls.Properties() {
		if kv.Key == property {
			inline, inlineFound = kv, true
		}
	}
	sheet, sheetFound := e.doc.cascade.Lookup(e.node, property)
	switch {
	case inlineFound && (inline.Important || !sheetFound || !sheet.Important):
		return inline.Value, true
	case sheetFound:
		return sheet.Value, true
	}
	return style.NullStyle, false
}

// BoundingClientRect returns the geometry of the element as far as it is
// given by absolute lengths of properties left, top, width and height.
// There is no layout engine; everything else measures as 0.
func (e *Element) BoundingClientRect() w3cdom.Rect {
	px := func(key string) float64 {
		v, _ := style.Property(e.ComputedStyle(key)).PxValue()
		return v
	}
	return w3cdom.Rect{
		X:      px("left"),
		Y:      px("top"),
		Width:  px("width"),
		Height: px("height"),
	}
}

// --- Classes ----------------------------------------------------------

// ClassList returns the classes of the element.
func (e *Element) ClassList() w3cdom.ClassList {
	return classList{e: e}
}

type classList struct {
	e *Element
}

func (cl classList) Values() []string {
	v, _ := cl.e.Attribute("class")
	return strings.Fields(v)
}

func (cl classList) set(classes []string) {
	if len(classes) == 0 {
		cl.e.RemoveAttribute("class")
		return
	}
	cl.e.SetAttribute("class", strings.Join(classes, " "))
}

func (cl classList) Contains(c string) bool {
	for _, x := range cl.Values() {
		if x == c {
			return true
		}
	}
	return false
}

func (cl classList) Add(classes ...string) {
	v := cl.Values()
	for _, c := range classes {
		if c != "" && !contains(v, c) {
			v = append(v, c)
		}
	}
	cl.set(v)
}

func (cl classList) Remove(classes ...string) {
	v := cl.Values()
	r := v[:0]
	for _, x := range v {
		if !contains(classes, x) {
			r = append(r, x)
		}
	}
	cl.set(r)
}

func (cl classList) Toggle(c string) bool {
	if cl.Contains(c) {
		cl.Remove(c)
		return false
	}
	cl.Add(c)
	return true
}

func contains(l []string, s string) bool {
	for _, x := range l {
		if x == s {
			return true
		}
	}
	return false
}

// --- Events -----------------------------------------------------------

// AddEventListener registers a handler for an event type.
func (e *Element) AddEventListener(event string, h w3cdom.Handler) {
	if h == nil {
		return
	}
	if e.listeners == nil {
		e.listeners = make(map[string][]w3cdom.Handler)
	}
	e.listeners[event] = append(e.listeners[event], h)
}

// DispatchEvent calls all handlers registered for the event's type, in order
// of registration. Events do not bubble. If the event has no target, the
// element is set as target.
func (e *Element) DispatchEvent(ev w3cdom.Event) int {
	if ev.Target == nil {
		ev.Target = e
	}
	handlers := e.listeners[ev.Type]
	for _, h := range handlers {
		h(ev)
	}
	tracer().Debugf("%s: dispatched %q to %d handler(s)", e, ev.Type, len(handlers))
	return len(handlers)
}
