/*
Package w3cdom defines interface types for the subset of the W3C Document
Object Model an animation needs to drive: element queries, inline styles,
computed styles, class lists, text content, geometry and events.

See also https://www.w3schools.com/XML/dom_intro.asp

Interfaces are kept minimal so that clients may provide their own
implementation; package dom implements them for a headless HTML document.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package w3cdom

// Document represents a W3C-type Document
type Document interface {
	DocumentElement() Element                  // the root element (<html>)
	QuerySelectorAll(string) (NodeList, error) // all elements matching a CSS selector
}

// Element represents a W3C-type Element
type Element interface {
	TagName() string                      // lowercase tag name
	ID() string                           // value of attribute "id"
	Style() Style                         // inline style of the element
	ComputedStyle(property string) string // resolved value of a property
	ClassList() ClassList                 // classes of the element
	TextContent() string                  // text of the element and all descendents
	SetTextContent(string)                // replace all children by a single text
	FirstElementChild() Element           // first child element or nil
	BoundingClientRect() Rect             // geometry of the element
	AddEventListener(event string, h Handler)
	DispatchEvent(Event) int // returns the number of handlers called
}

// NodeList represents W3C-type NodeList, restricted to elements
type NodeList interface {
	Length() int
	Item(int) Element
}

// Style represents an inline CSSStyleDeclaration
type Style interface {
	GetPropertyValue(string) string
	SetProperty(property, value string)
	RemoveProperty(string) string // returns the old value
	CSSText() string
}

// ClassList represents a DOMTokenList of classes
type ClassList interface {
	Add(...string)
	Remove(...string)
	Toggle(string) bool // returns true if the class is present afterwards
	Contains(string) bool
	Values() []string
}

// Rect is the result of getBoundingClientRect()
type Rect struct {
	X, Y, Width, Height float64
}

// Event is a DOM event
type Event struct {
	Type   string
	Target Element
	Detail any
}

// Handler is an event listener
type Handler func(Event)
