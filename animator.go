package animsync

import (
	"time"

	"github.com/npillmayer/animsync/dom"
	"github.com/npillmayer/animsync/dom/w3cdom"
	"github.com/npillmayer/animsync/frame"
)

// Document is the document an Animator works on. Variables are custom
// properties of the document element.
type Document interface {
	w3cdom.Document
	SetVar(property, value string)
	GetVar(property string) string
}

var _ Document = &dom.Document{}

// Animator binds a document to a transition engine.
type Animator struct {
	doc    Document
	engine *frame.Engine
	config Config
}

// New creates an animator. doc may be nil if selections are made from
// elements only.
func New(doc Document, engine *frame.Engine, config Config) *Animator {
	if engine == nil {
		panic("animsync: animator needs an engine")
	}
	return &Animator{doc: doc, engine: engine, config: config}
}

// Engine returns the engine transitions are driven by.
func (a *Animator) Engine() *frame.Engine {
	return a.engine
}

// Config returns the animator's defaults.
func (a *Animator) Config() Config {
	return a.config
}

// Document returns the animator's document, if any.
func (a *Animator) Document() Document {
	return a.doc
}

// Select creates a selection. query may be
//
//   - a CSS selector string, evaluated against the document
//   - a single element
//   - a slice of elements ([]w3cdom.Element or []*dom.Element)
//   - a node list
//
// Any other input yields an *InvalidSelectionInputError. A selector
// matching nothing yields an empty selection.
func (a *Animator) Select(query any) (Selection, error) {
	var elems []w3cdom.Element
	switch q := query.(type) {
	case string:
		if a.doc == nil {
			return Selection{}, ErrNoDocument
		}
		list, err := a.doc.QuerySelectorAll(q)
		if err != nil {
			return Selection{}, err
		}
		elems = fromNodeList(list)
	case w3cdom.NodeList:
		elems = fromNodeList(q)
	case *dom.Element:
		if q == nil {
			return Selection{}, &InvalidSelectionInputError{Input: query}
		}
		elems = []w3cdom.Element{q}
	case w3cdom.Element:
		elems = []w3cdom.Element{q}
	case []w3cdom.Element:
		elems = make([]w3cdom.Element, 0, len(q))
		for _, el := range q {
			if el != nil {
				elems = append(elems, el)
			}
		}
	case []*dom.Element:
		elems = make([]w3cdom.Element, 0, len(q))
		for _, el := range q {
			if el != nil {
				elems = append(elems, el)
			}
		}
	default:
		return Selection{}, &InvalidSelectionInputError{Input: query}
	}
	tracer().Debugf("selected %d element(s) by %T", len(elems), query)
	return Selection{a: a, elems: elems}, nil
}

func fromNodeList(list w3cdom.NodeList) []w3cdom.Element {
	if list == nil {
		return nil
	}
	elems := make([]w3cdom.Element, 0, list.Length())
	for i := 0; i < list.Length(); i++ {
		if el := list.Item(i); el != nil {
			elems = append(elems, el)
		}
	}
	return elems
}

// SetVar sets a CSS custom property on the document element. A missing
// leading "--" is added.
func (a *Animator) SetVar(name, value string) {
	if a.doc == nil {
		tracer().Errorf("cannot set variable %s without a document", name)
		return
	}
	a.doc.SetVar(varName(name), value)
}

// GetVar returns the computed value of a CSS custom property of the
// document element.
func (a *Animator) GetVar(name string) string {
	if a.doc == nil {
		return ""
	}
	return a.doc.GetVar(varName(name))
}

func varName(name string) string {
	if len(name) >= 2 && name[:2] == "--" {
		return name
	}
	return "--" + name
}

// Delay calls cb after d and resolves the returned future afterwards.
func (a *Animator) Delay(d time.Duration, cb func()) *frame.Future {
	return a.engine.Delay(d, cb)
}
