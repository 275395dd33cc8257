package style

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// StyleSheet is a parsed CSS stylesheet.
type StyleSheet struct {
	css *css.Stylesheet
}

// ParseStyleSheet parses CSS text, e.g. the content of a <style> element.
func ParseStyleSheet(text string) (*StyleSheet, error) {
	c, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("malformed stylesheet: %w", err)
	}
	return &StyleSheet{css: c}, nil
}

// NewStyleSheet creates a stylesheet without any rules.
func NewStyleSheet() *StyleSheet {
	return &StyleSheet{css: css.NewStylesheet()}
}

// Empty checks if this stylesheet contains any rules.
func (sheet *StyleSheet) Empty() bool {
	return sheet == nil || len(sheet.css.Rules) == 0
}

// AppendRules appends rules from another stylesheet.
func (sheet *StyleSheet) AppendRules(other *StyleSheet) {
	if other.Empty() {
		return
	}
	sheet.css.Rules = append(sheet.css.Rules, other.css.Rules...)
}

// Rules returns all the qualified rules of a stylesheet. @-rules are skipped.
func (sheet *StyleSheet) Rules() []Rule {
	if sheet.Empty() {
		return nil
	}
	rules := make([]Rule, 0, len(sheet.css.Rules))
	for _, r := range sheet.css.Rules {
		if r.Kind != css.QualifiedRule {
			continue
		}
		rules = append(rules, Rule(*r))
	}
	return rules
}

func (sheet *StyleSheet) String() string {
	if sheet == nil {
		return ""
	}
	return sheet.css.String()
}

// Rule is a single rule of a stylesheet.
type Rule css.Rule

// Selector returns the prelude / selectors of the rule.
func (r Rule) Selector() string {
	return r.Prelude
}

// Properties returns the property keys of a rule,
// e.g. "margin-top"
func (r Rule) Properties() []string {
	props := make([]string, 0, len(r.Declarations))
	for _, d := range r.Declarations {
		props = append(props, d.Property)
	}
	return props
}

// Value returns the property values for given key with this rule, e.g. "15px".
// For repeated keys, the last one wins.
func (r Rule) Value(key string) Property {
	p := NullStyle
	for _, d := range r.Declarations {
		if d.Property == key {
			p = Property(d.Value)
		}
	}
	return p
}

// IsImportant returns true if a style key is marked as important ("!").
func (r Rule) IsImportant(key string) bool {
	for _, d := range r.Declarations {
		if d.Property == key && d.Important {
			return true
		}
	}
	return false
}

// ExtractStyleElements visits an HTML parse tree and searches for
// embedded <style>s. It returns the content of style-elements as style
// sheets, in document order. Malformed style elements are skipped.
func ExtractStyleElements(htmldoc *html.Node) []*StyleSheet {
	var sheets []*StyleSheet
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == atom.Style {
			var b strings.Builder
			for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
				if ch.Type == html.TextNode {
					b.WriteString(ch.Data)
				}
			}
			sheet, err := ParseStyleSheet(b.String())
			if err != nil {
				tracer().Errorf("skipping <style> element: %v", err)
				return
			}
			sheets = append(sheets, sheet)
			return
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			walk(ch)
		}
	}
	if htmldoc != nil {
		walk(htmldoc)
	}
	return sheets
}

// --- Cascade ----------------------------------------------------------

// Cascade matches rules of a list of stylesheets against elements.
// Selectors are compiled once on construction.
type Cascade struct {
	entries []cascadeEntry
}

type cascadeEntry struct {
	sel   cascadia.Sel
	decls []KeyValue
	order int
}

// NewCascade compiles the rules of stylesheets, given in increasing order of
// precedence. Rules with selectors which do not compile are skipped.
func NewCascade(sheets ...*StyleSheet) *Cascade {
	c := &Cascade{}
	order := 0
	for _, sheet := range sheets {
		for _, rule := range sheet.Rules() {
			decls := expandDeclarations(rule.Declarations)
			for _, s := range rule.Selectors {
				sel, err := cascadia.Parse(s)
				if err != nil {
					tracer().Infof("ignoring CSS selector %q: %v", s, err)
					continue
				}
				c.entries = append(c.entries, cascadeEntry{sel: sel, decls: decls, order: order})
			}
			order++
		}
	}
	return c
}

func expandDeclarations(decls []*css.Declaration) []KeyValue {
	r := make([]KeyValue, 0, len(decls))
	for _, d := range decls {
		key := PropertyKey(d.Property)
		if IsCompound(key) {
			if kvs, err := SplitCompoundProperty(key, Property(d.Value)); err == nil {
				for _, kv := range kvs {
					kv.Important = d.Important
					r = append(r, kv)
				}
				continue
			}
		}
		r = append(r, KeyValue{Key: key, Value: Property(d.Value), Important: d.Important})
	}
	return r
}

// Size returns the number of compiled (selector, rule) pairs.
func (c *Cascade) Size() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Lookup finds the cascaded value of a property for an element node.
// Important declarations win over normal ones, then selector specificity,
// then source order.
func (c *Cascade) Lookup(n *html.Node, key string) (KeyValue, bool) {
	if c == nil || n == nil || n.Type != html.ElementNode {
		return KeyValue{}, false
	}
	key = PropertyKey(key)
	var best KeyValue
	var bestSpec cascadia.Specificity
	bestOrder, found := -1, false
	for _, e := range c.entries {
		kv, ok := lastDecl(e.decls, key)
		if !ok || !e.sel.Match(n) {
			continue
		}
		spec := e.sel.Specificity()
		if found && !outranks(kv.Important, spec, e.order, best.Important, bestSpec, bestOrder) {
			continue
		}
		best, bestSpec, bestOrder, found = kv, spec, e.order, true
	}
	return best, found
}

func lastDecl(decls []KeyValue, key string) (KeyValue, bool) {
	for i := len(decls) - 1; i >= 0; i-- {
		if decls[i].Key == key {
			return decls[i], true
		}
	}
	return KeyValue{}, false
}

func outranks(imp bool, spec cascadia.Specificity, order int,
	otherImp bool, otherSpec cascadia.Specificity, otherOrder int) bool {
	//
	if imp != otherImp {
		return imp
	}
	if spec != otherSpec {
		return otherSpec.Less(spec)
	}
	return order >= otherOrder
}
