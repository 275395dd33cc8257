package style

import (
	"golang.org/x/net/html"
)

// Values of properties not set by any style, as a user agent would report them
// from its default stylesheet.
var nonInherited = map[string]string{
	"position":         "static",
	"transform":        "none",
	"opacity":          "1",
	"background-color": "transparent",
	"overflow":         "visible",
	"clip-path":        "none",
}

var isDimension = map[string]string{
	"width":          "auto",
	"height":         "auto",
	"min-width":      "auto",
	"min-height":     "auto",
	"max-width":      "none",
	"max-height":     "none",
	"top":            "auto",
	"right":          "auto",
	"bottom":         "auto",
	"left":           "auto",
	"margin-top":     "0",
	"margin-left":    "0",
	"margin-right":   "0",
	"margin-bottom":  "0",
	"padding-top":    "0",
	"padding-left":   "0",
	"padding-right":  "0",
	"padding-bottom": "0",
}

var inherited = map[string]string{
	"color":      "black",
	"visibility": "visible",
	"direction":  "ltr",
	"font-size":  "16px",
}

// UserAgentDefault returns the user-agent default property for a given key.
// Unknown keys return NullStyle.
func UserAgentDefault(node *html.Node, key string) Property {
	if key == "display" {
		return DisplayPropertyForHTMLNode(node)
	}
	if dim, ok := isDimension[key]; ok {
		return Property(dim)
	}
	if p, ok := nonInherited[key]; ok {
		return Property(p)
	}
	if p, ok := inherited[key]; ok {
		return Property(p)
	}
	return NullStyle
}

// DisplayPropertyForHTMLNode returns the default `display` CSS property for an HTML node.
func DisplayPropertyForHTMLNode(node *html.Node) Property {
	if node == nil {
		return "none"
	}
	if node.Type == html.DocumentNode {
		return "block"
	}
	if node.Type != html.ElementNode {
		tracer().Debugf("cannot get display-property for non-element")
		return "none"
	}
	switch node.Data {
	case "head", "script", "style", "template", "title", "meta", "link":
		return "none"
	case "html", "aside", "body", "div", "h1", "h2", "h3", "h4", "h5", "h6",
		"header", "footer", "main", "nav", "ol", "p", "section", "ul", "figure":
		return "block"
	case "li":
		return "list-item"
	case "a", "b", "em", "i", "img", "span", "strong", "small", "code", "label":
		return "inline"
	}
	tracer().Debugf("unknown HTML element %s will be set to display: block", node.Data)
	return "block"
}
