package effect

import (
	"github.com/npillmayer/animsync/css"
	"github.com/npillmayer/animsync/dom/w3cdom"
)

// SetTransform rewrites a single term of an element's inline transform.
// For an unsupported transform name, the element is left unchanged and a
// *css.UnsupportedTransformError is returned.
func SetTransform(el w3cdom.Element, name, value string) error {
	st := el.Style()
	t, err := css.SetTransform(st.GetPropertyValue("transform"), name, value)
	if err != nil {
		return err
	}
	st.SetProperty("transform", t)
	return nil
}

// ComputedToInline copies the computed value of a property to the element's
// inline style, unless it is "none". Animating a property from its inline
// value then starts at the value the element is displayed with.
func ComputedToInline(el w3cdom.Element, property string) {
	v := el.ComputedStyle(property)
	if v == "" || v == "none" {
		return
	}
	el.Style().SetProperty(property, v)
}
