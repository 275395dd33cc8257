/*
Package dom provides a headless HTML document for animations to act upon.

A Document wraps the parse tree of golang.org/x/net/html. Elements of the
tree are wrapped into type Element, which implements w3cdom.Element: inline
styles live in the element's `style` attribute, computed styles are resolved
from the inline style, the document's embedded stylesheets and user-agent
defaults. Element wrappers are unique per HTML node, so event listeners
attached to an element survive repeated queries.

Documents are not safe for concurrent use. Animations mutate elements from
the single execution context of their frame scheduler, as a browser would;
clients must not touch the document from other goroutines while animations
are running.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'animsync.dom'
func tracer() tracing.Trace {
	return tracing.Select("animsync.dom")
}
