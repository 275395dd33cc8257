/*
Package domdbg implements helpers to debug a DOM tree.

Trees are printed with github.com/xlab/treeprint; element nodes show their
tag, id and classes, followed by the inline style and, optionally, a
selection of computed style properties.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package domdbg

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/npillmayer/animsync/dom"
	"github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// Dump writes the element tree below e. For every element, the computed
// values of the given style properties are printed as well.
func Dump(e *dom.Element, w io.Writer, computed ...string) error {
	_, err := io.WriteString(w, Tree(e, computed...).String())
	return err
}

// Tree builds a printable tree for the elements and non-blank text nodes below e.
func Tree(e *dom.Element, computed ...string) treeprint.Tree {
	root := treeprint.NewWithRoot(label(e, computed))
	addChildren(root, e, computed)
	return root
}

// Log prints the tree below e to the test log.
func Log(t *testing.T, e *dom.Element, computed ...string) {
	t.Logf("DOM tree:\n%s", Tree(e, computed...).String())
}

func addChildren(branch treeprint.Tree, e *dom.Element, computed []string) {
	for ch := e.HTMLNode().FirstChild; ch != nil; ch = ch.NextSibling {
		switch {
		case ch.Type == html.ElementNode:
			che := e.Document().Element(ch)
			if ch.FirstChild == nil {
				branch.AddNode(label(che, computed))
				continue
			}
			addChildren(branch.AddBranch(label(che, computed)), che, computed)
		case dom.NodeIsText(ch):
			branch.AddNode(shortText(ch.Data))
		}
	}
}

func label(e *dom.Element, computed []string) string {
	var b strings.Builder
	b.WriteString(e.String())
	if css := e.Style().CSSText(); css != "" {
		fmt.Fprintf(&b, " style=%q", css)
	}
	for _, key := range computed {
		fmt.Fprintf(&b, " %s=%s", key, e.ComputedStyle(key))
	}
	return b.String()
}

func shortText(s string) string {
	s = strings.TrimSpace(s)
	if r := []rune(s); len(r) > 24 {
		s = string(r[:24]) + "…"
	}
	s = strings.Replace(s, "\n", `\n`, -1)
	s = strings.Replace(s, "\t", `\t`, -1)
	return fmt.Sprintf("%q", s)
}
