// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package htmldom implements the [dom] capability surface on
// [golang.org/x/net/html] nodes, for hosts that keep their document
// tree in memory, such as tests, server-side generation, and
// pre-rendering.
package htmldom

import (
	"io"
	"strings"

	"cogentcore.org/core/base/errors"
	"github.com/ericchiang/css"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"cogentcore.org/describe/dom"
)

// Document is a [dom.Document] over a parsed HTML node tree.
type Document struct {
	root *html.Node
}

// Parse reads an HTML document from the given reader.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return &Document{root: root}, nil
}

// New returns an empty document, containing only the html, head,
// and body elements.
func New() *Document {
	d, err := Parse(strings.NewReader(""))
	if errors.Log(err) != nil {
		return nil
	}
	return d
}

// Body returns the document's body element, or nil if there is none.
func (d *Document) Body() dom.Element {
	var body *html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if body != nil {
			return
		}
		if n.Type == html.ElementNode && n.DataAtom == atom.Body {
			body = n
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(d.root)
	if body == nil {
		return nil
	}
	return &Element{n: body}
}

// Select returns the elements matching the given CSS selector,
// in document order.
func (d *Document) Select(selector string) []dom.Element {
	sel, err := css.Parse(selector)
	if errors.Log(err) != nil {
		return nil
	}
	var els []dom.Element
	for _, n := range sel.Select(d.root) {
		els = append(els, &Element{n: n})
	}
	return els
}

// ElementByID returns the element with the given id attribute,
// or nil if there is none.
func (d *Document) ElementByID(id string) dom.Element {
	els := d.Select("#" + id)
	if len(els) == 0 {
		return nil
	}
	return els[0]
}

// CreateElement returns a new unattached element with the given tag
// and id attribute. An empty id is left unset.
func (d *Document) CreateElement(tag, id string) dom.Element {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	if id != "" {
		n.Attr = []html.Attribute{{Key: "id", Val: id}}
	}
	return &Element{n: n}
}

// InsertAfter inserts el as the next sibling of ref, which must
// already be attached to the tree.
func (d *Document) InsertAfter(el, ref dom.Element) {
	rn := node(ref)
	rn.Parent.InsertBefore(node(el), rn.NextSibling)
}

// Render writes the document as HTML to the given writer.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String returns the document serialized as HTML.
func (d *Document) String() string {
	b := &strings.Builder{}
	errors.Log(html.Render(b, d.root))
	return b.String()
}

// Element is a [dom.Element] over a single [html.Node].
type Element struct {
	n *html.Node
}

// node returns the underlying node of a [dom.Element], which must come
// from this package.
func node(el dom.Element) *html.Node {
	return el.(*Element).n
}

// ID returns the value of the element's id attribute, or "" if it
// has none.
func (e *Element) ID() string {
	return e.Attr("id")
}

// Attr returns the value of the given attribute, or "" if unset.
func (e *Element) Attr(key string) string {
	for _, a := range e.n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// SetAttr sets the given attribute to the given value.
func (e *Element) SetAttr(key, value string) {
	for i, a := range e.n.Attr {
		if a.Key == key {
			e.n.Attr[i].Val = value
			return
		}
	}
	e.n.Attr = append(e.n.Attr, html.Attribute{Key: key, Val: value})
}

// Inner returns the element's content serialized as markup.
func (e *Element) Inner() string {
	b := &strings.Builder{}
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		errors.Log(html.Render(b, c))
	}
	return b.String()
}

// SetInner replaces the element's content with the given markup,
// parsed as a fragment in the context of the element's tag. Markup
// that does not parse is logged and leaves the element unchanged.
func (e *Element) SetInner(markup string) {
	// a detached context node with the same tag, so that fragments
	// like table cells parse correctly without mutating e.n
	ctx := &html.Node{Type: html.ElementNode, Data: e.n.Data, DataAtom: e.n.DataAtom}
	nodes, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if errors.Log(err) != nil {
		return
	}
	for e.n.FirstChild != nil {
		e.n.RemoveChild(e.n.FirstChild)
	}
	for _, c := range nodes {
		e.n.AppendChild(c)
	}
}

// AppendChild adds child as the last child of this element.
func (e *Element) AppendChild(child dom.Element) {
	e.n.AppendChild(node(child))
}

// InsertBefore inserts child immediately before ref, which must be an
// existing child of this element.
func (e *Element) InsertBefore(child, ref dom.Element) {
	e.n.InsertBefore(node(child), node(ref))
}
