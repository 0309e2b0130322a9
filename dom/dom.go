// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dom defines the minimal capability surface that package
// describe needs from a host document tree: creating elements,
// looking them up, and mutating their attributes, content, and
// position. The host supplies an implementation;
// [cogentcore.org/describe/htmldom] provides one backed by
// golang.org/x/net/html nodes.
package dom

// Element is a single element node in the host document tree.
// Elements from different [Document] implementations cannot be mixed.
type Element interface {

	// ID returns the value of the element's id attribute,
	// or "" if it has none.
	ID() string

	// Attr returns the value of the given attribute, or "" if unset.
	Attr(key string) string

	// SetAttr sets the given attribute to the given value.
	SetAttr(key, value string)

	// Inner returns the element's content serialized as markup.
	Inner() string

	// SetInner replaces the element's content with the given markup.
	SetInner(markup string)

	// AppendChild adds child as the last child of this element.
	AppendChild(child Element)

	// InsertBefore inserts child immediately before ref, which must
	// be an existing child of this element.
	InsertBefore(child, ref Element)
}

// Document is the host document tree that description structure is
// inserted into.
type Document interface {

	// CreateElement returns a new element with the given tag and id
	// attribute, not yet attached to the tree. An empty id is left
	// unset.
	CreateElement(tag, id string) Element

	// ElementByID returns the element with the given id attribute,
	// or nil if there is none.
	ElementByID(id string) Element

	// InsertAfter inserts el as the next sibling of ref, which must
	// already be attached to the tree.
	InsertAfter(el, ref Element)
}
