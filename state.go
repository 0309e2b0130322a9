// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package describe

import (
	"sync"

	"cogentcore.org/describe/dom"
)

// Describer maintains the accessible description state for all
// canvases in one document. It records, per canvas, the text currently
// published to each description region, and mutates the document tree
// only when newly published text differs from the recorded text.
// All methods are safe for concurrent use. The zero value is not
// usable; use [NewDescriber].
type Describer struct {
	mu       sync.Mutex
	doc      dom.Document
	surfaces map[string]*surfaceState
}

// NewDescriber returns a [Describer] that inserts description
// structure into the given document.
func NewDescriber(doc dom.Document) *Describer {
	return &Describer{doc: doc, surfaces: map[string]*surfaceState{}}
}

// Reset unconditionally discards all recorded canvas and element
// state. It is called when the document is torn down or canvases are
// recreated; the next publish call re-derives everything from scratch,
// including re-creating containers. Reset does not remove structure
// already inserted into a still-live document, so it must only be
// used across a real document lifecycle boundary.
func (d *Describer) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	clear(d.surfaces)
}

// surfaceState is the description state of one canvas, created lazily
// on its first publish call and discarded only by [Describer.Reset].
type surfaceState struct {
	fallback regionState
	label    regionState
}

// regionState is the state of one description region of one canvas.
// The element handles double as the structural flags: a nil handle
// means the node has not been created yet, and a handle is never
// cleared once set, so structure only ever advances.
type regionState struct {
	container dom.Element
	para      dom.Element
	table     dom.Element

	// text is the description most recently published to the region's
	// paragraph; it is meaningful only once para is non-nil.
	text string

	// rows holds the element table rows by identity key. A row is
	// created on the key's first publish and only its content is
	// replaced afterwards, so row order is first-publish order.
	rows map[string]*rowState
}

// rowState is the state of one element's table row in one region.
type rowState struct {
	el    dom.Element
	inner string
}

// surface returns the state for the given canvas id, creating it on
// first use. The caller must hold d.mu.
func (d *Describer) surface(id string) *surfaceState {
	st := d.surfaces[id]
	if st == nil {
		st = &surfaceState{}
		d.surfaces[id] = st
	}
	return st
}
