// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package describe

import (
	"strings"

	"golang.org/x/net/html"

	"cogentcore.org/describe/dom"
)

// regionKind selects one of the two description regions of a canvas.
type regionKind int

const (
	// fallbackRegion is the screen-reader-only region.
	fallbackRegion regionKind = iota

	// labelRegion is the visible label region.
	labelRegion
)

// suffix is the id suffix of the region's nodes.
func (rk regionKind) suffix() string {
	if rk == labelRegion {
		return "label"
	}
	return "fallback"
}

// descriptionCaption is the caption of the element description tables.
const descriptionCaption = "Canvas elements and their descriptions"

// offscreen keeps the fallback region out of the visual flow while
// leaving it available to screen readers.
const offscreen = "position:absolute;left:-10000px;top:auto;width:1px;height:1px;overflow:hidden;"

// ensureContainer creates the region's container on first need,
// inserted immediately after the canvas.
func (d *Describer) ensureContainer(cnv dom.Element, rg *regionState, rk regionKind) {
	if rg.container != nil {
		return
	}
	ct := d.doc.CreateElement("div", cnv.ID()+"-"+rk.suffix())
	switch rk {
	case fallbackRegion:
		ct.SetAttr("role", "region")
		ct.SetAttr("aria-label", "Canvas Description")
		ct.SetAttr("style", offscreen)
	case labelRegion:
		ct.SetAttr("class", "canvas-label")
	}
	d.doc.InsertAfter(ct, cnv)
	rg.container = ct
}

// ensureTable creates the region's element table on first need. The
// table always goes last in the container, after the description
// paragraph when one exists.
func (d *Describer) ensureTable(cnv dom.Element, rg *regionState, rk regionKind) {
	if rg.table != nil {
		return
	}
	tb := d.doc.CreateElement("table", cnv.ID()+"-"+rk.suffix()+"-table")
	cp := d.doc.CreateElement("caption", "")
	cp.SetInner(descriptionCaption)
	tb.AppendChild(cp)
	rg.container.AppendChild(tb)
	rg.table = tb
}

// syncText reconciles the region's description paragraph with the
// given canonical text, creating the container and paragraph on first
// need. Text equal to what is already published is a no-op.
func (d *Describer) syncText(cnv dom.Element, rg *regionState, rk regionKind, text string) {
	if rg.para != nil && rg.text == text {
		return
	}
	d.ensureContainer(cnv, rg, rk)
	if rg.para == nil {
		p := d.doc.CreateElement("p", cnv.ID()+"-"+rk.suffix()+"-desc")
		if rg.table != nil {
			// the whole-canvas description always precedes the element table
			rg.container.InsertBefore(p, rg.table)
		} else {
			rg.container.AppendChild(p)
		}
		rg.para = p
	}
	rg.para.SetInner(html.EscapeString(text))
	rg.text = text
}

// syncRow reconciles one element's row in the region's table with the
// given inner markup, creating the container, table, and row on first
// need. Markup equal to what is already published is a no-op; changed
// markup replaces only the row's content, never its position.
func (d *Describer) syncRow(cnv dom.Element, rg *regionState, rk regionKind, key, inner string) {
	rs := rg.rows[key]
	if rs == nil {
		d.ensureContainer(cnv, rg, rk)
		d.ensureTable(cnv, rg, rk)
		tr := d.doc.CreateElement("tr", cnv.ID()+"-"+rk.suffix()+"-row-"+attrSafe(key))
		rg.table.AppendChild(tr)
		rs = &rowState{el: tr}
		if rg.rows == nil {
			rg.rows = map[string]*rowState{}
		}
		rg.rows[key] = rs
	} else if rs.inner == inner {
		return
	}
	rs.el.SetInner(inner)
	rs.inner = inner
}

// attrSafe makes an element key usable inside an id attribute.
func attrSafe(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '-'
	}, key)
}
