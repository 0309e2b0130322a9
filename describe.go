// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package describe

import "cogentcore.org/describe/dom"

// Describe publishes a whole-canvas description for the given canvas
// element. The screen-reader fallback region is always reconciled;
// the visible label region is reconciled only when mode is [Label],
// and an existing label is left untouched otherwise. Publishing text
// equal to what is already published for a region does not mutate the
// document. It returns a [ReservedNameError] if text is exactly a
// display mode word.
func (d *Describer) Describe(cnv dom.Element, text string, mode DisplayModes) error {
	ct, err := descriptionText(text)
	if err != nil {
		return err
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	st := d.surface(cnv.ID())
	d.syncText(cnv, &st.fallback, fallbackRegion, ct)
	if mode == Label {
		d.syncText(cnv, &st.label, labelRegion, ct)
	}
	return nil
}

// DescribeElement publishes a description of one named element drawn
// on the canvas, shown as a row of the canvas description table: a
// header cell with the element's name and a data cell with the text.
// The row is created on the element's first publish and updated in
// place afterwards, keeping its position. Region handling follows
// [Describer.Describe]. It returns a [ReservedNameError] if name is
// exactly a display mode word.
func (d *Describer) DescribeElement(cnv dom.Element, name, text string, mode DisplayModes) error {
	label, err := elementLabel(name)
	if err != nil {
		return err
	}
	ct, err := descriptionText(text)
	if err != nil {
		return err
	}
	key := elementKey(name)
	inner := rowMarkup(label, ct)
	d.mu.Lock()
	defer d.mu.Unlock()
	st := d.surface(cnv.ID())
	d.syncRow(cnv, &st.fallback, fallbackRegion, key, inner)
	if mode == Label {
		d.syncRow(cnv, &st.label, labelRegion, key, inner)
	}
	return nil
}
