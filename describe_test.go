// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package describe

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cogentcore.org/describe/dom"
)

// testDoc is a minimal in-memory [dom.Document] that counts structural
// operations, so tests can assert that reconciliation is minimal.
type testDoc struct {
	els     map[string]*testEl
	body    *testEl
	creates int
	inserts int
}

func newTestDoc() *testDoc {
	return &testDoc{
		els:  map[string]*testEl{},
		body: &testEl{tag: "body", attrs: map[string]string{}},
	}
}

// canvas adds a canvas element with the given id to the document body.
func (d *testDoc) canvas(id string) *testEl {
	cnv := &testEl{tag: "canvas", attrs: map[string]string{"id": id}}
	d.els[id] = cnv
	d.body.AppendChild(cnv)
	return cnv
}

func (d *testDoc) CreateElement(tag, id string) dom.Element {
	d.creates++
	el := &testEl{tag: tag, attrs: map[string]string{}}
	if id != "" {
		el.attrs["id"] = id
		d.els[id] = el
	}
	return el
}

func (d *testDoc) ElementByID(id string) dom.Element {
	if el, ok := d.els[id]; ok {
		return el
	}
	return nil
}

func (d *testDoc) InsertAfter(el, ref dom.Element) {
	d.inserts++
	re := ref.(*testEl)
	ce := el.(*testEl)
	i := slices.Index(re.parent.kids, re)
	re.parent.kids = slices.Insert(re.parent.kids, i+1, ce)
	ce.parent = re.parent
}

// testEl is the element type of [testDoc].
type testEl struct {
	tag      string
	attrs    map[string]string
	inner    string
	kids     []*testEl
	parent   *testEl
	setCount int
}

func (e *testEl) ID() string                { return e.attrs["id"] }
func (e *testEl) Attr(key string) string    { return e.attrs[key] }
func (e *testEl) SetAttr(key, value string) { e.attrs[key] = value }
func (e *testEl) Inner() string             { return e.inner }

func (e *testEl) SetInner(markup string) {
	e.inner = markup
	e.setCount++
}

func (e *testEl) AppendChild(child dom.Element) {
	ce := child.(*testEl)
	ce.parent = e
	e.kids = append(e.kids, ce)
}

func (e *testEl) InsertBefore(child, ref dom.Element) {
	ce := child.(*testEl)
	i := slices.Index(e.kids, ref.(*testEl))
	e.kids = slices.Insert(e.kids, i, ce)
	ce.parent = e
}

func TestDescribeIdempotent(t *testing.T) {
	doc := newTestDoc()
	cnv := doc.canvas("c1")
	d := NewDescriber(doc)

	require.NoError(t, d.Describe(cnv, "ok", Fallback))
	require.NoError(t, d.Describe(cnv, "ok", Fallback))

	assert.Equal(t, 2, doc.creates) // container and paragraph, once each
	assert.Equal(t, 1, doc.inserts)
	para := doc.els["c1-fallback-desc"]
	require.NotNil(t, para)
	assert.Equal(t, 1, para.setCount)
	assert.Equal(t, "ok.", para.inner)

	// changed text updates in place without new structure
	require.NoError(t, d.Describe(cnv, "now different", Fallback))
	assert.Equal(t, 2, doc.creates)
	assert.Equal(t, 2, para.setCount)
	assert.Equal(t, "now different.", para.inner)
}

func TestDescribeFallbackNeverTouchesLabel(t *testing.T) {
	doc := newTestDoc()
	cnv := doc.canvas("c1")
	d := NewDescriber(doc)

	require.NoError(t, d.Describe(cnv, "only fallback", Fallback))
	assert.Nil(t, doc.ElementByID("c1-label"))
	assert.Nil(t, doc.ElementByID("c1-label-desc"))

	// an existing label is not demoted by a later fallback-mode call
	require.NoError(t, d.Describe(cnv, "hello", Label))
	label := doc.els["c1-label-desc"]
	require.NotNil(t, label)
	assert.Equal(t, "hello.", label.inner)

	require.NoError(t, d.Describe(cnv, "bye", Fallback))
	assert.Equal(t, "bye.", doc.els["c1-fallback-desc"].inner)
	assert.Equal(t, "hello.", label.inner)
}

func TestDescribeLabelMode(t *testing.T) {
	doc := newTestDoc()
	cnv := doc.canvas("c1")
	d := NewDescriber(doc)

	require.NoError(t, d.Describe(cnv, "hello", Label))

	fb := doc.els["c1-fallback"]
	require.NotNil(t, fb)
	assert.Equal(t, "region", fb.attrs["role"])
	assert.Equal(t, "Canvas Description", fb.attrs["aria-label"])

	lb := doc.els["c1-label"]
	require.NotNil(t, lb)
	assert.Equal(t, "canvas-label", lb.attrs["class"])
	assert.Equal(t, "hello.", doc.els["c1-label-desc"].inner)
	assert.Equal(t, "hello.", doc.els["c1-fallback-desc"].inner)
}

func TestIndependentCanvases(t *testing.T) {
	doc := newTestDoc()
	c1 := doc.canvas("c1")
	c2 := doc.canvas("c2")
	d := NewDescriber(doc)

	require.NoError(t, d.Describe(c1, "first", Fallback))
	assert.Nil(t, doc.ElementByID("c2-fallback"))

	require.NoError(t, d.Describe(c2, "second", Fallback))
	assert.Equal(t, "first.", doc.els["c1-fallback-desc"].inner)
	assert.Equal(t, "second.", doc.els["c2-fallback-desc"].inner)
}

func TestResetRecreates(t *testing.T) {
	doc := newTestDoc()
	cnv := doc.canvas("c1")
	d := NewDescriber(doc)

	require.NoError(t, d.Describe(cnv, "before", Fallback))
	assert.Equal(t, 2, doc.creates)

	d.Reset()
	d.Reset() // idempotent

	require.NoError(t, d.Describe(cnv, "hello", Fallback))
	assert.Equal(t, 4, doc.creates) // container and paragraph made again
	ct := doc.els["c1-fallback"]
	para := doc.els["c1-fallback-desc"]
	require.NotNil(t, ct)
	require.NotNil(t, para)
	assert.Equal(t, "hello.", para.inner)
}

func TestDescribeElementRowOnce(t *testing.T) {
	doc := newTestDoc()
	cnv := doc.canvas("c1")
	d := NewDescriber(doc)

	require.NoError(t, d.DescribeElement(cnv, "Heart", "red heart", Label))
	require.NoError(t, d.DescribeElement(cnv, "Heart", "red heart", Label))

	table := doc.els["c1-label-table"]
	require.NotNil(t, table)
	require.Len(t, table.kids, 2) // caption and one row
	row := doc.els["c1-label-row-Heart"]
	require.NotNil(t, row)
	assert.Equal(t, 1, row.setCount)
	assert.Equal(t, `<th scope="row">Heart:</th><td>red heart.</td>`, row.inner)

	// the fallback region always gets the row as well
	require.NotNil(t, doc.els["c1-fallback-row-Heart"])
}

func TestDescribeElementKeyCollision(t *testing.T) {
	doc := newTestDoc()
	cnv := doc.canvas("c1")
	d := NewDescriber(doc)

	require.NoError(t, d.DescribeElement(cnv, "Circle.", "a dot", Fallback))
	require.NoError(t, d.DescribeElement(cnv, "Square", "a box", Fallback))
	// a different display form of the same key updates the same row in place
	require.NoError(t, d.DescribeElement(cnv, "Circle,", "a disc", Fallback))

	table := doc.els["c1-fallback-table"]
	require.NotNil(t, table)
	require.Len(t, table.kids, 3) // caption and two rows
	assert.Equal(t, "c1-fallback-row-Circle", table.kids[1].ID())
	assert.Equal(t, "c1-fallback-row-Square", table.kids[2].ID())
	assert.Equal(t, `<th scope="row">Circle:</th><td>a disc.</td>`, table.kids[1].inner)
}

func TestParagraphPrecedesTable(t *testing.T) {
	doc := newTestDoc()
	cnv := doc.canvas("c1")
	d := NewDescriber(doc)

	// table first, then the whole-canvas description
	require.NoError(t, d.DescribeElement(cnv, "Circle", "a dot", Fallback))
	require.NoError(t, d.Describe(cnv, "shapes", Fallback))

	ct := doc.els["c1-fallback"]
	require.NotNil(t, ct)
	require.Len(t, ct.kids, 2)
	assert.Equal(t, "p", ct.kids[0].tag)
	assert.Equal(t, "table", ct.kids[1].tag)
}

func TestDescribeReservedNameError(t *testing.T) {
	doc := newTestDoc()
	cnv := doc.canvas("c1")
	d := NewDescriber(doc)

	err := d.Describe(cnv, "label", Fallback)
	require.Error(t, err)
	var rne *ReservedNameError
	assert.True(t, errors.As(err, &rne))

	assert.Error(t, d.DescribeElement(cnv, "fallback", "text", Fallback))
	assert.Error(t, d.DescribeElement(cnv, "Heart", "label", Fallback))
	assert.Equal(t, 0, doc.creates) // nothing was mutated
}
