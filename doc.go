// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package describe maintains human-readable descriptions of a canvas
// and of named elements drawn on it, and mirrors those descriptions
// into an adjacent region of the host document tree, where they are
// available to screen readers and, optionally, visible to all users.
//
// A [Describer] owns the description state for one document. It tracks
// what text is currently published for each canvas and only mutates
// the document tree when new text differs from what is already there,
// creating containers, paragraphs, and tables lazily and exactly once.
// The document tree itself is supplied by the host through the
// [cogentcore.org/describe/dom] capability interfaces;
// [cogentcore.org/describe/htmldom] provides an implementation backed
// by golang.org/x/net/html nodes.
package describe

//go:generate core generate
