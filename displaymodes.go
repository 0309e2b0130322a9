// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package describe

// DisplayModes are the ways in which a canvas description is
// presented to users.
type DisplayModes int32 //enums:enum -transform kebab

const (
	// Fallback publishes the description only to a screen-reader
	// region adjacent to the canvas; nothing is shown on screen.
	// It is the default mode.
	Fallback DisplayModes = iota

	// Label additionally shows the description in a visible label
	// next to the canvas, for sighted users.
	Label
)

// reservedName returns a [ReservedNameError] if the given text is
// exactly the string form of a display mode, which almost always
// indicates a misplaced mode argument. The check is case sensitive.
func reservedName(text string) error {
	for _, dm := range DisplayModesValues() {
		if text == dm.String() {
			return &ReservedNameError{Name: text}
		}
	}
	return nil
}
