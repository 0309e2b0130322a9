// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package describe

import "fmt"

// ReservedNameError is the error returned when a description or an
// element name is exactly one of the display mode words ("fallback"
// or "label"), which cannot be used as content. It typically means
// that a mode argument was passed in place of the text.
type ReservedNameError struct {

	// Name is the offending text.
	Name string
}

func (e *ReservedNameError) Error() string {
	return fmt.Sprintf("describe: %q is a reserved display mode word and cannot be used as a description or element name", e.Name)
}
