// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package describe

import (
	"strings"

	strip "github.com/grokify/html-strip-tags-go"
	"golang.org/x/net/html"
)

// descriptionText returns the canonical display form of a description:
// markup tags are stripped, and a period is appended unless the text
// already ends in terminal punctuation. It returns a
// [ReservedNameError] if text is exactly a display mode word.
func descriptionText(text string) (string, error) {
	if err := reservedName(text); err != nil {
		return "", err
	}
	text = strip.StripTags(text)
	if !strings.HasSuffix(text, ".") && !strings.HasSuffix(text, "!") && !strings.HasSuffix(text, "?") {
		text += "."
	}
	return text, nil
}

// elementLabel returns the display form of an element name, shown in
// the header cell of the element's table row: a trailing ".", ";", or
// "," is replaced with ":", and a ":" is appended if the name does not
// already end in one. It returns a [ReservedNameError] if name is
// exactly a display mode word.
func elementLabel(name string) (string, error) {
	if err := reservedName(name); err != nil {
		return "", err
	}
	name = strip.StripTags(name)
	if ln := len(name); ln > 0 {
		switch name[ln-1] {
		case '.', ';', ',':
			return name[:ln-1] + ":", nil
		case ':':
			return name, nil
		}
	}
	return name + ":", nil
}

// elementKey returns the identity key of an element name, used to
// address the element's table row: one trailing ".", ";", ",", or ":"
// is stripped. Distinct names can share a key ("Circle." and
// "Circle,"); they address the same row.
func elementKey(name string) string {
	name = strip.StripTags(name)
	if ln := len(name); ln > 0 {
		switch name[ln-1] {
		case '.', ';', ',', ':':
			return name[:ln-1]
		}
	}
	return name
}

// rowMarkup renders the inner markup of an element's table row: a
// header cell holding the display name and a data cell holding the
// description, both escaped.
func rowMarkup(label, text string) string {
	return `<th scope="row">` + html.EscapeString(label) + `</th><td>` + html.EscapeString(text) + `</td>`
}
