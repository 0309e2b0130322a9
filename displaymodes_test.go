// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package describe

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayModes(t *testing.T) {
	assert.Equal(t, "fallback", Fallback.String())
	assert.Equal(t, "label", Label.String())

	var dm DisplayModes
	assert.NoError(t, dm.SetString("label"))
	assert.Equal(t, Label, dm)
	assert.Error(t, dm.SetString("visible"))
}
